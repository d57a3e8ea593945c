package model

const (
	// Text fields
	MinNameLength = 1
	MaxNameLength = 50

	// Crew
	MinCrewSize = 1
	MaxCrewSize = 9999

	// Speed
	MinSpeed = 0.01
	MaxSpeed = 0.99

	// Production year window; MaxProdYear is also the "current year" of the rating formula
	MinProdYear = 2800
	MaxProdYear = 3019
)
