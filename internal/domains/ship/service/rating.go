package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cosmoport-backend/internal/domains/ship/model"
)

// RatingCalculator derives a ship's rating
type RatingCalculator struct{}

// NewRatingCalculator creates a RatingCalculator
func NewRatingCalculator() *RatingCalculator {
	return &RatingCalculator{}
}

// Calculate computes the rating of a ship
//
// Formula:
//   - k = 0.5 for a used ship, 1 otherwise
//   - raw = 80 × speed × k / (3019 − prodYear + 1)
//   - rounded to 2 decimals, ROUND_HALF_UP
//
// The arithmetic runs in decimal so 0.125 rounds to 0.13 instead of
// whatever the nearest float64 would give.
func (c *RatingCalculator) Calculate(speed float64, isUsed bool, prodYear int) (float64, error) {
	denominator := model.MaxProdYear - prodYear + 1
	if denominator <= 0 {
		return 0, fmt.Errorf("rating undefined for production year %d", prodYear)
	}

	k := decimal.NewFromInt(1)
	if isUsed {
		k = decimal.NewFromFloat(0.5)
	}

	raw := decimal.NewFromInt(80).
		Mul(decimal.NewFromFloat(speed)).
		Mul(k).
		Div(decimal.NewFromInt(int64(denominator)))

	// decimal.Round rounds half away from zero; ratings are never negative
	return raw.Round(2).InexactFloat64(), nil
}

// CalculateForShip reads the rating inputs from s
func (c *RatingCalculator) CalculateForShip(s *model.Ship) (float64, error) {
	return c.Calculate(s.Speed, s.IsUsed, s.ProdYear())
}
