package model

import "time"

// ShipType is the closed set of ship categories
type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

// ShipTypes lists every valid ShipType
var ShipTypes = []ShipType{ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant}

// IsValid reports whether t is one of the known categories
func (t ShipType) IsValid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	}
	return false
}

// Ship represents a spacecraft entity
type Ship struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Planet   string    `json:"planet" db:"planet"`
	ShipType ShipType  `json:"shipType" db:"ship_type"`
	ProdDate time.Time `json:"prodDate" db:"prod_date"`
	IsUsed   bool      `json:"isUsed" db:"is_used"`
	Speed    float64   `json:"speed" db:"speed"`
	CrewSize int       `json:"crewSize" db:"crew_size"`
	Rating   float64   `json:"rating" db:"rating"`
}

// ProdYear returns the UTC calendar year of the production date
func (s *Ship) ProdYear() int {
	return s.ProdDate.UTC().Year()
}

// ProdDateMillis returns the production date as epoch milliseconds
func (s *Ship) ProdDateMillis() int64 {
	return s.ProdDate.UnixMilli()
}

// Apply returns a copy of s with every non-nil field of req written over it.
// ID and Rating are never taken from a request.
func (s Ship) Apply(req ShipRequest) Ship {
	merged := s
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Planet != nil {
		merged.Planet = *req.Planet
	}
	if req.ShipType != nil {
		merged.ShipType = *req.ShipType
	}
	if req.ProdDate != nil {
		merged.ProdDate = time.UnixMilli(*req.ProdDate).UTC()
	}
	if req.IsUsed != nil {
		merged.IsUsed = *req.IsUsed
	}
	if req.Speed != nil {
		merged.Speed = *req.Speed
	}
	if req.CrewSize != nil {
		merged.CrewSize = *req.CrewSize
	}
	return merged
}

func (s *Ship) ToResponse() *ShipResponse {
	return &ShipResponse{
		ID:       s.ID,
		Name:     s.Name,
		Planet:   s.Planet,
		ShipType: s.ShipType,
		ProdDate: s.ProdDateMillis(),
		IsUsed:   s.IsUsed,
		Speed:    s.Speed,
		CrewSize: s.CrewSize,
		Rating:   s.Rating,
	}
}
