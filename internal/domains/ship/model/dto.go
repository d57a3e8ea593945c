package model

import (
	"fmt"
	"strings"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// ShipRequest is the create/update body. Every field is optional;
// on update only the present fields overwrite the stored ship.
type ShipRequest struct {
	Name     *string   `json:"name"`
	Planet   *string   `json:"planet"`
	ShipType *ShipType `json:"shipType"`
	ProdDate *int64    `json:"prodDate"` // epoch milliseconds
	IsUsed   *bool     `json:"isUsed"`
	Speed    *float64  `json:"speed"`
	CrewSize *int      `json:"crewSize"`
}

// ShipFilter holds the optional filter criteria of list and count
type ShipFilter struct {
	Name        *string   `form:"name"`
	Planet      *string   `form:"planet"`
	ShipType    *ShipType `form:"shipType"`
	After       *int64    `form:"after"`  // epoch ms, inclusive
	Before      *int64    `form:"before"` // epoch ms, inclusive
	IsUsed      *bool     `form:"isUsed"`
	MinSpeed    *float64  `form:"minSpeed"`
	MaxSpeed    *float64  `form:"maxSpeed"`
	MinCrewSize *int      `form:"minCrewSize"`
	MaxCrewSize *int      `form:"maxCrewSize"`
	MinRating   *float64  `form:"minRating"`
	MaxRating   *float64  `form:"maxRating"`
}

// Validate rejects criteria that cannot match anything by construction
func (f *ShipFilter) Validate() error {
	if f.ShipType != nil && !f.ShipType.IsValid() {
		return NewInvalidFilterError(fmt.Sprintf("unknown shipType %q", string(*f.ShipType)))
	}
	return nil
}

// ListShipsRequest is the filter plus paging and ordering
type ListShipsRequest struct {
	ShipFilter
	PageNumber *int    `form:"pageNumber"`
	PageSize   *int    `form:"pageSize"`
	Order      *string `form:"order"`
}

// ParsedOrder resolves the order selector, nil when absent
func (r *ListShipsRequest) ParsedOrder() (*ShipOrder, error) {
	if r.Order == nil || strings.TrimSpace(*r.Order) == "" {
		return nil, nil
	}
	order, err := ParseShipOrder(*r.Order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ShipResponse is the wire form of a ship; prodDate is epoch milliseconds
type ShipResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Planet   string   `json:"planet"`
	ShipType ShipType `json:"shipType"`
	ProdDate int64    `json:"prodDate"`
	IsUsed   bool     `json:"isUsed"`
	Speed    float64  `json:"speed"`
	CrewSize int      `json:"crewSize"`
	Rating   float64  `json:"rating"`
}
