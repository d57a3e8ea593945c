package model

import "strings"

// ShipOrder selects the ascending sort key of a listing
type ShipOrder string

const (
	OrderByID     ShipOrder = "ID"
	OrderBySpeed  ShipOrder = "SPEED"
	OrderByDate   ShipOrder = "DATE"
	OrderByRating ShipOrder = "RATING"
)

// ParseShipOrder accepts the selector name (ID, SPEED, DATE, RATING) or the
// field name it sorts on, case-insensitively.
func ParseShipOrder(s string) (ShipOrder, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	switch key {
	case "ID":
		return OrderByID, nil
	case "SPEED":
		return OrderBySpeed, nil
	case "DATE", "PRODDATE":
		return OrderByDate, nil
	case "RATING":
		return OrderByRating, nil
	}
	return "", NewInvalidOrderError(s)
}
