package model

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// prodYearRule checks the UTC calendar year of a production date
var prodYearRule = validation.By(func(value interface{}) error {
	t, ok := value.(time.Time)
	if !ok || t.IsZero() {
		// presence is Required's job
		return nil
	}
	if year := t.UTC().Year(); year < MinProdYear || year > MaxProdYear {
		return fmt.Errorf("production year must be between %d and %d, got %d", MinProdYear, MaxProdYear, year)
	}
	return nil
})

// ValidateShip checks that a fully merged ship may be persisted.
// Required also rejects zero crewSize and speed, which are out of range anyway.
func ValidateShip(s *Ship) error {
	if s == nil {
		return NewInvalidShipError(errors.New("ship is nil"))
	}

	err := validation.ValidateStruct(s,
		validation.Field(&s.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(MinNameLength, MaxNameLength).Error("name must be 1-50 characters"),
		),
		validation.Field(&s.Planet,
			validation.Required.Error("planet is required"),
			validation.RuneLength(MinNameLength, MaxNameLength).Error("planet must be 1-50 characters"),
		),
		validation.Field(&s.ShipType,
			validation.Required.Error("shipType is required"),
			validation.In(ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant).Error("shipType must be TRANSPORT, MILITARY or MERCHANT"),
		),
		validation.Field(&s.ProdDate,
			validation.Required.Error("prodDate is required"),
			prodYearRule,
		),
		validation.Field(&s.Speed,
			validation.Required.Error("speed is required"),
			validation.Min(MinSpeed).Error("speed must be between 0.01 and 0.99"),
			validation.Max(MaxSpeed).Error("speed must be between 0.01 and 0.99"),
		),
		validation.Field(&s.CrewSize,
			validation.Required.Error("crewSize is required"),
			validation.Min(MinCrewSize).Error("crewSize must be between 1 and 9999"),
			validation.Max(MaxCrewSize).Error("crewSize must be between 1 and 9999"),
		),
	)
	if err != nil {
		return NewInvalidShipError(err)
	}
	return nil
}

// IsValidShip is the boolean form of ValidateShip
func IsValidShip(s *Ship) bool {
	return ValidateShip(s) == nil
}

// ValidateCreateRequest enforces that a create body carries every required field.
// isUsed is optional and defaults to false.
func (r *ShipRequest) ValidateCreateRequest() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NotNil.Error("name is required")),
		validation.Field(&r.Planet, validation.NotNil.Error("planet is required")),
		validation.Field(&r.ShipType, validation.NotNil.Error("shipType is required")),
		validation.Field(&r.ProdDate, validation.NotNil.Error("prodDate is required")),
		validation.Field(&r.Speed, validation.NotNil.Error("speed is required")),
		validation.Field(&r.CrewSize, validation.NotNil.Error("crewSize is required")),
	)
	if err != nil {
		return NewInvalidShipError(err)
	}
	return nil
}
