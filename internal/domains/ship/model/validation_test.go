package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShip() Ship {
	return Ship{
		Name:     "Daedalus",
		Planet:   "Jupiter",
		ShipType: ShipTypeMerchant,
		ProdDate: time.Date(3000, time.June, 1, 0, 0, 0, 0, time.UTC),
		Speed:    0.5,
		CrewSize: 100,
	}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()

	var shipErr *ShipError
	require.True(t, errors.As(err, &shipErr))
	assert.Equal(t, ErrCodeInvalidShip, shipErr.Code)
	assert.ErrorIs(t, err, ErrInvalidShip)

	details, ok := shipErr.Details.(validation.Errors)
	require.True(t, ok, "details should be field errors, got %T", shipErr.Details)
	return details
}

func TestValidateShip_Valid(t *testing.T) {
	ship := validShip()
	assert.NoError(t, ValidateShip(&ship))
	assert.True(t, IsValidShip(&ship))
}

func TestValidateShip_Nil(t *testing.T) {
	err := ValidateShip(nil)
	assert.ErrorIs(t, err, ErrInvalidShip)
}

func TestValidateShip_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Ship)
		field  string // empty when valid
	}{
		{"name 1 rune", func(s *Ship) { s.Name = "X" }, ""},
		{"name 50 runes", func(s *Ship) { s.Name = strings.Repeat("a", 50) }, ""},
		{"name 50 multibyte runes", func(s *Ship) { s.Name = strings.Repeat("ж", 50) }, ""},
		{"name empty", func(s *Ship) { s.Name = "" }, "name"},
		{"name 51 runes", func(s *Ship) { s.Name = strings.Repeat("a", 51) }, "name"},
		{"planet empty", func(s *Ship) { s.Planet = "" }, "planet"},
		{"planet 51 runes", func(s *Ship) { s.Planet = strings.Repeat("p", 51) }, "planet"},
		{"shipType missing", func(s *Ship) { s.ShipType = "" }, "shipType"},
		{"shipType unknown", func(s *Ship) { s.ShipType = "CRUISER" }, "shipType"},
		{"year 2800", func(s *Ship) { s.ProdDate = time.Date(2800, time.January, 1, 0, 0, 0, 0, time.UTC) }, ""},
		{"year 3019", func(s *Ship) { s.ProdDate = time.Date(3019, time.December, 31, 23, 59, 59, 0, time.UTC) }, ""},
		{"year 2799", func(s *Ship) { s.ProdDate = time.Date(2799, time.December, 31, 23, 59, 59, 0, time.UTC) }, "prodDate"},
		{"year 3020", func(s *Ship) { s.ProdDate = time.Date(3020, time.January, 1, 0, 0, 0, 0, time.UTC) }, "prodDate"},
		{"prodDate missing", func(s *Ship) { s.ProdDate = time.Time{} }, "prodDate"},
		{"speed 0.01", func(s *Ship) { s.Speed = 0.01 }, ""},
		{"speed 0.99", func(s *Ship) { s.Speed = 0.99 }, ""},
		{"speed 0", func(s *Ship) { s.Speed = 0 }, "speed"},
		{"speed 0.009", func(s *Ship) { s.Speed = 0.009 }, "speed"},
		{"speed 1", func(s *Ship) { s.Speed = 1 }, "speed"},
		{"crew 1", func(s *Ship) { s.CrewSize = 1 }, ""},
		{"crew 9999", func(s *Ship) { s.CrewSize = 9999 }, ""},
		{"crew 0", func(s *Ship) { s.CrewSize = 0 }, "crewSize"},
		{"crew 10000", func(s *Ship) { s.CrewSize = 10000 }, "crewSize"},
		{"crew negative", func(s *Ship) { s.CrewSize = -5 }, "crewSize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship := validShip()
			tt.mutate(&ship)

			err := ValidateShip(&ship)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			details := fieldErrors(t, err)
			assert.Contains(t, details, tt.field)
			assert.Len(t, details, 1)
		})
	}
}

func TestValidateShip_ReportsEveryField(t *testing.T) {
	err := ValidateShip(&Ship{})

	details := fieldErrors(t, err)
	for _, field := range []string{"name", "planet", "shipType", "prodDate", "speed", "crewSize"} {
		assert.Contains(t, details, field)
	}
}

func TestValidateCreateRequest(t *testing.T) {
	name, planet := "Daedalus", "Jupiter"
	shipType := ShipTypeMilitary
	prodDate := time.Date(3010, time.March, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	speed, crew := 0.3, 10

	full := ShipRequest{
		Name:     &name,
		Planet:   &planet,
		ShipType: &shipType,
		ProdDate: &prodDate,
		Speed:    &speed,
		CrewSize: &crew,
	}
	assert.NoError(t, full.ValidateCreateRequest(), "isUsed is optional")

	missing := full
	missing.Planet = nil
	missing.CrewSize = nil

	details := fieldErrors(t, missing.ValidateCreateRequest())
	assert.Contains(t, details, "planet")
	assert.Contains(t, details, "crewSize")
	assert.NotContains(t, details, "name")
}
