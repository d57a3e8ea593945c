package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShipOrder(t *testing.T) {
	tests := []struct {
		input string
		want  ShipOrder
	}{
		{"ID", OrderByID},
		{"speed", OrderBySpeed},
		{" Date ", OrderByDate},
		{"prodDate", OrderByDate},
		{"RATING", OrderByRating},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseShipOrder(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseShipOrder_Unknown(t *testing.T) {
	_, err := ParseShipOrder("CREW")

	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.True(t, IsBadRequest(err))
}

func TestListShipsRequest_ParsedOrder(t *testing.T) {
	req := ListShipsRequest{}
	order, err := req.ParsedOrder()
	require.NoError(t, err)
	assert.Nil(t, order, "absent order means no sorting")

	blank := "  "
	req.Order = &blank
	order, err = req.ParsedOrder()
	require.NoError(t, err)
	assert.Nil(t, order)

	speed := "SPEED"
	req.Order = &speed
	order, err = req.ParsedOrder()
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, OrderBySpeed, *order)
}

func TestShipFilter_Validate(t *testing.T) {
	assert.NoError(t, (&ShipFilter{}).Validate())

	valid := ShipTypeTransport
	assert.NoError(t, (&ShipFilter{ShipType: &valid}).Validate())

	bogus := ShipType("BATTLECRUISER")
	err := (&ShipFilter{ShipType: &bogus}).Validate()
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.True(t, IsBadRequest(err))
	assert.False(t, IsNotFound(err))
}

func TestShipError_NotFound(t *testing.T) {
	err := NewShipNotFoundError(42)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsBadRequest(err))
	assert.Equal(t, "Ship 42 not found: ship not found", err.Error())
}
