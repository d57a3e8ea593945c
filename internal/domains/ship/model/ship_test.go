package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipType_IsValid(t *testing.T) {
	for _, st := range ShipTypes {
		assert.True(t, st.IsValid(), st)
	}
	assert.False(t, ShipType("transport").IsValid(), "ship types are case-sensitive")
	assert.False(t, ShipType("").IsValid())
}

func TestShip_ProdYearIsUTC(t *testing.T) {
	// 3000-01-01 01:00 in UTC+2 is still 2999 in UTC
	zone := time.FixedZone("UTC+2", 2*60*60)
	ship := Ship{ProdDate: time.Date(3000, time.January, 1, 1, 0, 0, 0, zone)}

	assert.Equal(t, 2999, ship.ProdYear())
}

func TestShip_Apply(t *testing.T) {
	original := validShip()
	original.ID = 7
	original.Rating = 1.23

	t.Run("empty request changes nothing", func(t *testing.T) {
		assert.Equal(t, original, original.Apply(ShipRequest{}))
	})

	t.Run("present fields overwrite, absent fields are kept", func(t *testing.T) {
		name := "Nostromo"
		used := true
		millis := time.Date(2900, time.May, 5, 0, 0, 0, 0, time.UTC).UnixMilli()

		merged := original.Apply(ShipRequest{Name: &name, IsUsed: &used, ProdDate: &millis})

		assert.Equal(t, "Nostromo", merged.Name)
		assert.True(t, merged.IsUsed)
		assert.Equal(t, 2900, merged.ProdYear())
		assert.Equal(t, original.Planet, merged.Planet)
		assert.Equal(t, original.Speed, merged.Speed)
		assert.Equal(t, original.CrewSize, merged.CrewSize)
		assert.Equal(t, original.ShipType, merged.ShipType)
	})

	t.Run("id and rating are never taken from the request", func(t *testing.T) {
		merged := original.Apply(ShipRequest{})
		assert.Equal(t, int64(7), merged.ID)
		assert.Equal(t, 1.23, merged.Rating)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		name := "Changed"
		_ = original.Apply(ShipRequest{Name: &name})
		assert.Equal(t, "Daedalus", original.Name)
	})
}

func TestShip_ToResponse(t *testing.T) {
	ship := validShip()
	ship.ID = 3
	ship.Rating = 2.5

	resp := ship.ToResponse()
	require.NotNil(t, resp)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, ship.ProdDate.UnixMilli(), resp.ProdDate)
	assert.Equal(t, 2.5, resp.Rating)
	assert.Equal(t, ShipTypeMerchant, resp.ShipType)
}
