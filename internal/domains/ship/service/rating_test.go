package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmoport-backend/internal/domains/ship/model"
)

func TestRatingCalculator_Calculate(t *testing.T) {
	calc := NewRatingCalculator()

	tests := []struct {
		name     string
		speed    float64
		isUsed   bool
		prodYear int
		want     float64
	}{
		{"new ship from the current year", 0.5, false, 3019, 40.0},
		{"used ship one year old", 0.5, true, 3018, 10.0},
		{"oldest slowest used ship", 0.01, true, 2800, 0.0},
		{"fastest newest ship", 0.99, false, 3019, 79.2},
		{"rounds to hundredths", 0.37, false, 3000, 1.48},
		{"used ship halves the rating", 0.25, true, 2980, 0.25},
		{"third of the way", 0.3, false, 3017, 8.0},
		{"repeating decimal", 0.1, false, 3013, 1.14},
		{"half rounds up at hundredths", 0.03, true, 3004, 0.08},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Calculate(tt.speed, tt.isUsed, tt.prodYear)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatingCalculator_UndefinedYear(t *testing.T) {
	_, err := NewRatingCalculator().Calculate(0.5, false, 3020)
	assert.Error(t, err)
}

func TestRatingCalculator_CalculateForShip(t *testing.T) {
	ship := &model.Ship{
		Speed:    0.5,
		IsUsed:   true,
		ProdDate: time.Date(3018, time.July, 4, 12, 0, 0, 0, time.UTC),
	}

	got, err := NewRatingCalculator().CalculateForShip(ship)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}
