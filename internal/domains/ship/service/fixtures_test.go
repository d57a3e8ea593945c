package service

import (
	"time"

	"cosmoport-backend/internal/domains/ship/model"
)

func ptr[T any](v T) *T { return &v }

func year(y int) time.Time {
	return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// fleet returns ships with ids 1..n whose speed decreases with id,
// so ordering by SPEED reverses the id order
func fleet(n int) []model.Ship {
	ships := make([]model.Ship, 0, n)
	for i := 1; i <= n; i++ {
		ships = append(ships, model.Ship{
			ID:       int64(i),
			Name:     "Ship",
			Planet:   "Mars",
			ShipType: model.ShipTypeTransport,
			ProdDate: year(2900 + i),
			Speed:    0.9 - float64(i)*0.05,
			CrewSize: i * 10,
			Rating:   float64(i),
		})
	}
	return ships
}

func ids(ships []model.Ship) []int64 {
	out := make([]int64, 0, len(ships))
	for _, s := range ships {
		out = append(out, s.ID)
	}
	return out
}
