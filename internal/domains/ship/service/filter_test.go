package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cosmoport-backend/internal/domains/ship/model"
)

func filterFixture() []model.Ship {
	return []model.Ship{
		{ID: 1, Name: "Orion Star", Planet: "Earth", ShipType: model.ShipTypeMilitary, ProdDate: year(2990), IsUsed: true, Speed: 0.8, CrewSize: 500, Rating: 2.1},
		{ID: 2, Name: "star runner", Planet: "Mars", ShipType: model.ShipTypeMerchant, ProdDate: year(3010), IsUsed: false, Speed: 0.3, CrewSize: 12, Rating: 2.4},
		{ID: 3, Name: "Nebula", Planet: "Earth orbit", ShipType: model.ShipTypeTransport, ProdDate: year(2850), IsUsed: false, Speed: 0.55, CrewSize: 40, Rating: 0.26},
		{ID: 4, Name: "Voyager", Planet: "Venus", ShipType: model.ShipTypeMilitary, ProdDate: year(3019), IsUsed: false, Speed: 0.99, CrewSize: 9999, Rating: 79.2},
	}
}

func TestFilterShips(t *testing.T) {
	tests := []struct {
		name   string
		filter model.ShipFilter
		want   []int64
	}{
		{"no criteria keeps everything", model.ShipFilter{}, []int64{1, 2, 3, 4}},
		{"name is a case-insensitive substring", model.ShipFilter{Name: ptr("STAR")}, []int64{1, 2}},
		{"empty name is ignored", model.ShipFilter{Name: ptr("")}, []int64{1, 2, 3, 4}},
		{"planet substring", model.ShipFilter{Planet: ptr("earth")}, []int64{1, 3}},
		{"ship type is exact", model.ShipFilter{ShipType: ptr(model.ShipTypeMilitary)}, []int64{1, 4}},
		{"after is inclusive", model.ShipFilter{After: ptr(year(3010).UnixMilli())}, []int64{2, 4}},
		{"before is inclusive", model.ShipFilter{Before: ptr(year(2990).UnixMilli())}, []int64{1, 3}},
		{"isUsed false", model.ShipFilter{IsUsed: ptr(false)}, []int64{2, 3, 4}},
		{"speed range is inclusive", model.ShipFilter{MinSpeed: ptr(0.55), MaxSpeed: ptr(0.8)}, []int64{1, 3}},
		{"crew range is inclusive", model.ShipFilter{MinCrewSize: ptr(12), MaxCrewSize: ptr(500)}, []int64{1, 2, 3}},
		{"rating range is inclusive", model.ShipFilter{MinRating: ptr(2.1), MaxRating: ptr(2.4)}, []int64{1, 2}},
		{"criteria combine with AND", model.ShipFilter{ShipType: ptr(model.ShipTypeMilitary), IsUsed: ptr(false)}, []int64{4}},
		{"inverted range matches nothing", model.ShipFilter{MinSpeed: ptr(0.9), MaxSpeed: ptr(0.1)}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterShips(filterFixture(), tt.filter)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterShips_Idempotent(t *testing.T) {
	f := model.ShipFilter{Name: ptr("star"), IsUsed: ptr(true)}

	once := FilterShips(filterFixture(), f)
	twice := FilterShips(once, f)

	assert.Equal(t, once, twice)
}

func TestFilterShips_DoesNotModifyInput(t *testing.T) {
	ships := filterFixture()
	_ = FilterShips(ships, model.ShipFilter{ShipType: ptr(model.ShipTypeMerchant)})

	assert.Equal(t, filterFixture(), ships)
}

func TestMatchesFilter(t *testing.T) {
	ship := filterFixture()[3]

	assert.True(t, MatchesFilter(&ship, model.ShipFilter{}))
	assert.True(t, MatchesFilter(&ship, model.ShipFilter{Name: ptr("voy")}))
	assert.False(t, MatchesFilter(&ship, model.ShipFilter{MaxCrewSize: ptr(9998)}))
}
