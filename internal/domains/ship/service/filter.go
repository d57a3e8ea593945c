package service

import (
	"strings"

	"cosmoport-backend/internal/domains/ship/model"
)

// predicate is one criterion of a ShipFilter
type predicate func(s *model.Ship) bool

// buildPredicates turns every present criterion into a predicate.
// Absent criteria contribute nothing.
func buildPredicates(f model.ShipFilter) []predicate {
	preds := []predicate{}

	if f.Name != nil && *f.Name != "" {
		needle := strings.ToUpper(*f.Name)
		preds = append(preds, func(s *model.Ship) bool {
			return strings.Contains(strings.ToUpper(s.Name), needle)
		})
	}

	if f.Planet != nil && *f.Planet != "" {
		needle := strings.ToUpper(*f.Planet)
		preds = append(preds, func(s *model.Ship) bool {
			return strings.Contains(strings.ToUpper(s.Planet), needle)
		})
	}

	if f.ShipType != nil {
		shipType := *f.ShipType
		preds = append(preds, func(s *model.Ship) bool { return s.ShipType == shipType })
	}

	// Date bounds are inclusive epoch milliseconds
	if f.After != nil {
		after := *f.After
		preds = append(preds, func(s *model.Ship) bool { return s.ProdDateMillis() >= after })
	}
	if f.Before != nil {
		before := *f.Before
		preds = append(preds, func(s *model.Ship) bool { return s.ProdDateMillis() <= before })
	}

	if f.IsUsed != nil {
		isUsed := *f.IsUsed
		preds = append(preds, func(s *model.Ship) bool { return s.IsUsed == isUsed })
	}

	if f.MinSpeed != nil {
		v := *f.MinSpeed
		preds = append(preds, func(s *model.Ship) bool { return s.Speed >= v })
	}
	if f.MaxSpeed != nil {
		v := *f.MaxSpeed
		preds = append(preds, func(s *model.Ship) bool { return s.Speed <= v })
	}

	if f.MinCrewSize != nil {
		v := *f.MinCrewSize
		preds = append(preds, func(s *model.Ship) bool { return s.CrewSize >= v })
	}
	if f.MaxCrewSize != nil {
		v := *f.MaxCrewSize
		preds = append(preds, func(s *model.Ship) bool { return s.CrewSize <= v })
	}

	if f.MinRating != nil {
		v := *f.MinRating
		preds = append(preds, func(s *model.Ship) bool { return s.Rating >= v })
	}
	if f.MaxRating != nil {
		v := *f.MaxRating
		preds = append(preds, func(s *model.Ship) bool { return s.Rating <= v })
	}

	return preds
}

// MatchesFilter reports whether s satisfies every criterion of f
func MatchesFilter(s *model.Ship, f model.ShipFilter) bool {
	for _, p := range buildPredicates(f) {
		if !p(s) {
			return false
		}
	}
	return true
}

// FilterShips returns the ships matching f, in their input order
func FilterShips(ships []model.Ship, f model.ShipFilter) []model.Ship {
	preds := buildPredicates(f)
	result := make([]model.Ship, 0, len(ships))

next:
	for i := range ships {
		for _, p := range preds {
			if !p(&ships[i]) {
				continue next
			}
		}
		result = append(result, ships[i])
	}

	return result
}
