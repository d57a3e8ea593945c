package service

import (
	"cmp"
	"slices"

	"cosmoport-backend/internal/domains/ship/model"
)

const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

// shipComparators maps each order to an ascending comparison
var shipComparators = map[model.ShipOrder]func(a, b model.Ship) int{
	model.OrderByID: func(a, b model.Ship) int {
		return cmp.Compare(a.ID, b.ID)
	},
	model.OrderBySpeed: func(a, b model.Ship) int {
		return cmp.Compare(a.Speed, b.Speed)
	},
	model.OrderByDate: func(a, b model.Ship) int {
		return a.ProdDate.Compare(b.ProdDate)
	},
	model.OrderByRating: func(a, b model.Ship) int {
		return cmp.Compare(a.Rating, b.Rating)
	},
}

// ComparatorFor returns the ordering function of order
func ComparatorFor(order model.ShipOrder) (func(a, b model.Ship) int, error) {
	compare, ok := shipComparators[order]
	if !ok {
		return nil, model.NewInvalidOrderError(string(order))
	}
	return compare, nil
}

// SortShips returns a stably sorted copy of ships
func SortShips(ships []model.Ship, order model.ShipOrder) ([]model.Ship, error) {
	compare, err := ComparatorFor(order)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(ships)
	slices.SortStableFunc(sorted, compare)
	return sorted, nil
}

// Paginate sorts ships when order is given, then skips pageNumber*pageSize
// ships and takes up to pageSize. Absent pageNumber/pageSize default to 0/3.
// A page past the end is empty.
func Paginate(ships []model.Ship, pageNumber, pageSize *int, order *model.ShipOrder) ([]model.Ship, error) {
	number := DefaultPageNumber
	if pageNumber != nil {
		number = *pageNumber
	}
	size := DefaultPageSize
	if pageSize != nil {
		size = *pageSize
	}
	if number < 0 || size <= 0 {
		return nil, model.NewInvalidPageParamsError(number, size)
	}

	if order != nil {
		sorted, err := SortShips(ships, *order)
		if err != nil {
			return nil, err
		}
		ships = sorted
	}

	// compare page counts, not offsets, so huge pageNumbers cannot overflow
	totalPages := len(ships) / size
	if len(ships)%size != 0 {
		totalPages++
	}
	if number >= totalPages {
		return []model.Ship{}, nil
	}
	offset := number * size
	end := min(offset+size, len(ships))

	return slices.Clone(ships[offset:end]), nil
}
