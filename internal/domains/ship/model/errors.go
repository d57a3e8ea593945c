package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeShipNotFound      = "SHIP001"
	ErrCodeInvalidShipID     = "SHIP002"
	ErrCodeInvalidShip       = "SHIP003"
	ErrCodeInvalidOrder      = "SHIP004"
	ErrCodeInvalidPageParams = "SHIP005"
	ErrCodeInvalidFilter     = "SHIP006"
)

// Errors
var (
	ErrShipNotFound      = errors.New("ship not found")
	ErrInvalidShipID     = errors.New("invalid ship id")
	ErrInvalidShip       = errors.New("invalid ship")
	ErrInvalidOrder      = errors.New("invalid order")
	ErrInvalidPageParams = errors.New("invalid page params")
	ErrInvalidFilter     = errors.New("invalid filter")
)

// ShipError custom error type
type ShipError struct {
	Code    string
	Message string
	Err     error
	Details interface{}
}

func (e *ShipError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ShipError) Unwrap() error {
	return e.Err
}

// IsBadRequest reports whether err is a client error
func IsBadRequest(err error) bool {
	var shipErr *ShipError
	if !errors.As(err, &shipErr) {
		return false
	}
	switch shipErr.Code {
	case ErrCodeInvalidShipID, ErrCodeInvalidShip, ErrCodeInvalidOrder,
		ErrCodeInvalidPageParams, ErrCodeInvalidFilter:
		return true
	}
	return false
}

// IsNotFound reports whether err means the ship does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrShipNotFound)
}

// Error constructors
func NewShipNotFoundError(id int64) *ShipError {
	return &ShipError{
		Code:    ErrCodeShipNotFound,
		Message: fmt.Sprintf("Ship %d not found", id),
		Err:     ErrShipNotFound,
	}
}

func NewInvalidShipIDError(id int64) *ShipError {
	return &ShipError{
		Code:    ErrCodeInvalidShipID,
		Message: fmt.Sprintf("Invalid ship id: %d", id),
		Err:     ErrInvalidShipID,
	}
}

// NewInvalidShipError wraps the per-field validation errors into details
func NewInvalidShipError(details error) *ShipError {
	return &ShipError{
		Code:    ErrCodeInvalidShip,
		Message: "Ship is invalid",
		Err:     ErrInvalidShip,
		Details: details,
	}
}

func NewInvalidOrderError(order string) *ShipError {
	return &ShipError{
		Code:    ErrCodeInvalidOrder,
		Message: fmt.Sprintf("Unknown order %q, expected one of ID, SPEED, DATE, RATING", order),
		Err:     ErrInvalidOrder,
	}
}

func NewInvalidPageParamsError(pageNumber, pageSize int) *ShipError {
	return &ShipError{
		Code:    ErrCodeInvalidPageParams,
		Message: fmt.Sprintf("Invalid pagination params: pageNumber=%d, pageSize=%d", pageNumber, pageSize),
		Err:     ErrInvalidPageParams,
	}
}

func NewInvalidFilterError(reason string) *ShipError {
	return &ShipError{
		Code:    ErrCodeInvalidFilter,
		Message: fmt.Sprintf("Invalid filter: %s", reason),
		Err:     ErrInvalidFilter,
	}
}
