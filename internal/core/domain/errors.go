package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOccupant = errors.New("invalid occupant")
	ErrSeatOccupied    = errors.New("seat already occupied")
	ErrTableFull       = errors.New("table is full")
	ErrInvalidCapacity = errors.New("invalid capacity")

	ErrArrangementNotFound = errors.New("arrangement not found")
)

// TableFullError reports the table state at the time an assignment was refused.
type TableFullError struct {
	Left     int
	Capacity int
}

func (e *TableFullError) Error() string {
	return fmt.Sprintf("table is full (capacity: %d/%d)", e.Left, e.Capacity)
}

func (e *TableFullError) Is(target error) bool {
	return target == ErrTableFull
}
