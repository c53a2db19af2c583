package domain

import (
	"fmt"
	"strings"
)

// FreeSeatPlaceholder stands in for an empty seat in rendered layouts.
const FreeSeatPlaceholder = "-"

// Table is a fixed-size ordered group of seats.
type Table struct {
	seats []Seat
}

func NewTable(capacity int) (*Table, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: table capacity %d", ErrInvalidCapacity, capacity)
	}

	return &Table{seats: make([]Seat, capacity)}, nil
}

func (t *Table) Capacity() int {
	return len(t.seats)
}

func (t *Table) LeftCapacity() int {
	left := 0
	for i := range t.seats {
		if t.seats[i].IsFree() {
			left++
		}
	}

	return left
}

func (t *Table) Occupancy() int {
	return t.Capacity() - t.LeftCapacity()
}

func (t *Table) HasFreeSpot() bool {
	return t.LeftCapacity() > 0
}

// Assign places name on the lowest-indexed free seat.
func (t *Table) Assign(name string) error {
	for i := range t.seats {
		if t.seats[i].IsFree() {
			return t.seats[i].Assign(name)
		}
	}

	return &TableFullError{Left: t.LeftCapacity(), Capacity: t.Capacity()}
}

// Occupants lists every seat in order; free seats are nil.
func (t *Table) Occupants() []*string {
	out := make([]*string, len(t.seats))
	for i := range t.seats {
		if name, ok := t.seats[i].Occupant(); ok {
			out[i] = &name
		}
	}

	return out
}

// Render lists every seat in order, using FreeSeatPlaceholder for free seats.
func (t *Table) Render() []string {
	out := make([]string, len(t.seats))
	for i := range t.seats {
		name, ok := t.seats[i].Occupant()
		if !ok {
			name = FreeSeatPlaceholder
		}
		out[i] = name
	}

	return out
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(capacity=%d, left=%d) [%s]", t.Capacity(), t.LeftCapacity(), strings.Join(t.Render(), ", "))
}
