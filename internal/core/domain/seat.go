package domain

import (
	"fmt"
	"strings"
)

// Seat holds at most one occupant. The zero value is a free seat.
type Seat struct {
	occupant string
}

func (s *Seat) IsFree() bool {
	return s.occupant == ""
}

// Occupant returns the current occupant and whether the seat is taken.
func (s *Seat) Occupant() (string, bool) {
	return s.occupant, s.occupant != ""
}

func (s *Seat) Assign(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: a non-blank name is required (got %q)", ErrInvalidOccupant, name)
	}

	if !s.IsFree() {
		return fmt.Errorf("%w: occupied by %s", ErrSeatOccupied, s.occupant)
	}

	s.occupant = name
	return nil
}

// Remove frees the seat and returns the previous occupant, if any.
func (s *Seat) Remove() (string, bool) {
	prev, ok := s.Occupant()
	s.occupant = ""
	return prev, ok
}
