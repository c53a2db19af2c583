package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	DefaultTables        = 6
	DefaultSeatsPerTable = 4
)

const (
	ReasonNoCapacity = "not enough capacity"
	ReasonIsolated   = "could only seat this person alone on a table"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

// NewShuffler returns a Shuffler backed by the math/rand/v2 global source.
func NewShuffler() Shuffler {
	return globalShuffler{}
}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// OpenSpace is a room made of a fixed set of tables.
type OpenSpace struct {
	tables []*Table
}

func NewOpenSpace(tables, seatsPerTable int) (*OpenSpace, error) {
	if tables < 0 {
		return nil, fmt.Errorf("%w: table count %d", ErrInvalidCapacity, tables)
	}

	room := &OpenSpace{tables: make([]*Table, tables)}
	for i := range room.tables {
		t, err := NewTable(seatsPerTable)
		if err != nil {
			return nil, err
		}
		room.tables[i] = t
	}

	return room, nil
}

// Tables returns the room's tables in order. Callers must not assign seats
// on them directly while a seating pass is running.
func (o *OpenSpace) Tables() []*Table {
	out := make([]*Table, len(o.tables))
	copy(out, o.tables)
	return out
}

func (o *OpenSpace) Capacity() int {
	total := 0
	for _, t := range o.tables {
		total += t.Capacity()
	}

	return total
}

func (o *OpenSpace) LeftCapacity() int {
	total := 0
	for _, t := range o.tables {
		total += t.LeftCapacity()
	}

	return total
}

func (o *OpenSpace) Occupancy() int {
	return o.Capacity() - o.LeftCapacity()
}

// CleanNames trims every name and drops the blank ones, keeping order.
func CleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}

	return out
}

// SeatRandomly shuffles the cleaned names and assigns them one by one,
// filling the least occupied non-empty table first and refusing to open an
// empty table for the last remaining person. It returns the names that could
// not be seated, in processing order.
func (o *OpenSpace) SeatRandomly(names []string, rng Shuffler) []string {
	queue := CleanNames(names)
	rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	var unseated []string
	for idx, name := range queue {
		remaining := len(queue) - idx

		target := o.pickTable(remaining)
		if target == nil {
			unseated = append(unseated, name)
			continue
		}

		if err := target.Assign(name); err != nil {
			panic(fmt.Sprintf("openspace: assign %q to a table with free seats: %v", name, err))
		}
	}

	return unseated
}

// pickTable returns the table the next person should join, or nil when the
// person has to stay unseated.
func (o *OpenSpace) pickTable(remaining int) *Table {
	var (
		partial     *Table
		firstEmpty  *Table
		singleEmpty *Table
	)

	for _, t := range o.tables {
		if !t.HasFreeSpot() {
			continue
		}

		if occ := t.Occupancy(); occ > 0 {
			if partial == nil || occ < partial.Occupancy() {
				partial = t
			}
			continue
		}

		if firstEmpty == nil {
			firstEmpty = t
		}
		if singleEmpty == nil && t.Capacity() == 1 {
			singleEmpty = t
		}
	}

	if partial != nil {
		return partial
	}

	if firstEmpty == nil {
		return nil
	}

	if remaining >= 2 {
		return firstEmpty
	}

	// Last person with only empty tables left. A lone first arrival still
	// gets a table, and so does anyone who fits a single-seat table, since
	// those isolate by construction. Tables share one capacity, so the
	// second case only arises in rooms of single-seat tables.
	if o.Occupancy() == 0 {
		return firstEmpty
	}

	return singleEmpty
}

// UnseatedReason explains why names were left out of the last seating pass.
func (o *OpenSpace) UnseatedReason() string {
	if o.LeftCapacity() > 0 {
		return ReasonIsolated
	}

	return ReasonNoCapacity
}

// FormattedLayout renders one line per table, in room order.
func (o *OpenSpace) FormattedLayout() string {
	return o.Snapshot().Format()
}

func (o *OpenSpace) String() string {
	header := fmt.Sprintf("OpenSpace(tables=%d, capacity=%d, left=%d)", len(o.tables), o.Capacity(), o.LeftCapacity())
	if len(o.tables) == 0 {
		return header
	}

	lines := make([]string, len(o.tables))
	for i, t := range o.tables {
		lines[i] = t.String()
	}

	return header + "\n" + strings.Join(lines, "\n")
}
