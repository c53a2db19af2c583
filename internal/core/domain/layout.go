package domain

import (
	"fmt"
	"strings"
)

// TableLayout is the serializable view of one table. Free seats are nil.
type TableLayout struct {
	Capacity     int       `json:"capacity"`
	LeftCapacity int       `json:"left_capacity"`
	Seats        []*string `json:"seats"`
}

// Layout is the serializable snapshot of a room.
type Layout struct {
	TableCount   int           `json:"table_count"`
	Tables       []TableLayout `json:"tables"`
	Capacity     int           `json:"capacity"`
	LeftCapacity int           `json:"left_capacity"`
}

func (o *OpenSpace) Snapshot() Layout {
	layout := Layout{
		TableCount:   len(o.tables),
		Tables:       make([]TableLayout, len(o.tables)),
		Capacity:     o.Capacity(),
		LeftCapacity: o.LeftCapacity(),
	}

	for i, t := range o.tables {
		layout.Tables[i] = TableLayout{
			Capacity:     t.Capacity(),
			LeftCapacity: t.LeftCapacity(),
			Seats:        t.Occupants(),
		}
	}

	return layout
}

// Seated counts the occupied seats in the snapshot.
func (l Layout) Seated() int {
	return l.Capacity - l.LeftCapacity
}

// Format renders one line per table, listing occupants in seat order and
// FreeSeatPlaceholder for free seats.
func (l Layout) Format() string {
	lines := make([]string, len(l.Tables))
	for i, t := range l.Tables {
		seats := make([]string, len(t.Seats))
		for j, s := range t.Seats {
			seats[j] = FreeSeatPlaceholder
			if s != nil {
				seats[j] = *s
			}
		}
		lines[i] = fmt.Sprintf("Table %d: [%s]", i+1, strings.Join(seats, ", "))
	}

	return strings.Join(lines, "\n")
}
