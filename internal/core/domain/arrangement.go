package domain

import (
	"time"

	"github.com/google/uuid"
)

// Arrangement is the persisted outcome of one seating pass.
type Arrangement struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Layout
	Unseated []string `json:"unseated"`
}

func NewArrangement(room *OpenSpace, unseated []string, now time.Time) *Arrangement {
	if unseated == nil {
		unseated = []string{}
	}

	return &Arrangement{
		ID:        uuid.New(),
		CreatedAt: now.UTC(),
		Layout:    room.Snapshot(),
		Unseated:  unseated,
	}
}
