package domain

import "github.com/google/uuid"

const TopicArrangementSaved = "openspace.arrangement.saved"

type ArrangementSaved struct {
	ID       uuid.UUID `json:"id"`
	Tables   int       `json:"tables"`
	Seated   int       `json:"seated"`
	Unseated int       `json:"unseated"`
}
