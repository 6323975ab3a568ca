package models

import "time"

type NoteCategory string

const (
	NoteProgress    NoteCategory = "Progress"
	NoteSideEffects NoteCategory = "Side Effects"
	NoteMood        NoteCategory = "Mood"
	NoteGeneral     NoteCategory = "General"
)

// NoteCategories lists the categories in display order.
var NoteCategories = []NoteCategory{NoteProgress, NoteSideEffects, NoteMood, NoteGeneral}

func (c NoteCategory) Valid() bool {
	for _, known := range NoteCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Note is a free-text journal entry, optionally tied to a cycle.
type Note struct {
	ID        string       `json:"id"`
	Category  NoteCategory `json:"category"`
	Text      string       `json:"text"`
	CycleID   string       `json:"cycleId,omitempty"`
	Date      time.Time    `json:"date"`
	CreatedAt time.Time    `json:"createdAt"`
}
