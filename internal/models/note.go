package models

import "time"

// ShiftNote is a free-text operational annotation. Notes live only in
// memory for the duration of a session; nothing is persisted remotely.
type ShiftNote struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
	Tag       string    `json:"tag"` // Staffing, Quality, Ops, Supply
}
