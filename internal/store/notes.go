package store

import (
	"strings"
	"sync"
	"time"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/lucsky/cuid"
)

// NoteStore holds shift notes. Notes are purely local: there is no
// remote persistence, so no optimistic protocol applies.
type NoteStore struct {
	mu    sync.Mutex
	notes []models.ShiftNote
}

func NewNoteStore() *NoteStore {
	return &NoteStore{}
}

// Submit validates and records a note. Empty or whitespace-only text
// is rejected.
func (s *NoteStore) Submit(text, tag string) (models.ShiftNote, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.ShiftNote{}, validationErrf("Note text is required")
	}
	if !validNoteTag(tag) {
		return models.ShiftNote{}, validationErrf("Tag must be one of %s", strings.Join(models.NoteTags, ", "))
	}
	note := models.ShiftNote{
		ID:        cuid.New(),
		CreatedAt: time.Now(),
		Text:      trimmed,
		Tag:       tag,
	}
	s.mu.Lock()
	s.notes = append(s.notes, note)
	s.mu.Unlock()
	return note, nil
}

// Delete removes a note by id, reporting whether it existed.
func (s *NoteStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// Notes returns the notes newest first.
func (s *NoteStore) Notes() []models.ShiftNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ShiftNote, len(s.notes))
	for i, n := range s.notes {
		out[len(s.notes)-1-i] = n
	}
	return out
}
