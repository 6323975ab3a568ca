package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/dmitrijs2005/learninghub/internal/client/repositories/kv"
	"github.com/google/uuid"
)

const NotesKey = "@trackersteroid_notes"

// ErrNoteNotFound is returned by Delete for an unknown id.
var ErrNoteNotFound = errors.New("note not found")

// NotesService manages journal notes stored as one JSON array.
type NotesService interface {
	Add(ctx context.Context, category models.NoteCategory, text, cycleID string, date time.Time) (*models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	ListByCategory(ctx context.Context, category models.NoteCategory) ([]models.Note, error)
	ListByCycle(ctx context.Context, cycleID string) ([]models.Note, error)
	Delete(ctx context.Context, id string) error
}

type notesService struct {
	repo kv.Repository
	now  func() time.Time

	mu sync.Mutex
}

func NewNotesService(repo kv.Repository) NotesService {
	return &notesService{repo: repo, now: time.Now}
}

// Add appends a note. A zero date means "now".
func (s *notesService) Add(ctx context.Context, category models.NoteCategory, text, cycleID string, date time.Time) (*models.Note, error) {
	if !category.Valid() {
		return nil, models.NewValidationError("Unknown note category")
	}
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Note text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if date.IsZero() {
		date = now
	}
	note := models.Note{
		ID:        uuid.NewString(),
		Category:  category,
		Text:      text,
		CycleID:   cycleID,
		Date:      date,
		CreatedAt: now,
	}
	if err := s.store(ctx, append(notes, note)); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *notesService) List(ctx context.Context) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *notesService) ListByCategory(ctx context.Context, category models.NoteCategory) ([]models.Note, error) {
	return s.filter(ctx, func(n models.Note) bool { return n.Category == category })
}

func (s *notesService) ListByCycle(ctx context.Context, cycleID string) ([]models.Note, error) {
	return s.filter(ctx, func(n models.Note) bool { return n.CycleID == cycleID })
}

func (s *notesService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return ErrNoteNotFound
	}
	return s.store(ctx, kept)
}

func (s *notesService) filter(ctx context.Context, keep func(models.Note) bool) ([]models.Note, error) {
	notes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *notesService) load(ctx context.Context) ([]models.Note, error) {
	raw, err := s.repo.Get(ctx, NotesKey)
	if err != nil {
		return nil, err
	}
	notes := []models.Note{}
	if len(raw) == 0 {
		return notes, nil
	}
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

func (s *notesService) store(ctx context.Context, notes []models.Note) error {
	payload, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	return s.repo.Set(ctx, NotesKey, payload)
}
