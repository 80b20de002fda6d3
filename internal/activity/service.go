package activity

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/briangreenhill/extrack/internal/observability"
)

var ErrActivityNotFound = errors.New("activity not found")

// Entry is an activity held by the tracker.
type Entry struct {
	ID       string
	Activity Activity
}

// Service keeps activities in insertion order for the lifetime of the process.
type Service struct {
	mu      sync.RWMutex
	entries []Entry
	byID    map[string]int
	logger  *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		byID:   map[string]int{},
		logger: logger,
	}
}

func (s *Service) Add(ctx context.Context, activity Activity) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	entry := Entry{ID: uuid.NewString(), Activity: activity}

	s.mu.Lock()
	s.byID[entry.ID] = len(s.entries)
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	observability.RecordActivityTracked(activity.Kind().String())
	s.logger.Debug("Tracked activity",
		slog.String("id", entry.ID),
		slog.String("type", activity.Kind().String()),
		slog.Int("minutes", activity.DurationMinutes()))

	return entry, nil
}

// List returns a copy of every entry in the order it was added.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

func (s *Service) Find(ctx context.Context, id string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Entry{}, ErrActivityNotFound
	}
	return s.entries[i], nil
}
