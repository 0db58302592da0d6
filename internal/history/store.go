// Package history keeps the ordered list of calculation entries and moves it
// to and from persistent storage.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// TimestampLayout is the layout of the "[...]" prefix on every entry.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	// ErrEmptyEntry is returned by AddEntry for empty or blank text.
	ErrEmptyEntry = errors.New("history entry cannot be empty")

	// ErrMultilineEntry is returned by AddEntry for text containing line
	// breaks, which the one-entry-per-line format cannot hold.
	ErrMultilineEntry = errors.New("history entry cannot span multiple lines")
)

// Store is an append-only sequence of timestamped entries. All methods are
// safe for concurrent use; one mutex covers the entries and persistence.
type Store struct {
	mu        sync.Mutex
	entries   []string
	persister Persister
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to timestamp entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty store persisted through p.
func NewStore(p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddEntry timestamps text and appends it.
func (s *Store) AddEntry(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyEntry
	}
	if strings.ContainsAny(text, "\r\n") {
		return ErrMultilineEntry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, fmt.Sprintf("[%s] %s", s.now().Format(TimestampLayout), text))
	return nil
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Location describes where the store persists, for user messages.
func (s *Store) Location() string {
	return s.persister.Location()
}

// Save writes all entries through the persister.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Save(ctx, s.entries); err != nil {
		return fmt.Errorf("saving history to %s: %w", s.persister.Location(), err)
	}
	return nil
}

// Load replaces the in-memory entries with the persisted ones. It reports
// false, and leaves the entries untouched, when nothing has been persisted.
func (s *Store) Load(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.persister.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading history from %s: %w", s.persister.Location(), err)
	}

	s.entries = lines
	return true, nil
}
