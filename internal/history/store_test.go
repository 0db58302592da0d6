package history

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.txt")
	return NewStore(NewFilePersister(path), WithClock(fixedClock)), path
}

func TestAddEntryPrefixesTimestamp(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.AddEntry("Addition: 2 + 3 = 5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if want := "[2024-03-09 14:05:07] Addition: 2 + 3 = 5"; entries[0] != want {
		t.Fatalf("expected %q, got %q", want, entries[0])
	}
}

func TestAddEntryRejectsBlankAndMultilineText(t *testing.T) {
	s, _ := newTestStore(t)

	for _, in := range []string{"", "   ", "\t"} {
		if err := s.AddEntry(in); !errors.Is(err, ErrEmptyEntry) {
			t.Fatalf("input %q: expected ErrEmptyEntry, got %v", in, err)
		}
	}
	if err := s.AddEntry("one\ntwo"); !errors.Is(err, ErrMultilineEntry) {
		t.Fatalf("expected ErrMultilineEntry, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}
}

func TestEntriesReturnsSnapshot(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddEntry("first")

	snapshot := s.Entries()
	snapshot[0] = "mutated"
	_ = append(snapshot, "extra")

	if got := s.Entries()[0]; got == "mutated" {
		t.Fatal("mutating the snapshot changed the store")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
}

func TestClear(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddEntry("first")
	_ = s.AddEntry("second")

	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", s.Len())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, path := newTestStore(t)
	for _, e := range []string{"Addition: 1 + 1 = 2", "Sin(0) = 0", "√4 = 2"} {
		if err := s.AddEntry(e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	want := s.Entries()

	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("saving: %v", err)
	}

	fresh := NewStore(NewFilePersister(path))
	found, err := fresh.Load(context.Background())
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if !found {
		t.Fatal("expected history file to be found")
	}

	got := fresh.Entries()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLoadMissingFileKeepsEntries(t *testing.T) {
	s, _ := newTestStore(t)
	_ = s.AddEntry("kept")

	found, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no history file")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
}

func TestLoadReplacesEntries(t *testing.T) {
	s, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("[2024-01-01 00:00:00] a\r\n[2024-01-01 00:00:01] b\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	_ = s.AddEntry("discarded")

	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.Entries()
	if len(got) != 2 || got[0] != "[2024-01-01 00:00:00] a" || got[1] != "[2024-01-01 00:00:01] b" {
		t.Fatalf("unexpected entries after load: %q", got)
	}
}

func TestSaveEmptyHistoryLoadsEmpty(t *testing.T) {
	s, path := newTestStore(t)
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("saving: %v", err)
	}

	fresh := NewStore(NewFilePersister(path))
	_ = fresh.AddEntry("replaced")
	found, err := fresh.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("expected found history, got found=%t err=%v", found, err)
	}
	if fresh.Len() != 0 {
		t.Fatalf("expected empty history, got %d entries", fresh.Len())
	}
}

func TestConcurrentAddEntry(t *testing.T) {
	s, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.AddEntry("entry")
			_ = s.Save(context.Background())
		}()
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("expected 50 entries, got %d", s.Len())
	}
}

func TestNewPersister(t *testing.T) {
	if p, err := NewPersister("", "h.txt"); err != nil || p.Location() != "h.txt" {
		t.Fatalf("expected file persister, got %v, %v", p, err)
	}
	if _, ok := mustPersister(t, BackendSQLite).(*SQLitePersister); !ok {
		t.Fatal("expected *SQLitePersister")
	}
	if _, err := NewPersister("redis", "x"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func mustPersister(t *testing.T, backend string) Persister {
	t.Helper()
	p, err := NewPersister(backend, filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}
