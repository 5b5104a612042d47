package store

import (
	"errors"
	"testing"

	"tableflip.dev/yeargrid/pkg/dates"
	"tableflip.dev/yeargrid/pkg/record"
)

type memoryBackend struct {
	data      map[string][]byte
	failWrite bool
	writes    int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{data: make(map[string][]byte)}
}

func (m *memoryBackend) Read(key string) ([]byte, error) {
	val, ok := m.data[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return val, nil
}

func (m *memoryBackend) Write(key string, val []byte) error {
	if m.failWrite {
		return errors.New("quota exceeded")
	}
	m.writes++
	cp := make([]byte, len(val))
	copy(cp, val)
	m.data[key] = cp
	return nil
}

func TestNewEmptyBackend(t *testing.T) {
	s := New(newMemoryBackend(), 2026)
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d records", s.Len())
	}
	if s.Year() != 2026 {
		t.Fatalf("unexpected year: %d", s.Year())
	}
}

func TestNewCorruptData(t *testing.T) {
	b := newMemoryBackend()
	b.data[StorageKey(2026)] = []byte("{not json")

	s := New(b, 2026)
	if s.Len() != 0 {
		t.Fatalf("corrupt data should load as empty store, got %d records", s.Len())
	}
}

func TestUpsertPersistsFullMap(t *testing.T) {
	b := newMemoryBackend()
	s := New(b, 2026)

	if err := s.Upsert("2026-03-05", record.Record{Level: 3, Note: "ran 5k"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.Upsert("2026-03-06", record.Record{Level: 1}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if b.writes != 2 {
		t.Fatalf("expected a save per mutation, got %d writes", b.writes)
	}

	// A fresh store over the same backend sees both records.
	reloaded := New(b, 2026)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 records after reload, got %d", reloaded.Len())
	}
	r, ok := reloaded.Get("2026-03-05")
	if !ok {
		t.Fatal("missing record after reload")
	}
	if r.Level != 3 || r.Note != "ran 5k" {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestUpsertNormalizes(t *testing.T) {
	s := New(newMemoryBackend(), 2026)
	if err := s.Upsert("2026-03-05", record.Record{Level: 9, Note: "  hi  "}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	r, _ := s.Get("2026-03-05")
	if r.Level != record.MaxLevel || r.Note != "hi" {
		t.Fatalf("expected normalized record, got %+v", r)
	}
}

func TestUpsertRejectsBadKeys(t *testing.T) {
	s := New(newMemoryBackend(), 2026)

	if err := s.Upsert("2026-3-5", record.Record{Level: 1}); !errors.Is(err, dates.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
	if err := s.Upsert("2025-03-05", record.Record{Level: 1}); err == nil {
		t.Fatal("expected error for key outside the target year")
	}
	if s.Len() != 0 {
		t.Fatalf("rejected keys must not be stored, got %d records", s.Len())
	}
}

func TestUpsertWriteFailureKeepsMemory(t *testing.T) {
	b := newMemoryBackend()
	b.failWrite = true
	s := New(b, 2026)

	err := s.Upsert("2026-03-05", record.Record{Level: 2, Note: "x"})
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed, got %v", err)
	}

	// The attempted mutation is retained in memory even though it is not
	// durable.
	r, ok := s.Get("2026-03-05")
	if !ok || r.Level != 2 {
		t.Fatalf("in-memory update lost: %+v ok=%v", r, ok)
	}
}

func TestActiveFiltersAndSorts(t *testing.T) {
	s := New(newMemoryBackend(), 2026)

	upserts := []struct {
		key string
		r   record.Record
	}{
		{"2026-01-10", record.Record{Level: 1}},
		{"2026-06-15", record.Record{Note: "just a note"}},
		{"2026-03-05", record.Record{Level: 3, Note: "ran 5k"}},
		{"2026-02-01", record.Record{}}, // inactive, stored anyway
	}
	for _, u := range upserts {
		if err := s.Upsert(u.key, u.r); err != nil {
			t.Fatalf("upsert %s: %v", u.key, err)
		}
	}

	active := s.Active()
	want := []string{"2026-06-15", "2026-03-05", "2026-01-10"}
	if len(active) != len(want) {
		t.Fatalf("expected %d active entries, got %d", len(want), len(active))
	}
	for i, k := range want {
		if active[i].Key != k {
			t.Fatalf("position %d: expected %s, got %s", i, k, active[i].Key)
		}
	}

	// The inactive key still occupies the store.
	if s.Len() != 4 {
		t.Fatalf("expected 4 stored keys, got %d", s.Len())
	}
}

func TestUpsertZeroRecordNullifiesActivity(t *testing.T) {
	s := New(newMemoryBackend(), 2026)

	if err := s.Upsert("2026-03-05", record.Record{Level: 3, Note: "ran 5k"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if got := len(s.Active()); got != 1 {
		t.Fatalf("expected 1 active entry, got %d", got)
	}

	if err := s.Upsert("2026-03-05", record.Record{}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if got := len(s.Active()); got != 0 {
		t.Fatalf("zero record should leave history, got %d entries", got)
	}
	if _, ok := s.Get("2026-03-05"); !ok {
		t.Fatal("key should remain stored with a zero record")
	}
}

func TestLevelDefaultsToZero(t *testing.T) {
	s := New(newMemoryBackend(), 2026)
	if got := s.Level("2026-08-08"); got != 0 {
		t.Fatalf("expected level 0 for unlogged day, got %d", got)
	}
}
