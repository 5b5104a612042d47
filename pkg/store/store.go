package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/yeargrid/pkg/dates"
	"tableflip.dev/yeargrid/pkg/record"
)

// Backend is the minimal key-value contract the store persists through.
// diskv satisfies it directly; tests substitute an in-memory map.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
}

// Persistence defines the persistence contract for day records.
type Persistence interface {
	Year() int
	Get(key string) (record.Record, bool)
	Level(key string) int
	Len() int
	Upsert(key string, r record.Record) error
	Active() []Entry
	Watch(ctx context.Context) (<-chan Event, error)
}

// Entry pairs a date key with its record for history projections.
type Entry struct {
	Key    string
	Record record.Record
}

// ErrWriteFailed wraps backend write failures. The in-memory record is
// retained when this is returned; callers decide how to surface it.
var ErrWriteFailed = errors.New("store: write failed")

// StorageKey names the single logical key the year's records live under.
func StorageKey(year int) string {
	return fmt.Sprintf("year%d", year)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	d := diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})
	s := New(d, cfg.Year())
	s.basePath = basePath
	return s, nil
}

// New builds a Store over the given backend and loads the year's records.
// Loading fails soft: absent or unparseable data yields an empty store and
// a warning on stderr, never an error.
func New(backend Backend, year int) *Store {
	s := &Store{
		backend: backend,
		year:    year,
		key:     StorageKey(year),
		records: make(map[string]record.Record),
	}
	s.load()
	return s
}

// Store holds one target year of day records in memory and mirrors the
// full map to the backend on every mutation. It assumes a single writer.
type Store struct {
	backend  Backend
	basePath string
	year     int
	key      string
	records  map[string]record.Record
}

func (s *Store) load() {
	val, err := s.backend.Read(s.key)
	if err != nil {
		// Nothing stored yet. Absent data is the empty store.
		return
	}
	parsed := make(map[string]record.Record, 64)
	if err := json.Unmarshal(val, &parsed); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", s.key, err)
		return
	}
	for k, r := range parsed {
		s.records[k] = record.Normalize(r)
	}
}

// Year returns the target year this store accepts keys for.
func (s *Store) Year() int {
	return s.year
}

// Get returns the record for the given date key, if any.
func (s *Store) Get(key string) (record.Record, bool) {
	r, ok := s.records[key]
	return r, ok
}

// Level returns the intensity level for the given date key, zero when the
// day has nothing logged.
func (s *Store) Level(key string) int {
	return s.records[key].Level
}

// Len returns the number of stored keys, active or not.
func (s *Store) Len() int {
	return len(s.records)
}

// Upsert inserts or replaces the record for the given date key and writes
// the full map through to the backend. The key must be a well-formed date
// inside the target year. On a backend failure the in-memory update is
// kept and the error wraps ErrWriteFailed.
func (s *Store) Upsert(key string, r record.Record) error {
	t, err := dates.ParseKey(key)
	if err != nil {
		return err
	}
	if t.Year() != s.year {
		return fmt.Errorf("store: key %q outside year %d", key, s.year)
	}

	s.records[key] = record.Normalize(r)

	if err := s.save(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailed, err)
	}
	return nil
}

func (s *Store) save() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return err
	}
	return s.backend.Write(s.key, data)
}

// Active returns the entries with any content (level above zero or a
// non-empty note), ordered by descending date key. Lexicographic order on
// canonical keys equals chronological order, so newest comes first.
func (s *Store) Active() []Entry {
	all := make([]Entry, 0, len(s.records))
	for k, r := range s.records {
		if r.Active() {
			all = append(all, Entry{Key: k, Record: r})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Key > all[j].Key
	})
	return all
}
