package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/yeargrid/pkg/calendar"
	"tableflip.dev/yeargrid/pkg/countdown"
	"tableflip.dev/yeargrid/pkg/dates"
	"tableflip.dev/yeargrid/pkg/record"
	"tableflip.dev/yeargrid/pkg/store"
)

// Service provides high-level operations over the day-record store.
// It wraps persistence and validation so the CLI and TUI can share logic.
type Service struct {
	Persistence store.Persistence
}

var errNoPersistence = errors.New("app: no persistence configured")

// Year returns the target year.
func (s *Service) Year() (int, error) {
	if s.Persistence == nil {
		return 0, errNoPersistence
	}
	return s.Persistence.Year(), nil
}

// Day returns the record stored for the given date key, a zero record when
// nothing is logged.
func (s *Service) Day(key string) (record.Record, error) {
	if s.Persistence == nil {
		return record.Record{}, errNoPersistence
	}
	if _, err := dates.ParseKey(key); err != nil {
		return record.Record{}, err
	}
	r, _ := s.Persistence.Get(key)
	return r, nil
}

// Set validates the raw level and note input and upserts the result for
// the given date key.
func (s *Service) Set(key, levelInput, noteInput string) (record.Record, error) {
	if s.Persistence == nil {
		return record.Record{}, errNoPersistence
	}
	r := record.Validate(levelInput, noteInput)
	if err := s.Persistence.Upsert(key, r); err != nil {
		return record.Record{}, err
	}
	return r, nil
}

// History lists the active entries, newest first.
func (s *Service) History() ([]store.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Active(), nil
}

// Grid builds the year projection from the current store snapshot.
func (s *Service) Grid() (calendar.Year, error) {
	if s.Persistence == nil {
		return calendar.Year{}, errNoPersistence
	}
	return calendar.BuildYear(s.Persistence.Year(), s.Persistence), nil
}

// Countdown returns the remaining-day count and its message for now.
func (s *Service) Countdown(now time.Time) (int, string, error) {
	if s.Persistence == nil {
		return 0, "", errNoPersistence
	}
	days, msg := countdown.Remaining(now, s.Persistence.Year())
	return days, msg, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
