// Package record defines the day record and its validation rules.
package record

import (
	"strconv"
	"strings"
)

const (
	// MinLevel is the lowest intensity level, meaning "not logged".
	MinLevel = 0
	// MaxLevel is the highest intensity level.
	MaxLevel = 4
)

// Record is the logged state of a single day: an intensity level in
// [MinLevel, MaxLevel] and an optional free-text note.
type Record struct {
	Level int    `json:"level"`
	Note  string `json:"note"`
}

// Active reports whether the record carries any content worth surfacing in
// history. A zero level with an empty note means "no activity".
func (r Record) Active() bool {
	return r.Level > MinLevel || r.Note != ""
}

// Clamp forces a level into [MinLevel, MaxLevel].
func Clamp(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// Validate coerces raw user input into a well-formed Record. Non-numeric
// level input defaults to zero, out-of-range levels are clamped, and the
// note is trimmed. Validate never fails.
func Validate(levelInput, noteInput string) Record {
	level, err := strconv.Atoi(strings.TrimSpace(levelInput))
	if err != nil {
		level = MinLevel
	}
	return Record{
		Level: Clamp(level),
		Note:  strings.TrimSpace(noteInput),
	}
}

// Normalize applies the same clamping and trimming rules to an already
// structured record.
func Normalize(r Record) Record {
	return Record{
		Level: Clamp(r.Level),
		Note:  strings.TrimSpace(r.Note),
	}
}
