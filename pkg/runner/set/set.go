// Package set provides the runner that logs a level and note for a day.
package set

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/yeargrid/pkg/app"
	"tableflip.dev/yeargrid/pkg/countdown"
	"tableflip.dev/yeargrid/pkg/dates"
	"tableflip.dev/yeargrid/pkg/printers"
	"tableflip.dev/yeargrid/pkg/store"
)

// Set upserts the record for a date and reprints the day detail.
type Set struct {
	Date  string
	Level string
	Note  string

	Persistence store.Persistence
}

func (n *Set) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set, no persistence")
	}
	if n.Date == "" || n.Date == "today" {
		n.Date = dates.Key(time.Now().In(countdown.Zone))
	}

	svc := app.Service{Persistence: n.Persistence}
	r, err := svc.Set(n.Date, n.Level, n.Note)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Day(n.Date, dates.DayCount(n.Persistence.Year()), r)
	return nil
}
