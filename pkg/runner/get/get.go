// Package get provides the runner that shows a single day's record.
package get

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

// Get prints the detail for one day of the year.
type Get struct {
	Date string

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	if n.Date == "" || n.Date == "today" {
		n.Date = dates.Key(time.Now().In(countdown.Zone))
	}

	svc := app.Service{Persistence: n.Persistence}
	r, err := svc.Day(n.Date)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Day(n.Date, dates.DayCount(n.Persistence.Year()), r)
	return nil
}
