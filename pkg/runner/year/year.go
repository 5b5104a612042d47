// Package year provides the runner that renders the full year grid.
package year

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/yeargrid/pkg/app"
	"tableflip.dev/yeargrid/pkg/printers"
	"tableflip.dev/yeargrid/pkg/store"
)

// Year prints the year grid followed by the countdown banner.
type Year struct {
	Persistence store.Persistence
}

func (n *Year) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	svc := app.Service{Persistence: n.Persistence}
	grid, err := svc.Grid()
	if err != nil {
		return err
	}
	_, msg, err := svc.Countdown(time.Now())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("%d", n.Persistence.Year()))
	fmt.Println("")
	pp.YearGrid(grid)
	pp.Countdown(msg)
	fmt.Println("")
	return nil
}
