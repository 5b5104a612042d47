// Package history provides the runner that lists active entries.
package history

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/yeargrid/pkg/app"
	"tableflip.dev/yeargrid/pkg/printers"
	"tableflip.dev/yeargrid/pkg/store"
)

// History prints every logged day with content, newest first.
type History struct {
	Persistence store.Persistence
}

func (n *History) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	svc := app.Service{Persistence: n.Persistence}
	entries, err := svc.History()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("History")
	pp.History(entries)
	return nil
}
