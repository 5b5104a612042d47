// Package countdown provides the runner that prints the year-end countdown.
package countdown

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/yeargrid/pkg/app"
	"tableflip.dev/yeargrid/pkg/printers"
	"tableflip.dev/yeargrid/pkg/store"
)

// Countdown prints how many days remain before the year ends.
type Countdown struct {
	Persistence store.Persistence
}

func (n *Countdown) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	svc := app.Service{Persistence: n.Persistence}
	_, msg, err := svc.Countdown(time.Now())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Countdown(msg)
	fmt.Println("")
	return nil
}
