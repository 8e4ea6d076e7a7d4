package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/stigoleg/wiggle-mouse/internal/pointer"
)

// WaitToSwipe returns once the pointer has not moved for delta, checking
// every delay. Each detected movement restarts the window and is passed to
// onMove, which may be nil.
func WaitToSwipe(ctx context.Context, ptr pointer.Controller, clock Clock, delta, delay time.Duration, onMove func(pointer.Position)) error {
	deadline := clock.Now().Add(delta)
	last, err := ptr.Position()
	if err != nil {
		return fmt.Errorf("reading pointer position: %w", err)
	}

	for clock.Now().Before(deadline) {
		cur, err := ptr.Position()
		if err != nil {
			return fmt.Errorf("reading pointer position: %w", err)
		}
		if cur != last {
			deadline = clock.Now().Add(delta)
			last = cur
			if onMove != nil {
				onMove(cur)
			}
		}
		if err := clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}
