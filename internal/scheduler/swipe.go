package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/stigoleg/wiggle-mouse/internal/pointer"
)

// Swipe nudges the pointer one pixel at a time to the right for distance
// pixels, pausing delay after each step, then puts it back where it
// started. The movement is incremental because some idle detectors only
// react to motion events, not to a single jump.
//
// If the user moves the pointer during a swipe, the final restore still
// returns it to the origin.
func Swipe(ctx context.Context, ptr pointer.Controller, clock Clock, distance int, delay time.Duration) error {
	origin, err := ptr.Position()
	if err != nil {
		return fmt.Errorf("reading pointer position: %w", err)
	}

	for i := 0; i < distance; i++ {
		if err := ptr.Nudge(origin.Offset(i, 0)); err != nil {
			return fmt.Errorf("moving pointer: %w", err)
		}
		if err := clock.Sleep(ctx, delay); err != nil {
			restore(ptr, origin)
			return err
		}
	}

	if err := ptr.MoveTo(origin); err != nil {
		return fmt.Errorf("restoring pointer position: %w", err)
	}
	return nil
}

// restore puts the pointer back after an interrupted swipe.
func restore(ptr pointer.Controller, origin pointer.Position) {
	if err := ptr.MoveTo(origin); err != nil {
		log.Printf("scheduler: restoring pointer to %v failed: %v", origin, err)
	}
}
