// Package scheduler alternates between swiping the pointer and waiting for
// the user to go idle.
package scheduler

import (
	"context"
	"errors"
	"log"

	"github.com/stigoleg/wiggle-mouse/internal/config"
	"github.com/stigoleg/wiggle-mouse/internal/pointer"
)

// Observer is told what the scheduler is doing.
type Observer interface {
	SwipeStarted()
	WaitStarted()
	MovementDetected(pos pointer.Position)
	CycleFinished()
}

// Scheduler runs the swipe/wait cycle with a fixed configuration.
type Scheduler struct {
	cfg      config.Config
	ptr      pointer.Controller
	clock    Clock
	observer Observer
}

// New returns a scheduler using the wall clock. observer may be nil.
func New(cfg config.Config, ptr pointer.Controller, observer Observer) *Scheduler {
	return NewWithClock(cfg, ptr, RealClock{}, observer)
}

// NewWithClock is like New but with a custom clock.
// This is primarily used for testing.
func NewWithClock(cfg config.Config, ptr pointer.Controller, clock Clock, observer Observer) *Scheduler {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Scheduler{cfg: cfg, ptr: ptr, clock: clock, observer: observer}
}

// Run swipes and waits until ctx is cancelled. Cancellation is a normal
// exit and returns nil; pointer failures are returned.
func (s *Scheduler) Run(ctx context.Context) error {
	log.Printf("scheduler: started (distance=%dpx step=%s idle=%s recheck=%s)",
		s.cfg.SwipePixelDistance, s.cfg.StepDelay(), s.cfg.IdleWindow(), s.cfg.RecheckDelay())

	for {
		s.observer.SwipeStarted()
		if err := Swipe(ctx, s.ptr, s.clock, s.cfg.SwipePixelDistance, s.cfg.StepDelay()); err != nil {
			return s.stopped(ctx, err)
		}

		s.observer.WaitStarted()
		err := WaitToSwipe(ctx, s.ptr, s.clock, s.cfg.IdleWindow(), s.cfg.RecheckDelay(), func(pos pointer.Position) {
			log.Printf("scheduler: user moved pointer to %v", pos)
			s.observer.MovementDetected(pos)
		})
		if err != nil {
			return s.stopped(ctx, err)
		}

		s.observer.CycleFinished()
	}
}

func (s *Scheduler) stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		log.Printf("scheduler: stopped")
		return nil
	}
	log.Printf("scheduler: stopped with error: %v", err)
	return err
}

type nopObserver struct{}

func (nopObserver) SwipeStarted() {}
func (nopObserver) WaitStarted() {}
func (nopObserver) MovementDetected(pointer.Position) {}
func (nopObserver) CycleFinished() {}
