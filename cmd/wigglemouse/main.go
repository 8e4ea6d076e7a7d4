package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"

	"github.com/stigoleg/wiggle-mouse/internal/config"
	"github.com/stigoleg/wiggle-mouse/internal/pointer"
	"github.com/stigoleg/wiggle-mouse/internal/scheduler"
	"github.com/stigoleg/wiggle-mouse/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

const appVersion = "1.0.0"

// Replaced in tests.
var (
	newPointer = pointer.New

	newContext = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), getSignalsForPlatform()...)
	}
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	opts, err := config.ParseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stdout, ui.RenderError(err))
		return 2
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "Wiggle Mouse Version: %s\n", appVersion)
		return 0
	}

	closeLog, err := setupLogging(opts.LogFile)
	if err != nil {
		fmt.Fprintln(stdout, ui.RenderError(err))
		return 1
	}
	defer closeLog()

	console := ui.NewConsole(stdout)
	path := opts.ConfigPath
	fmt.Fprintln(stdout)

	created, err := config.EnsureFileExists(path)
	if err != nil {
		log.Printf("config: %v", err)
		ui.Acknowledge(stdin, stdout, ui.RenderError(err))
		return 1
	}
	if created {
		console.ConfigCreated(path)
		ui.Acknowledge(stdin, stdout, ui.CreatedMessage(path))
		return 0
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("config: %v", err)
		ui.Acknowledge(stdin, stdout, ui.RenderError(err))
		return 1
	}

	ctx, stop := newContext()
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := config.Watch(ctx, path, func() { console.ConfigChanged(path) }); err != nil {
			log.Printf("config: not watching %s: %v", path, err)
		}
	}()

	ptr, release := newPointer()
	defer func() {
		if err := release(); err != nil {
			log.Printf("pointer: release failed: %v", err)
		}
	}()

	console.Banner()
	err = scheduler.New(cfg, ptr, console).Run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(stdout, ui.RenderError(err))
		return 1
	}
	return 0
}

// setupLogging sends the log package to path, or discards it when path is
// empty.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "wiggle")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}
