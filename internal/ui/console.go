package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/stigoleg/wiggle-mouse/internal/config"
	"github.com/stigoleg/wiggle-mouse/internal/pointer"
)

// Console prints what the program is doing. It implements
// scheduler.Observer.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole returns a console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, s)
}

// Banner is shown once the config has loaded and the loop is about to start.
func (c *Console) Banner() {
	c.println(Current.Title.Render("Starting mouse wiggle."))
	c.println(Current.Help.Render("Hit Ctrl+C or close this window to stop."))
	c.println("")
}

// ConfigCreated tells the user a default config file was written.
func (c *Console) ConfigCreated(path string) {
	c.println(Current.Notice.Render(fmt.Sprintf("Unable to find config file. Creating new one at `%s`.", path)))
}

// ConfigChanged tells the user edits only apply after a restart.
func (c *Console) ConfigChanged(path string) {
	c.println(Current.Notice.Render(fmt.Sprintf("`%s` changed. Restart the program to apply it.", path)))
}

func (c *Console) SwipeStarted() {
	c.println(Current.Status.Render("Starting swipe."))
}

func (c *Console) WaitStarted() {
	c.println(Current.Status.Render("Waiting..."))
}

func (c *Console) MovementDetected(pos pointer.Position) {
	c.println(Current.Moved.Render("Moved!"))
}

func (c *Console) CycleFinished() {
	c.println("")
}

// RenderError formats err for the exit prompt. Config file problems get a
// bordered box with the details below the header.
func RenderError(err error) string {
	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		return Current.Error.Render(err.Error())
	}

	header := Current.Error.Render("Encountered error in config file!")
	details := Current.Details.Render(strings.TrimSpace(cfgErr.Error()))
	return Current.ErrorBox.Render(header + "\n\n" + details)
}

// CreatedMessage is shown in the exit prompt after a default config file
// was written.
func CreatedMessage(path string) string {
	return Current.Notice.Render(fmt.Sprintf("A new config file was created at `%s`.", path)) + "\n" +
		Current.Help.Render("Review it and restart the program.")
}
