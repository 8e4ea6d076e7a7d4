package ui

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// PromptText is the line shown under the message of the exit prompt.
const PromptText = "Press [Enter] to exit "

// PromptModel shows a message and waits for the user to acknowledge it, so
// someone who started the program by double-click can read it before the
// window closes.
type PromptModel struct {
	Message string
	Done    bool

	keys KeyMap
	help help.Model
}

// NewPromptModel returns a prompt showing message.
func NewPromptModel(message string) PromptModel {
	return PromptModel{
		Message: message,
		keys:    DefaultKeys(),
		help:    NewHelpModel(),
	}
}

// Init implements tea.Model
func (m PromptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Exit) {
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model
func (m PromptModel) View() string {
	var b strings.Builder
	b.WriteString(m.Message)
	b.WriteString("\n\n")
	if m.Done {
		return b.String()
	}
	b.WriteString(PromptText)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Acknowledge shows message and blocks until the user confirms. When in is
// not a terminal it falls back to reading a line from it.
func Acknowledge(in io.Reader, out io.Writer, message string) {
	if isTerminal(in) {
		p := tea.NewProgram(NewPromptModel(message), tea.WithInput(in), tea.WithOutput(out))
		_, err := p.Run()
		if err == nil {
			return
		}
		log.Printf("ui: prompt failed, reading plain input: %v", err)
	}

	fmt.Fprintln(out, message)
	fmt.Fprintln(out)
	fmt.Fprint(out, PromptText)
	_, _ = bufio.NewReader(in).ReadString('\n')
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
