// Package dashboard renders a live terminal view of the navigation core:
// machine state, sensor telemetry, the active detection and the last
// emitted command.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"maze-navcon/navcon"
	"maze-navcon/scs"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			Width(78).
			Align(lipgloss.Center)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	stateScanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stateManeuverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Frame is one tick's worth of observable state.
type Frame struct {
	Telemetry navcon.SensorSnapshot
	Status    navcon.NavigationStatus
	Command   scs.Packet
	Ticks     uint64
}

// Feed is the shared latest-frame holder the live loop writes into.
type Feed struct {
	mu    sync.Mutex
	frame Frame
}

// Push stores the latest frame. Safe for concurrent use with Latest.
func (f *Feed) Push(snap navcon.SensorSnapshot, status navcon.NavigationStatus, cmd scs.Packet) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frame.Telemetry = snap
	f.frame.Status = status
	f.frame.Command = cmd
	f.frame.Ticks++
}

// Latest returns the most recent frame.
func (f *Feed) Latest() Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frame
}

type tickMsg time.Time

func pollTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	feed  *Feed
	frame Frame

	width  int
	height int
	ready  bool
}

// NewModel builds a dashboard model reading from feed.
func NewModel(feed *Feed) Model {
	return Model{feed: feed}
}

func (m Model) Init() tea.Cmd {
	return pollTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tickMsg:
		m.frame = m.feed.Latest()
		return m, pollTick()
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("NAVCON"))
	b.WriteByte('\n')

	snap := m.frame.Telemetry
	status := m.frame.Status

	stateStyle := stateManeuverStyle
	if status.State == navcon.StateForwardScan {
		stateStyle = stateScanStyle
	}

	machine := fmt.Sprintf("%s %s\n%s %d",
		labelStyle.Render("state"), stateStyle.Render(status.State.String()),
		labelStyle.Render("ticks"), m.frame.Ticks)

	telemetry := fmt.Sprintf("%s [%s %s %s]\n%s %d°  %s %d mm\n%s L=%d R=%d mm/s",
		labelStyle.Render("colors"),
		snap.Colors[0], snap.Colors[1], snap.Colors[2],
		labelStyle.Render("angle"), snap.Incidence,
		labelStyle.Render("distance"), snap.Distance,
		labelStyle.Render("speeds"), snap.SpeedLeft, snap.SpeedRight)

	cmd := m.frame.Command
	command := fmt.Sprintf("%s dat1=%d dat0=%d dec=%d",
		labelStyle.Render("last command"), cmd.Dat1, cmd.Dat0, cmd.Dec)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(machine),
		paneStyle.Render(telemetry),
		paneStyle.Render(command)))
	b.WriteByte('\n')
	b.WriteString(paneStyle.Render(navcon.Dump(&snap, &status)))
	b.WriteByte('\n')
	b.WriteString(footerStyle.Render("q to quit"))
	return b.String()
}

// Run starts the dashboard program and blocks until it exits or ctx is
// canceled.
func Run(ctx context.Context, feed *Feed) error {
	program := tea.NewProgram(NewModel(feed), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
