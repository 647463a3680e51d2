// Package inspector is a read-only bubbletea viewer over the executor's
// register, flag, and memory state. It only ever holds a cpu.Snapshot,
// taken between the clock driver's own Steps, and never drives execution
// itself.
package inspector

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gonebody/cpu"
)

// Source supplies the snapshot the inspector renders. clock.Driver's host
// implements this by calling Executor.Snapshot between its own steps; the
// inspector never reaches into executor internals directly.
type Source interface {
	Snapshot() cpu.Snapshot
}

const pollInterval = 100 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	source Source
	snap   cpu.Snapshot
}

// New constructs a bubbletea model that polls source every pollInterval and
// renders the latest snapshot.
func New(source Source) tea.Model {
	return model{source: source, snap: source.Snapshot()}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tickMsg:
		m.snap = m.source.Snapshot()
		return m, tick()
	}
	return m, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true)
var pcStyle = lipgloss.NewStyle().Reverse(true)

// renderPage renders one 16-byte row of the snapshot's memory window,
// highlighting PC if it falls within this row.
func (m model) renderPage(rowStart uint16, row []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04x | ", rowStart)
	for i, v := range row {
		addr := rowStart + uint16(i)
		cell := fmt.Sprintf("%02x ", v)
		if addr == m.snap.PC {
			cell = pcStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	return b.String()
}

func (m model) pageTable() string {
	lines := []string{headerStyle.Render(fmt.Sprintf("memory @ 0x%04x", m.snap.PageStart))}
	for row := 0; row < 16; row++ {
		start := m.snap.PageStart + uint16(row*16)
		lines = append(lines, m.renderPage(start, m.snap.Page[row*16:row*16+16]))
	}
	return strings.Join(lines, "\n")
}

func (m model) status() string {
	s := m.snap
	flags := fmt.Sprintf("Z%d N%d H%d C%d",
		b2i(s.F&0x80 != 0), b2i(s.F&0x40 != 0), b2i(s.F&0x20 != 0), b2i(s.F&0x10 != 0))
	return fmt.Sprintf(`
PC: %04x   SP: %04x
 A: %02x    F: %02x
 B: %02x     C: %02x
 D: %02x     E: %02x
 H: %02x     L: %02x
%s
IME: %v   halted: %v
cycles: %d
`,
		s.PC, s.SP, s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, flags, s.IME, s.Halted, s.Cycles)
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (m model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status())
	footer := "q to quit"
	if m.snap.Fatal != nil {
		footer = spew.Sprintf("fatal: %v (%s)", m.snap.Fatal, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer)
}

// Run blocks, launching the inspector's bubbletea program until the user
// quits.
func Run(source Source) error {
	_, err := tea.NewProgram(New(source)).Run()
	return err
}
