// Package tui is a terminal front-end for the automaton. Each cell is two
// terminal columns wide; the mouse paints and the keyboard drives playback.
package tui

import (
	"fmt"
	"strings"
	"time"

	"colorca/internal/core"
	"colorca/internal/paint"
	"colorca/internal/sim"
	"colorca/internal/stats"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// gridTop is the terminal row of the first grid row.
const gridTop = 1

// historyLimit bounds the population plot.
const historyLimit = 120

// CellLayout maps terminal cells to grid cells: one unit per grid cell, with
// the pointer column halved by the model before it reaches the layout.
func CellLayout() paint.Layout {
	return paint.Layout{Margin: 0, CellSize: 1, Outline: 0}
}

type frameMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0E0E0"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6060"))
)

var plotColors = []asciigraph.AnsiColor{
	asciigraph.Yellow, asciigraph.Green, asciigraph.Blue,
	asciigraph.Red, asciigraph.Cyan, asciigraph.Magenta,
}

// Model is the bubbletea model wrapping a loop.
type Model struct {
	loop    *sim.Loop
	history *stats.History
	frame   time.Duration

	showPlot bool
	notice   string
	quitting bool
}

// New returns a model redrawing at fps frames per second.
func New(loop *sim.Loop, fps int) *Model {
	if fps <= 0 {
		fps = 30
	}
	m := &Model{
		loop:     loop,
		history:  stats.NewHistory(historyLimit),
		frame:    time.Second / time.Duration(fps),
		showPlot: true,
	}
	m.history.Record(loop.Counts())
	return m
}

// Loop exposes the underlying simulation.
func (m *Model) Loop() *sim.Loop { return m.loop }

// History exposes the recorded population samples.
func (m *Model) History() *stats.History { return m.history }

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd { return m.tick() }

// Update handles frames, keys and mouse input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.loop.Update(time.Time(msg)) {
			m.history.Record(m.loop.Counts())
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	m.notice = ""
	switch key {
	case "q", "esc", "ctrl+c":
		m.loop.HandleEvent(paint.Event{Kind: paint.EventClosed})
		m.quitting = true
		return tea.Quit
	case " ":
		m.loop.Dispatch(sim.Action{Kind: sim.ActionToggle})
	case "n":
		if m.loop.Dispatch(sim.Action{Kind: sim.ActionStep}) {
			m.history.Record(m.loop.Counts())
		} else {
			m.notice = "pause before stepping"
		}
	case "r":
		m.loop.Dispatch(sim.Action{Kind: sim.ActionRestart})
		m.history.Reset()
		m.history.Record(m.loop.Counts())
	case "f":
		if m.loop.Dispatch(sim.Action{Kind: sim.ActionRandomFill}) {
			m.history.Record(m.loop.Counts())
		} else {
			m.notice = "pause before filling"
		}
	case "tab":
		m.cycle(1)
	case "shift+tab":
		m.cycle(-1)
	case "g":
		m.showPlot = !m.showPlot
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '8' {
			cat := core.Categories()[key[0]-'1']
			m.loop.Dispatch(sim.Action{Kind: sim.ActionSelect, Category: cat})
		}
	}
	return nil
}

func (m *Model) cycle(dir int) {
	all := core.Categories()
	for i, c := range all {
		if c == m.loop.Selected() {
			next := all[(i+dir+len(all))%len(all)]
			m.loop.Dispatch(sim.Action{Kind: sim.ActionSelect, Category: next})
			return
		}
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev, ok := mouseEvent(msg, m.loop.Size())
	if !ok {
		return
	}
	m.loop.HandleEvent(ev)
}

// mouseEvent converts a terminal mouse event into a core event. Events
// outside the grid rows are marked as captured by the status area.
func mouseEvent(msg tea.MouseMsg, size core.Size) (paint.Event, bool) {
	pos := paint.Point{X: float64(msg.X) / 2, Y: float64(msg.Y - gridTop)}
	captured := msg.Y < gridTop || msg.Y >= gridTop+size.Rows || msg.X >= 2*size.Cols

	var button paint.Button
	known := true
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = paint.ButtonPrimary
	case tea.MouseButtonRight:
		button = paint.ButtonSecondary
	case tea.MouseButtonMiddle:
		button = paint.ButtonMiddle
	default:
		known = false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !known {
			return paint.Event{}, false
		}
		return paint.Event{Kind: paint.EventPointerPressed, Button: button, Pos: pos, Captured: captured}, true
	case tea.MouseActionRelease:
		// Terminals often omit which button was released.
		if msg.Button == tea.MouseButtonNone {
			button = paint.ButtonPrimary
		}
		return paint.Event{Kind: paint.EventPointerReleased, Button: button, Pos: pos, Captured: captured}, true
	case tea.MouseActionMotion:
		return paint.Event{Kind: paint.EventPointerMoved, Pos: pos, Captured: captured}, true
	}
	return paint.Event{}, false
}

// View renders the grid, status lines and the population plot.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cellular Automaton"))
	b.WriteByte('\n')

	pal := m.loop.Palette()
	var styles [core.NumCategories]lipgloss.Style
	for _, c := range core.Categories() {
		styles[c] = lipgloss.NewStyle().Background(lipgloss.Color(hex(pal.Color(c))))
	}
	size := m.loop.Size()
	cells := m.loop.Grid().Cells()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			b.WriteString(styles[cells[row*size.Cols+col]].Render("  "))
		}
		b.WriteByte('\n')
	}

	counts := m.loop.Counts()
	brush := styles[m.loop.Selected()].Render("  ") + " " + m.loop.Selected().String()
	if m.loop.Drawing() {
		brush += dimStyle.Render(" (painting)")
	}
	colored := m.loop.Grid().Len() - counts[core.Empty] - counts[core.Wall]
	fmt.Fprintf(&b, "%s  steps %d  colored %d/%d  drawing %s\n",
		titleStyle.Render(strings.ToUpper(m.loop.State().String())),
		m.loop.Steps(), colored, m.loop.Grid().Len(), brush)
	parts := make([]string, 0, core.NumCategories)
	for _, c := range core.Categories() {
		parts = append(parts, styles[c].Render(" ")+fmt.Sprintf(" %d", counts[c]))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteByte('\n')

	if m.showPlot && m.history.Len() > 1 {
		series := make([][]float64, 0, core.NumColors)
		for i := 0; i < core.NumColors; i++ {
			series = append(series, m.history.Series(core.ColorCategory(i)))
		}
		b.WriteString(asciigraph.PlotMany(series,
			asciigraph.Height(8),
			asciigraph.Width(max(2*size.Cols-10, 20)),
			asciigraph.SeriesColors(plotColors...),
			asciigraph.Caption("cells per color"),
		))
		b.WriteByte('\n')
	}
	if m.notice != "" {
		b.WriteString(errStyle.Render(m.notice))
		b.WriteByte('\n')
	}
	b.WriteString(dimStyle.Render("space start/pause · n next · r restart · f random · tab/1-8 color · g plot · q quit"))
	return b.String()
}

func hex(c core.RGB) string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
}

// Run starts the terminal front-end and blocks until the user quits.
func Run(cfg sim.Config, fps int) error {
	cfg.Layout = CellLayout()
	loop, err := sim.New(cfg)
	if err != nil {
		return err
	}
	loop.RandomFill()
	p := tea.NewProgram(New(loop, fps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
