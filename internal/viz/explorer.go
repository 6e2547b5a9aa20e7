package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/san-kum/fieldlab/internal/charge"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/multipole"
)

const (
	MoveStep   = 10.0
	ChargeStep = 1.0

	defaultCols = 70
	defaultRows = 25
	vectorCell  = 35.0
)

// Explorer is a Bubble Tea model over a set of poles. Every edit goes
// through the charge package commands so pole IDs stay stable.
type Explorer struct {
	poles      []charge.Pole
	selected   int
	calc       *multipole.Calculator
	theme      Theme
	lines      bool
	cols, rows int
	err        error
}

func NewExplorer(poles []charge.Pole) Explorer {
	return Explorer{
		poles: append([]charge.Pole(nil), poles...),
		calc:  multipole.NewCalculator(),
		theme: ThemeClassic,
		lines: true,
		cols:  defaultCols,
		rows:  defaultRows,
	}
}

func (m Explorer) Poles() []charge.Pole { return append([]charge.Pole(nil), m.poles...) }

func (m Explorer) Selected() int { return m.selected }

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.cols = clampInt(msg.Width-2, 20, 140)
		m.rows = clampInt(msg.Height-8, 8, 50)
	}
	return m, nil
}

func (m Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if len(m.poles) > 0 {
			m.selected = (m.selected + 1) % len(m.poles)
		}
	case "shift+tab":
		if len(m.poles) > 0 {
			m.selected = (m.selected + len(m.poles) - 1) % len(m.poles)
		}
	case "up", "k":
		m = m.move(0, -MoveStep)
	case "down", "j":
		m = m.move(0, MoveStep)
	case "left", "h":
		m = m.move(-MoveStep, 0)
	case "right", "l":
		m = m.move(MoveStep, 0)
	case "+", "=":
		m = m.recharge(ChargeStep)
	case "-", "_":
		m = m.recharge(-ChargeStep)
	case "v":
		m.lines = !m.lines
	case "t":
		m.theme = nextTheme(m.theme)
	}
	return m, nil
}

func (m Explorer) current() (charge.Pole, bool) {
	if m.selected < 0 || m.selected >= len(m.poles) {
		return charge.Pole{}, false
	}
	return m.poles[m.selected], true
}

func (m Explorer) move(dx, dy float64) Explorer {
	p, ok := m.current()
	if !ok {
		return m
	}
	x := field.Clamp(p.X()+dx, 0, multipole.CanvasWidth)
	y := field.Clamp(p.Y()+dy, 0, multipole.CanvasHeight)
	poles, err := charge.MoveByID(m.poles, p.ID, x, y)
	if m.err = err; err == nil {
		m.poles = poles
	}
	return m
}

func (m Explorer) recharge(dq float64) Explorer {
	p, ok := m.current()
	if !ok {
		return m
	}
	poles, err := charge.SetChargeByID(m.poles, p.ID, p.Charge+dq)
	if m.err = err; err == nil {
		m.poles = poles
	}
	return m
}

// Vectors is what the canvas currently shows: field-line segments or the
// sampled vector grid.
func (m Explorer) Vectors() []field.Vector {
	if m.lines {
		return m.calc.GenerateFieldLines(m.poles, multipole.DefaultLineOptions())
	}
	return m.calc.GenerateVectorField(m.poles, multipole.CanvasWidth, multipole.CanvasHeight, vectorCell)
}

func (m Explorer) Status() string {
	parts := []string{
		Metric("config", multipole.Classify(m.poles).String()),
		Metric("moment", humanize.CommafWithDigits(multipole.DipoleMoment(m.poles), 3)+" C·m"),
		Metric("avg dist", humanize.CommafWithDigits(multipole.AveragePairwiseDistance(m.poles), 1)+" px"),
	}
	if p, ok := m.current(); ok {
		parts = append(parts, Metric("pole", fmt.Sprintf("#%d (%.0f, %.0f) q=%+g", m.selected+1, p.X(), p.Y(), p.Charge)))
	}
	return strings.Join(parts, "  ")
}

func (m Explorer) View() string {
	c := NewCanvas(m.cols, m.rows)
	c.DrawVectors(m.Vectors(), multipole.CanvasWidth, multipole.CanvasHeight)

	markers := make(map[[2]int]int, len(m.poles))
	for i, p := range m.poles {
		x, y := c.Project(p.Position, multipole.CanvasWidth, multipole.CanvasHeight)
		markers[[2]int{x / 2, y / 4}] = i
	}

	var b strings.Builder
	mode := "field lines"
	if !m.lines {
		mode = "vector grid"
	}
	b.WriteString(m.theme.title().Render("multipole explorer") + "  " + KeyHint.Render(mode) + "\n\n")

	fieldStyle := m.theme.field()
	for row, line := range c.Grid {
		run := make([]rune, 0, len(line))
		for col, r := range line {
			i, ok := markers[[2]int{col, row}]
			if !ok {
				run = append(run, r)
				continue
			}
			b.WriteString(fieldStyle.Render(string(run)))
			run = run[:0]
			p := m.poles[i]
			b.WriteString(m.theme.pole(p.Sign(), i == m.selected).Render(poleGlyph(p.Sign())))
		}
		b.WriteString(fieldStyle.Render(string(run)) + "\n")
	}

	b.WriteString("\n" + m.Status() + "\n")
	if m.err != nil {
		b.WriteString(ErrorText.Render(m.err.Error()) + "\n")
	}
	b.WriteString(KeyHint.Render("tab select · arrows move · +/- charge · v view · t theme · q quit"))
	return b.String()
}

func poleGlyph(sign int) string {
	switch {
	case sign > 0:
		return "+"
	case sign < 0:
		return "-"
	}
	return "o"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
