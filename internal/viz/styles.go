package viz

import "github.com/charmbracelet/lipgloss"

var (
	Panel       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466"))
	MetricValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	MetricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	KeyHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
	ErrorText   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// Metric renders "label value" with the shared metric styles.
func Metric(label, value string) string {
	return MetricLabel.Render(label+" ") + MetricValue.Render(value)
}

func (t Theme) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t Theme) field() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Field)
}

// pole picks the sign color; selected poles are drawn reversed.
func (t Theme) pole(sign int, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Foreground(t.Muted)
	switch {
	case sign > 0:
		s = s.Foreground(t.Positive)
	case sign < 0:
		s = s.Foreground(t.Negative)
	}
	return s.Reverse(selected)
}
