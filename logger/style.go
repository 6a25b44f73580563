package logger

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var tagColors = map[Severity]lipgloss.Color{
	InfoLevel:    lipgloss.Color("4"),
	DebugLevel:   lipgloss.Color("6"),
	ErrorLevel:   lipgloss.Color("1"),
	SuccessLevel: lipgloss.Color("2"),
}

func plainTags() map[Severity]string {
	tags := make(map[Severity]string, len(tagColors))
	for _, sev := range AllSeverities() {
		tags[sev] = sev.Tag()
	}
	return tags
}

// colorTags pre-renders each tag wrapped in ANSI color codes. Colors are
// forced on even when out is not a terminal.
func colorTags(out io.Writer) map[Severity]string {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI)

	tags := make(map[Severity]string, len(tagColors))
	for _, sev := range AllSeverities() {
		style := r.NewStyle().Foreground(tagColors[sev])
		if sev == ErrorLevel {
			style = style.Bold(true)
		}
		tags[sev] = style.Render(sev.Tag())
	}
	return tags
}
