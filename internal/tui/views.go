package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/greenscope-tools/greenscope/internal/cli"
)

var (
	stepStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			MarginBottom(1)

	questionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(cli.PrimaryColor).
			Bold(true)

	answeredStyle = lipgloss.NewStyle().
			Foreground(cli.SuccessColor)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.SubtleColor).
			Foreground(cli.SubtleColor).
			Padding(0, 1).
			MarginTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.done || m.aborted {
		return ""
	}

	q, ok := m.current()
	if !ok {
		return ""
	}
	step, _ := m.currentStep()

	width := m.width
	if width <= 0 {
		width = 80
	}
	wrap := lipgloss.NewStyle().Width(width - 2)

	var b strings.Builder
	b.WriteString(cli.FormatTitle("greenscope"))
	b.WriteString("\n")

	b.WriteString(stepStyle.Render(fmt.Sprintf("%s · question %d of %d", step.Title, m.idx+1, len(m.flat))))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.completion()))
	b.WriteString("\n\n")

	b.WriteString(questionStyle.Render(wrap.Render(q.Label.Resolve(m.answers))))
	b.WriteString("\n")

	answered := m.answers.Get(q.Key)
	for i, o := range q.Options {
		line := "  " + o.Label
		switch {
		case i == m.cursor:
			line = cursorStyle.Render("▸ " + o.Label)
		case o.Code == answered && answered != "":
			line = answeredStyle.Render("  " + o.Label + " " + cli.SuccessIcon)
		}
		b.WriteString(wrap.Render(line))
		b.WriteString("\n")
	}

	if m.showHelp && !q.Help.IsZero() {
		b.WriteString(helpBoxStyle.Width(width - 4).Render(q.Help.Resolve(m.answers)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpView.View(m.keys))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("Indicative analysis only; not legal advice."))
	return b.String()
}

// completion returns the answered fraction of currently visible questions.
func (m Model) completion() float64 {
	if len(m.flat) == 0 {
		return 0
	}
	answered := 0
	for _, p := range m.flat {
		if m.answers.Has(m.steps[p.step].Questions[p.question].Key) {
			answered++
		}
	}
	return float64(answered) / float64(len(m.flat))
}
