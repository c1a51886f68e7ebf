// Package tui implements the interactive questionnaire as a bubbletea
// program. It collects an answer set; all legal reasoning happens elsewhere.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/greenscope-tools/greenscope/internal/catalog"
	"github.com/greenscope-tools/greenscope/internal/model"
)

// position addresses one question within the step list.
type position struct {
	step     int
	question int
}

// Model is the bubbletea model for the questionnaire. One question is shown
// at a time; visibility of later steps and questions is recomputed after
// every answer.
type Model struct {
	steps   []catalog.Step
	answers model.AnswerSet
	keys    KeyMap

	flat   []position // currently visible questions, in order
	idx    int        // index into flat
	cursor int        // highlighted option of the current question

	showHelp bool
	helpView help.Model
	progress progress.Model

	width   int
	done    bool
	aborted bool
}

// NewModel creates a questionnaire model over the given catalog, optionally
// seeded with existing answers.
func NewModel(steps []catalog.Step, answers model.AnswerSet) Model {
	if answers == nil {
		answers = model.AnswerSet{}
	}
	m := Model{
		steps:    steps,
		answers:  answers,
		keys:     DefaultKeyMap(),
		helpView: help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.reflow()
	m.idx = m.firstUnanswered()
	m.cursor = m.answeredCursor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.helpView.Width = msg.Width
		m.progress.Width = min(msg.Width-4, 60)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleHelp):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if q, ok := m.current(); ok && m.cursor < len(q.Options)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Back):
			if m.idx > 0 {
				m.idx--
				m.cursor = m.answeredCursor()
				m.showHelp = false
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			return m.answer()
		}
	}
	return m, nil
}

// answer records the highlighted option for the current question and
// advances, recomputing visibility first.
func (m Model) answer() (tea.Model, tea.Cmd) {
	q, ok := m.current()
	if !ok || m.cursor >= len(q.Options) {
		return m, nil
	}
	m.answers[q.Key] = q.Options[m.cursor].Code

	m.prune()
	m.reflow()

	// The answered question may itself have vanished from the flat list;
	// resume at the first unanswered visible question.
	m.idx = m.firstUnanswered()
	if m.idx >= len(m.flat) {
		m.done = true
		return m, tea.Quit
	}
	m.cursor = m.answeredCursor()
	m.showHelp = false
	return m, nil
}

// reflow recomputes the flat list of visible questions.
func (m *Model) reflow() {
	m.flat = m.flat[:0]
	for si, s := range m.steps {
		if !s.IsVisible(m.answers) {
			continue
		}
		for qi, q := range s.Questions {
			if q.IsVisible(m.answers) {
				m.flat = append(m.flat, position{step: si, question: qi})
			}
		}
	}
}

// prune drops answers to questions that are no longer visible so the engine
// never sees inputs the form would not have asked for.
func (m *Model) prune() {
	for changed := true; changed; {
		changed = false
		for _, s := range m.steps {
			stepVisible := s.IsVisible(m.answers)
			for _, q := range s.Questions {
				if !m.answers.Has(q.Key) {
					continue
				}
				if !stepVisible || !q.IsVisible(m.answers) {
					delete(m.answers, q.Key)
					changed = true
				}
			}
		}
	}
}

// firstUnanswered returns the index of the first visible question without an
// answer, or len(flat) when everything is answered.
func (m Model) firstUnanswered() int {
	for i, p := range m.flat {
		if !m.answers.Has(m.steps[p.step].Questions[p.question].Key) {
			return i
		}
	}
	return len(m.flat)
}

// answeredCursor returns the option index of the current question's existing
// answer, or 0.
func (m Model) answeredCursor() int {
	q, ok := m.current()
	if !ok {
		return 0
	}
	code := m.answers.Get(q.Key)
	for i, o := range q.Options {
		if o.Code == code {
			return i
		}
	}
	return 0
}

// current returns the question at the cursor position.
func (m Model) current() (catalog.Question, bool) {
	if m.idx < 0 || m.idx >= len(m.flat) {
		return catalog.Question{}, false
	}
	p := m.flat[m.idx]
	return m.steps[p.step].Questions[p.question], true
}

// currentStep returns the step containing the current question.
func (m Model) currentStep() (catalog.Step, bool) {
	if m.idx < 0 || m.idx >= len(m.flat) {
		return catalog.Step{}, false
	}
	return m.steps[m.flat[m.idx].step], true
}

// Answers returns the collected answer set.
func (m Model) Answers() model.AnswerSet {
	return m.answers
}

// Completed reports whether the questionnaire ran to the end.
func (m Model) Completed() bool {
	return m.done
}
