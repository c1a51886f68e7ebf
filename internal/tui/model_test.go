package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscope-tools/greenscope/internal/catalog"
	"github.com/greenscope-tools/greenscope/internal/model"
)

func keyMsg(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(r rune) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_AnswerAdvances(t *testing.T) {
	m := NewModel(catalog.Default(), nil)

	q, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, model.KeyJurisdiction, q.Key)

	// Select the first option of the first question.
	updated, _ := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(Model)

	assert.Equal(t, "eu", m.Answers().Get(model.KeyJurisdiction))
	next, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, model.KeyUndertakingType, next.Key)
}

func TestModel_CursorMovement(t *testing.T) {
	m := NewModel(catalog.Default(), nil)

	updated, _ := m.Update(runeMsg('j'))
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	// Cannot move past the last option.
	updated, _ = m.Update(runeMsg('j'))
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(runeMsg('k'))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_PruneDropsInvisibleAnswers(t *testing.T) {
	seed := model.AnswerSet{
		model.KeyUndertakingType:       "non_financial",
		model.KeyNonFinancialLegalForm: "limited_company",
	}
	m := NewModel(catalog.Default(), seed)

	// Changing to a financial undertaking hides the legal form question and
	// must drop its stale answer.
	m.answers[model.KeyUndertakingType] = "financial"
	m.prune()

	assert.False(t, m.answers.Has(model.KeyNonFinancialLegalForm))
	assert.True(t, m.answers.Has(model.KeyUndertakingType))
}

func TestModel_QuitMarksAborted(t *testing.T) {
	m := NewModel(catalog.Default(), nil)

	updated, cmd := m.Update(runeMsg('q'))
	m = updated.(Model)

	assert.True(t, m.aborted)
	assert.False(t, m.Completed())
	require.NotNil(t, cmd)
}

func TestModel_SeededAnswersResumeAtFirstUnanswered(t *testing.T) {
	seed := model.AnswerSet{
		model.KeyJurisdiction:    "eu",
		model.KeyUndertakingType: "non_financial",
	}
	m := NewModel(catalog.Default(), seed)

	q, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, model.KeyNonFinancialLegalForm, q.Key)
}

func TestModel_ViewShowsQuestion(t *testing.T) {
	m := NewModel(catalog.Default(), nil)
	m.width = 100

	view := m.View()
	assert.Contains(t, view, "Company Classification")
	assert.Contains(t, view, "Where is your company incorporated?")
	assert.Contains(t, view, "EU Member State")
}
