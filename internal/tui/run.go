package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/greenscope-tools/greenscope/internal/catalog"
	"github.com/greenscope-tools/greenscope/internal/model"
)

// Run drives the interactive questionnaire to completion. It returns the
// collected answers and whether the respondent finished every question; an
// early quit returns completed == false with the partial answers.
func Run(ctx context.Context, steps []catalog.Step, seed model.AnswerSet) (model.AnswerSet, bool, error) {
	m := NewModel(steps, seed.Clone())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("questionnaire failed: %w", err)
	}

	fm, ok := final.(Model)
	if !ok {
		return nil, false, fmt.Errorf("unexpected final model type %T", final)
	}
	return fm.Answers(), fm.Completed(), nil
}
