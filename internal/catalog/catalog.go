// Package catalog defines the declarative questionnaire: ordered steps of
// questions with per-question visibility predicates and answer-dependent
// text. The catalog carries no legal logic of its own; it only decides
// which inputs the engine ever sees.
package catalog

import (
	"fmt"

	"github.com/greenscope-tools/greenscope/internal/common"
	"github.com/greenscope-tools/greenscope/internal/model"
)

// Text is either a static string or a function of the answer set, resolved
// lazily at render time. The engine never resolves Text values.
type Text struct {
	derive func(model.AnswerSet) string
	static string
}

// Static returns a Text holding a fixed string.
func Static(s string) Text {
	return Text{static: s}
}

// Derived returns a Text computed from the answer set at render time.
func Derived(f func(model.AnswerSet) string) Text {
	return Text{derive: f}
}

// Resolve returns the text for the given answer set.
func (t Text) Resolve(as model.AnswerSet) string {
	if t.derive != nil {
		return t.derive(as)
	}
	return t.static
}

// IsZero reports whether the Text carries no content at all.
func (t Text) IsZero() bool {
	return t.derive == nil && t.static == ""
}

// Option is one selectable answer for a question.
type Option struct {
	Code  string
	Label string
}

// Question is a single catalog entry. Questions are defined once at load
// time and never mutated; only their visibility is recomputed as answers
// change.
type Question struct {
	Visible  func(model.AnswerSet) bool
	Key      string
	Label    Text
	Help     Text
	Options  []Option
	Required bool
}

// IsVisible reports whether the question should currently be shown. A nil
// predicate means always visible.
func (q Question) IsVisible(as model.AnswerSet) bool {
	return q.Visible == nil || q.Visible(as)
}

// HasOption reports whether code is one of the question's declared options.
func (q Question) HasOption(code string) bool {
	for _, o := range q.Options {
		if o.Code == code {
			return true
		}
	}
	return false
}

// Step is an ordered group of questions shown together.
type Step struct {
	Visible   func(model.AnswerSet) bool
	ID        string
	Title     string
	Questions []Question
}

// IsVisible reports whether the step should currently be shown.
func (s Step) IsVisible(as model.AnswerSet) bool {
	return s.Visible == nil || s.Visible(as)
}

// VisibleQuestions returns the questions of the step visible for the given
// answers, in declaration order.
func (s Step) VisibleQuestions(as model.AnswerSet) []Question {
	visible := make([]Question, 0, len(s.Questions))
	for _, q := range s.Questions {
		if q.IsVisible(as) {
			visible = append(visible, q)
		}
	}
	return visible
}

// Complete reports whether every visible required question of the step has
// an answer. The form blocks progression to the next step until this holds.
func (s Step) Complete(as model.AnswerSet) bool {
	for _, q := range s.VisibleQuestions(as) {
		if q.Required && !as.Has(q.Key) {
			return false
		}
	}
	return true
}

// VisibleSteps filters steps to the currently visible subset. Recomputed on
// every answer change; a step with zero visible questions still renders
// unless its own predicate hides it.
func VisibleSteps(steps []Step, as model.AnswerSet) []Step {
	visible := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.IsVisible(as) {
			visible = append(visible, s)
		}
	}
	return visible
}

// MissingRequired returns the keys of visible required questions that are
// still unanswered, across all visible steps.
func MissingRequired(steps []Step, as model.AnswerSet) []string {
	var missing []string
	for _, s := range VisibleSteps(steps, as) {
		for _, q := range s.VisibleQuestions(as) {
			if q.Required && !as.Has(q.Key) {
				missing = append(missing, q.Key)
			}
		}
	}
	return missing
}

// Validate checks an externally supplied answer set against the catalog:
// every key must be a declared question key and every value one of that
// question's option codes. The engine itself never validates answers; this
// guard runs at the form/file boundary only.
func Validate(steps []Step, as model.AnswerSet) error {
	byKey := make(map[string]Question)
	for _, s := range steps {
		for _, q := range s.Questions {
			byKey[q.Key] = q
		}
	}

	for key, code := range as {
		q, ok := byKey[key]
		if !ok {
			return fmt.Errorf("%w: %q", common.ErrUnknownQuestion, key)
		}
		if !q.HasOption(code) {
			return fmt.Errorf("%w: %q for question %q", common.ErrUnknownOption, code, key)
		}
	}
	return nil
}
