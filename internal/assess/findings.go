package assess

import (
	"fmt"
	"strings"

	"github.com/greenscope-tools/greenscope/internal/model"
)

// Pass/fail markers used in rendered narratives. Downstream consumers of
// the reason text detect these per clause, so they must stay unambiguous.
const (
	markMet    = "met"
	markNotMet = "not met"
)

func mark(satisfied bool) string {
	if satisfied {
		return markMet
	}
	return markNotMet
}

// finding builds a Finding in one line; assessors read better with it.
func finding(criterion, value, requirement string, satisfied bool) model.Finding {
	return model.Finding{
		Criterion:   criterion,
		Value:       value,
		Requirement: requirement,
		Satisfied:   satisfied,
	}
}

// notInScopeReason renders the semi-structured narrative for a not-in-scope
// verdict from its findings. The grammar is part of the output contract:
// a "<Framework> assessment: " prefix followed by semicolon-separated
// clauses of the form "<criterion>: <value> (<requirement>) - met|not met".
func notInScopeReason(frameworkName string, findings []model.Finding) string {
	clauses := make([]string, 0, len(findings))
	for _, f := range findings {
		switch {
		case f.Requirement != "":
			clauses = append(clauses, fmt.Sprintf("%s: %s (%s) - %s", f.Criterion, f.Value, f.Requirement, mark(f.Satisfied)))
		default:
			clauses = append(clauses, fmt.Sprintf("%s: %s - %s", f.Criterion, f.Value, mark(f.Satisfied)))
		}
	}
	return frameworkName + " assessment: " + strings.Join(clauses, "; ")
}
