package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscope-tools/greenscope/internal/common"
	"github.com/greenscope-tools/greenscope/internal/model"
)

func findStep(t *testing.T, steps []Step, id string) Step {
	t.Helper()
	for _, s := range steps {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("step %q not found", id)
	return Step{}
}

func findQuestion(t *testing.T, steps []Step, key string) Question {
	t.Helper()
	for _, s := range steps {
		for _, q := range s.Questions {
			if q.Key == key {
				return q
			}
		}
	}
	t.Fatalf("question %q not found", key)
	return Question{}
}

func TestDefault_UniqueKeysAndNonEmptyOptions(t *testing.T) {
	steps := Default()
	require.Len(t, steps, 10)

	seen := make(map[string]bool)
	for _, s := range steps {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Title)
		for _, q := range s.Questions {
			assert.False(t, seen[q.Key], "duplicate question key %q", q.Key)
			seen[q.Key] = true
			assert.NotEmpty(t, q.Options, "question %q has no options", q.Key)
			assert.True(t, q.Required, "question %q should be required", q.Key)
			assert.False(t, q.Label.IsZero(), "question %q has no label", q.Key)
		}
	}
}

func TestStepVisibility(t *testing.T) {
	steps := Default()

	tests := []struct {
		name    string
		stepID  string
		answers model.AnswerSet
		want    bool
	}{
		{
			name:    "consolidated size hidden for non-parents",
			stepID:  "size_consolidated",
			answers: model.AnswerSet{model.KeyParentStatus: "no"},
			want:    false,
		},
		{
			name:    "consolidated size shown for parents",
			stepID:  "size_consolidated",
			answers: model.AnswerSet{model.KeyParentStatus: "yes"},
			want:    true,
		},
		{
			name:    "non-EU CSRD step hidden for EU companies",
			stepID:  "non_eu_csrd_scope",
			answers: model.AnswerSet{model.KeyJurisdiction: "eu"},
			want:    false,
		},
		{
			name:    "non-EU CSRD step shown for third-country companies",
			stepID:  "non_eu_csrd_scope",
			answers: model.AnswerSet{model.KeyJurisdiction: "non_eu"},
			want:    true,
		},
		{
			name:   "temporal step hidden below thresholds",
			stepID: "temporal_verification",
			answers: model.AnswerSet{
				model.KeyJurisdiction:        "eu",
				model.KeyEmployeesIndividual: "50_249",
				model.KeyTurnoverIndividual:  "10_50m",
			},
			want: false,
		},
		{
			name:   "temporal step shown once individual thresholds are met",
			stepID: "temporal_verification",
			answers: model.AnswerSet{
				model.KeyJurisdiction:        "eu",
				model.KeyEmployeesIndividual: "1000_2999",
				model.KeyTurnoverIndividual:  "450_900m",
			},
			want: true,
		},
		{
			name:   "temporal step shown for ultimate parent meeting group thresholds",
			stepID: "temporal_verification",
			answers: model.AnswerSet{
				model.KeyJurisdiction:          "eu",
				model.KeyParentStatus:          "yes",
				model.KeySubsidiaryStatus:      "no",
				model.KeyEmployeesConsolidated: "3000_plus",
				model.KeyTurnoverConsolidated:  "900m_plus",
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := findStep(t, steps, tt.stepID)
			assert.Equal(t, tt.want, step.IsVisible(tt.answers))
		})
	}
}

func TestIndirectStepHiddenWhenBothFrameworksApply(t *testing.T) {
	steps := Default()
	indirect := findStep(t, steps, "indirect_applicability")

	// In scope of both CSRD and CSDDD: the indirect step disappears.
	inScope := model.AnswerSet{
		model.KeyJurisdiction:           "eu",
		model.KeyUndertakingType:        "non_financial",
		model.KeyListingStatus:          "not_listed",
		model.KeyPublicInterest:         "no",
		model.KeyParentStatus:           "no",
		model.KeySubsidiaryStatus:       "no",
		model.KeyEmployeesIndividual:    "3000_plus",
		model.KeyTurnoverIndividual:     "900m_plus",
		model.KeyBalanceSheetIndividual: "25m_plus",
		model.KeyConsecutiveYearsCSDDD:  "yes",
	}
	assert.False(t, indirect.IsVisible(inScope))

	// Out of scope of at least one framework: the step shows.
	outOfScope := model.AnswerSet{
		model.KeyJurisdiction:        "eu",
		model.KeyEmployeesIndividual: "10_49",
	}
	assert.True(t, indirect.IsVisible(outOfScope))
}

func TestQuestionVisibility(t *testing.T) {
	steps := Default()

	tests := []struct {
		name    string
		key     string
		answers model.AnswerSet
		want    bool
	}{
		{
			name:    "legal form only for non-financial undertakings",
			key:     model.KeyNonFinancialLegalForm,
			answers: model.AnswerSet{model.KeyUndertakingType: "financial"},
			want:    false,
		},
		{
			name: "annex II structure only for partnerships",
			key:  model.KeyAnnexIIMemberStructure,
			answers: model.AnswerSet{
				model.KeyUndertakingType:       "non_financial",
				model.KeyNonFinancialLegalForm: "partnership_cooperative",
			},
			want: true,
		},
		{
			name:    "PIE question hidden for EU-listed companies",
			key:     model.KeyPublicInterest,
			answers: model.AnswerSet{model.KeyJurisdiction: "eu", model.KeyListingStatus: "listed_eu"},
			want:    false,
		},
		{
			name: "branch turnover only consulted absent a qualifying subsidiary",
			key:  model.KeyEUBranchTurnover,
			answers: model.AnswerSet{
				model.KeyEUSecuritiesTrading:       "no",
				model.KeyEUTurnoverThreshold:       "both_over_150m",
				model.KeyEUCorporatePresence:       "both_subsidiary_branch",
				model.KeyEUSubsidiaryQualification: "large_undertaking",
			},
			want: false,
		},
		{
			name: "branch turnover shown when no subsidiary qualifies",
			key:  model.KeyEUBranchTurnover,
			answers: model.AnswerSet{
				model.KeyEUSecuritiesTrading:       "no",
				model.KeyEUTurnoverThreshold:       "both_over_150m",
				model.KeyEUCorporatePresence:       "both_subsidiary_branch",
				model.KeyEUSubsidiaryQualification: "other_sme",
			},
			want: true,
		},
		{
			name:    "growth metrics only when growth is expected",
			key:     model.KeyGrowthMetrics,
			answers: model.AnswerSet{model.KeyFutureThresholds: "no"},
			want:    false,
		},
		{
			name: "EU royalties question only for non-EU companies",
			key:  model.KeyFranchiseEURoyalties,
			answers: model.AnswerSet{
				model.KeyJurisdiction:            "eu",
				model.KeyHasFranchisingLicensing: "yes",
				model.KeyFranchisingLicensing:    "yes_meets_criteria",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := findQuestion(t, steps, tt.key)
			assert.Equal(t, tt.want, q.IsVisible(tt.answers))
		})
	}
}

func TestDerivedText(t *testing.T) {
	steps := Default()
	turnover := findQuestion(t, steps, model.KeyTurnoverIndividual)

	euLabel := turnover.Label.Resolve(model.AnswerSet{model.KeyJurisdiction: "eu"})
	assert.Contains(t, euLabel, "worldwide")

	nonEULabel := turnover.Label.Resolve(model.AnswerSet{model.KeyJurisdiction: "non_eu"})
	assert.Contains(t, nonEULabel, "in the EU")

	temporal := findQuestion(t, steps, model.KeyConsecutiveYearsCSDDD)
	label := temporal.Label.Resolve(model.AnswerSet{
		model.KeyJurisdiction:        "eu",
		model.KeyEmployeesIndividual: "1000_2999",
		model.KeyTurnoverIndividual:  "450_900m",
	})
	assert.Contains(t, label, "1,000+ employees")
	assert.Contains(t, label, "individual level")
}

func TestValidate(t *testing.T) {
	steps := Default()

	tests := []struct {
		name    string
		answers model.AnswerSet
		wantErr error
	}{
		{
			name:    "valid answers",
			answers: model.AnswerSet{model.KeyJurisdiction: "eu", model.KeyParentStatus: "no"},
		},
		{
			name:    "unknown question key",
			answers: model.AnswerSet{"favourite_colour": "green"},
			wantErr: common.ErrUnknownQuestion,
		},
		{
			name:    "unknown option code",
			answers: model.AnswerSet{model.KeyJurisdiction: "mars"},
			wantErr: common.ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(steps, tt.answers)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMissingRequired(t *testing.T) {
	steps := Default()

	missing := MissingRequired(steps, model.AnswerSet{})
	assert.Contains(t, missing, model.KeyJurisdiction)
	assert.Contains(t, missing, model.KeyParentStatus)
	// Conditional questions whose predicates fail are not demanded.
	assert.NotContains(t, missing, model.KeyFinancialType)
	assert.NotContains(t, missing, model.KeyConsecutiveYearsCSDDD)
}

func TestStepComplete(t *testing.T) {
	steps := Default()
	group := findStep(t, steps, "group_structure")

	assert.False(t, group.Complete(model.AnswerSet{model.KeyParentStatus: "yes"}))
	assert.True(t, group.Complete(model.AnswerSet{
		model.KeyParentStatus:     "yes",
		model.KeySubsidiaryStatus: "no",
	}))
}
