package assess

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscope-tools/greenscope/internal/model"
)

func TestRun_Deterministic(t *testing.T) {
	answers := largeEUCompany()
	answers[model.KeyMultinationalEnterprise] = "yes"
	answers[model.KeyOECDAdherentCountries] = "yes"
	answers[model.KeyFutureThresholds] = "no"

	first := Run(answers)
	second := Run(answers)
	assert.True(t, reflect.DeepEqual(first, second), "identical answers must produce identical assessments")
}

func TestRun_UNGPsAlwaysApply(t *testing.T) {
	result := Run(model.AnswerSet{})
	assert.True(t, result.UNGPs.InScope)
	assert.Equal(t, "Applicable since 2011", result.UNGPs.Timeline)
}

func TestRun_TaxonomyNeverInScopeWithoutCSRD(t *testing.T) {
	// Small domestic company: CSRD out of scope, so Taxonomy must be too.
	answers := model.AnswerSet{
		model.KeyJurisdiction:           "eu",
		model.KeyUndertakingType:        "non_financial",
		model.KeyListingStatus:          "not_listed",
		model.KeyPublicInterest:         "no",
		model.KeyParentStatus:           "no",
		model.KeySubsidiaryStatus:       "no",
		model.KeyEmployeesIndividual:    "10_49",
		model.KeyTurnoverIndividual:     "2_10m",
		model.KeyBalanceSheetIndividual: "2_5m",
	}

	result := Run(answers)
	assert.False(t, result.CSRD.InScope)
	assert.False(t, result.Taxonomy.InScope)
}

func TestAssessOECD(t *testing.T) {
	tests := []struct {
		name        string
		answers     model.AnswerSet
		wantInScope bool
		wantReason  string
	}{
		{
			name: "multinational in adherent country",
			answers: model.AnswerSet{
				model.KeyMultinationalEnterprise: "yes",
				model.KeyOECDAdherentCountries:   "yes",
			},
			wantInScope: true,
		},
		{
			name: "domestic-only company",
			answers: model.AnswerSet{
				model.KeyMultinationalEnterprise: "no",
			},
			wantInScope: false,
			wantReason:  "operates domestically only",
		},
		{
			name: "multinational outside adherent countries",
			answers: model.AnswerSet{
				model.KeyMultinationalEnterprise: "yes",
				model.KeyOECDAdherentCountries:   "no",
			},
			wantInScope: false,
			wantReason:  "non-adherent countries",
		},
		{
			name:        "unanswered",
			answers:     model.AnswerSet{},
			wantInScope: false,
			wantReason:  "assessment incomplete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AssessOECD(tt.answers)
			assert.Equal(t, tt.wantInScope, result.InScope)
			if tt.wantReason != "" {
				assert.Contains(t, result.Reason, tt.wantReason)
			}
		})
	}
}

func TestRun_FutureConsiderations(t *testing.T) {
	// Small EU company expecting growth across multiple metrics.
	answers := model.AnswerSet{
		model.KeyJurisdiction:           "eu",
		model.KeyUndertakingType:        "non_financial",
		model.KeyListingStatus:          "not_listed",
		model.KeyPublicInterest:         "no",
		model.KeyParentStatus:           "no",
		model.KeySubsidiaryStatus:       "no",
		model.KeyEmployeesIndividual:    "50_249",
		model.KeyTurnoverIndividual:     "10_50m",
		model.KeyBalanceSheetIndividual: "5_25m",
		model.KeyFutureThresholds:       "yes",
		model.KeyGrowthMetrics:          "multiple",
	}

	result := Run(answers)
	require.False(t, result.CSRD.InScope)
	assert.Contains(t, result.CSRD.FutureConsiderations, "might fall under CSRD obligations")
	assert.Contains(t, result.CSDDD.FutureConsiderations, "might fall under CSDDD obligations")
	assert.Contains(t, result.Taxonomy.FutureConsiderations, "EU Taxonomy disclosure obligations")
}

func TestRun_NoFutureConsiderationsWhenStable(t *testing.T) {
	answers := model.AnswerSet{
		model.KeyJurisdiction:        "eu",
		model.KeyEmployeesIndividual: "10_49",
		model.KeyFutureThresholds:    "no",
	}

	result := Run(answers)
	assert.Empty(t, result.CSRD.FutureConsiderations)
	assert.Empty(t, result.CSDDD.FutureConsiderations)
	assert.Empty(t, result.Taxonomy.FutureConsiderations)
}

func TestRun_FutureConsiderationsSingleMetricNote(t *testing.T) {
	// Growing on employees alone: CSDDD needs both criteria at once, so the
	// projection carries the explicit note.
	answers := model.AnswerSet{
		model.KeyJurisdiction:        "eu",
		model.KeyEmployeesIndividual: "500_999",
		model.KeyTurnoverIndividual:  "150_450m",
		model.KeyParentStatus:        "no",
		model.KeySubsidiaryStatus:    "no",
		model.KeyFutureThresholds:    "maybe",
		model.KeyGrowthMetrics:       "employees",
	}

	result := Run(answers)
	require.False(t, result.CSDDD.InScope)
	assert.Contains(t, result.CSDDD.FutureConsiderations, "both employee and turnover thresholds simultaneously")
}
