package assess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscope-tools/greenscope/internal/model"
)

// largeEUCompany is a baseline large EU undertaking: all three size criteria
// met, not listed, not a parent.
func largeEUCompany() model.AnswerSet {
	return model.AnswerSet{
		model.KeyJurisdiction:           "eu",
		model.KeyUndertakingType:        "non_financial",
		model.KeyListingStatus:          "not_listed",
		model.KeyPublicInterest:         "no",
		model.KeyParentStatus:           "no",
		model.KeySubsidiaryStatus:       "no",
		model.KeyEmployeesIndividual:    "500_999",
		model.KeyTurnoverIndividual:     "80_150m",
		model.KeyBalanceSheetIndividual: "25m_plus",
	}
}

func TestAssessCSRD_LargeUndertakingWaves(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(model.AnswerSet)
		wantWave     int
		wantTimeline string
		wantBasis    string
	}{
		{
			name:         "unlisted large undertaking lands in wave 2",
			mutate:       func(_ model.AnswerSet) {},
			wantWave:     2,
			wantTimeline: timelineCSRDWave2,
			wantBasis:    LegalBasisArticle19a,
		},
		{
			name: "listed PIE with over 500 employees lands in wave 1",
			mutate: func(as model.AnswerSet) {
				as[model.KeyListingStatus] = "listed_eu"
				delete(as, model.KeyPublicInterest)
			},
			wantWave:     1,
			wantTimeline: timelineCSRDWave1,
			wantBasis:    LegalBasisArticle19a + legalBasisTransparency,
		},
		{
			name: "unlisted PIE with over 500 employees lands in wave 1",
			mutate: func(as model.AnswerSet) {
				as[model.KeyPublicInterest] = "yes"
			},
			wantWave:     1,
			wantTimeline: timelineCSRDWave1,
			wantBasis:    LegalBasisArticle19a,
		},
		{
			name: "listed PIE under 500 employees lands in wave 2",
			mutate: func(as model.AnswerSet) {
				as[model.KeyListingStatus] = "listed_eu"
				as[model.KeyEmployeesIndividual] = "250_499"
			},
			wantWave:     2,
			wantTimeline: timelineCSRDWave2,
			wantBasis:    LegalBasisArticle19a + legalBasisTransparency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := largeEUCompany()
			tt.mutate(answers)

			result := AssessCSRD(answers)
			require.True(t, result.InScope)
			assert.Equal(t, tt.wantWave, result.Wave)
			assert.Equal(t, tt.wantTimeline, result.Timeline)
			assert.Equal(t, tt.wantBasis, result.LegalBasis)
			assert.Equal(t, model.ReportingIndividual, result.ReportingType)
		})
	}
}

func TestAssessCSRD_ParentOfLargeGroupTakesPriority(t *testing.T) {
	// Meets both the parent-of-large-group and large-undertaking branches;
	// the group branch must win.
	answers := largeEUCompany()
	answers[model.KeyParentStatus] = "yes"
	answers[model.KeyEmployeesConsolidated] = "1000_2999"
	answers[model.KeyTurnoverConsolidated] = "50_450m"
	answers[model.KeyBalanceSheetConsolidated] = "25m_plus"

	result := AssessCSRD(answers)
	require.True(t, result.InScope)
	assert.Equal(t, model.ReportingConsolidated, result.ReportingType)
	assert.Equal(t, LegalBasisArticle29a, result.LegalBasis)
	assert.Contains(t, result.AutomaticExemptions, model.ExemptionIndividualReporting)
	assert.Contains(t, result.PossibleExemptions, model.ExemptionSubsidiary29a8)
	assert.Equal(t, 2, result.Wave)
}

func TestAssessCSRD_ListedSME(t *testing.T) {
	answers := model.AnswerSet{
		model.KeyJurisdiction:           "eu",
		model.KeyUndertakingType:        "non_financial",
		model.KeyListingStatus:          "listed_eu",
		model.KeyParentStatus:           "no",
		model.KeySubsidiaryStatus:       "no",
		model.KeyEmployeesIndividual:    "50_249",
		model.KeyTurnoverIndividual:     "10_50m",
		model.KeyBalanceSheetIndividual: "5_25m",
	}

	result := AssessCSRD(answers)
	require.True(t, result.InScope)
	assert.Equal(t, 3, result.Wave)
	assert.Equal(t, timelineCSRDWave3, result.Timeline)
	assert.Equal(t, []string{model.ExemptionOptOutFY2028to2029, model.ExemptionSubsidiary19a9}, result.PossibleExemptions)
}

func TestAssessCSRD_SpecializedFinancialAlwaysWave3(t *testing.T) {
	// A large SNCI that would otherwise hit wave 1 as a listed PIE with
	// over 500 employees still reports in wave 3.
	answers := largeEUCompany()
	answers[model.KeyUndertakingType] = "financial"
	answers[model.KeyFinancialType] = "snci"
	answers[model.KeyListingStatus] = "listed_eu"

	result := AssessCSRD(answers)
	require.True(t, result.InScope)
	assert.Equal(t, 3, result.Wave)
	assert.True(t, result.SpecializedTiming)
	assert.True(t, result.NFRDTransition)
	assert.Contains(t, result.Reason, "small and non-complex institution")
}

func TestAssessCSRD_SmallCompanyExcluded(t *testing.T) {
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

	result := AssessCSRD(answers)
	require.False(t, result.InScope)
	assert.True(t, strings.HasPrefix(result.Reason, "CSRD assessment: "))
	assert.Contains(t, result.Reason, "not met")
	assert.Contains(t, result.Reason, "0 of 3")
	assert.NotEmpty(t, result.Findings)
}

func TestAssessCSRD_ThirdCountry(t *testing.T) {
	tests := []struct {
		name        string
		answers     model.AnswerSet
		wantInScope bool
	}{
		{
			name: "qualifying subsidiary pathway",
			answers: model.AnswerSet{
				model.KeyJurisdiction:              "non_eu",
				model.KeyEUSecuritiesTrading:       "no",
				model.KeyEUTurnoverThreshold:       "both_over_150m",
				model.KeyEUCorporatePresence:       "subsidiary_only",
				model.KeyEUSubsidiaryQualification: "large_undertaking",
			},
			wantInScope: true,
		},
		{
			name: "branch pathway without qualifying subsidiary",
			answers: model.AnswerSet{
				model.KeyJurisdiction:              "non_eu",
				model.KeyEUSecuritiesTrading:       "no",
				model.KeyEUTurnoverThreshold:       "both_over_150m",
				model.KeyEUCorporatePresence:       "both_subsidiary_branch",
				model.KeyEUSubsidiaryQualification: "micro_undertaking",
				model.KeyEUBranchTurnover:          "over_40m",
			},
			wantInScope: true,
		},
		{
			name: "EU turnover below threshold",
			answers: model.AnswerSet{
				model.KeyJurisdiction:        "non_eu",
				model.KeyEUSecuritiesTrading: "no",
				model.KeyEUTurnoverThreshold: "both_under_150m",
			},
			wantInScope: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AssessCSRD(tt.answers)
			assert.Equal(t, tt.wantInScope, result.InScope)
			if tt.wantInScope {
				assert.Equal(t, 3, result.Wave)
				assert.Equal(t, model.ReportingThirdCountryGroup, result.ReportingType)
				assert.Equal(t, LegalBasisArticle40a, result.LegalBasis)
				assert.Equal(t, []string{model.ExemptionThirdCountryConsolidated}, result.PossibleExemptions)
			}
		})
	}
}

func TestAssessCSRD_NonEUWithEUSecuritiesUsesEUPathway(t *testing.T) {
	// EU-traded securities fold a third-country company into the EU decision
	// matrix, counting as PIE and listed.
	answers := model.AnswerSet{
		model.KeyJurisdiction:           "non_eu",
		model.KeyEUSecuritiesTrading:    "yes",
		model.KeyListingStatus:          "listed_non_eu",
		model.KeyParentStatus:           "no",
		model.KeySubsidiaryStatus:       "no",
		model.KeyEmployeesIndividual:    "1000_2999",
		model.KeyTurnoverIndividual:     "150_450m",
		model.KeyBalanceSheetIndividual: "25m_plus",
	}

	result := AssessCSRD(answers)
	require.True(t, result.InScope)
	assert.Equal(t, 1, result.Wave)
	assert.Contains(t, result.Reason, "Non-EU large undertaking")
	assert.Equal(t, LegalBasisArticle19a+legalBasisTransparency, result.LegalBasis)
}

func TestAssessCSRD_MissingJurisdiction(t *testing.T) {
	result := AssessCSRD(model.AnswerSet{})
	require.False(t, result.InScope)
	assert.Contains(t, result.Reason, "assessment incomplete")
}
