package assess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenscope-tools/greenscope/internal/model"
)

func TestDeriveTaxonomy_FollowsCSRDScope(t *testing.T) {
	answers := largeEUCompany()

	csrd := AssessCSRD(answers)
	require.True(t, csrd.InScope)

	taxonomy := DeriveTaxonomy(csrd, answers)
	require.True(t, taxonomy.InScope)
	assert.Equal(t, csrd.Timeline, taxonomy.Timeline)
	assert.Equal(t, LegalBasisTaxonomy, taxonomy.LegalBasis)
	require.NotNil(t, taxonomy.Details)
	assert.Equal(t, TaxonomyKPIs, taxonomy.Details.KPIs)
	assert.Len(t, taxonomy.Details.Objectives, 6)
}

func TestDeriveTaxonomy_Article40aExcluded(t *testing.T) {
	answers := model.AnswerSet{
		model.KeyJurisdiction:              "non_eu",
		model.KeyEUSecuritiesTrading:       "no",
		model.KeyEUTurnoverThreshold:       "both_over_150m",
		model.KeyEUCorporatePresence:       "subsidiary_only",
		model.KeyEUSubsidiaryQualification: "large_undertaking",
	}

	csrd := AssessCSRD(answers)
	require.True(t, csrd.InScope)
	require.Equal(t, LegalBasisArticle40a, csrd.LegalBasis)

	taxonomy := DeriveTaxonomy(csrd, answers)
	assert.False(t, taxonomy.InScope)
	assert.Contains(t, taxonomy.Reason, "Article 40a companies are excluded")
	assert.Contains(t, taxonomy.Note, "voluntarily")
	assert.Nil(t, taxonomy.Details)
}

func TestDeriveTaxonomy_NotInScopeEchoesCSRDReason(t *testing.T) {
	csrd := model.AssessmentResult{
		InScope: false,
		Reason:  strings.Repeat("x", 400),
	}

	taxonomy := DeriveTaxonomy(csrd, model.AnswerSet{})
	require.False(t, taxonomy.InScope)
	assert.Contains(t, taxonomy.Reason, "not in scope of CSRD Articles 19a/29a")
	assert.Contains(t, taxonomy.Reason, strings.Repeat("x", taxonomyReasonLimit)+"...")
	assert.NotContains(t, taxonomy.Reason, strings.Repeat("x", taxonomyReasonLimit+1))
}

func TestTaxonomyDetails_PhaseIn(t *testing.T) {
	tests := []struct {
		name           string
		answers        model.AnswerSet
		wantEntityType string
		wantAdditional bool
		wantFuture     bool
	}{
		{
			name: "non-financial undertaking reports fully",
			answers: model.AnswerSet{
				model.KeyUndertakingType: "non_financial",
			},
			wantEntityType: "Non-financial undertaking",
		},
		{
			name: "credit institution picks up extra stage-two disclosures",
			answers: model.AnswerSet{
				model.KeyUndertakingType: "financial",
				model.KeyFinancialType:   "credit_institution",
			},
			wantEntityType: "Credit institution",
			wantAdditional: true,
			wantFuture:     true,
		},
		{
			name: "asset manager phases in without extras",
			answers: model.AnswerSet{
				model.KeyUndertakingType: "financial",
				model.KeyFinancialType:   "asset_manager",
			},
			wantEntityType: "Asset manager",
			wantFuture:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := taxonomyDetails(tt.answers)
			require.NotNil(t, details)
			assert.Equal(t, tt.wantEntityType, details.PhaseIn.EntityType)
			assert.NotEmpty(t, details.PhaseIn.Current)
			assert.Equal(t, tt.wantFuture, details.PhaseIn.Future != "")
			assert.Equal(t, tt.wantAdditional, details.PhaseIn.Additional != "")
		})
	}
}
