package assess

import "github.com/greenscope-tools/greenscope/internal/model"

// taxonomyReasonLimit caps how much of the CSRD narrative is echoed into the
// Taxonomy not-in-scope reason.
const taxonomyReasonLimit = 150

// DeriveTaxonomy derives the EU Taxonomy verdict from an already computed
// CSRD verdict. Taxonomy scope is never evaluated independently: Article
// 19a/29a CSRD scope pulls a company into Article 8 disclosures, while
// Article 40a entities are explicitly excluded. The CSRD result is passed by
// value and never recomputed here.
func DeriveTaxonomy(csrd model.AssessmentResult, as model.AnswerSet) model.AssessmentResult {
	switch {
	case csrd.InScope && csrd.LegalBasis != LegalBasisArticle40a:
		return model.AssessmentResult{
			InScope:    true,
			Reason:     "Subject to EU Taxonomy Article 8 as you are in scope of CSRD (Articles 19a/29a).",
			Timeline:   csrd.Timeline,
			LegalBasis: LegalBasisTaxonomy,
			Details:    taxonomyDetails(as),
			Findings: []model.Finding{
				finding("CSRD scope (Articles 19a/29a)", "In scope", "", true),
			},
		}
	case csrd.InScope:
		// Article 40a entities report at third-country group level and are
		// excluded from Taxonomy disclosure obligations.
		return model.AssessmentResult{
			InScope: false,
			Reason: "EU Taxonomy assessment: Not subject to Article 8 as Article 40a companies are excluded from " +
				"Taxonomy disclosure obligations under CSRD framework.",
			Note: "Note: If your company voluntarily chooses to prepare consolidated sustainability statements in " +
				"accordance with ESRS instead of Article 40a reports, EU subsidiaries can only be exempted from their " +
				"reporting if you include their Taxonomy disclosures.",
			Findings: []model.Finding{
				finding("CSRD scope", "In scope under Article 40a", "Article 40a entities are excluded from Taxonomy", false),
			},
		}
	}

	reason := "EU Taxonomy assessment: Not subject to Article 8 as you are not in scope of CSRD Articles 19a/29a."
	if csrd.Reason != "" {
		reason += " CSRD status: " + truncate(csrd.Reason, taxonomyReasonLimit) + "..."
	}
	return model.AssessmentResult{
		InScope: false,
		Reason:  reason,
		Findings: []model.Finding{
			finding("CSRD scope (Articles 19a/29a)", "Not in scope", "Taxonomy applies only to CSRD 19a/29a reporters", false),
		},
	}
}

// taxonomyDetails selects the KPI, objective, and phase-in schedule facts
// for an in-scope undertaking. Non-financial undertakings report fully
// already; financial subtypes phase in over two stages, with credit
// institutions picking up trading-book and fee disclosures from the second
// stage onward.
func taxonomyDetails(as model.AnswerSet) *model.TaxonomyDetails {
	details := &model.TaxonomyDetails{
		KPIs:       TaxonomyKPIs,
		Objectives: TaxonomyObjectives,
	}

	if as.Is(model.KeyUndertakingType, "non_financial") {
		details.PhaseIn = model.PhaseIn{
			Current:    "Since 2025 (for FY 2024): Full reporting on eligibility and alignment for all 6 environmental objectives.",
			EntityType: "Non-financial undertaking",
		}
		return details
	}

	if !as.Is(model.KeyUndertakingType, "financial") {
		return details
	}

	phaseIn := model.PhaseIn{
		Current: "Since 2025 (for FY 2024): KPIs on alignment for objectives 1-2, eligibility for objectives 1-6.",
		Future:  "From 2026 (for FY 2025): Full reporting on eligibility and alignment for all 6 objectives.",
	}
	switch as.Get(model.KeyFinancialType) {
	case "credit_institution":
		phaseIn.EntityType = "Credit institution"
		phaseIn.Additional = "From 2026: Additionally report on alignment of trading book and fees/commissions for non-banking activities."
	case "snci":
		phaseIn.EntityType = "Small and non-complex institution"
	case "insurance_company":
		phaseIn.EntityType = "Insurance undertaking"
	case "captive_insurance":
		phaseIn.EntityType = "Captive insurance/reinsurance undertaking"
	case "investment_firm":
		phaseIn.EntityType = "Investment firm"
	case "asset_manager":
		phaseIn.EntityType = "Asset manager"
	default:
		return details
	}
	details.PhaseIn = phaseIn
	return details
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
