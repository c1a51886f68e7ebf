// Package model defines the core domain models used throughout the application.
package model

// Question keys as declared by the catalog. The engine only ever reads
// answers through these keys; the catalog declares which option codes each
// key accepts.
const (
	KeyJurisdiction              = "jurisdiction"
	KeyUndertakingType           = "undertaking_type"
	KeyNonFinancialLegalForm     = "non_financial_legal_form"
	KeyAnnexIIMemberStructure    = "annex_ii_member_structure"
	KeyFinancialType             = "financial_type"
	KeyListingStatus             = "listing_status"
	KeyPublicInterest            = "public_interest"
	KeyParentStatus              = "parent_status"
	KeySubsidiaryStatus          = "subsidiary_status"
	KeyEmployeesIndividual       = "employees_individual"
	KeyTurnoverIndividual        = "turnover_individual"
	KeyBalanceSheetIndividual    = "balance_sheet_individual"
	KeyEmployeesConsolidated     = "employees_consolidated"
	KeyTurnoverConsolidated      = "turnover_consolidated"
	KeyBalanceSheetConsolidated  = "balance_sheet_consolidated"
	KeyMultinationalEnterprise   = "multinational_enterprise"
	KeyOECDAdherentCountries     = "oecd_adherent_countries"
	KeyEUSecuritiesTrading       = "eu_securities_trading"
	KeyEUTurnoverThreshold       = "eu_turnover_threshold"
	KeyEUCorporatePresence       = "eu_corporate_presence"
	KeyEUSubsidiaryQualification = "eu_subsidiary_qualification"
	KeyEUBranchTurnover          = "eu_branch_turnover"
	KeyHasFranchisingLicensing   = "has_franchising_licensing"
	KeyFranchisingLicensing      = "franchising_licensing"
	KeyFranchiseRoyalties        = "franchise_royalties"
	KeyFranchiseEURoyalties      = "franchise_eu_royalties"
	KeyIndirectRelationships     = "indirect_business_relationships"
	KeyConsecutiveYearsCSDDD     = "consecutive_years_csddd"
	KeyFutureThresholds          = "future_thresholds"
	KeyGrowthMetrics             = "growth_metrics"
)

// AnswerSet maps question keys to the selected option code. A missing key
// means the question is unanswered; the zero value is a valid empty set.
//
// Keys and codes are guaranteed valid by the form layer. The engine never
// validates them: membership tests on absent or unrecognized values simply
// evaluate false, so incomplete answers can never place a company in scope.
type AnswerSet map[string]string

// Get returns the selected option code for key, or "" if unanswered.
func (a AnswerSet) Get(key string) string {
	return a[key]
}

// Has reports whether the question has been answered.
func (a AnswerSet) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Is reports whether the answer for key equals code. An unanswered question
// never matches.
func (a AnswerSet) Is(key, code string) bool {
	return a[key] == code && code != ""
}

// OneOf reports whether the answer for key is one of the given codes. This
// is the closed-set bracket membership test every threshold predicate is
// built from: absent or unrecognized values evaluate false.
func (a AnswerSet) OneOf(key string, codes ...string) bool {
	v, ok := a[key]
	if !ok {
		return false
	}
	for _, c := range codes {
		if v == c {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
