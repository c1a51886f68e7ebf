package assess

import "github.com/greenscope-tools/greenscope/internal/model"

// Threshold predicates are closed-set bracket membership tests, never
// numeric comparisons: the option codes themselves encode the legal
// thresholds. Absent or unrecognized answers always fail a test, so missing
// data can never place a company in scope.

// csdddEmployeeBrackets are the employee brackets at or above the 1,000
// employee CSDDD floor.
var csdddEmployeeBrackets = []string{"1000_2999", "3000_plus"}

// csdddTurnoverBrackets are the turnover brackets at or above the €450M
// CSDDD floor.
var csdddTurnoverBrackets = []string{"450_900m", "900m_plus"}

// franchisingTurnoverBrackets are the turnover brackets at or above the €80M
// franchising floor.
var franchisingTurnoverBrackets = []string{"80_150m", "150_450m", "450_900m", "900m_plus"}

// largeEmployeeBrackets are the individual employee brackets at or above the
// 250 employee large-undertaking criterion.
var largeEmployeeBrackets = []string{"250_499", "500_999", "1000_2999", "3000_plus"}

// MeetsCSDDDIndividualThresholds reports whether the company itself crosses
// the EU CSDDD size thresholds: 1,000+ employees and €450M+ global turnover.
func MeetsCSDDDIndividualThresholds(as model.AnswerSet) bool {
	return as.OneOf(model.KeyEmployeesIndividual, csdddEmployeeBrackets...) &&
		as.OneOf(model.KeyTurnoverIndividual, csdddTurnoverBrackets...)
}

// MeetsCSDDDGroupThresholds reports whether the consolidated group crosses
// the EU CSDDD thresholds. Only meaningful for ultimate parents; callers
// gate on parent/subsidiary status themselves.
func MeetsCSDDDGroupThresholds(as model.AnswerSet) bool {
	return as.OneOf(model.KeyEmployeesConsolidated, csdddEmployeeBrackets...) &&
		as.OneOf(model.KeyTurnoverConsolidated, csdddTurnoverBrackets...)
}

// meetsCSDDDNonEUIndividualThresholds tests the non-EU pathway: €450M+ EU
// turnover, with no employee criterion.
func meetsCSDDDNonEUIndividualThresholds(as model.AnswerSet) bool {
	return as.OneOf(model.KeyTurnoverIndividual, csdddTurnoverBrackets...)
}

// meetsCSDDDNonEUGroupThresholds tests the non-EU pathway at consolidated
// level: €450M+ EU turnover for the group.
func meetsCSDDDNonEUGroupThresholds(as model.AnswerSet) bool {
	return as.OneOf(model.KeyTurnoverConsolidated, csdddTurnoverBrackets...)
}

// meetsCSDDDIndividualFranchising tests the EU franchising pathway:
// qualifying agreements, €22.5M+ royalties, and €80M+ global turnover.
func meetsCSDDDIndividualFranchising(as model.AnswerSet) bool {
	return as.Is(model.KeyHasFranchisingLicensing, "yes") &&
		as.Is(model.KeyFranchisingLicensing, "yes_meets_criteria") &&
		as.Is(model.KeyFranchiseRoyalties, "yes") &&
		as.OneOf(model.KeyTurnoverIndividual, franchisingTurnoverBrackets...)
}

// meetsCSDDDGroupFranchising tests the franchising pathway for an ultimate
// parent. The questionnaire collects no separate group-level franchising
// data, so the individual-level answers stand in for the group. Known data
// gap, not a deliberate modeling choice.
func meetsCSDDDGroupFranchising(as model.AnswerSet) bool {
	return meetsCSDDDIndividualFranchising(as)
}

// meetsCSDDDNonEUIndividualFranchising is the non-EU franchising variant:
// €22.5M+ EU royalties and €80M+ EU turnover.
func meetsCSDDDNonEUIndividualFranchising(as model.AnswerSet) bool {
	return as.Is(model.KeyHasFranchisingLicensing, "yes") &&
		as.Is(model.KeyFranchisingLicensing, "yes_meets_criteria") &&
		as.Is(model.KeyFranchiseEURoyalties, "yes") &&
		as.OneOf(model.KeyTurnoverIndividual, franchisingTurnoverBrackets...)
}

// meetsCSDDDNonEUGroupFranchising mirrors meetsCSDDDGroupFranchising for the
// non-EU pathway, with the same group-level data gap.
func meetsCSDDDNonEUGroupFranchising(as model.AnswerSet) bool {
	return meetsCSDDDNonEUIndividualFranchising(as)
}

// MeetsCSDDDFranchisingThresholds is the jurisdiction-aware franchising test
// the catalog uses to decide whether the temporal verification step is
// shown.
func MeetsCSDDDFranchisingThresholds(as model.AnswerSet) bool {
	if !as.Is(model.KeyHasFranchisingLicensing, "yes") {
		return false
	}
	if as.Is(model.KeyJurisdiction, "eu") {
		return meetsCSDDDIndividualFranchising(as)
	}
	return meetsCSDDDNonEUIndividualFranchising(as)
}

// IsUltimateParent reports whether the company is a parent undertaking that
// is not itself controlled by another entity.
func IsUltimateParent(as model.AnswerSet) bool {
	return as.Is(model.KeyParentStatus, "yes") && as.Is(model.KeySubsidiaryStatus, "no")
}

// largeUndertakingCriteria evaluates the three Accounting Directive size
// criteria at individual level. Turnover is tested by exclusion of the low
// brackets: everything at or above the 50_80m bracket clears €50M.
func largeUndertakingCriteria(as model.AnswerSet) (employees, turnover, balanceSheet bool) {
	employees = as.OneOf(model.KeyEmployeesIndividual, largeEmployeeBrackets...)
	turnover = as.Has(model.KeyTurnoverIndividual) &&
		!as.OneOf(model.KeyTurnoverIndividual, "under_2m", "2_10m", "10_50m")
	balanceSheet = as.Is(model.KeyBalanceSheetIndividual, "25m_plus")
	return employees, turnover, balanceSheet
}

// IsLargeUndertaking reports whether the company meets at least two of the
// three large-undertaking criteria (250+ employees, €50M+ turnover, €25M+
// balance sheet).
func IsLargeUndertaking(as model.AnswerSet) bool {
	employees, turnover, balanceSheet := largeUndertakingCriteria(as)
	return countTrue(employees, turnover, balanceSheet) >= 2
}

// IsListedSME reports whether the company is an SME with securities on an EU
// regulated market: listed, not a micro-undertaking, and not large.
func IsListedSME(as model.AnswerSet) bool {
	return as.Is(model.KeyListingStatus, "listed_eu") &&
		as.Has(model.KeyEmployeesIndividual) &&
		!as.Is(model.KeyEmployeesIndividual, "under_10") &&
		!IsLargeUndertaking(as)
}

// parentOfLargeGroupCriteria evaluates the three size criteria at
// consolidated level. The consolidated turnover scale has its own brackets,
// so the test is by inclusion here.
func parentOfLargeGroupCriteria(as model.AnswerSet) (employees, turnover, balanceSheet bool) {
	employees = as.OneOf(model.KeyEmployeesConsolidated, largeEmployeeBrackets...)
	turnover = as.OneOf(model.KeyTurnoverConsolidated, "50_450m", "450_900m", "900m_plus")
	balanceSheet = as.Is(model.KeyBalanceSheetConsolidated, "25m_plus")
	return employees, turnover, balanceSheet
}

// IsParentOfLargeGroup reports whether the company heads a group meeting at
// least two of the three size criteria on a consolidated basis.
func IsParentOfLargeGroup(as model.AnswerSet) bool {
	if !as.Is(model.KeyParentStatus, "yes") {
		return false
	}
	employees, turnover, balanceSheet := parentOfLargeGroupCriteria(as)
	return countTrue(employees, turnover, balanceSheet) >= 2
}

// hasQualifyingEUSubsidiary reports whether any EU subsidiary qualifies
// under Article 40a (large undertaking or listed SME).
func hasQualifyingEUSubsidiary(as model.AnswerSet) bool {
	return as.OneOf(model.KeyEUSubsidiaryQualification, "large_undertaking", "listed_sme")
}

// ThirdCountryInScope tests the Article 40a pathway for non-EU companies
// without EU-traded securities: EU turnover over €150M in each of the last
// two consecutive financial years plus a qualifying EU subsidiary, or, only
// when no subsidiary qualifies, a qualifying EU branch (€40M+).
//
// Companies with EU securities trading are excluded here outright; they are
// folded into the EU-entity pathway instead. The consecutive-years
// requirement is already encoded in the both_over_150m option, so there is
// no separate temporal gate.
func ThirdCountryInScope(as model.AnswerSet) bool {
	if as.Is(model.KeyEUSecuritiesTrading, "yes") {
		return false
	}
	if !as.Is(model.KeyEUTurnoverThreshold, "both_over_150m") {
		return false
	}
	if hasQualifyingEUSubsidiary(as) {
		return true
	}
	return as.Is(model.KeyEUBranchTurnover, "over_40m")
}

// countTrue returns how many of the given criteria hold.
func countTrue(criteria ...bool) int {
	n := 0
	for _, c := range criteria {
		if c {
			n++
		}
	}
	return n
}
