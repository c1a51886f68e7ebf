package assess

import "github.com/greenscope-tools/greenscope/internal/model"

// CSDDD compliance timelines per wave.
const (
	timelineCSDDDWave1 = "Wave 1: From 26 July 2028"
	timelineCSDDDWave2 = "Wave 2: From 26 July 2029"
)

// csdddConsecutiveYearsNote is attached to every in-scope CSDDD verdict.
const csdddConsecutiveYearsNote = "Obligations begin only after meeting thresholds for two consecutive financial years."

// csdddPathway identifies which branch of the CSDDD decision matrix placed
// the company in scope. The pathway picks the wave test and reason wording.
type csdddPathway string

const (
	pathwayIndividualEU             csdddPathway = "individual_eu_company"
	pathwayUltimateParentEU         csdddPathway = "ultimate_parent_eu_group"
	pathwayIndividualEUFranchise    csdddPathway = "individual_eu_franchising"
	pathwayParentEUFranchise        csdddPathway = "ultimate_parent_eu_franchising"
	pathwayIndividualNonEU          csdddPathway = "individual_non_eu_company"
	pathwayUltimateParentNonEU      csdddPathway = "ultimate_parent_non_eu_group"
	pathwayIndividualNonEUFranchise csdddPathway = "individual_non_eu_franchising"
	pathwayParentNonEUFranchise     csdddPathway = "ultimate_parent_non_eu_franchising"
)

// csdddBranch pairs a threshold predicate with the pathway it establishes.
// Branches are evaluated in priority order; the first match wins. Every
// branch is additionally gated on the two-consecutive-financial-years
// answer; meeting the numeric thresholds alone never places a company in
// scope.
type csdddBranch struct {
	pathway csdddPathway
	applies func(model.AnswerSet) bool
}

var csdddEUBranches = []csdddBranch{
	{pathwayIndividualEU, MeetsCSDDDIndividualThresholds},
	{pathwayUltimateParentEU, func(as model.AnswerSet) bool {
		return IsUltimateParent(as) && MeetsCSDDDGroupThresholds(as)
	}},
	{pathwayIndividualEUFranchise, meetsCSDDDIndividualFranchising},
	{pathwayParentEUFranchise, func(as model.AnswerSet) bool {
		return IsUltimateParent(as) && meetsCSDDDGroupFranchising(as)
	}},
}

var csdddNonEUBranches = []csdddBranch{
	{pathwayIndividualNonEU, meetsCSDDDNonEUIndividualThresholds},
	{pathwayUltimateParentNonEU, func(as model.AnswerSet) bool {
		return IsUltimateParent(as) && meetsCSDDDNonEUGroupThresholds(as)
	}},
	{pathwayIndividualNonEUFranchise, meetsCSDDDNonEUIndividualFranchising},
	{pathwayParentNonEUFranchise, func(as model.AnswerSet) bool {
		return IsUltimateParent(as) && meetsCSDDDNonEUGroupFranchising(as)
	}},
}

// AssessCSDDD classifies the company against the CSDDD decision matrix per
// jurisdiction and returns its verdict with wave assignment.
func AssessCSDDD(as model.AnswerSet) model.AssessmentResult {
	var branches []csdddBranch
	switch {
	case as.Is(model.KeyJurisdiction, "eu"):
		branches = csdddEUBranches
	case as.Is(model.KeyJurisdiction, "non_eu"):
		branches = csdddNonEUBranches
	default:
		findings := []model.Finding{
			finding("Jurisdiction", notSpecified, "assessment incomplete", false),
		}
		return model.AssessmentResult{
			InScope:  false,
			Reason:   notInScopeReason("CSDDD", findings),
			Findings: findings,
		}
	}

	consecutive := as.Is(model.KeyConsecutiveYearsCSDDD, "yes")
	for _, branch := range branches {
		if branch.applies(as) && consecutive {
			return csdddTimeline(branch.pathway, as)
		}
	}
	return csdddExcluded(as)
}

// csdddWave1Tier reports whether the higher threshold tier for the pathway
// is met: 3,000+ employees and €900M+ turnover for EU pathways, €900M+ EU
// turnover for non-EU pathways. Franchising pathways share the same test and
// in practice land in Wave 2 since no higher franchising tier exists.
func csdddWave1Tier(p csdddPathway, as model.AnswerSet) bool {
	switch p {
	case pathwayIndividualNonEU, pathwayIndividualNonEUFranchise:
		return as.Is(model.KeyTurnoverIndividual, "900m_plus")
	case pathwayUltimateParentNonEU, pathwayParentNonEUFranchise:
		return as.Is(model.KeyTurnoverIndividual, "900m_plus")
	case pathwayUltimateParentEU, pathwayParentEUFranchise:
		return as.Is(model.KeyEmployeesConsolidated, "3000_plus") &&
			as.Is(model.KeyTurnoverConsolidated, "900m_plus")
	}
	return as.Is(model.KeyEmployeesIndividual, "3000_plus") &&
		as.Is(model.KeyTurnoverIndividual, "900m_plus")
}

// csdddTimeline assigns the wave and builds the in-scope verdict for the
// matched pathway.
func csdddTimeline(p csdddPathway, as model.AnswerSet) model.AssessmentResult {
	result := model.AssessmentResult{
		InScope:    true,
		LegalBasis: LegalBasisCSDDD,
		Note:       csdddConsecutiveYearsNote,
		Findings: []model.Finding{
			finding("Thresholds met for two consecutive financial years", "Yes", "", true),
		},
	}

	if csdddWave1Tier(p, as) {
		result.Wave = 1
		result.Timeline = timelineCSDDDWave1
	} else {
		result.Wave = 2
		result.Timeline = timelineCSDDDWave2
	}

	switch p {
	case pathwayIndividualEU:
		if result.Wave == 1 {
			result.Reason = "3,000+ employees and €900M+ global turnover (individual)."
		} else {
			result.Reason = "1,000+ employees and €450M+ global turnover (individual)."
		}
	case pathwayUltimateParentEU:
		if result.Wave == 1 {
			result.Reason = "3,000+ employees and €900M+ global turnover (group level)."
		} else {
			result.Reason = "1,000+ employees and €450M+ global turnover (group level)."
		}
	case pathwayIndividualEUFranchise:
		result.Reason = "EU franchising agreements with €22.5M+ royalties and €80M+ global turnover (individual)."
	case pathwayParentEUFranchise:
		result.Reason = "EU franchising agreements with €22.5M+ royalties and €80M+ global turnover (group level)."
	case pathwayIndividualNonEU:
		if result.Wave == 1 {
			result.Reason = "€900M+ EU turnover (individual)."
		} else {
			result.Reason = "€450M+ EU turnover (individual)."
		}
	case pathwayUltimateParentNonEU:
		if as.Is(model.KeyTurnoverConsolidated, "900m_plus") {
			result.Reason = "€900M+ EU turnover (group level)."
		} else {
			result.Reason = "€450M+ EU turnover (group level)."
		}
	case pathwayIndividualNonEUFranchise:
		result.Reason = "EU franchising agreements with €22.5M+ EU royalties and €80M+ EU turnover (individual)."
	case pathwayParentNonEUFranchise:
		result.Reason = "EU franchising agreements with €22.5M+ EU royalties and €80M+ EU turnover (group level)."
	default:
		result.Reason = "Meets CSDDD thresholds."
	}
	return result
}

// consecutiveYearsFinding describes the state of the temporal gate for a
// company whose numeric thresholds are otherwise met.
func consecutiveYearsFinding(as model.AnswerSet) model.Finding {
	switch as.Get(model.KeyConsecutiveYearsCSDDD) {
	case "no":
		return finding("Consecutive years requirement", "Not satisfied", "thresholds must hold for two consecutive financial years", false)
	case "uncertain":
		return finding("Consecutive years requirement", "Uncertain", "thresholds must hold for two consecutive financial years", false)
	}
	return finding("Consecutive years requirement", "Not verified", "thresholds must hold for two consecutive financial years", false)
}

// csdddExcluded explains why the company stays outside CSDDD: individual
// thresholds, group status, and the franchising pathway, clause by clause.
func csdddExcluded(as model.AnswerSet) model.AssessmentResult {
	eu := as.Is(model.KeyJurisdiction, "eu")
	var findings []model.Finding

	if eu {
		meetsEmployees := as.OneOf(model.KeyEmployeesIndividual, csdddEmployeeBrackets...)
		meetsTurnover := as.OneOf(model.KeyTurnoverIndividual, csdddTurnoverBrackets...)
		findings = append(findings,
			finding("Employees (individual)", EmployeeLabel(as.Get(model.KeyEmployeesIndividual)), "need 1,000+", meetsEmployees),
			finding("Global turnover (individual)", TurnoverLabel(as.Get(model.KeyTurnoverIndividual)), "need €450M+", meetsTurnover),
		)
		if meetsEmployees && meetsTurnover {
			findings = append(findings, consecutiveYearsFinding(as))
		}
	} else {
		meetsTurnover := meetsCSDDDNonEUIndividualThresholds(as)
		findings = append(findings,
			finding("EU turnover (individual)", TurnoverLabel(as.Get(model.KeyTurnoverIndividual)), "need €450M+", meetsTurnover),
		)
		if meetsTurnover {
			findings = append(findings, consecutiveYearsFinding(as))
		}
	}

	switch {
	case IsUltimateParent(as):
		findings = append(findings, finding("Group status", "Ultimate parent", "", true))
		if eu {
			meetsGroupEmployees := as.OneOf(model.KeyEmployeesConsolidated, csdddEmployeeBrackets...)
			meetsGroupTurnover := as.OneOf(model.KeyTurnoverConsolidated, csdddTurnoverBrackets...)
			findings = append(findings,
				finding("Employees (consolidated)", EmployeeLabel(as.Get(model.KeyEmployeesConsolidated)), "need 1,000+", meetsGroupEmployees),
				finding("Global turnover (consolidated)", TurnoverLabel(as.Get(model.KeyTurnoverConsolidated)), "need €450M+", meetsGroupTurnover),
			)
			if meetsGroupEmployees && meetsGroupTurnover {
				findings = append(findings, consecutiveYearsFinding(as))
			}
		} else {
			meetsGroupTurnover := meetsCSDDDNonEUGroupThresholds(as)
			findings = append(findings,
				finding("EU turnover (consolidated)", TurnoverLabel(as.Get(model.KeyTurnoverConsolidated)), "need €450M+", meetsGroupTurnover),
			)
			if meetsGroupTurnover {
				findings = append(findings, consecutiveYearsFinding(as))
			}
		}
	case as.Is(model.KeyParentStatus, "yes"):
		findings = append(findings, finding("Group status", "Parent but not ultimate parent", "", false))
	default:
		findings = append(findings, finding("Group status", "Not a parent company", "", false))
	}

	switch {
	case as.Is(model.KeyHasFranchisingLicensing, "yes") && as.Is(model.KeyFranchisingLicensing, "yes_meets_criteria"):
		meetsTurnover := as.OneOf(model.KeyTurnoverIndividual, franchisingTurnoverBrackets...)
		royaltyKey := model.KeyFranchiseRoyalties
		turnoverNote := "need €80M+ global turnover"
		royaltyNote := "need €22.5M+ royalties"
		if !eu {
			royaltyKey = model.KeyFranchiseEURoyalties
			turnoverNote = "need €80M+ EU turnover"
			royaltyNote = "need €22.5M+ EU royalties"
		}
		meetsRoyalties := as.Is(royaltyKey, "yes")
		findings = append(findings,
			finding("Franchising agreements", "Qualifying agreements exist", "", true),
			finding("Franchising turnover", TurnoverLabel(as.Get(model.KeyTurnoverIndividual)), turnoverNote, meetsTurnover),
			finding("Franchising royalties", yesNo(meetsRoyalties), royaltyNote, meetsRoyalties),
		)
	case as.Is(model.KeyHasFranchisingLicensing, "yes"):
		findings = append(findings, finding("Franchising agreements", "Agreements exist but do not meet CSDDD criteria", "", false))
	default:
		findings = append(findings, finding("Franchising agreements", "No qualifying agreements", "", false))
	}

	return model.AssessmentResult{
		InScope:  false,
		Reason:   notInScopeReason("CSDDD", findings),
		Findings: findings,
	}
}
