package assess

import (
	"fmt"

	"github.com/greenscope-tools/greenscope/internal/model"
)

// Legal basis strings attached to verdicts. The Taxonomy derivation keys off
// LegalBasisArticle40a, so these are exact-match constants rather than
// display-only text.
const (
	LegalBasisArticle19a   = "Article 19a Accounting Directive"
	LegalBasisArticle29a   = "Article 29a Accounting Directive"
	LegalBasisArticle40a   = "Article 40a Accounting Directive"
	LegalBasisTaxonomy     = "Article 8 of Regulation (EU) 2020/852 (EU Taxonomy)"
	LegalBasisCSDDD        = "Directive (EU) 2024/1760 (CSDDD)"
	legalBasisTransparency = " + Article 4(5) Transparency Directive"
)

// CSRD reporting timelines per wave.
const (
	timelineCSRDWave1 = "Wave 1: Reporting started in 2025 for FY 2024"
	timelineCSRDWave2 = "Wave 2: Reporting starts in 2028 for FY starting ≥1 January 2027"
	timelineCSRDWave3 = "Wave 3: Reporting starts in 2029 for FY starting ≥1 January 2028"
)

var over500Brackets = []string{"500_999", "1000_2999", "3000_plus"}

// csrdFacts are the derived facts every CSRD branch decides on, computed
// once per assessment.
type csrdFacts struct {
	financialType        string
	largeUndertaking     bool
	listedSME            bool
	parentOfLargeGroup   bool
	isListed             bool
	nonEUWithSecurities  bool
	treatAsEUEntity      bool
	effectivelyPIE       bool
	effectivelyListed    bool
	over500Individual    bool
	over500Consolidated  bool
	specializedFinancial bool
	microUndertaking     bool
}

func gatherCSRDFacts(as model.AnswerSet) csrdFacts {
	f := csrdFacts{
		financialType:       as.Get(model.KeyFinancialType),
		largeUndertaking:    IsLargeUndertaking(as),
		listedSME:           IsListedSME(as),
		parentOfLargeGroup:  IsParentOfLargeGroup(as),
		isListed:            as.Is(model.KeyListingStatus, "listed_eu"),
		nonEUWithSecurities: as.Is(model.KeyJurisdiction, "non_eu") && as.Is(model.KeyEUSecuritiesTrading, "yes"),
		over500Individual:   as.OneOf(model.KeyEmployeesIndividual, over500Brackets...),
		over500Consolidated: as.OneOf(model.KeyEmployeesConsolidated, over500Brackets...),
		microUndertaking:    as.Is(model.KeyEmployeesIndividual, "under_10"),
	}

	// Non-EU companies with EU-traded securities are folded into the EU
	// pathway and count as PIE and listed under EU law regardless of their
	// own listing answer.
	isPIE := f.isListed || as.Is(model.KeyPublicInterest, "yes")
	f.treatAsEUEntity = as.Is(model.KeyJurisdiction, "eu") || f.nonEUWithSecurities
	f.effectivelyPIE = isPIE || f.nonEUWithSecurities
	f.effectivelyListed = f.isListed || f.nonEUWithSecurities
	f.specializedFinancial = f.financialType == "snci" || f.financialType == "captive_insurance"
	return f
}

// csrdBranch pairs a predicate with an outcome builder. The EU pathway is an
// ordered first-match list so the tie-break priority is auditable: parent of
// large group strictly before large undertaking, strictly before listed SME.
type csrdBranch struct {
	applies func(csrdFacts, model.AnswerSet) bool
	build   func(csrdFacts, model.AnswerSet) model.AssessmentResult
	name    string
}

var csrdEUPathway = []csrdBranch{
	{
		name:    "parent_of_large_group",
		applies: func(f csrdFacts, _ model.AnswerSet) bool { return f.parentOfLargeGroup },
		build:   buildCSRDParentOfGroup,
	},
	{
		name:    "large_undertaking",
		applies: func(f csrdFacts, _ model.AnswerSet) bool { return f.largeUndertaking },
		build:   buildCSRDLargeUndertaking,
	},
	{
		name: "listed_sme",
		applies: func(f csrdFacts, as model.AnswerSet) bool {
			if f.listedSME {
				return true
			}
			// Non-EU companies with EU securities reach Wave 3 as listed
			// SMEs when they are neither large nor micro.
			return f.nonEUWithSecurities && !f.largeUndertaking &&
				as.Has(model.KeyEmployeesIndividual) && !f.microUndertaking
		},
		build: buildCSRDListedSME,
	},
}

// AssessCSRD classifies the company against the CSRD decision matrix and
// returns its verdict, including wave assignment, reporting level, legal
// basis, and exemption flags.
func AssessCSRD(as model.AnswerSet) model.AssessmentResult {
	f := gatherCSRDFacts(as)

	switch {
	case f.treatAsEUEntity:
		for _, branch := range csrdEUPathway {
			if branch.applies(f, as) {
				return branch.build(f, as)
			}
		}
		return csrdExcluded(f, as)
	case as.Is(model.KeyJurisdiction, "non_eu"):
		if ThirdCountryInScope(as) {
			return csrdThirdCountry(as)
		}
		return csrdArticle40aExcluded(as)
	}

	findings := []model.Finding{
		finding("Jurisdiction", notSpecified, "assessment incomplete", false),
	}
	return model.AssessmentResult{
		InScope:  false,
		Reason:   notInScopeReason("CSRD", findings),
		Findings: findings,
	}
}

// csrdLegalBasis appends the Transparency Directive reference for entities
// that are effectively listed on an EU regulated market.
func csrdLegalBasis(base string, f csrdFacts) string {
	if f.effectivelyListed {
		return base + legalBasisTransparency
	}
	return base
}

func buildCSRDParentOfGroup(f csrdFacts, as model.AnswerSet) model.AssessmentResult {
	nonEU := as.Is(model.KeyJurisdiction, "non_eu")

	result := model.AssessmentResult{
		InScope:             true,
		ReportingType:       model.ReportingConsolidated,
		AutomaticExemptions: []string{model.ExemptionIndividualReporting},
		LegalBasis:          csrdLegalBasis(LegalBasisArticle29a, f),
		Findings: []model.Finding{
			finding("Parent of large group", "Yes", "2 of 3 consolidated size criteria", true),
		},
	}
	if !f.effectivelyListed {
		result.PossibleExemptions = []string{model.ExemptionSubsidiary29a8}
	}

	if f.effectivelyPIE && f.over500Consolidated {
		result.Wave = 1
		result.Timeline = timelineCSRDWave1
		if nonEU {
			result.Reason = "Non-EU parent of large group with securities on EU regulated market and >500 employees (consolidated)."
		} else {
			result.Reason = "Parent of large group that is PIE with >500 employees (consolidated)."
		}
		result.Findings = append(result.Findings,
			finding("Public Interest Entity with >500 consolidated employees", "Yes", "", true))
		return result
	}

	result.Wave = 2
	result.Timeline = timelineCSRDWave2
	if nonEU {
		result.Reason = "Non-EU parent of large group with securities on EU regulated market."
	} else {
		result.Reason = "Parent of large group."
	}
	return result
}

// specializedFinancialName spells out the specialized financial entity
// category used in reasons.
func specializedFinancialName(financialType string) string {
	if financialType == "snci" {
		return "small and non-complex institution"
	}
	return "captive insurance undertaking"
}

func buildCSRDLargeUndertaking(f csrdFacts, as model.AnswerSet) model.AssessmentResult {
	nonEU := as.Is(model.KeyJurisdiction, "non_eu")

	result := model.AssessmentResult{
		InScope:             true,
		ReportingType:       model.ReportingIndividual,
		AutomaticExemptions: []string{},
		LegalBasis:          csrdLegalBasis(LegalBasisArticle19a, f),
		Findings: []model.Finding{
			finding("Large undertaking", "Yes", "2 of 3 size criteria", true),
		},
	}
	if !f.effectivelyListed {
		result.PossibleExemptions = []string{model.ExemptionSubsidiary19a9}
	}

	// Small and non-complex institutions and captive insurers always report
	// in Wave 3, regardless of PIE status or headcount.
	if f.specializedFinancial {
		result.Wave = 3
		result.Timeline = timelineCSRDWave3
		result.SpecializedTiming = true
		result.NFRDTransition = f.effectivelyPIE && f.over500Individual
		if nonEU {
			result.Reason = fmt.Sprintf("Non-EU large %s with securities on EU regulated market.", specializedFinancialName(f.financialType))
		} else {
			result.Reason = fmt.Sprintf("Large %s.", specializedFinancialName(f.financialType))
		}
		return result
	}

	if f.effectivelyPIE && f.over500Individual {
		result.Wave = 1
		result.Timeline = timelineCSRDWave1
		if nonEU {
			result.Reason = "Non-EU large undertaking with securities on EU regulated market and >500 employees."
		} else {
			result.Reason = "Large undertaking that is PIE with >500 employees."
		}
		result.Findings = append(result.Findings,
			finding("Public Interest Entity with >500 employees", "Yes", "", true))
		return result
	}

	result.Wave = 2
	result.Timeline = timelineCSRDWave2
	if nonEU {
		result.Reason = "Non-EU large undertaking with securities on EU regulated market."
	} else {
		result.Reason = "Large undertaking."
	}
	return result
}

func buildCSRDListedSME(f csrdFacts, as model.AnswerSet) model.AssessmentResult {
	nonEU := as.Is(model.KeyJurisdiction, "non_eu")

	suffix := ""
	if f.specializedFinancial {
		suffix = fmt.Sprintf(" (%s)", specializedFinancialName(f.financialType))
	}
	reason := fmt.Sprintf("SME with securities admitted to trading on EU regulated market%s.", suffix)
	if nonEU {
		reason = fmt.Sprintf("Non-EU SME (excluding micro-undertakings) with securities admitted to trading on EU regulated market%s.", suffix)
	}

	possible := []string{model.ExemptionSubsidiary19a9}
	if f.listedSME || nonEU {
		possible = []string{model.ExemptionOptOutFY2028to2029, model.ExemptionSubsidiary19a9}
	}

	return model.AssessmentResult{
		InScope:             true,
		Wave:                3,
		Timeline:            timelineCSRDWave3,
		Reason:              reason,
		ReportingType:       model.ReportingIndividual,
		AutomaticExemptions: []string{},
		PossibleExemptions:  possible,
		SpecializedTiming:   f.specializedFinancial,
		LegalBasis:          csrdLegalBasis(LegalBasisArticle19a, f),
		Findings: []model.Finding{
			finding("SME with EU-listed securities", "Yes", "listed, not micro, not large", true),
		},
	}
}

// csrdExcluded explains why an EU-pathway entity stays out of scope: the
// size criteria counts, group status, PIE/listing flags, and the
// micro-undertaking exclusion.
func csrdExcluded(f csrdFacts, as model.AnswerSet) model.AssessmentResult {
	employees, turnover, balanceSheet := largeUndertakingCriteria(as)
	findings := []model.Finding{
		finding("Employees (individual)", EmployeeLabel(as.Get(model.KeyEmployeesIndividual)), "need 250+", employees),
		finding("Turnover (individual)", TurnoverLabel(as.Get(model.KeyTurnoverIndividual)), "need €50M+", turnover),
		finding("Balance sheet (individual)", BalanceSheetLabel(as.Get(model.KeyBalanceSheetIndividual)), "need €25M+", balanceSheet),
		finding("Large undertaking criteria met",
			fmt.Sprintf("%d of 3", countTrue(employees, turnover, balanceSheet)), "need 2 of 3", false),
	}

	if as.Is(model.KeyParentStatus, "yes") {
		groupEmployees, groupTurnover, groupBalanceSheet := parentOfLargeGroupCriteria(as)
		findings = append(findings,
			finding("Employees (consolidated)", EmployeeLabel(as.Get(model.KeyEmployeesConsolidated)), "need 250+", groupEmployees),
			finding("Turnover (consolidated)", TurnoverLabel(as.Get(model.KeyTurnoverConsolidated)), "need €50M+", groupTurnover),
			finding("Balance sheet (consolidated)", BalanceSheetLabel(as.Get(model.KeyBalanceSheetConsolidated)), "need €25M+", groupBalanceSheet),
			finding("Parent of large group criteria met",
				fmt.Sprintf("%d of 3", countTrue(groupEmployees, groupTurnover, groupBalanceSheet)), "need 2 of 3", false),
		)
	} else {
		findings = append(findings, finding("Parent status", "No", "", false))
	}

	findings = append(findings,
		finding("Public Interest Entity", yesNo(f.effectivelyPIE), "", f.effectivelyPIE),
		finding("Listed on EU regulated market", yesNo(f.effectivelyListed), "", f.effectivelyListed),
	)
	if f.microUndertaking {
		findings = append(findings, finding("Micro-undertaking status", "Yes", "excluded from CSRD", false))
	}

	return model.AssessmentResult{
		InScope:  false,
		Reason:   notInScopeReason("CSRD", findings),
		Findings: findings,
	}
}

func csrdThirdCountry(as model.AnswerSet) model.AssessmentResult {
	reason := "Third-country undertaking (Article 40a): EU turnover >€150M for two consecutive years and qualifying EU subsidiary."
	qualifier := finding("Qualifying EU subsidiary", "Yes", "large undertaking or listed SME", true)
	if !hasQualifyingEUSubsidiary(as) {
		reason = "Third-country undertaking (Article 40a): EU turnover >€150M for two consecutive years and EU branch >€40M (no qualifying subsidiary)."
		qualifier = finding("Qualifying EU branch", "Over €40M", "only consulted absent a qualifying subsidiary", true)
	}

	return model.AssessmentResult{
		InScope:             true,
		Wave:                3,
		Timeline:            timelineCSRDWave3,
		Reason:              reason,
		ReportingType:       model.ReportingThirdCountryGroup,
		AutomaticExemptions: []string{},
		PossibleExemptions:  []string{model.ExemptionThirdCountryConsolidated},
		LegalBasis:          LegalBasisArticle40a,
		Findings: []model.Finding{
			finding("EU turnover", "Over €150M in both of the last two financial years", "", true),
			qualifier,
		},
	}
}

// csrdArticle40aExcluded explains why a non-EU company without EU-traded
// securities falls outside Article 40a.
func csrdArticle40aExcluded(as model.AnswerSet) model.AssessmentResult {
	findings := []model.Finding{
		finding("EU securities trading", "No", "", false),
		finding("EU turnover", TurnoverLabel(as.Get(model.KeyTurnoverIndividual)),
			"need >€150M for two consecutive years", as.Is(model.KeyEUTurnoverThreshold, "both_over_150m")),
	}

	if as.Is(model.KeyEUTurnoverThreshold, "both_over_150m") {
		presence := as.Get(model.KeyEUCorporatePresence)
		if presence == "" {
			presence = notSpecified
		}
		findings = append(findings, finding("EU corporate presence", presence, "", false))

		if as.Has(model.KeyEUSubsidiaryQualification) {
			findings = append(findings, finding("EU subsidiary qualification",
				subsidiaryQualificationLabel(as.Get(model.KeyEUSubsidiaryQualification)),
				"large undertaking or listed SME", hasQualifyingEUSubsidiary(as)))
		}
		if as.Has(model.KeyEUBranchTurnover) {
			qualifies := as.Is(model.KeyEUBranchTurnover, "over_40m")
			value := "€40M or under (not qualifying)"
			if qualifies {
				value = "Over €40M (qualifying)"
			}
			findings = append(findings, finding("EU branch turnover", value, "need >€40M", qualifies))
		}
	}

	return model.AssessmentResult{
		InScope:  false,
		Reason:   notInScopeReason("CSRD", findings),
		Findings: findings,
	}
}

func subsidiaryQualificationLabel(code string) string {
	switch code {
	case "large_undertaking":
		return "Large undertaking"
	case "listed_sme":
		return "Listed SME"
	case "other_sme":
		return "Other SME (not qualifying)"
	case "micro_undertaking":
		return "Micro-undertaking (not qualifying)"
	}
	return "None"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
