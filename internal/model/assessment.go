package model

// Framework identifies one of the assessed sustainability frameworks.
type Framework string

// Assessed frameworks.
const (
	FrameworkUNGPs    Framework = "ungps"
	FrameworkOECD     Framework = "oecd"
	FrameworkCSRD     Framework = "csrd"
	FrameworkTaxonomy Framework = "taxonomy"
	FrameworkCSDDD    Framework = "csddd"
)

// Frameworks lists all assessed frameworks in report order.
var Frameworks = []Framework{
	FrameworkUNGPs,
	FrameworkOECD,
	FrameworkCSRD,
	FrameworkTaxonomy,
	FrameworkCSDDD,
}

// ReportingType indicates the level at which a CSRD report must be prepared.
type ReportingType string

// Reporting type constants.
const (
	ReportingIndividual        ReportingType = "individual"
	ReportingConsolidated      ReportingType = "consolidated"
	ReportingThirdCountryGroup ReportingType = "third_country_group_level"
)

// Exemption codes attached to CSRD verdicts.
const (
	ExemptionIndividualReporting      = "individual_reporting"
	ExemptionSubsidiary29a8           = "subsidiary_exemption_29a8"
	ExemptionSubsidiary19a9           = "subsidiary_exemption_19a9"
	ExemptionOptOutFY2028to2029       = "opt_out_fy2028_2029"
	ExemptionThirdCountryConsolidated = "third_country_consolidated_alternative"
)

// Finding is a single machine-checkable fact behind a verdict: which
// criterion was tested, the respondent's value, what the law requires, and
// whether it passed. The narrative Reason string is rendered from findings,
// never the other way around.
type Finding struct {
	Criterion   string `json:"criterion"`
	Value       string `json:"value"`
	Requirement string `json:"requirement,omitempty"`
	Satisfied   bool   `json:"satisfied"`
}

// PhaseIn describes the Taxonomy reporting phase-in schedule for one
// undertaking type.
type PhaseIn struct {
	Current    string `json:"current"`
	Future     string `json:"future,omitempty"`
	Additional string `json:"additional,omitempty"`
	EntityType string `json:"entityType"`
}

// TaxonomyDetails carries the Taxonomy-specific disclosure facts attached to
// an in-scope Taxonomy verdict.
type TaxonomyDetails struct {
	KPIs       []string `json:"kpis"`
	Objectives []string `json:"objectives"`
	PhaseIn    PhaseIn  `json:"phaseIn"`
}

// AssessmentResult is the applicability verdict for a single framework.
// A fresh value is produced on every assessment; results are never mutated
// across invocations.
type AssessmentResult struct {
	InScope              bool             `json:"inScope"`
	Reason               string           `json:"reason"`
	Findings             []Finding        `json:"findings,omitempty"`
	Timeline             string           `json:"timeline,omitempty"`
	Wave                 int              `json:"wave,omitempty"`
	ReportingType        ReportingType    `json:"reportingType,omitempty"`
	LegalBasis           string           `json:"legalBasis,omitempty"`
	AutomaticExemptions  []string         `json:"automaticExemptions,omitempty"`
	PossibleExemptions   []string         `json:"possibleExemptions,omitempty"`
	NFRDTransition       bool             `json:"nfrdTransition,omitempty"`
	SpecializedTiming    bool             `json:"specializedTiming,omitempty"`
	Details              *TaxonomyDetails `json:"details,omitempty"`
	FutureConsiderations string           `json:"futureConsiderations,omitempty"`
	Note                 string           `json:"note,omitempty"`
}

// Assessment is the complete verdict set produced by one report generation.
// It is immutable once produced; restarting the questionnaire computes a new
// one from scratch.
type Assessment struct {
	UNGPs    AssessmentResult `json:"ungps"`
	OECD     AssessmentResult `json:"oecd"`
	CSRD     AssessmentResult `json:"csrd"`
	Taxonomy AssessmentResult `json:"taxonomy"`
	CSDDD    AssessmentResult `json:"csddd"`
}

// Result returns the verdict for the given framework.
func (a Assessment) Result(f Framework) AssessmentResult {
	switch f {
	case FrameworkUNGPs:
		return a.UNGPs
	case FrameworkOECD:
		return a.OECD
	case FrameworkCSRD:
		return a.CSRD
	case FrameworkTaxonomy:
		return a.Taxonomy
	case FrameworkCSDDD:
		return a.CSDDD
	}
	return AssessmentResult{}
}
