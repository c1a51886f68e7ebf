// Package assess implements the eligibility engine: pure deterministic
// functions mapping an answer set to per-framework applicability verdicts.
// Nothing in this package performs I/O or keeps state between invocations;
// callers may re-run any assessor arbitrarily often.
package assess

import "github.com/greenscope-tools/greenscope/internal/model"

// notSpecified is the label rendered for absent or unrecognized codes.
const notSpecified = "Not specified"

var employeeLabels = map[string]string{
	"under_10":  "Under 10",
	"10_49":     "10-49",
	"50_249":    "50-249",
	"250_499":   "250-499",
	"500_999":   "500-999",
	"1000_2999": "1,000-2,999",
	"3000_plus": "3,000+",
	"under_250": "Under 250",
}

var turnoverLabels = map[string]string{
	"under_2m":  "Under €2M",
	"2_10m":     "€2-10M",
	"10_50m":    "€10-50M",
	"50_80m":    "€50-80M",
	"80_150m":   "€80-150M",
	"150_450m":  "€150-450M",
	"450_900m":  "€450-900M",
	"900m_plus": "€900M+",
	"under_50m": "Under €50M",
	"50_450m":   "€50-450M",
}

var balanceSheetLabels = map[string]string{
	"under_2m":  "Under €2M",
	"2_5m":      "€2-5M",
	"5_25m":     "€5-25M",
	"25m_plus":  "€25M+",
	"under_25m": "Under €25M",
}

// EmployeeLabel returns the human-readable label for an employee bracket code.
func EmployeeLabel(code string) string {
	if l, ok := employeeLabels[code]; ok {
		return l
	}
	return notSpecified
}

// TurnoverLabel returns the human-readable label for a turnover bracket code.
func TurnoverLabel(code string) string {
	if l, ok := turnoverLabels[code]; ok {
		return l
	}
	return notSpecified
}

// BalanceSheetLabel returns the human-readable label for a balance sheet
// bracket code.
func BalanceSheetLabel(code string) string {
	if l, ok := balanceSheetLabels[code]; ok {
		return l
	}
	return notSpecified
}

// TaxonomyKPIs are the disclosure KPIs every in-scope undertaking reports on.
var TaxonomyKPIs = []string{"Turnover", "CapEx", "OpEx"}

// TaxonomyObjectives are the six environmental objectives of the Taxonomy
// Regulation.
var TaxonomyObjectives = []string{
	"Climate change mitigation",
	"Climate change adaptation",
	"Sustainable use and protection of water and marine resources",
	"Transition to a circular economy",
	"Pollution prevention and control",
	"Protection and restoration of biodiversity and ecosystems",
}

// FrameworkInfo carries the static reference texts for one framework.
type FrameworkInfo struct {
	Name        string
	Description string
	Details     string
}

// Reference holds the per-framework reference texts used by the report and
// the frameworks subcommand.
var Reference = map[model.Framework]FrameworkInfo{
	model.FrameworkUNGPs: {
		Name:        "UN Guiding Principles",
		Description: "International framework for business responsibility to respect human rights.",
		Details: "The UN Guiding Principles on Business and Human Rights establish that all businesses have a " +
			"responsibility to respect human rights. This includes conducting human rights due diligence to identify, " +
			"prevent, and mitigate adverse impacts, and providing access to remedy when harm occurs. The principles " +
			"apply regardless of company size, sector, operational context, ownership, or structure.",
	},
	model.FrameworkOECD: {
		Name:        "OECD Guidelines",
		Description: "Guidelines for responsible business conduct by multinational enterprises.",
		Details: "The OECD Guidelines for Multinational Enterprises provide recommendations for responsible business " +
			"conduct. They cover human rights, employment relations, environment, bribery, consumer interests, and " +
			"other areas. While voluntary, they represent the most comprehensive international framework for corporate " +
			"responsibility and are backed by a unique grievance mechanism.",
	},
	model.FrameworkCSRD: {
		Name:        "CSRD/ESRS",
		Description: "EU directive requiring detailed sustainability reporting and third-party assurance.",
		Details: "The Corporate Sustainability Reporting Directive requires companies to disclose information about " +
			"their impact on people and the environment, and how sustainability matters affect their business. Reports " +
			"must follow the European Sustainability Reporting Standards (ESRS) and undergo mandatory third-party " +
			"assurance. This creates transparency and accountability for corporate sustainability performance.",
	},
	model.FrameworkTaxonomy: {
		Name:        "EU Taxonomy",
		Description: "EU classification system defining environmentally sustainable economic activities.",
		Details: "The EU Taxonomy Regulation establishes criteria for determining whether economic activities qualify " +
			"as environmentally sustainable. Companies subject to CSRD must disclose the proportion of their activities " +
			"that align with taxonomy criteria. This helps investors identify sustainable investments and supports the " +
			"EU's climate and environmental goals.",
	},
	model.FrameworkCSDDD: {
		Name:        "CSDDD",
		Description: "EU directive mandating human rights and environmental due diligence across value chains.",
		Details: "The Corporate Sustainability Due Diligence Directive requires companies to identify, prevent, " +
			"mitigate, and account for negative human rights and environmental impacts in their operations and value " +
			"chains. This includes establishing due diligence processes, engaging with stakeholders, and providing " +
			"access to remedy. The directive aims to promote sustainable and responsible corporate behavior globally.",
	},
}
