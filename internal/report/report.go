// Package report renders a completed assessment as styled terminal text or
// machine-readable JSON. Rendering never mutates the assessment.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/greenscope-tools/greenscope/internal/assess"
	"github.com/greenscope-tools/greenscope/internal/cli"
	"github.com/greenscope-tools/greenscope/internal/model"
)

// Disclaimer is appended to every rendered report.
const Disclaimer = "This assessment is an automated, indicative analysis based on your answers. It does not " +
	"constitute legal advice. Threshold values and timelines reflect the legislation as adopted and may change " +
	"through amendments such as the Omnibus proposals. Consult qualified legal counsel before relying on these " +
	"results."

var exemptionLabels = map[string]string{
	model.ExemptionIndividualReporting: "Exempt from individual reporting because the group reports on a " +
		"consolidated basis (Article 19a(9) Accounting Directive)",
	model.ExemptionSubsidiary29a8: "Possible subsidiary exemption if included in a parent's consolidated " +
		"sustainability report (Article 29a(8) Accounting Directive)",
	model.ExemptionSubsidiary19a9: "Possible subsidiary exemption if included in a parent's consolidated " +
		"sustainability report (Article 19a(9) Accounting Directive)",
	model.ExemptionOptOutFY2028to2029: "Listed SME opt-out available for financial years starting before " +
		"1 January 2028 (reporting may be deferred to FY 2028)",
	model.ExemptionThirdCountryConsolidated: "Reporting may alternatively be prepared at group level by the " +
		"third-country ultimate parent (Article 40a)",
}

func exemptionLabel(code string) string {
	if l, ok := exemptionLabels[code]; ok {
		return l
	}
	return code
}

// Render produces the full styled text report for a completed assessment.
func Render(a model.Assessment, as model.AnswerSet) string {
	var b strings.Builder

	b.WriteString(cli.FormatTitle("EU Sustainability Framework Assessment"))
	b.WriteString("\n\n")

	for _, fw := range model.Frameworks {
		b.WriteString(renderFramework(fw, a.Result(fw)))
		b.WriteString("\n")
	}

	b.WriteString(cli.SubtleStyle.Render(Disclaimer))
	b.WriteString("\n")
	return b.String()
}

func renderFramework(fw model.Framework, r model.AssessmentResult) string {
	info := assess.Reference[fw]

	var b strings.Builder
	b.WriteString(cli.BoldStyle.Render(info.Name))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(info.Description))
	b.WriteString("\n")

	if r.InScope {
		b.WriteString(cli.FormatSuccess("In scope"))
	} else {
		b.WriteString(cli.FormatInfo("Not in scope"))
	}
	b.WriteString("\n")

	if r.Reason != "" {
		b.WriteString(r.Reason)
		b.WriteString("\n")
	}

	for _, f := range r.Findings {
		b.WriteString("  ")
		b.WriteString(renderFinding(f))
		b.WriteString("\n")
	}

	if r.Timeline != "" {
		b.WriteString(field("Timeline", r.Timeline))
	}
	if r.Wave > 0 {
		b.WriteString(field("Wave", fmt.Sprintf("%d", r.Wave)))
	}
	if r.ReportingType != "" {
		b.WriteString(field("Reporting level", reportingTypeLabel(r.ReportingType)))
	}
	if r.LegalBasis != "" {
		b.WriteString(field("Legal basis", r.LegalBasis))
	}
	if r.NFRDTransition {
		b.WriteString(field("Transition", "Previously subject to NFRD reporting; CSRD continues that obligation"))
	}
	if r.SpecializedTiming {
		b.WriteString(field("Timing", "Specialized financial institution schedule applies"))
	}

	if len(r.AutomaticExemptions) > 0 {
		b.WriteString(cli.BoldStyle.Render("Automatic exemptions:"))
		b.WriteString("\n")
		for _, e := range r.AutomaticExemptions {
			b.WriteString("  " + cli.SuccessIcon + " " + exemptionLabel(e) + "\n")
		}
	}
	if len(r.PossibleExemptions) > 0 {
		b.WriteString(cli.BoldStyle.Render("Possible exemptions:"))
		b.WriteString("\n")
		for _, e := range r.PossibleExemptions {
			b.WriteString("  " + cli.InfoIcon + " " + exemptionLabel(e) + "\n")
		}
	}

	if r.Details != nil {
		b.WriteString(renderTaxonomyDetails(r.Details))
	}

	if r.FutureConsiderations != "" {
		b.WriteString(cli.WarningStyle.Render("Future considerations: " + r.FutureConsiderations))
		b.WriteString("\n")
	}
	if r.Note != "" {
		b.WriteString(cli.SubtleStyle.Render("Note: " + r.Note))
		b.WriteString("\n")
	}

	return b.String()
}

func renderFinding(f model.Finding) string {
	icon := cli.StyleError(cli.ErrorIcon)
	if f.Satisfied {
		icon = cli.StyleSuccess(cli.SuccessIcon)
	}
	s := icon + " " + f.Criterion + ": " + f.Value
	if f.Requirement != "" {
		s += " " + cli.SubtleStyle.Render("("+f.Requirement+")")
	}
	return s
}

func renderTaxonomyDetails(d *model.TaxonomyDetails) string {
	var b strings.Builder
	b.WriteString(cli.BoldStyle.Render("Disclosure KPIs: "))
	b.WriteString(strings.Join(d.KPIs, ", "))
	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render("Environmental objectives:"))
	b.WriteString("\n")
	for _, o := range d.Objectives {
		b.WriteString("  • " + o + "\n")
	}
	b.WriteString(cli.BoldStyle.Render("Phase-in") + " (" + d.PhaseIn.EntityType + "):\n")
	b.WriteString("  " + d.PhaseIn.Current + "\n")
	if d.PhaseIn.Future != "" {
		b.WriteString("  " + d.PhaseIn.Future + "\n")
	}
	if d.PhaseIn.Additional != "" {
		b.WriteString("  " + d.PhaseIn.Additional + "\n")
	}
	return b.String()
}

func field(name, value string) string {
	return cli.BoldStyle.Render(name+": ") + value + "\n"
}

func reportingTypeLabel(rt model.ReportingType) string {
	switch rt {
	case model.ReportingIndividual:
		return "Individual company report"
	case model.ReportingConsolidated:
		return "Consolidated group report"
	case model.ReportingThirdCountryGroup:
		return "Third-country group-level report"
	}
	return string(rt)
}

// jsonReport is the machine-readable envelope around an assessment.
type jsonReport struct {
	Assessment model.Assessment `json:"assessment"`
	Answers    model.AnswerSet  `json:"answers"`
	Disclaimer string           `json:"disclaimer"`
}

// RenderJSON produces the machine-readable form of the report, including the
// answers it was derived from.
func RenderJSON(a model.Assessment, as model.AnswerSet) ([]byte, error) {
	out, err := json.MarshalIndent(jsonReport{
		Assessment: a,
		Answers:    as,
		Disclaimer: Disclaimer,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return out, nil
}
