package assess

import "github.com/greenscope-tools/greenscope/internal/model"

// AssessOECD determines whether the OECD Guidelines for Multinational
// Enterprises apply: the company must be a multinational enterprise
// operating in or from adherent countries. There are no size thresholds and
// no phased timeline.
func AssessOECD(as model.AnswerSet) model.AssessmentResult {
	if as.Is(model.KeyMultinationalEnterprise, "yes") && as.Is(model.KeyOECDAdherentCountries, "yes") {
		return model.AssessmentResult{
			InScope: true,
			Reason: "The OECD Guidelines for Multinational Enterprises on Responsible Business Conduct apply to " +
				"multinational enterprises operating in or from adherent countries.",
			Timeline: "Applicable since 2023 (latest update)",
			Findings: []model.Finding{
				finding("Multinational enterprise status", "Yes", "", true),
				finding("Operates in/from adherent countries", "Yes", "", true),
			},
		}
	}

	var findings []model.Finding
	switch {
	case as.Is(model.KeyMultinationalEnterprise, "no"):
		findings = []model.Finding{
			finding("Multinational enterprise status", "No (operates domestically only)",
				"Guidelines apply to multinational enterprises only", false),
		}
	case as.Is(model.KeyMultinationalEnterprise, "yes") && as.Is(model.KeyOECDAdherentCountries, "no"):
		findings = []model.Finding{
			finding("Multinational enterprise status", "Yes", "", true),
			finding("Operates in/from adherent countries", "No (operates only in non-adherent countries)",
				"Guidelines apply to enterprises operating in or from adherent countries", false),
		}
	default:
		findings = []model.Finding{
			finding("Multinational enterprise status", notSpecified, "assessment incomplete", false),
		}
	}

	return model.AssessmentResult{
		InScope:  false,
		Reason:   notInScopeReason("OECD Guidelines", findings),
		Findings: findings,
	}
}
