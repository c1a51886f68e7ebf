package assess

import (
	"strings"

	"github.com/greenscope-tools/greenscope/internal/model"
)

// addFutureConsiderations augments not-in-scope CSRD and CSDDD verdicts with
// forward-looking projections when the respondent expects growth. Taxonomy
// piggybacks on the CSRD projection without any threshold logic of its own.
func addFutureConsiderations(assessment *model.Assessment, as model.AnswerSet) {
	if !as.OneOf(model.KeyFutureThresholds, "yes", "maybe") {
		return
	}

	growthMetrics := as.Get(model.KeyGrowthMetrics)
	eu := as.Is(model.KeyJurisdiction, "eu")

	if !assessment.CSRD.InScope {
		assessment.CSRD.FutureConsiderations = csrdFutureConsiderations(growthMetrics, eu, as)
	}
	if !assessment.CSDDD.InScope {
		assessment.CSDDD.FutureConsiderations = csdddFutureConsiderations(growthMetrics, eu, as)
	}
	if !assessment.Taxonomy.InScope && assessment.CSRD.FutureConsiderations != "" {
		assessment.Taxonomy.FutureConsiderations = "Given your projected growth, your company might become subject to " +
			"EU Taxonomy disclosure obligations if it falls under CSRD scope (Articles 19a/29a) in the future."
	}
}

// sizeMetric reports whether the selected growth metric is one of the three
// size criteria (or several of them).
func sizeMetric(growthMetrics string) bool {
	switch growthMetrics {
	case "multiple", "employees", "turnover", "balance_sheet":
		return true
	}
	return false
}

func csrdFutureConsiderations(growthMetrics string, eu bool, as model.AnswerSet) string {
	var considerations []string

	if sizeMetric(growthMetrics) {
		thresholdText := "employs more than 250 people, generates global turnover exceeding €50 million, and " +
			"maintains global balance sheet totals above €25 million"
		if !eu {
			thresholdText = "generates EU turnover exceeding €150 million for two consecutive financial years and " +
				"has qualifying EU subsidiaries or branches exceeding €40 million EU turnover"
		}
		considerations = append(considerations, "Given your projected growth, your company might fall under CSRD "+
			"obligations if it meets at least two of the following criteria for two consecutive financial years: "+
			thresholdText+".")
	}

	if as.Is(model.KeyParentStatus, "yes") && sizeMetric(growthMetrics) {
		groupText := "employs more than 250 people (consolidated), generates global turnover exceeding €50 million " +
			"(consolidated), and maintains global balance sheet totals above €25 million (consolidated)"
		if !eu {
			groupText = "generates EU turnover exceeding €150 million for two consecutive financial years and has " +
				"qualifying EU subsidiaries or branches"
		}
		considerations = append(considerations, "As a parent company, your group might fall under CSRD consolidated "+
			"reporting obligations if it meets at least two of the following criteria for two consecutive financial "+
			"years: "+groupText+".")
	}

	return strings.Join(considerations, " ")
}

func csdddFutureConsiderations(growthMetrics string, eu bool, as model.AnswerSet) string {
	var considerations []string
	growthInSizeOrTurnover := growthMetrics == "multiple" || growthMetrics == "employees" || growthMetrics == "turnover"

	if growthInSizeOrTurnover {
		thresholdText := "employs more than 1,000 people and generates global turnover exceeding €450 million for " +
			"two consecutive financial years"
		if !eu {
			thresholdText = "generates EU turnover exceeding €450 million for two consecutive financial years"
		}
		considerations = append(considerations, "Given your projected growth, your company might fall under CSDDD "+
			"obligations if it "+thresholdText+".")

		// CSDDD needs both criteria at once; worth calling out when the
		// respondent only expects one of them to grow.
		if eu && (growthMetrics == "employees" || growthMetrics == "turnover") {
			considerations = append(considerations, "Note: CSDDD requires meeting both employee and turnover "+
				"thresholds simultaneously.")
		}
	}

	if IsUltimateParent(as) && growthInSizeOrTurnover {
		groupText := "employs more than 1,000 people (consolidated) and generates global turnover exceeding " +
			"€450 million (consolidated) for two consecutive financial years"
		if !eu {
			groupText = "generates EU turnover exceeding €450 million (consolidated) for two consecutive financial years"
		}
		considerations = append(considerations, "As an ultimate parent company, your group might fall under CSDDD "+
			"obligations if it "+groupText+".")
	}

	if as.Is(model.KeyHasFranchisingLicensing, "yes") && as.Is(model.KeyFranchisingLicensing, "yes_meets_criteria") &&
		growthMetrics == "turnover" {
		franchisingText := "generates global turnover exceeding €80 million and receives royalties exceeding " +
			"€22.5 million from qualifying franchising/licensing agreements"
		if !eu {
			franchisingText = "generates EU turnover exceeding €80 million and receives EU royalties exceeding " +
				"€22.5 million from qualifying franchising/licensing agreements"
		}
		considerations = append(considerations, "Your company might also fall under CSDDD through "+
			"franchising/licensing criteria if it "+franchisingText+" for two consecutive financial years.")
	}

	return strings.Join(considerations, " ")
}
