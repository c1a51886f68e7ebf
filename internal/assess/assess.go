package assess

import "github.com/greenscope-tools/greenscope/internal/model"

// Run evaluates every framework against the answer set and returns the
// complete assessment. Taxonomy is derived from the CSRD verdict, so CSRD
// always runs first; everything else is independent. The result is a fresh
// value on every call; callers may invoke Run as often as they like.
func Run(as model.AnswerSet) model.Assessment {
	assessment := model.Assessment{
		OECD: AssessOECD(as),
		CSRD: AssessCSRD(as),
	}
	assessment.Taxonomy = DeriveTaxonomy(assessment.CSRD, as)
	assessment.CSDDD = AssessCSDDD(as)
	assessment.UNGPs = ungpsResult()

	addFutureConsiderations(&assessment, as)
	return assessment
}

// ungpsResult is the fixed UNGPs verdict: the Guiding Principles apply to
// every business, so there is nothing to branch on.
func ungpsResult() model.AssessmentResult {
	return model.AssessmentResult{
		InScope:  true,
		Reason:   "The UN Guiding Principles apply to all businesses regardless of size or location.",
		Timeline: "Applicable since 2011",
	}
}
