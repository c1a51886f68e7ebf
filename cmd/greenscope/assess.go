package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/greenscope-tools/greenscope/internal/assess"
	"github.com/greenscope-tools/greenscope/internal/catalog"
	"github.com/greenscope-tools/greenscope/internal/cli"
	"github.com/greenscope-tools/greenscope/internal/common"
	"github.com/greenscope-tools/greenscope/internal/model"
	"github.com/greenscope-tools/greenscope/internal/report"
	"github.com/greenscope-tools/greenscope/internal/tui"
)

func assessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run the eligibility assessment",
		Long: `Determine which EU sustainability frameworks apply to your company.

Without flags this starts the interactive questionnaire. With --answers it
reads a previously saved answers file instead and prints the report directly,
which is useful for scripting and for re-running an assessment.`,
		RunE: runAssess,
	}

	// Flags
	cmd.Flags().StringP("answers", "a", "", "Answers file (YAML map of question key to option code)")
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")

	// Bind to viper
	_ = viper.BindPFlag("assess.answers", cmd.Flags().Lookup("answers"))
	_ = viper.BindPFlag("assess.output", cmd.Flags().Lookup("output"))

	return cmd
}

func runAssess(cmd *cobra.Command, _ []string) error {
	answersFile := viper.GetString("assess.answers")
	output := viper.GetString("assess.output")

	if output != "text" && output != "json" {
		return fmt.Errorf("%w: invalid output format %q", common.ErrInvalidConfig, output)
	}

	steps := catalog.Default()

	var answers model.AnswerSet
	if answersFile != "" {
		loaded, err := loadAnswers(answersFile, steps)
		if err != nil {
			return err
		}
		answers = loaded
	} else {
		collected, completed, err := tui.Run(cmd.Context(), steps, nil)
		if err != nil {
			common.LogError(err, "questionnaire failed", nil)
			return err
		}
		if !completed {
			common.LogInfo(cli.FormatWarning("Assessment canceled before completion"), nil)
			return nil
		}
		answers = collected
	}

	result := assess.Run(answers)

	switch output {
	case "json":
		out, err := report.RenderJSON(result, answers)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
	default:
		fmt.Fprint(os.Stdout, report.Render(result, answers))
	}

	common.LogDebug("assessment complete", common.Fields{
		"csrd":     result.CSRD.InScope,
		"taxonomy": result.Taxonomy.InScope,
		"csddd":    result.CSDDD.InScope,
		"oecd":     result.OECD.InScope,
	})
	return nil
}

// loadPartialAnswers reads and validates an answers file against the
// catalog. The file is a flat YAML map of question key to option code;
// completeness is not required.
func loadPartialAnswers(path string, steps []catalog.Step) (model.AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewUserError("failed to read answers file", err)
	}

	var answers model.AnswerSet
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, common.NewUserError("failed to parse answers file", err)
	}

	if err := catalog.Validate(steps, answers); err != nil {
		return nil, fmt.Errorf("invalid answers file %s: %w", path, err)
	}
	return answers, nil
}

// loadAnswers additionally requires every visible required question to be
// answered, which an assessment needs and a catalog listing does not.
func loadAnswers(path string, steps []catalog.Step) (model.AnswerSet, error) {
	answers, err := loadPartialAnswers(path, steps)
	if err != nil {
		return nil, err
	}

	if missing := catalog.MissingRequired(steps, answers); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing answers for %s",
			common.ErrIncompleteAnswers, strings.Join(missing, ", "))
	}
	return answers, nil
}
