package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenscope-tools/greenscope/internal/catalog"
	"github.com/greenscope-tools/greenscope/internal/cli"
	"github.com/greenscope-tools/greenscope/internal/model"
)

func questionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questionnaire catalog",
		Long: `Print every step and question of the questionnaire with the option codes
an answers file may use. Without --answers, conditional questions are listed
regardless of visibility so the full key and code vocabulary is documented;
with --answers, only the questions visible for those answers are shown.`,
		RunE: runQuestions,
	}

	cmd.Flags().StringP("answers", "a", "", "Answers file; restricts output to the visible subset")
	cmd.Flags().Bool("help-text", false, "Include the legal context text for each question")
	_ = viper.BindPFlag("questions.answers", cmd.Flags().Lookup("answers"))
	_ = viper.BindPFlag("questions.help_text", cmd.Flags().Lookup("help-text"))

	return cmd
}

func runQuestions(_ *cobra.Command, _ []string) error {
	withHelp := viper.GetBool("questions.help_text")
	answersFile := viper.GetString("questions.answers")

	steps := catalog.Default()

	// Without an answers file, labels and help texts that depend on answers
	// resolve against the empty set, which yields their EU-company default
	// wording, and every question is listed.
	answers := model.AnswerSet{}
	filtered := false
	if answersFile != "" {
		loaded, err := loadPartialAnswers(answersFile, steps)
		if err != nil {
			return err
		}
		answers = loaded
		filtered = true
	}

	var b strings.Builder
	for _, step := range steps {
		if filtered && !step.IsVisible(answers) {
			continue
		}
		questions := step.Questions
		if filtered {
			questions = step.VisibleQuestions(answers)
		}
		if len(questions) == 0 {
			continue
		}

		b.WriteString(cli.StyleTitle(step.Title))
		b.WriteString("\n")
		for _, q := range questions {
			b.WriteString(cli.BoldStyle.Render(q.Key))
			if !filtered && q.Visible != nil {
				b.WriteString(cli.SubtleStyle.Render(" (conditional)"))
			}
			b.WriteString("\n  ")
			b.WriteString(q.Label.Resolve(answers))
			b.WriteString("\n")
			for _, o := range q.Options {
				fmt.Fprintf(&b, "    %-28s %s\n", o.Code, cli.SubtleStyle.Render(o.Label))
			}
			if withHelp && !q.Help.IsZero() {
				b.WriteString(cli.SubtleStyle.Render("  " + q.Help.Resolve(answers)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprint(os.Stdout, b.String())
	return nil
}
