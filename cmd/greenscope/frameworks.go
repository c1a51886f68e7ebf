package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenscope-tools/greenscope/internal/assess"
	"github.com/greenscope-tools/greenscope/internal/cli"
	"github.com/greenscope-tools/greenscope/internal/model"
)

func frameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "Describe the assessed sustainability frameworks",
		RunE:  runFrameworks,
	}
}

func runFrameworks(_ *cobra.Command, _ []string) error {
	for _, fw := range model.Frameworks {
		info := assess.Reference[fw]
		content := cli.SubtleStyle.Render(info.Description) + "\n\n" + info.Details
		fmt.Fprintln(os.Stdout, cli.RenderBox(info.Name, content))
	}
	return nil
}
