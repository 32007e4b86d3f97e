package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rtutor/internal/analyzer"
)

func analyzeCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Offline static analysis of R code",
		Long:  "Runs the lexical analyzer locally: metrics, issues, complexity, and a quality score. No backend call is made.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readCode(args)
			if err != nil {
				return err
			}

			result := analyzer.Analyze(code)
			if result.Error != "" {
				return fmt.Errorf("analysis failed: %s", result.Error)
			}

			printHeader("Static analysis")
			printAnalysis(result)
			return nil
		},
	}

	return cmd
}
