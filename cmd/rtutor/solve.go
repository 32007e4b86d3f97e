package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rtutor/pkg/schema"
)

func solveCmd(a **app) *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "solve <problem>",
		Short: "Generate tiered R solutions for a problem",
		Long:  "Describes a data problem in plain language and returns solutions at basic, intermediate, and advanced levels.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem := strings.Join(args, " ")

			state, err := (*a).engine.Execute(cmd.Context(), schema.RequestAnswer, problem, session, nil)
			if err != nil {
				return err
			}

			printHeader("Solutions")
			printDemoNotice(*a)

			if state.ProblemType != "" {
				fmt.Printf("problem type: %s\n", state.ProblemType)
			}
			printSolutions(state.CodeSolutions)
			printStatusLine(state)
			return nil
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "Session id to attribute this request to")
	return cmd
}
