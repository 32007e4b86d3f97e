package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rtutor/pkg/schema"
)

// readCode loads R source from a file argument, or from stdin when no
// argument was given.
func readCode(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read code file: %w", err)
	}
	return string(data), nil
}

func explainCmd(a **app) *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "Explain a piece of R code",
		Long:  "Reads R code from a file, or from stdin when no file is given, and explains what it does.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readCode(args)
			if err != nil {
				return err
			}

			state, err := (*a).engine.Execute(cmd.Context(), schema.RequestExplain, code, session, nil)
			if err != nil {
				return err
			}

			printHeader("Explanation")
			printDemoNotice(*a)
			fmt.Println(strings.TrimSpace(resultContent(state)))

			if state.CodeAnalysis != nil {
				fmt.Printf("\nquality score: %s\n", scoreString(state.QualityScore))
			}
			printStatusLine(state)
			return nil
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "Session id to attribute this request to")
	return cmd
}
