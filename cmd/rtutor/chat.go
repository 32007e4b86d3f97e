package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rtutor/internal/core"
	"rtutor/internal/prompt"
	"rtutor/pkg/schema"
)

func chatCmd(a **app) *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive conversation with persisted session history",
		Long: `Starts an interactive chat. Each turn is appended to the session's
history file, and later turns see a trailing window of earlier ones.
Resume a previous session with --session. Exit with "exit" or Ctrl-D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if session == "" {
				var err error
				session, err = schema.NewSessionID()
				if err != nil {
					return fmt.Errorf("generate session id: %w", err)
				}
			}

			turns, err := (*a).store.Load(session)
			if err != nil {
				return err
			}
			memory := core.NewSessionState(session)
			memory.Replace(turns)

			printHeader("Chat")
			printDemoNotice(*a)
			fmt.Printf("session %s (%d stored turns)\n\n", color.CyanString(session), len(memory.Turns))
			if len(memory.Turns) == 0 {
				fmt.Println((*a).prompts.Get(prompt.CategoryConversation, prompt.KindGreeting, prompt.Vars{}))
				fmt.Println()
			}

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 64*1024), 1024*1024)
			for {
				fmt.Print(color.GreenString("you> "))
				if !scanner.Scan() {
					fmt.Println()
					break
				}

				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if input == "exit" || input == "quit" {
					break
				}

				state, err := (*a).engine.Execute(cmd.Context(), schema.RequestTalk, input, session, memory.Turns)
				if err != nil {
					return err
				}

				fmt.Printf("\n%s%s\n\n", color.CyanString("rtutor> "), state.AIResponse)
				for _, warning := range state.Warnings {
					fmt.Println(color.YellowString("  warning: %s", warning))
				}
				for _, execErr := range state.Errors {
					fmt.Println(color.RedString("  error: %s", execErr))
				}

				// The engine appended this exchange to its own record;
				// persist it and keep the full history for the next turn.
				if len(state.ConversationHistory) >= 2 {
					exchange := state.ConversationHistory[len(state.ConversationHistory)-2:]
					if err := (*a).store.Append(session, exchange...); err != nil {
						return err
					}
					memory.Replace(state.ConversationHistory)
				}
			}

			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "Session id to resume (default: new session)")
	return cmd
}
