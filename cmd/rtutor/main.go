// Package main provides the rtutor CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rtutor/internal/core"
	"rtutor/internal/history"
	"rtutor/internal/llm"
	"rtutor/internal/prompt"
)

var version = "0.1.0"

// app holds the wired application services, built once before any
// subcommand runs.
type app struct {
	cfg      *core.Config
	engine   *core.Engine
	store    *history.Store
	prompts  *prompt.Resolver
	demoMode bool
}

func buildApp() (*app, error) {
	cfg, err := core.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := core.NewLogger(cfg.LogLevel)

	resolver := prompt.NewResolver()
	if cfg.PromptOverrides != "" {
		if err := resolver.LoadOverrides(cfg.PromptOverrides); err != nil {
			return nil, fmt.Errorf("load prompt overrides: %w", err)
		}
	}

	a := &app{
		cfg:     cfg,
		store:   history.NewStore(cfg.HistoryDir),
		prompts: resolver,
	}

	llmCfg := cfg.LLMConfig()
	if llmCfg.Available() {
		client, err := llm.NewClient(llmCfg)
		if err != nil {
			return nil, fmt.Errorf("create backend client: %w", err)
		}
		a.engine = core.NewEngineWithClient(client, resolver, logger)
	} else {
		a.engine = core.NewEngine(nil, nil, resolver, logger)
		a.demoMode = true
	}

	return a, nil
}

func main() {
	var a *app

	rootCmd := &cobra.Command{
		Use:     "rtutor",
		Short:   "R learning assistant: explain, solve, chat, and analyze",
		Version: version,
		Long: `rtutor drives a chat backend through fixed pipelines for learning R.

  rtutor explain [file]    Explain a piece of R code
  rtutor solve <problem>   Generate tiered solutions for a problem
  rtutor chat              Interactive conversation with session history
  rtutor analyze [file]    Offline static analysis of R code

Set DEEPSEEK_API_KEY for live generation; without it every command runs
in deterministic demo mode.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = buildApp()
			return err
		},
	}

	rootCmd.AddCommand(
		explainCmd(&a),
		solveCmd(&a),
		chatCmd(&a),
		analyzeCmd(&a),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
