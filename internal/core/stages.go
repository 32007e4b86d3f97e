package core

import (
	"context"
	"fmt"
	"strings"

	"rtutor/pkg/schema"
)

// Stage is one processing step in a pipeline. Stages mutate the state record
// in place; a returned error means the stage failed in a way it could not
// absorb itself and stops the chain (the orchestrator still finalizes the
// partial record).
type Stage struct {
	Name string
	Run  func(ctx context.Context, state *schema.WorkflowState) error
}

// Problem categories assigned by the classify stage, used only for
// observability.
var problemKeywords = []struct {
	problemType string
	keywords    []string
}{
	{"visualization", []string{"plot", "graph", "chart", "visual", "draw"}},
	{"statistics", []string{"statistic", "analysis", "regression", "hypothesis"}},
	{"data_processing", []string{"clean", "transform", "wrangl", "process"}},
}

// classifyProblem performs a cheap keyword-based categorization of the
// problem text.
func classifyProblem(ctx context.Context, state *schema.WorkflowState) error {
	state.AddStep("problem classification started")

	problem := strings.ToLower(state.UserInput)

	state.ProblemType = "general"
	for _, group := range problemKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(problem, keyword) {
				state.ProblemType = group.problemType
				break
			}
		}
		if state.ProblemType != "general" {
			break
		}
	}

	state.AddStep(fmt.Sprintf("problem classification completed, type: %s", state.ProblemType))
	return nil
}

// validateSolutions inspects generated solutions and records warnings for
// implausible ones. It never removes or rejects a solution.
func validateSolutions(ctx context.Context, state *schema.WorkflowState) error {
	state.AddStep("solution validation started")

	for i, solution := range state.CodeSolutions {
		if len(solution.Code) < 10 {
			state.AddWarning(fmt.Sprintf("solution %d code is very short and may be incomplete", i+1))
		}
		if len(solution.Packages) == 0 {
			state.AddWarning(fmt.Sprintf("solution %d does not declare required packages", i+1))
		}
	}

	state.AddStep("solution validation completed")
	return nil
}

// enhanceContext flags degenerate replies after the conversation stage. It
// does not regenerate or retry.
func enhanceContext(ctx context.Context, state *schema.WorkflowState) error {
	state.AddStep("context enhancement started")

	if state.AIResponse != "" && len(state.AIResponse) < 50 {
		state.AddWarning("assistant reply is short, more context may be needed")
	}

	state.AddStep("context enhancement completed")
	return nil
}
