package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"rtutor/internal/analyzer"
	"rtutor/internal/core"
	"rtutor/pkg/schema"
)

func printHeader(title string) {
	fmt.Println(color.CyanString(title))
	fmt.Println(strings.Repeat("─", 60))
}

func printStatusLine(state *schema.WorkflowState) {
	var status string
	switch state.Status {
	case schema.StatusSuccess:
		status = color.GreenString("✓ %s", state.Status)
	case schema.StatusWarning:
		status = color.YellowString("! %s", state.Status)
	default:
		status = color.RedString("✗ %s", state.Status)
	}
	fmt.Printf("\n%s  %.2fs  %d tokens\n", status, state.ProcessingTime, state.TotalTokens)

	for _, warning := range state.Warnings {
		fmt.Println(color.YellowString("  warning: %s", warning))
	}
	for _, err := range state.Errors {
		fmt.Println(color.RedString("  error: %s", err))
	}
}

func printDemoNotice(a *app) {
	if a.demoMode {
		fmt.Println(color.HiBlackString("(demo mode: set DEEPSEEK_API_KEY for live generation)"))
		fmt.Println()
	}
}

func printSolutions(solutions []schema.Solution) {
	for i, solution := range solutions {
		fmt.Printf("\n%s %s %s\n",
			color.CyanString("[%d]", i+1),
			color.New(color.Bold).Sprint(solution.Title),
			color.HiBlackString("(%s, %s)", solution.Difficulty, solution.Filename),
		)
		fmt.Printf("    packages: %s\n\n", strings.Join(solution.Packages, ", "))
		for _, line := range strings.Split(solution.Code, "\n") {
			fmt.Printf("    %s\n", line)
		}
		if solution.Explanation != "" {
			fmt.Printf("\n    %s\n", solution.Explanation)
		}
	}
}

func printAnalysis(result analyzer.Result) {
	fmt.Printf("quality score: %s\n\n", scoreString(result.QualityScore))

	fmt.Printf("lines of code: %d  comments: %d  blank: %d  functions: %d\n",
		result.Metrics.LinesOfCode,
		result.Metrics.CommentLines,
		result.Metrics.BlankLines,
		result.Metrics.FunctionsCount,
	)
	fmt.Printf("complexity: cyclomatic %d, max nesting %d (%s)\n",
		result.Complexity.Cyclomatic,
		result.Complexity.MaxNestingDepth,
		result.Complexity.Level,
	)

	printIssues("quality issues", result.QualityIssues)
	printIssues("style issues", result.StyleIssues)

	if len(result.Recommendations) > 0 {
		fmt.Println("\nrecommendations:")
		for _, rec := range result.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}

func printIssues(title string, issues []analyzer.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, issue := range issues {
		location := ""
		if issue.Line > 0 {
			location = fmt.Sprintf("line %d: ", issue.Line)
		}
		fmt.Printf("  %s %s%s\n", severityString(issue.Severity), location, issue.Message)
	}
}

func severityString(severity analyzer.Severity) string {
	switch severity {
	case analyzer.SeverityError:
		return color.RedString("[error]")
	case analyzer.SeverityWarning:
		return color.YellowString("[warning]")
	default:
		return color.HiBlackString("[style]")
	}
}

func scoreString(score float64) string {
	switch {
	case score >= 80:
		return color.GreenString("%.0f/100", score)
	case score >= 50:
		return color.YellowString("%.0f/100", score)
	default:
		return color.RedString("%.0f/100", score)
	}
}

func resultContent(state *schema.WorkflowState) string {
	return core.ResultFrom(state).Content
}
