package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_EmptyInput(t *testing.T) {
	result := Analyze("")

	assert.Empty(t, result.Error)
	assert.GreaterOrEqual(t, result.QualityScore, 0.0)
	assert.LessOrEqual(t, result.QualityScore, 100.0)
	assert.Equal(t, 0, result.Metrics.LinesOfCode)
	assert.Equal(t, 1, result.Metrics.BlankLines)
	assert.Equal(t, 1, result.Complexity.Cyclomatic)
	assert.Equal(t, "low", result.Complexity.Level)
}

func TestAnalyze_Metrics(t *testing.T) {
	code := strings.Join([]string{
		"# load data",
		"",
		"data <- read.csv(\"data.csv\")",
		"process_data <- function(df) {",
		"  summary(df)",
		"}",
	}, "\n")

	result := Analyze(code)

	assert.Equal(t, 4, result.Metrics.LinesOfCode)
	assert.Equal(t, 1, result.Metrics.CommentLines)
	assert.Equal(t, 1, result.Metrics.BlankLines)
	assert.Equal(t, 1, result.Metrics.FunctionsCount)
}

func TestAnalyze_LongLineFlagsExactLine(t *testing.T) {
	long := "x <- " + strings.Repeat("1", 105) // 110 characters total
	require.Len(t, long, 110)
	code := "a <- 1\n" + long + "\nb <- 2"

	result := Analyze(code)

	var lineLength []Issue
	for _, issue := range result.QualityIssues {
		if issue.Type == "line_length" {
			lineLength = append(lineLength, issue)
		}
	}

	require.Len(t, lineLength, 1)
	assert.Equal(t, 2, lineLength[0].Line)
	assert.Equal(t, SeverityWarning, lineLength[0].Severity)
}

func TestAnalyze_SpacingIssue(t *testing.T) {
	result := Analyze("x<-1+2")

	found := false
	for _, issue := range result.QualityIssues {
		if issue.Type == "spacing" {
			found = true
			assert.Equal(t, SeverityStyle, issue.Severity)
		}
	}
	assert.True(t, found, "expected a spacing issue for x<-1+2")
}

func TestAnalyze_MagicNumber(t *testing.T) {
	result := Analyze("threshold <- 10000")

	found := false
	for _, issue := range result.QualityIssues {
		if issue.Type == "magic_number" {
			found = true
			assert.Equal(t, 1, issue.Line)
		}
	}
	assert.True(t, found)

	// The same literal inside a comment is not flagged.
	commented := Analyze("# threshold is 10000")
	for _, issue := range commented.QualityIssues {
		assert.NotEqual(t, "magic_number", issue.Type)
	}
}

func TestAnalyze_InsufficientComments(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		lines = append(lines, "x <- 1")
	}

	result := Analyze(strings.Join(lines, "\n"))

	found := false
	for _, issue := range result.QualityIssues {
		if issue.Type == "lack_of_comments" {
			found = true
			assert.Equal(t, 0, issue.Line)
			assert.Equal(t, SeverityWarning, issue.Severity)
		}
	}
	assert.True(t, found)
}

func TestAnalyze_NamingConventions(t *testing.T) {
	code := strings.Join([]string{
		"myVariable <- 1",         // camelCase, flagged
		"MAX_ITER <- 10",          // ALL_CAPS, allowed
		"my_helper <- function()", // snake_case, allowed
		"BadFunc <- function()",   // flagged twice: variable and function
	}, "\n")

	result := Analyze(code)

	var variableIssues, functionIssues int
	for _, issue := range result.StyleIssues {
		switch issue.Type {
		case "naming_convention":
			variableIssues++
		case "function_naming":
			functionIssues++
		}
	}

	assert.Equal(t, 2, variableIssues, "myVariable and BadFunc")
	assert.Equal(t, 1, functionIssues, "BadFunc")
}

func TestAnalyze_Complexity(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("f <- function(x) {\n")
	for i := 0; i < 12; i++ {
		sb.WriteString("  if (x > 1) { print(x) }\n")
	}
	sb.WriteString("}\n")

	result := Analyze(sb.String())

	assert.Equal(t, 13, result.Complexity.Cyclomatic)
	assert.Equal(t, "medium", result.Complexity.Level)
	assert.Equal(t, 2, result.Complexity.MaxNestingDepth)
}

func TestAnalyze_UnbalancedBracesClampDepth(t *testing.T) {
	result := Analyze("}}}\nf <- function() {\n  1\n}")

	assert.Empty(t, result.Error)
	assert.Equal(t, 1, result.Complexity.MaxNestingDepth)
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	// A pathological input with many issue types still clamps to [0, 100].
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		sb.WriteString("badName<-12345 && x || y\n")
		sb.WriteString("if (x) { while (y) { for (z in 1:10) { repeat { } } } }\n")
	}

	result := Analyze(sb.String())

	assert.GreaterOrEqual(t, result.QualityScore, 0.0)
	assert.LessOrEqual(t, result.QualityScore, 100.0)
	assert.Equal(t, "high", result.Complexity.Level)
}

func TestAnalyze_CommentRatioBonus(t *testing.T) {
	// One comment per code line: 50% comment ratio earns the bonus.
	commented := Analyze("# explain\nx <- 1\n# more\ny <- 2")
	bare := Analyze("x <- 1\ny <- 2\nz <- 3\na <- 4")

	assert.Greater(t, commented.QualityScore, bare.QualityScore)
}

func TestAnalyze_Recommendations(t *testing.T) {
	deep := Analyze("f <- function() { if (a) { if (b) { if (c) { if (d) { if (e) { 1 } } } } } }")

	joined := strings.Join(deep.Recommendations, "\n")
	assert.Contains(t, joined, "nesting")
	// General suggestions are always present and come last.
	assert.Contains(t, deep.Recommendations[len(deep.Recommendations)-1], "DRY")
}

func TestAnalyze_Idempotent(t *testing.T) {
	code := "myVar<-10000\nif (x) { y }\n# comment"

	first := Analyze(code)
	second := Analyze(code)

	assert.Equal(t, first, second)
}
