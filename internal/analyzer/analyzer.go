// Package analyzer scores R source text with lexical heuristics: line
// metrics, quality and style issues, a cyclomatic approximation, and a 0-100
// quality score. Analysis is pure and deterministic; identical input always
// yields identical output.
package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity classifies one detected issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityStyle   Severity = "style"
)

// Metrics are basic line and definition counts.
type Metrics struct {
	LinesOfCode    int `json:"lines_of_code"`
	CommentLines   int `json:"comment_lines"`
	BlankLines     int `json:"blank_lines"`
	FunctionsCount int `json:"functions_count"`
}

// Issue is one detected quality or style problem. Line is 1-based; 0 marks a
// whole-file issue.
type Issue struct {
	Type     string   `json:"type"`
	Line     int      `json:"line"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Complexity is the cyclomatic approximation and nesting measurement.
type Complexity struct {
	Cyclomatic      int    `json:"cyclomatic_complexity"`
	MaxNestingDepth int    `json:"max_nesting_depth"`
	Level           string `json:"complexity_level"`
}

// Result is the full analysis output. On internal failure only Error and the
// zero QualityScore are set.
type Result struct {
	Metrics         Metrics    `json:"metrics"`
	QualityScore    float64    `json:"quality_score"`
	QualityIssues   []Issue    `json:"quality_issues"`
	StyleIssues     []Issue    `json:"style_issues"`
	Complexity      Complexity `json:"complexity"`
	Recommendations []string   `json:"recommendations"`
	Error           string     `json:"error,omitempty"`
}

var (
	functionDefPattern = regexp.MustCompile(`\b\w+\s*<-\s*function\s*\(`)
	tightOperator      = regexp.MustCompile(`[a-zA-Z0-9][+\-*/=][a-zA-Z0-9]`)
	magicNumber        = regexp.MustCompile(`\b\d{4,}\b`)
	assignedName       = regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*<-`)
	assignedFunction   = regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*<-\s*function`)
	snakeCaseName      = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	allCapsName        = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

	controlFlowPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bif\s*\(`),
		regexp.MustCompile(`\bfor\s*\(`),
		regexp.MustCompile(`\bwhile\s*\(`),
		regexp.MustCompile(`\brepeat\s*\{`),
		regexp.MustCompile(`&&`),
		regexp.MustCompile(`\|\|`),
	}
)

// Analyze analyzes R code and returns the result. It never panics outward;
// internal failures are converted into a Result carrying only an error
// string and a zero score.
func Analyze(code string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Error:        fmt.Sprintf("analysis failed: %v", r),
				QualityScore: 0,
			}
		}
	}()

	metrics := calculateMetrics(code)
	qualityIssues := detectQualityIssues(code)
	styleIssues := checkStyle(code)
	complexity := calculateComplexity(code)

	return Result{
		Metrics:         metrics,
		QualityScore:    qualityScore(metrics, qualityIssues, styleIssues, complexity),
		QualityIssues:   qualityIssues,
		StyleIssues:     styleIssues,
		Complexity:      complexity,
		Recommendations: recommendations(qualityIssues, styleIssues, complexity),
	}
}

func calculateMetrics(code string) Metrics {
	var metrics Metrics

	for _, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)
		switch {
		case stripped == "":
			metrics.BlankLines++
		case strings.HasPrefix(stripped, "#"):
			metrics.CommentLines++
		default:
			metrics.LinesOfCode++
		}
	}

	metrics.FunctionsCount = len(functionDefPattern.FindAllString(code, -1))
	return metrics
}

func detectQualityIssues(code string) []Issue {
	issues := []Issue{}
	lines := strings.Split(code, "\n")

	for i, line := range lines {
		lineNo := i + 1
		stripped := strings.TrimSpace(line)

		if len(line) > 100 {
			issues = append(issues, Issue{
				Type:     "line_length",
				Line:     lineNo,
				Message:  fmt.Sprintf("line %d is too long (%d characters, 100 recommended)", lineNo, len(line)),
				Severity: SeverityWarning,
			})
		}

		if tightOperator.MatchString(stripped) {
			issues = append(issues, Issue{
				Type:     "spacing",
				Line:     lineNo,
				Message:  fmt.Sprintf("line %d is missing spaces around an operator", lineNo),
				Severity: SeverityStyle,
			})
		}

		if !strings.HasPrefix(stripped, "#") && magicNumber.MatchString(stripped) {
			issues = append(issues, Issue{
				Type:     "magic_number",
				Line:     lineNo,
				Message:  fmt.Sprintf("line %d contains a magic number, consider a named constant", lineNo),
				Severity: SeverityWarning,
			})
		}
	}

	totalLines := 0
	commentLines := 0
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		totalLines++
		if strings.HasPrefix(stripped, "#") {
			commentLines++
		}
	}

	if totalLines > 10 && float64(commentLines)/float64(totalLines) < 0.10 {
		issues = append(issues, Issue{
			Type:     "lack_of_comments",
			Line:     0,
			Message:  "code lacks comments (a comment ratio of at least 10% is recommended)",
			Severity: SeverityWarning,
		})
	}

	return issues
}

func checkStyle(code string) []Issue {
	issues := []Issue{}

	for _, match := range assignedName.FindAllStringSubmatch(code, -1) {
		name := match[1]
		if !snakeCaseName.MatchString(name) && !allCapsName.MatchString(name) {
			issues = append(issues, Issue{
				Type:     "naming_convention",
				Message:  fmt.Sprintf("variable %q does not follow naming conventions (use lowercase with underscores)", name),
				Severity: SeverityStyle,
			})
		}
	}

	for _, match := range assignedFunction.FindAllStringSubmatch(code, -1) {
		name := match[1]
		if !snakeCaseName.MatchString(name) {
			issues = append(issues, Issue{
				Type:     "function_naming",
				Message:  fmt.Sprintf("function %q does not follow naming conventions (use lowercase with underscores)", name),
				Severity: SeverityStyle,
			})
		}
	}

	return issues
}

func calculateComplexity(code string) Complexity {
	cyclomatic := 1
	for _, pattern := range controlFlowPatterns {
		cyclomatic += len(pattern.FindAllString(code, -1))
	}

	maxDepth := 0
	depth := 0
	for _, ch := range code {
		switch ch {
		case '{':
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case '}':
			depth--
			if depth < 0 {
				depth = 0
			}
		}
	}

	level := "low"
	switch {
	case cyclomatic > 20:
		level = "high"
	case cyclomatic >= 10:
		level = "medium"
	}

	return Complexity{
		Cyclomatic:      cyclomatic,
		MaxNestingDepth: maxDepth,
		Level:           level,
	}
}

func qualityScore(metrics Metrics, qualityIssues, styleIssues []Issue, complexity Complexity) float64 {
	score := 100.0

	for _, issue := range qualityIssues {
		switch issue.Severity {
		case SeverityError:
			score -= 15
		case SeverityWarning:
			score -= 8
		case SeverityStyle:
			score -= 3
		}
	}

	score -= float64(len(styleIssues)) * 2

	switch complexity.Level {
	case "high":
		score -= 20
	case "medium":
		score -= 10
	}

	if metrics.LinesOfCode > 0 {
		commentRatio := float64(metrics.CommentLines) / float64(metrics.LinesOfCode+metrics.CommentLines)
		if commentRatio > 0.2 {
			score += 5
		} else if commentRatio < 0.05 {
			score -= 10
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func recommendations(qualityIssues, styleIssues []Issue, complexity Complexity) []string {
	recs := []string{}

	if len(qualityIssues) > 0 {
		recs = append(recs, "Fix the reported quality issues, starting with error and warning severities")
	}
	if len(styleIssues) > 0 {
		recs = append(recs, "Unify code style and follow R naming conventions")
	}
	if complexity.Level == "high" {
		recs = append(recs, "Refactor complex functions by splitting them into smaller ones")
	}
	if complexity.MaxNestingDepth > 4 {
		recs = append(recs, "Reduce nesting depth to improve readability")
	}

	recs = append(recs,
		"Add more meaningful comments",
		"Use descriptive variable and function names",
		"Consider adding error handling",
		"Follow the DRY (Don't Repeat Yourself) principle",
	)

	return recs
}
