package core

import (
	"fmt"
	"regexp"
	"strings"

	"rtutor/pkg/schema"
)

var (
	fencedBlock  = regexp.MustCompile("(?s)```[rR]?\\s*\\n(.*?)```")
	libraryCall  = regexp.MustCompile(`library\(["']?([A-Za-z0-9._]+)["']?\)`)
	headingChars = "#* \t"
)

// difficulty tier metadata by generation order.
var tiers = []struct {
	difficulty schema.Difficulty
	title      string
	filename   string
}{
	{schema.DifficultyBasic, "Basic solution", "basic_solution.R"},
	{schema.DifficultyIntermediate, "Intermediate solution", "intermediate_solution.R"},
	{schema.DifficultyAdvanced, "Advanced solution", "advanced_solution.R"},
}

func tierFor(index int) (schema.Difficulty, string, string) {
	if index >= len(tiers) {
		index = len(tiers) - 1
	}
	t := tiers[index]
	return t.difficulty, t.title, t.filename
}

// ParseSolutions extracts solutions from a backend reply. Each fenced R code
// block becomes one solution: the title comes from the nearest preceding
// heading line, packages from library() calls inside the block, difficulty
// and filename from the block's position. When the reply carries no code
// block at all, three canned tiers derived from the problem text are
// returned instead, so a solve run always yields at least one solution.
func ParseSolutions(content, problem string) []schema.Solution {
	matches := fencedBlock.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return CannedSolutions(problem)
	}

	solutions := make([]schema.Solution, 0, len(matches))
	for i, match := range matches {
		code := strings.TrimSpace(content[match[2]:match[3]])

		difficulty, defaultTitle, filename := tierFor(i)

		title := precedingHeading(content[:match[0]])
		if title == "" {
			title = defaultTitle
		}

		explanation := followingText(content[match[1]:])
		if explanation == "" {
			explanation = "See the code above for the full approach."
		}

		solutions = append(solutions, schema.Solution{
			Title:       title,
			Code:        code,
			Explanation: explanation,
			Difficulty:  difficulty,
			Packages:    extractPackages(code),
			Filename:    filename,
		})
	}

	return solutions
}

// precedingHeading returns the last non-empty line before a code block,
// stripped of markdown decoration, if it is short enough to be a title.
func precedingHeading(before string) string {
	lines := strings.Split(before, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "```") {
			return ""
		}
		title := strings.TrimRight(strings.TrimLeft(line, headingChars), "*: \t")
		if title != "" && len(title) <= 80 {
			return title
		}
		return ""
	}
	return ""
}

// followingText returns the prose after a code block, up to the next heading
// or code fence.
func followingText(after string) string {
	var sb strings.Builder
	for _, line := range strings.Split(after, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "#") {
			break
		}
		if trimmed == "" && sb.Len() > 0 {
			break
		}
		if trimmed != "" {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(trimmed)
		}
	}
	return sb.String()
}

// extractPackages collects the distinct library() targets of a code block in
// first-use order. Blocks without library calls report base.
func extractPackages(code string) []string {
	seen := make(map[string]bool)
	packages := []string{}
	for _, match := range libraryCall.FindAllStringSubmatch(code, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			packages = append(packages, name)
		}
	}
	if len(packages) == 0 {
		packages = []string{"base"}
	}
	return packages
}

// CannedSolutions synthesizes the three fixed difficulty tiers around the
// literal problem text. Output is deterministic: identical input yields
// byte-identical solutions.
func CannedSolutions(problem string) []schema.Solution {
	return []schema.Solution{
		{
			Title: "Basic solution",
			Code: fmt.Sprintf("# Based on your problem: %s\n\n"+
				"# Approach 1: basic implementation\n"+
				"library(ggplot2)\n"+
				"data <- read.csv(\"data.csv\")\n"+
				"result <- summary(data)\n"+
				"print(result)", problem),
			Explanation: "A basic solution suited to beginners, using fundamental R functions to process the data.",
			Difficulty:  schema.DifficultyBasic,
			Packages:    []string{"base", "ggplot2"},
			Filename:    "basic_solution.R",
		},
		{
			Title: "Intermediate solution",
			Code: "# Approach 2: tidyverse implementation\n" +
				"library(dplyr)\n" +
				"library(ggplot2)\n\n" +
				"data %>%\n" +
				"  filter(!is.na(value)) %>%\n" +
				"  group_by(category) %>%\n" +
				"  summarise(mean_val = mean(value)) %>%\n" +
				"  ggplot(aes(x = category, y = mean_val)) +\n" +
				"  geom_col()",
			Explanation: "A more advanced solution built on the tidyverse ecosystem, with shorter and more readable code.",
			Difficulty:  schema.DifficultyIntermediate,
			Packages:    []string{"dplyr", "ggplot2"},
			Filename:    "intermediate_solution.R",
		},
		{
			Title: "Advanced solution",
			Code: "# Approach 3: high-performance implementation\n" +
				"library(data.table)\n" +
				"library(plotly)\n\n" +
				"DT <- fread(\"data.csv\")\n" +
				"result <- DT[, .(mean_val = mean(value, na.rm = TRUE)), by = category]\n" +
				"p <- plot_ly(result, x = ~category, y = ~mean_val, type = \"bar\")\n" +
				"p",
			Explanation: "A professional solution using the high-performance data.table package and interactive visualization.",
			Difficulty:  schema.DifficultyAdvanced,
			Packages:    []string{"data.table", "plotly"},
			Filename:    "advanced_solution.R",
		},
	}
}
