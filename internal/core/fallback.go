package core

import (
	"context"
	"fmt"
	"strings"

	"rtutor/internal/llm"
	"rtutor/pkg/schema"
)

// DemoMarker is appended to every demo response so callers can present the
// content as a placeholder.
const DemoMarker = "Note: this is a demo response. Set DEEPSEEK_API_KEY in your .env file to enable live generation."

// DemoBackend is the deterministic substitute for the chat backend, used
// when no usable credential is configured. Responses are derived only from
// the literal request input: identical input yields byte-identical output,
// and Complete never fails.
type DemoBackend struct {
	RequestType schema.RequestType
	UserInput   string
}

// NewDemoBackend creates a demo backend for one execution.
func NewDemoBackend(requestType schema.RequestType, userInput string) *DemoBackend {
	return &DemoBackend{RequestType: requestType, UserInput: userInput}
}

// Complete returns the canned response for the execution's request type.
// Token usage is always zero in demo mode.
func (d *DemoBackend) Complete(ctx context.Context, messages []llm.Message, opts llm.Options) (*llm.Completion, error) {
	var content string
	switch d.RequestType {
	case schema.RequestAnswer:
		content = demoAnswer(d.UserInput)
	case schema.RequestTalk:
		content = demoTalk(d.UserInput)
	default:
		content = demoExplanation(d.UserInput)
	}
	return &llm.Completion{Content: content}, nil
}

func demoExplanation(code string) string {
	return fmt.Sprintf(`Explanation of this R code:

`+"```r\n%s\n```"+`

Functional analysis:
1. The main purpose of this code is data handling
2. The key functions and operations involved
3. The execution flow, statement by statement
4. The expected output

Points to watch:
- Make sure the data format is correct
- Check variable name spelling
- Mind the function argument usage

Suggested improvements:
- Error handling could be added
- Consider readability
- Add appropriate comments

%s`, code, DemoMarker)
}

func demoAnswer(problem string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("For your problem: %s\n\nHere are three solutions:\n\n", problem))

	for _, solution := range CannedSolutions(problem) {
		sb.WriteString(fmt.Sprintf("### %s\n\n", solution.Title))
		sb.WriteString(fmt.Sprintf("```r\n%s\n```\n\n", solution.Code))
		sb.WriteString(solution.Explanation)
		sb.WriteString("\n\n")
	}

	sb.WriteString(DemoMarker)
	return sb.String()
}

func demoTalk(message string) string {
	return fmt.Sprintf(`About "%s":

As an R assistant I can help you with:
- Explaining what R code does and how its syntax works
- Providing data analysis solutions
- Answering R learning questions
- Debugging problems you run into

If you have a concrete R question, keep them coming!

%s`, message, DemoMarker)
}
