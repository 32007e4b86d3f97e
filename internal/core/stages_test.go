package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtutor/pkg/schema"
)

func TestClassifyProblem(t *testing.T) {
	cases := map[string]string{
		"how do I plot sales by month":        "visualization",
		"run a linear regression on my data":  "statistics",
		"clean up missing values in a column": "data_processing",
		"what does %in% mean":                 "general",
		// Group order decides when keywords from several groups appear.
		"draw a chart of the regression fit": "visualization",
	}

	for input, want := range cases {
		state := &schema.WorkflowState{UserInput: input}
		require.NoError(t, classifyProblem(context.Background(), state))
		assert.Equal(t, want, state.ProblemType, "input: %s", input)
		assert.NotEmpty(t, state.ProcessingSteps)
	}
}

func TestValidateSolutions_WarnsButKeeps(t *testing.T) {
	state := &schema.WorkflowState{
		CodeSolutions: []schema.Solution{
			{Code: "x<-1", Packages: []string{"base"}},
			{Code: "a reasonably long block of code here", Packages: nil},
		},
	}

	require.NoError(t, validateSolutions(context.Background(), state))

	assert.Len(t, state.CodeSolutions, 2, "validation never removes solutions")
	require.Len(t, state.Warnings, 2)
	assert.Contains(t, state.Warnings[0], "solution 1")
	assert.Contains(t, state.Warnings[1], "solution 2")
}

func TestEnhanceContext(t *testing.T) {
	short := &schema.WorkflowState{AIResponse: "ok"}
	require.NoError(t, enhanceContext(context.Background(), short))
	assert.Len(t, short.Warnings, 1)

	long := &schema.WorkflowState{AIResponse: "a reply comfortably longer than the fifty character threshold used here"}
	require.NoError(t, enhanceContext(context.Background(), long))
	assert.Empty(t, long.Warnings)

	empty := &schema.WorkflowState{}
	require.NoError(t, enhanceContext(context.Background(), empty))
	assert.Empty(t, empty.Warnings, "an absent reply is someone else's error, not a short reply")
}
