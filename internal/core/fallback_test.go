package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtutor/internal/llm"
	"rtutor/pkg/schema"
)

func TestDemoBackend_Deterministic(t *testing.T) {
	for _, requestType := range []schema.RequestType{
		schema.RequestExplain,
		schema.RequestAnswer,
		schema.RequestTalk,
	} {
		t.Run(string(requestType), func(t *testing.T) {
			first, err := NewDemoBackend(requestType, "x <- rnorm(100)").Complete(context.Background(), nil, llm.Options{})
			require.NoError(t, err)
			second, err := NewDemoBackend(requestType, "x <- rnorm(100)").Complete(context.Background(), nil, llm.Options{})
			require.NoError(t, err)

			assert.Equal(t, first.Content, second.Content)
			assert.Zero(t, first.TotalTokens)
			assert.Contains(t, first.Content, DemoMarker)
		})
	}
}

func TestEngine_DemoMode_Deterministic(t *testing.T) {
	engine := NewEngine(nil, nil, nil, NopLogger{})

	for _, requestType := range []schema.RequestType{
		schema.RequestExplain,
		schema.RequestAnswer,
		schema.RequestTalk,
	} {
		t.Run(string(requestType), func(t *testing.T) {
			first, err := engine.Execute(context.Background(), requestType, "x <- 1:10", "s1", nil)
			require.NoError(t, err)
			second, err := engine.Execute(context.Background(), requestType, "x <- 1:10", "s1", nil)
			require.NoError(t, err)

			assert.Equal(t, first.AIResponse, second.AIResponse)
			assert.Equal(t, first.ExplanationResult, second.ExplanationResult)
			assert.Contains(t, first.AIResponse, DemoMarker)
			assert.Equal(t, schema.StatusSuccess, first.Status)
			assert.Equal(t, true, first.Metadata["demo_mode"])
			assert.Zero(t, first.TotalTokens)
		})
	}
}

func TestEngine_DemoMode_SolveYieldsThreeSolutions(t *testing.T) {
	engine := NewEngine(nil, nil, nil, NopLogger{})

	state, err := engine.Execute(context.Background(), schema.RequestAnswer, "clean a messy csv", "s1", nil)
	require.NoError(t, err)

	require.Len(t, state.CodeSolutions, 3)
	assert.Equal(t, schema.DifficultyBasic, state.CodeSolutions[0].Difficulty)
	assert.Equal(t, schema.DifficultyIntermediate, state.CodeSolutions[1].Difficulty)
	assert.Equal(t, schema.DifficultyAdvanced, state.CodeSolutions[2].Difficulty)
	for _, solution := range state.CodeSolutions {
		assert.NotEmpty(t, solution.Code)
		assert.NotEmpty(t, solution.Explanation)
		assert.NotEmpty(t, solution.Packages)
	}
	assert.Equal(t, schema.StatusSuccess, state.Status)
	assert.Greater(t, state.ProcessingTime, 0.0)
}

func TestEngine_UnavailablePredicateForcesDemo(t *testing.T) {
	unavailable := func() bool { return false }
	// The live backend would error; demo mode must shadow it entirely.
	engine := NewEngine(panicBackend{}, unavailable, nil, NopLogger{})

	state, err := engine.Execute(context.Background(), schema.RequestExplain, "x <- 1", "s1", nil)
	require.NoError(t, err)

	assert.Equal(t, true, state.Metadata["demo_mode"])
	assert.Contains(t, state.ExplanationResult, DemoMarker)
}
