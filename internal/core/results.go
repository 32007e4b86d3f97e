package core

import "rtutor/pkg/schema"

// Result is the caller-facing view of a terminal state record, shaped for
// the web layer: content plus timing, usage, and diagnostics.
type Result struct {
	Content        string         `json:"content"`
	Solutions      []schema.Solution `json:"solutions,omitempty"`
	ProcessingTime float64        `json:"processing_time"`
	TotalTokens    int            `json:"total_tokens"`
	Success        bool           `json:"success"`
	Status         schema.Status  `json:"status"`
	Metadata       map[string]any `json:"metadata"`
}

// ResultFrom shapes a terminal state record into a Result. Explain runs
// prefer the explanation text, solve runs carry their solutions, and demo
// runs keep their demo_mode marker in the metadata.
func ResultFrom(state *schema.WorkflowState) Result {
	content := state.AIResponse
	if state.RequestType == schema.RequestExplain && state.ExplanationResult != "" {
		content = state.ExplanationResult
	}

	metadata := map[string]any{
		"workflow_steps": state.ProcessingSteps,
		"warnings":       state.Warnings,
		"errors":         state.Errors,
	}
	for key, value := range state.Metadata {
		metadata[key] = value
	}
	if state.ProblemType != "" {
		metadata["problem_type"] = state.ProblemType
	}
	if state.CodeAnalysis != nil {
		metadata["code_analysis"] = state.CodeAnalysis
		metadata["quality_score"] = state.QualityScore
	}

	return Result{
		Content:        content,
		Solutions:      state.CodeSolutions,
		ProcessingTime: state.ProcessingTime,
		TotalTokens:    state.TotalTokens,
		Success:        state.Status == schema.StatusSuccess,
		Status:         state.Status,
		Metadata:       metadata,
	}
}
