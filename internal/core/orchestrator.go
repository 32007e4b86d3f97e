package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rtutor/internal/llm"
	"rtutor/internal/prompt"
	"rtutor/pkg/schema"
)

// Engine executes the fixed multi-stage pipelines. It owns no per-session
// lock: concurrent Execute calls that share a session id may interleave, and
// callers needing per-session exclusivity must serialize themselves.
type Engine struct {
	live      Backend
	available func() bool
	resolver  *prompt.Resolver
	logger    Logger

	explainer      *ExplainerAgent
	solver         *SolverAgent
	conversational *ConversationAgent
	analyzer       *AnalyzerAgent
}

// NewEngine creates an engine. available is consulted once per Execute call;
// when it is nil or returns false, the execution runs against the
// deterministic demo backend instead of live.
func NewEngine(live Backend, available func() bool, resolver *prompt.Resolver, logger Logger) *Engine {
	if resolver == nil {
		resolver = prompt.NewResolver()
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Engine{
		live:           live,
		available:      available,
		resolver:       resolver,
		logger:         logger,
		explainer:      NewExplainerAgent(resolver, logger),
		solver:         NewSolverAgent(resolver, logger),
		conversational: NewConversationAgent(resolver, logger),
		analyzer:       NewAnalyzerAgent(resolver, logger),
	}
}

// NewEngineWithClient creates an engine over a real chat client, with the
// client's own credential check as the availability predicate.
func NewEngineWithClient(client *llm.Client, resolver *prompt.Resolver, logger Logger) *Engine {
	return NewEngine(client, client.Available, resolver, logger)
}

// Execute runs the pipeline selected by requestType and returns the terminal
// state record. Only pre-execution validation failures return an error;
// everything that goes wrong inside the pipeline is absorbed into the record,
// which always comes back with Status and ProcessingTime set.
func (e *Engine) Execute(
	ctx context.Context,
	requestType schema.RequestType,
	userInput string,
	sessionID string,
	history []schema.Turn,
) (*schema.WorkflowState, error) {
	if !requestType.IsValid() {
		return nil, &UnsupportedWorkflowError{RequestType: string(requestType)}
	}
	if strings.TrimSpace(userInput) == "" {
		return nil, &ValidationError{Field: "user_input", Message: "input must not be empty"}
	}

	// Backend availability is judged once per execution, not per stage.
	backend := e.live
	demoMode := backend == nil || e.available == nil || !e.available()
	if demoMode {
		backend = NewDemoBackend(requestType, userInput)
	}

	state := &schema.WorkflowState{
		SessionID:           sessionID,
		RequestID:           schema.NewRequestID(),
		RequestType:         requestType,
		UserInput:           userInput,
		ConversationHistory: NormalizeHistory(history),
		CodeSolutions:       []schema.Solution{},
		ProcessingSteps:     []schema.Step{},
		Errors:              []string{},
		Warnings:            []string{},
		StartTime:           time.Now(),
		Metadata:            map[string]any{"demo_mode": demoMode},
	}

	switch requestType {
	case schema.RequestExplain:
		state.OriginalCode = userInput
	case schema.RequestAnswer:
		state.ProblemDescription = userInput
	}

	e.logger.Info("workflow started",
		"request_type", string(requestType),
		"session_id", sessionID,
		"request_id", state.RequestID,
		"demo_mode", demoMode,
	)

	for _, stage := range e.pipeline(requestType, backend) {
		if err := runStage(ctx, stage, state); err != nil {
			e.logger.Error("stage failed",
				"stage", stage.Name,
				"error", err,
				"request_id", state.RequestID,
			)
			state.AddError(fmt.Sprintf("workflow execution failed in %s: %v", stage.Name, err))
			break
		}
	}

	// The finalize stage normally computes status. If the chain stopped
	// before reaching it, the partial record is finalized here so the
	// caller still gets a status and processing time.
	if state.Status == "" {
		_ = e.finalize(ctx, state)
	}

	e.logger.Info("workflow completed",
		"request_type", string(requestType),
		"session_id", sessionID,
		"request_id", state.RequestID,
		"status", string(state.Status),
	)
	return state, nil
}

// pipeline returns the fixed stage chain for a request type, bound to the
// backend chosen for this execution. Chains are linear: no branches, no
// cycles, and a recorded error never skips a later stage.
func (e *Engine) pipeline(requestType schema.RequestType, backend Backend) []Stage {
	agentStage := func(agent Agent) Stage {
		return Stage{
			Name: agent.Name(),
			Run: func(ctx context.Context, state *schema.WorkflowState) error {
				return agent.Process(ctx, state, backend)
			},
		}
	}
	finalize := Stage{Name: "finalize", Run: e.finalize}

	switch requestType {
	case schema.RequestExplain:
		return []Stage{
			agentStage(e.analyzer),
			agentStage(e.explainer),
			finalize,
		}
	case schema.RequestAnswer:
		return []Stage{
			{Name: "classify_problem", Run: classifyProblem},
			agentStage(e.solver),
			{Name: "validate_solutions", Run: validateSolutions},
			finalize,
		}
	default:
		return []Stage{
			agentStage(e.conversational),
			{Name: "enhance_context", Run: enhanceContext},
			finalize,
		}
	}
}

// runStage executes one stage, converting a panic into a returned error so
// a misbehaving stage cannot crash the caller.
func runStage(ctx context.Context, stage Stage, state *schema.WorkflowState) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage %s panicked: %v", stage.Name, r)
		}
	}()
	return stage.Run(ctx, state)
}

// finalize computes the terminal fields: end time, processing duration,
// status, and summary. Status is error if any errors were recorded, warning
// if only warnings were, success otherwise.
func (e *Engine) finalize(ctx context.Context, state *schema.WorkflowState) error {
	state.AddStep("finalization started")

	if state.EndTime.IsZero() {
		state.EndTime = time.Now()
	}
	state.ProcessingTime = state.EndTime.Sub(state.StartTime).Seconds()

	switch {
	case len(state.Errors) > 0:
		state.Status = schema.StatusError
		state.Summary = "processing failed: " + strings.Join(state.Errors, "; ")
	case len(state.Warnings) > 0:
		state.Status = schema.StatusWarning
		state.Summary = "processing completed with warnings: " + strings.Join(state.Warnings, "; ")
	default:
		state.Status = schema.StatusSuccess
		state.Summary = "processing completed successfully"
	}

	state.AddStep("finalization completed")
	return nil
}
