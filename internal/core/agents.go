package core

import (
	"context"
	"fmt"
	"strings"

	"rtutor/internal/analyzer"
	"rtutor/internal/llm"
	"rtutor/internal/prompt"
	"rtutor/pkg/schema"
)

// Agent is one specialized processing unit. Each Process call makes at most
// one backend call, records its outcome on the state, and never lets a
// backend failure escape: Explainer, Solver, and Conversationalist record
// failures as errors, the Analyzer records them as warnings.
type Agent interface {
	Name() string
	Process(ctx context.Context, state *schema.WorkflowState, backend Backend) error
}

// buildMessages assembles the ordered message list for one backend call:
// system instruction, trailing history window, current instruction.
func buildMessages(system string, history []schema.Turn, instruction string) []llm.Message {
	window := HistoryWindow(history, HistoryWindowSize)

	messages := make([]llm.Message, 0, len(window)+2)
	messages = append(messages, llm.Message{Role: "system", Content: system})
	for _, turn := range window {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: instruction})
	return messages
}

// ExplainerAgent produces the code explanation.
type ExplainerAgent struct {
	resolver *prompt.Resolver
	logger   Logger
}

func NewExplainerAgent(resolver *prompt.Resolver, logger Logger) *ExplainerAgent {
	return &ExplainerAgent{resolver: resolver, logger: logger}
}

func (a *ExplainerAgent) Name() string { return "code_explainer" }

func (a *ExplainerAgent) Process(ctx context.Context, state *schema.WorkflowState, backend Backend) error {
	state.AddStep("code explanation started")

	code := state.OriginalCode
	if code == "" {
		code = state.UserInput
	}
	if strings.TrimSpace(code) == "" {
		state.AddError("no code provided to explain")
		return nil
	}

	instruction := a.resolver.Get(prompt.CategoryCodeExplainer, prompt.KindUserTemplate, prompt.Vars{Code: code})
	messages := buildMessages(a.resolver.System(prompt.CategoryCodeExplainer), state.ConversationHistory, instruction)

	completion, err := backend.Complete(ctx, messages, llm.Options{Temperature: 0.7, MaxTokens: 4000})
	if err != nil {
		a.logger.Error("code explanation failed", "error", err, "request_id", state.RequestID)
		state.AddError(fmt.Sprintf("code explanation failed: %v", err))
		return nil
	}

	state.ExplanationResult = completion.Content
	state.AIResponse = completion.Content
	state.TotalTokens += completion.TotalTokens
	state.AddStep("code explanation completed")
	return nil
}

// SolverAgent generates tiered code solutions for a problem.
type SolverAgent struct {
	resolver *prompt.Resolver
	logger   Logger
}

func NewSolverAgent(resolver *prompt.Resolver, logger Logger) *SolverAgent {
	return &SolverAgent{resolver: resolver, logger: logger}
}

func (a *SolverAgent) Name() string { return "problem_solver" }

func (a *SolverAgent) Process(ctx context.Context, state *schema.WorkflowState, backend Backend) error {
	state.AddStep("problem solving started")

	problem := state.ProblemDescription
	if problem == "" {
		problem = state.UserInput
	}
	if strings.TrimSpace(problem) == "" {
		state.AddError("no problem provided to solve")
		return nil
	}

	instruction := a.resolver.Get(prompt.CategoryProblemSolver, prompt.KindUserTemplate, prompt.Vars{ProblemDescription: problem})
	messages := buildMessages(a.resolver.System(prompt.CategoryProblemSolver), state.ConversationHistory, instruction)

	completion, err := backend.Complete(ctx, messages, llm.Options{Temperature: 0.8, MaxTokens: 6000})
	if err != nil {
		a.logger.Error("problem solving failed", "error", err, "request_id", state.RequestID)
		state.AddError(fmt.Sprintf("problem solving failed: %v", err))
		return nil
	}

	solutions := ParseSolutions(completion.Content, problem)

	state.CodeSolutions = solutions
	state.AIResponse = completion.Content
	state.TotalTokens += completion.TotalTokens
	state.AddStep(fmt.Sprintf("problem solving completed, %d solutions generated", len(solutions)))
	return nil
}

// ConversationAgent handles one turn of free-form chat.
type ConversationAgent struct {
	resolver *prompt.Resolver
	logger   Logger
}

func NewConversationAgent(resolver *prompt.Resolver, logger Logger) *ConversationAgent {
	return &ConversationAgent{resolver: resolver, logger: logger}
}

func (a *ConversationAgent) Name() string { return "conversation_agent" }

func (a *ConversationAgent) Process(ctx context.Context, state *schema.WorkflowState, backend Backend) error {
	state.AddStep("conversation started")

	message := state.UserInput
	if strings.TrimSpace(message) == "" {
		state.AddError("no message provided for conversation")
		return nil
	}

	messages := buildMessages(a.resolver.System(prompt.CategoryConversation), state.ConversationHistory, message)

	completion, err := backend.Complete(ctx, messages, llm.Options{Temperature: 0.8, MaxTokens: 4000})
	if err != nil {
		a.logger.Error("conversation failed", "error", err, "request_id", state.RequestID)
		state.AddError(fmt.Sprintf("conversation failed: %v", err))
		return nil
	}

	reply := completion.Content
	if reply == "" {
		reply = "Sorry, I could not generate a reply."
	}

	state.AIResponse = reply
	state.TotalTokens += completion.TotalTokens
	state.AppendTurn("user", message)
	state.AppendTurn("assistant", reply)
	state.AddStep("conversation completed")
	return nil
}

// AnalyzerAgent runs the deterministic static analyzer and then asks the
// backend for a narrative review. The backend call is best effort: its
// failure is recorded as a warning, never an error.
type AnalyzerAgent struct {
	resolver *prompt.Resolver
	logger   Logger
}

func NewAnalyzerAgent(resolver *prompt.Resolver, logger Logger) *AnalyzerAgent {
	return &AnalyzerAgent{resolver: resolver, logger: logger}
}

func (a *AnalyzerAgent) Name() string { return "code_analyzer" }

func (a *AnalyzerAgent) Process(ctx context.Context, state *schema.WorkflowState, backend Backend) error {
	state.AddStep("code analysis started")

	code := state.OriginalCode
	if code == "" {
		code = state.UserInput
	}
	if strings.TrimSpace(code) == "" {
		state.AddWarning("no code provided for analysis, skipping")
		return nil
	}

	static := analyzer.Analyze(code)
	if static.Error != "" {
		state.AddWarning(fmt.Sprintf("static analysis failed: %s", static.Error))
	} else {
		state.QualityScore = static.QualityScore
		state.CodeAnalysis = map[string]any{
			"metrics":         static.Metrics,
			"quality_score":   static.QualityScore,
			"quality_issues":  static.QualityIssues,
			"style_issues":    static.StyleIssues,
			"complexity":      static.Complexity,
			"recommendations": static.Recommendations,
		}
	}

	instruction := a.resolver.Get(prompt.CategoryCodeAnalyzer, prompt.KindQualityAnalysis, prompt.Vars{
		Code:        code,
		CodePurpose: "code quality analysis",
	})
	messages := buildMessages(a.resolver.System(prompt.CategoryCodeAnalyzer), state.ConversationHistory, instruction)

	completion, err := backend.Complete(ctx, messages, llm.Options{Temperature: 0.3, MaxTokens: 4000})
	if err != nil {
		a.logger.Warn("code review call failed", "error", err, "request_id", state.RequestID)
		state.AddWarning(fmt.Sprintf("code analysis failed: %v", err))
		return nil
	}

	if state.CodeAnalysis == nil {
		state.CodeAnalysis = map[string]any{}
	}
	state.CodeAnalysis["analysis_result"] = completion.Content
	state.TotalTokens += completion.TotalTokens
	state.AddStep("code analysis completed")
	return nil
}
