package schema

import "time"

// RequestType selects which pipeline an execution runs.
type RequestType string

const (
	RequestExplain RequestType = "explain"
	RequestAnswer  RequestType = "answer"
	RequestTalk    RequestType = "talk"
)

// IsValid reports whether the request type is one of the known pipelines.
func (rt RequestType) IsValid() bool {
	switch rt {
	case RequestExplain, RequestAnswer, RequestTalk:
		return true
	}
	return false
}

// Status is the terminal outcome of a pipeline run, computed at finalize.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Difficulty is the tier of a generated solution.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Turn is one message in a conversation history. Turns are immutable once
// appended to a state record.
type Turn struct {
	Role      string    `json:"role" yaml:"role"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Solution is one generated R code solution. Solutions keep their
// generation order end to end.
type Solution struct {
	Title       string     `json:"title" yaml:"title"`
	Code        string     `json:"code" yaml:"code"`
	Explanation string     `json:"explanation" yaml:"explanation"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	Packages    []string   `json:"packages" yaml:"packages"`
	Filename    string     `json:"filename" yaml:"filename"`
}

// Step is one timestamped entry in a run's processing log.
type Step struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

// WorkflowState is the shared state record threaded through a pipeline run.
// One instance exists per execution; it is never shared across concurrent
// requests and needs no locking. Stages append to the audit fields and write
// their owned output fields in place.
type WorkflowState struct {
	// Identity
	SessionID   string      `json:"session_id"`
	RequestID   string      `json:"request_id"`
	RequestType RequestType `json:"request_type"`

	// Input
	UserInput          string `json:"user_input"`
	OriginalCode       string `json:"original_code,omitempty"`
	ProblemDescription string `json:"problem_description,omitempty"`

	// Conversation history, ascending chronological order.
	ConversationHistory []Turn `json:"conversation_history"`

	// Outputs
	AIResponse        string     `json:"ai_response,omitempty"`
	ExplanationResult string     `json:"explanation_result,omitempty"`
	CodeSolutions     []Solution `json:"code_solutions"`

	// Analysis
	CodeAnalysis map[string]any `json:"code_analysis,omitempty"`
	QualityScore float64        `json:"quality_score,omitempty"`
	ProblemType  string         `json:"problem_type,omitempty"`

	// Audit
	ProcessingSteps []Step    `json:"processing_steps"`
	Errors          []string  `json:"errors"`
	Warnings        []string  `json:"warnings"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time,omitempty"`
	TotalTokens     int       `json:"total_tokens"`

	// Control, written only at finalize.
	Status         Status         `json:"status,omitempty"`
	Summary        string         `json:"summary,omitempty"`
	ProcessingTime float64        `json:"processing_time"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// AddStep appends a timestamped entry to the processing log.
func (s *WorkflowState) AddStep(message string) {
	s.ProcessingSteps = append(s.ProcessingSteps, Step{At: time.Now(), Message: message})
}

// AddError appends a human-readable error string.
func (s *WorkflowState) AddError(message string) {
	s.Errors = append(s.Errors, message)
}

// AddWarning appends a human-readable warning string.
func (s *WorkflowState) AddWarning(message string) {
	s.Warnings = append(s.Warnings, message)
}

// AppendTurn appends a turn stamped with the current time.
func (s *WorkflowState) AppendTurn(role, content string) {
	s.ConversationHistory = append(s.ConversationHistory, Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}
