// Package prompt maps (category, kind) pairs to formatted instruction
// strings for the pipeline agents. Resolution never fails outward: unknown
// keys and formatting problems fall back to a generic usable prompt.
package prompt

import "strings"

// Category identifies an agent's prompt family.
type Category string

const (
	CategoryCodeExplainer Category = "code_explainer"
	CategoryProblemSolver Category = "problem_solver"
	CategoryConversation  Category = "conversation"
	CategoryCodeAnalyzer  Category = "code_analyzer"
	CategorySystem        Category = "system"
)

// Kind identifies a template within a category.
type Kind string

const (
	KindSystem          Kind = "system"
	KindUserTemplate    Kind = "user_template"
	KindQualityAnalysis Kind = "quality_analysis"
	KindGreeting        Kind = "greeting"
	KindBaseSystem      Kind = "base_system"
)

// Vars are the named variables a template may interpolate. Unused fields are
// ignored by templates that do not reference them.
type Vars struct {
	Code                   string
	AdditionalContext      string
	ProblemDescription     string
	AdditionalRequirements string
	Message                string
	ConversationContext    string
	CodePurpose            string
}

// formatter renders one template with the supplied variables.
type formatter func(Vars) string

// Resolver resolves prompt templates. The zero value is not usable; call
// NewResolver.
type Resolver struct {
	templates map[Category]map[Kind]formatter
}

// NewResolver creates a resolver preloaded with the built-in templates.
func NewResolver() *Resolver {
	return &Resolver{templates: defaultTemplates()}
}

// Get returns the formatted prompt for (category, kind). On any unknown key
// it returns a generic fallback string instead of failing.
func (r *Resolver) Get(category Category, kind Kind, vars Vars) string {
	kinds, ok := r.templates[category]
	if !ok {
		return r.fallback(kind, vars)
	}

	format, ok := kinds[kind]
	if !ok {
		return r.fallback(kind, vars)
	}

	text := format(vars)
	if strings.TrimSpace(text) == "" {
		return r.fallback(kind, vars)
	}
	return text
}

// System returns the system prompt for an agent category.
func (r *Resolver) System(category Category) string {
	return r.Get(category, KindSystem, Vars{})
}

func (r *Resolver) fallback(kind Kind, vars Vars) string {
	switch kind {
	case KindSystem, KindBaseSystem:
		if kinds, ok := r.templates[CategorySystem]; ok {
			if format, ok := kinds[KindBaseSystem]; ok {
				return format(Vars{})
			}
		}
		return "You are a helpful R programming assistant."
	case KindUserTemplate:
		message := vars.Message
		if message == "" {
			message = vars.Code
		}
		if message == "" {
			message = vars.ProblemDescription
		}
		return "User request: " + message + "\n\nPlease help with this."
	default:
		return "I am your R programming assistant. Tell me how I can help."
	}
}
