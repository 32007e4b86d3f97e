package llm

import "fmt"

// LLMError represents an error from the chat backend client.
type LLMError struct {
	// Type categorizes the error
	Type string

	// Message is a human-readable error message
	Message string

	// Code is the HTTP status code (if applicable)
	Code int

	// Err is the underlying error
	Err error
}

// Error types.
const (
	ErrorTypeNetwork = "network"
	ErrorTypeAPI     = "api"
	ErrorTypeTimeout = "timeout"
	ErrorTypeParse   = "parse"
)

// Error implements the error interface.
func (e *LLMError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("LLM %s error (code %d): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("LLM %s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *LLMError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a network error.
func NewNetworkError(err error) *LLMError {
	return &LLMError{
		Type:    ErrorTypeNetwork,
		Message: "Failed to connect to the DeepSeek API. Check your network connection.",
		Err:     err,
	}
}

// NewAPIError creates an API error with status code.
func NewAPIError(code int, message string) *LLMError {
	return &LLMError{
		Type:    ErrorTypeAPI,
		Code:    code,
		Message: fmt.Sprintf("DeepSeek API error: %s", message),
	}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *LLMError {
	return &LLMError{
		Type:    ErrorTypeTimeout,
		Message: "Request timed out. The model may be under heavy load.",
		Err:     err,
	}
}

// NewParseError creates a parse error.
func NewParseError(message string, err error) *LLMError {
	return &LLMError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("Failed to parse backend response: %s", message),
		Err:     err,
	}
}
