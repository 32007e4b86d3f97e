package schema

import (
	"fmt"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewRequestID generates a fresh unique id for one pipeline execution.
func NewRequestID() string {
	return uuid.NewString()
}

// NewSessionID generates a new session id in format SES-{nanoid(10)}.
func NewSessionID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SES-%s", id), nil
}
