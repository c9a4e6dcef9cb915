package http

import (
	"fmt"
	"time"
)

// ErrorEnvelope is the uniform JSON body for every gateway-generated failure,
// regardless of cause. Error carries the human-readable message or the list
// of validation errors; Detail is optional extra diagnostic text.
type ErrorEnvelope struct {
	Error     interface{} `json:"error"`
	Detail    string      `json:"detail,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewErrorEnvelope builds an envelope with the current timestamp.
func NewErrorEnvelope(errValue interface{}) *ErrorEnvelope {
	return &ErrorEnvelope{
		Error:     errValue,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// NewErrorEnvelopef builds an envelope from a formatted message.
func NewErrorEnvelopef(format string, a ...interface{}) *ErrorEnvelope {
	return NewErrorEnvelope(fmt.Sprintf(format, a...))
}

// WithDetail attaches diagnostic detail.
func (e *ErrorEnvelope) WithDetail(detail string) *ErrorEnvelope {
	e.Detail = detail
	return e
}
