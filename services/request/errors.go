package request

import (
	"errors"
	"fmt"
	"strings"
)

// Flow error codes. Everything here is recoverable or non-fatal; flow
// errors are surfaced to the client and never kill the process.
const (
	CodeCatalogUnavailable  = "catalogUnavailable"
	CodeIncompleteSelection = "incompleteSelection"
	CodeSubmissionFailed    = "submissionFailed"
	CodeEmailDeliveryFailed = "emailDeliveryFailed"
)

// ErrSessionNotFound marks a missing or expired session.
var ErrSessionNotFound = errors.New("request session not found or expired")

// ErrUnknownFlow marks a flow type outside booking/rental. This is a
// caller mistake, not a store failure.
var ErrUnknownFlow = errors.New("unknown flow type")

// FlowError is a typed engine error with a stable code. Fields names
// the missing inputs for incomplete-selection errors.
type FlowError struct {
	Code    string
	Message string
	Fields  []string
}

func (e *FlowError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (missing: %s)", e.Code, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewCatalogUnavailable wraps a catalog storage failure.
func NewCatalogUnavailable(cause error) *FlowError {
	msg := "catalog is unavailable; submission is disabled"
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &FlowError{Code: CodeCatalogUnavailable, Message: msg}
}

// NewIncompleteSelection names every field the user still has to fill.
func NewIncompleteSelection(fields ...string) *FlowError {
	return &FlowError{
		Code:    CodeIncompleteSelection,
		Message: "selection is incomplete",
		Fields:  fields,
	}
}

// NewSubmissionFailed wraps a persistence failure; the staged snapshot
// survives so the user can retry without re-entering anything.
func NewSubmissionFailed(cause error) *FlowError {
	return &FlowError{
		Code:    CodeSubmissionFailed,
		Message: fmt.Sprintf("failed to submit request: %v", cause),
	}
}

// AsFlowError unwraps err into a FlowError if it carries one.
func AsFlowError(err error) (*FlowError, bool) {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
