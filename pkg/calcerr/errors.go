// Package calcerr defines the error taxonomy shared by the arithmetic and
// formatting packages.
//
// Every failure is an *InputError carrying a coarse Kind (who rejected the
// input) and a fine-grained Reason (which precondition failed). Callers match
// the kind with errors.Is against ErrComputationInput / ErrFormattingInput and
// the reason with ReasonOf.
package calcerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrComputationInput = errors.New("computation input error")
	ErrFormattingInput  = errors.New("formatting input error")
)

// Kind identifies which component rejected the input.
type Kind string

const (
	KindComputationInput Kind = "computation_input"
	KindFormattingInput  Kind = "formatting_input"
)

// Reason identifies the failed precondition.
type Reason string

const (
	ReasonNotInteger   Reason = "not_integer"
	ReasonZero         Reason = "zero"
	ReasonUnit         Reason = "unit"
	ReasonOutOfRange   Reason = "out_of_range"
	ReasonPrime        Reason = "prime"
	ReasonEmpty        Reason = "empty"
	ReasonTooMany      Reason = "too_many"
	ReasonElementType  Reason = "element_type"
	ReasonElementRange Reason = "element_range"
	ReasonInvalidName  Reason = "invalid_name"
)

// InputError reports invalid caller input.
type InputError struct {
	Op     string
	Kind   Kind
	Reason Reason
	Msg    string
}

func (e *InputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Is matches the sentinel for the error's kind.
func (e *InputError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrComputationInput:
		return e.Kind == KindComputationInput
	case ErrFormattingInput:
		return e.Kind == KindFormattingInput
	}
	return false
}

// Computation builds a computation input error.
func Computation(op string, reason Reason, format string, args ...interface{}) *InputError {
	return &InputError{
		Op:     op,
		Kind:   KindComputationInput,
		Reason: reason,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// Formatting builds a formatting input error.
func Formatting(op string, reason Reason, format string, args ...interface{}) *InputError {
	return &InputError{
		Op:     op,
		Kind:   KindFormattingInput,
		Reason: reason,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the first InputError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Kind, true
	}
	return "", false
}

// ReasonOf returns the reason of the first InputError in err's chain.
func ReasonOf(err error) (Reason, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Reason, true
	}
	return "", false
}

// IsReason reports whether err carries the given reason.
func IsReason(err error, reason Reason) bool {
	r, ok := ReasonOf(err)
	return ok && r == reason
}
