package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrResolutionMiss        = errors.New("name not resolved")
	ErrUpstream              = errors.New("upstream error")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrInternal              = errors.New("internal error")
)

// ResolutionMissError reports a name that matched no alias. It unwraps to
// ErrResolutionMiss and carries the suggestions offered to the caller.
type ResolutionMissError struct {
	Kind        string
	Query       string
	Suggestions []string
}

func (e *ResolutionMissError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("%s not found: %q, did you mean: %s?", e.Kind, e.Query, strings.Join(e.Suggestions, ", "))
	}
	return fmt.Sprintf("%s not found: %q, please check the name and try again", e.Kind, e.Query)
}

func (e *ResolutionMissError) Unwrap() error {
	return ErrResolutionMiss
}

// invalidInput wraps ErrInvalidInput while keeping msg as the caller-facing text.
func invalidInput(msg string) error {
	return &messageError{msg: msg, kind: ErrInvalidInput}
}

// messageError is a sentinel-tagged error whose Error() is exactly msg, so the
// HTTP envelope carries the message without a sentinel prefix.
type messageError struct {
	msg  string
	kind error
	err  error
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() []error {
	if e.err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.err}
}
