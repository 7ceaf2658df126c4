// Package errors provides structured error types and exit codes for aliendict.
package errors

import (
	"fmt"
)

// Exit codes returned by the aliendict CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (I/O failure, etc.)
	ExitInputError   = 2 // Input error (malformed or contradictory word list)
	ExitConfigError  = 3 // Configuration error (invalid config file)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindInput
	KindOrdering
	KindConfig
)

// AlienError is the base error type for aliendict.
type AlienError struct {
	Kind    ErrorKind
	Message string
	Word    string // Earlier word of a conflicting pair, if applicable
	Next    string // Later word of a conflicting pair, if applicable
	Cause   error  // Underlying error
}

func (e *AlienError) Error() string {
	if e.Word != "" && e.Next != "" {
		return fmt.Sprintf("%s: %q appears before its prefix %q", e.Message, e.Word, e.Next)
	}
	return e.Message
}

func (e *AlienError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *AlienError) ExitCode() int {
	switch e.Kind {
	case KindInput, KindOrdering:
		return ExitInputError
	case KindConfig:
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *AlienError {
	return &AlienError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *AlienError {
	return New(fmt.Sprintf(format, args...))
}

// Input creates a new input error.
func Input(message string) *AlienError {
	return &AlienError{
		Kind:    KindInput,
		Message: message,
	}
}

// Inputf creates a new input error with formatting.
func Inputf(format string, args ...interface{}) *AlienError {
	return Input(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *AlienError {
	return &AlienError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *AlienError {
	return Config(fmt.Sprintf(format, args...))
}

// Ordering creates a structural-contradiction error for an adjacent word
// pair where the earlier word is a longer superset of the later one.
// Both offending words are carried on the error.
func Ordering(word, next string) *AlienError {
	return &AlienError{
		Kind:    KindOrdering,
		Message: "contradictory word list",
		Word:    word,
		Next:    next,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *AlienError {
	return &AlienError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// WrapInput wraps an error as an input error with additional context.
func WrapInput(err error, message string) *AlienError {
	return &AlienError{
		Kind:    KindInput,
		Message: message,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ae, ok := err.(*AlienError); ok {
		return ae.ExitCode()
	}
	return ExitRuntimeError
}
