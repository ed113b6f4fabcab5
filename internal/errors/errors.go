package errors

import (
	"errors"
	"fmt"
)

// Exit codes for skillify
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitRepository   = 2
	ExitAnalysis     = 3
	ExitCompose      = 4
	ExitContract     = 5
)

// SkillifyError is the base error type for skillify
type SkillifyError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SkillifyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SkillifyError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SkillifyError) ExitCode() int {
	return e.Code
}

// New creates a new SkillifyError
func New(code int, message string) *SkillifyError {
	return &SkillifyError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SkillifyError
func Wrap(code int, message string, cause error) *SkillifyError {
	return &SkillifyError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// RepositoryNotFound returns an error for a missing or unreadable repository path
func RepositoryNotFound(path string) *SkillifyError {
	return New(ExitRepository, fmt.Sprintf("repository not found: %s", path))
}

// CloneFailed returns an error for a failed repository fetch
func CloneFailed(source string, cause error) *SkillifyError {
	return Wrap(ExitRepository, fmt.Sprintf("failed to clone %s", source), cause)
}

// AnalysisFailed returns an error for analysis pipeline failures
func AnalysisFailed(step string, cause error) *SkillifyError {
	return Wrap(ExitAnalysis, fmt.Sprintf("analysis %s failed", step), cause)
}

// ComposeFailed returns an error for bundle composition failures.
// The path identifies the first failing file or directory.
func ComposeFailed(path string, cause error) *SkillifyError {
	return Wrap(ExitCompose, fmt.Sprintf("failed to write bundle at %s", path), cause)
}

// OutputExists returns an error when the output path is already occupied
func OutputExists(path string) *SkillifyError {
	return New(ExitCompose, fmt.Sprintf("output path already exists: %s", path))
}

// ContractViolation returns an error for wrapper contract validation failures
func ContractViolation(message string) *SkillifyError {
	return New(ExitContract, message)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SkillifyError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var skillErr *SkillifyError
	if errors.As(err, &skillErr) {
		return skillErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
