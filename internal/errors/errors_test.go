package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSkillifyError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *SkillifyError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestSkillifyError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause
	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestSkillifyError_ExitCode(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{ExitSuccess, "success"},
		{ExitGeneralError, "general"},
		{ExitRepository, "repository"},
		{ExitAnalysis, "analysis"},
		{ExitCompose, "compose"},
		{ExitContract, "contract"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "test")
			if got := err.ExitCode(); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestRepositoryNotFound(t *testing.T) {
	err := RepositoryNotFound("/no/such/repo")

	if err.Code != ExitRepository {
		t.Errorf("Code = %d, want %d", err.Code, ExitRepository)
	}

	if err.Message != "repository not found: /no/such/repo" {
		t.Errorf("Message = %q, want %q", err.Message, "repository not found: /no/such/repo")
	}
}

func TestCloneFailed(t *testing.T) {
	cause := fmt.Errorf("remote hung up")
	err := CloneFailed("https://example.com/repo.git", cause)

	if err.Code != ExitRepository {
		t.Errorf("Code = %d, want %d", err.Code, ExitRepository)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestComposeFailed(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := ComposeFailed("skills/demo/SKILL.md", cause)

	if err.Code != ExitCompose {
		t.Errorf("Code = %d, want %d", err.Code, ExitCompose)
	}

	if err.Message != "failed to write bundle at skills/demo/SKILL.md" {
		t.Errorf("Message = %q", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestContractViolation(t *testing.T) {
	err := ContractViolation("missing status field")

	if err.Code != ExitContract {
		t.Errorf("Code = %d, want %d", err.Code, ExitContract)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "SkillifyError",
			err:      RepositoryNotFound("test"),
			wantCode: ExitRepository,
		},
		{
			name:     "wrapped SkillifyError",
			err:      fmt.Errorf("outer: %w", OutputExists("skills/demo")),
			wantCode: ExitCompose,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	// Test that our errors work with standard error unwrapping
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitCompose, "compose error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	// Should be able to find root cause
	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}

	// Should be able to extract SkillifyError
	var skillErr *SkillifyError
	if !errors.As(outer, &skillErr) {
		t.Error("errors.As should find SkillifyError")
	}

	if skillErr.Code != ExitCompose {
		t.Errorf("Code = %d, want %d", skillErr.Code, ExitCompose)
	}
}
