// Package system provides abstractions for OS command execution to enable testing.
package system

import (
	"context"
	"os/exec"
)

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// Execute runs a command and returns its combined output.
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// DefaultExecutor returns the CommandExecutor implementation backed by the OS.
func DefaultExecutor() CommandExecutor {
	return &osExecutor{}
}
