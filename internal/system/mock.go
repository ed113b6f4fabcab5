package system

import (
	"context"
	"strings"
	"sync"
)

// MockExecutor implements CommandExecutor for testing.
// It records every invocation and replays canned responses keyed by the
// joined command line.
type MockExecutor struct {
	mu    sync.Mutex
	calls [][]string

	// Responses maps a joined command line ("git clone ...") to its output.
	Responses map[string][]byte

	// Errors maps a joined command line to an injected error.
	Errors map[string]error

	// DefaultErr is returned for any command without a matching entry in
	// Errors when set.
	DefaultErr error
}

// NewMockExecutor creates a MockExecutor with empty response tables.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Responses: make(map[string][]byte),
		Errors:    make(map[string]error),
	}
}

func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	call := append([]string{name}, args...)
	m.calls = append(m.calls, call)
	m.mu.Unlock()

	key := strings.Join(call, " ")
	if err, ok := m.Errors[key]; ok {
		return m.Responses[key], err
	}
	if m.DefaultErr != nil {
		return nil, m.DefaultErr
	}
	return m.Responses[key], nil
}

// Calls returns a copy of the recorded invocations.
func (m *MockExecutor) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// CalledWith reports whether any recorded call starts with the given words.
func (m *MockExecutor) CalledWith(words ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, call := range m.calls {
		if len(call) < len(words) {
			continue
		}
		match := true
		for i, w := range words {
			if call[i] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

var _ CommandExecutor = (*MockExecutor)(nil)
