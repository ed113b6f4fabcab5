package contract

import (
	"encoding/json"
	"fmt"

	"github.com/firefly-engineering/skillify/internal/errors"
)

// Version identifies the wrapper contract revision embedded into generated
// scripts.
const Version = "1"

// DefaultRunTimeoutSeconds is applied when a pending action omits
// runTimeoutSeconds.
const DefaultRunTimeoutSeconds = 300

// Status literals for result objects.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusPending = "pending"
)

// Request is the object a generated entry point consumes.
type Request struct {
	Command    string         `json:"command"`
	Args       map[string]any `json:"args"`
	ProjectDir string         `json:"project_dir"`
}

// Artifact is one output reference in an ok result.
type Artifact struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

// ActionParams parameterizes a pending follow-up action.
type ActionParams struct {
	Task              string `json:"task"`
	Label             string `json:"label"`
	RunTimeoutSeconds int    `json:"runTimeoutSeconds"`
}

// Action names the tool the orchestrator must invoke before the skill's
// operation can complete.
type Action struct {
	Tool   string       `json:"tool"`
	Params ActionParams `json:"params"`
}

// Result is the three-state execution result. It is a sealed tagged
// variant: exactly OK, Error and Pending implement it, so invalid
// combinations (pending with artifacts) are unrepresentable.
type Result interface {
	Status() string
	sealedResult()
}

// OK is the terminal success state.
type OK struct {
	Artifacts []Artifact
	Summary   string
}

// Error is the terminal failure state.
type Error struct {
	Message string
}

// Pending is the non-terminal state: the orchestrator must perform Action
// and resubmit its outcome. Pending is explicitly not a failure.
type Pending struct {
	Action Action
}

func (OK) Status() string      { return StatusOK }
func (Error) Status() string   { return StatusError }
func (Pending) Status() string { return StatusPending }

func (OK) sealedResult()      {}
func (Error) sealedResult()   {}
func (Pending) sealedResult() {}

var (
	_ Result = OK{}
	_ Result = Error{}
	_ Result = Pending{}
)

// DecodeRequest parses and validates a request object.
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Request{}, errors.ContractViolation(fmt.Sprintf("malformed request: %v", err))
	}
	if req.Command == "" {
		return Request{}, errors.ContractViolation("request is missing command")
	}
	if req.Args == nil {
		req.Args = map[string]any{}
	}
	return req, nil
}

// EncodeResult serializes a result into its wire shape.
func EncodeResult(r Result) ([]byte, error) {
	switch v := r.(type) {
	case OK:
		artifacts := v.Artifacts
		if artifacts == nil {
			artifacts = []Artifact{}
		}
		return json.Marshal(struct {
			Status    string     `json:"status"`
			Artifacts []Artifact `json:"artifacts"`
			Summary   string     `json:"summary"`
		}{StatusOK, artifacts, v.Summary})
	case Error:
		return json.Marshal(struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}{StatusError, v.Message})
	case Pending:
		action := v.Action
		if action.Params.RunTimeoutSeconds == 0 {
			action.Params.RunTimeoutSeconds = DefaultRunTimeoutSeconds
		}
		return json.Marshal(struct {
			Status string `json:"status"`
			Action Action `json:"action"`
		}{StatusPending, action})
	default:
		return nil, errors.ContractViolation(fmt.Sprintf("unknown result type %T", r))
	}
}

// resultEnvelope is the permissive decode target; DecodeResult enforces
// per-status shape on top of it.
type resultEnvelope struct {
	Status    *string          `json:"status"`
	Artifacts *json.RawMessage `json:"artifacts"`
	Summary   string           `json:"summary"`
	Message   string           `json:"message"`
	Action    *json.RawMessage `json:"action"`
}

// DecodeResult parses and validates a result object, dispatching on the
// status tag. It rejects a missing or unknown status, an ok result whose
// artifacts is not an array, an error result without a message, and a
// pending result without a usable action.
func DecodeResult(data []byte) (Result, error) {
	var env resultEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.ContractViolation(fmt.Sprintf("malformed result: %v", err))
	}
	if env.Status == nil {
		return nil, errors.ContractViolation("result is missing status")
	}

	switch *env.Status {
	case StatusOK:
		if env.Artifacts == nil {
			return nil, errors.ContractViolation("ok result is missing artifacts")
		}
		var artifacts []Artifact
		if err := json.Unmarshal(*env.Artifacts, &artifacts); err != nil {
			return nil, errors.ContractViolation("ok result artifacts must be an array")
		}
		if artifacts == nil {
			artifacts = []Artifact{}
		}
		return OK{Artifacts: artifacts, Summary: env.Summary}, nil

	case StatusError:
		if env.Message == "" {
			return nil, errors.ContractViolation("error result is missing message")
		}
		return Error{Message: env.Message}, nil

	case StatusPending:
		if env.Action == nil {
			return nil, errors.ContractViolation("pending result is missing action")
		}
		var action Action
		if err := json.Unmarshal(*env.Action, &action); err != nil {
			return nil, errors.ContractViolation(fmt.Sprintf("pending result action is malformed: %v", err))
		}
		if action.Tool == "" {
			return nil, errors.ContractViolation("pending action is missing tool")
		}
		if action.Params.Task == "" {
			return nil, errors.ContractViolation("pending action is missing params.task")
		}
		if action.Params.RunTimeoutSeconds < 0 {
			return nil, errors.ContractViolation("pending action runTimeoutSeconds must be positive")
		}
		if action.Params.RunTimeoutSeconds == 0 {
			action.Params.RunTimeoutSeconds = DefaultRunTimeoutSeconds
		}
		return Pending{Action: action}, nil

	default:
		return nil, errors.ContractViolation(fmt.Sprintf("unknown result status %q", *env.Status))
	}
}
