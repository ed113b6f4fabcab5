package contract

import (
	"strings"
	"testing"

	"github.com/firefly-engineering/skillify/internal/errors"
)

func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"command":"run","args":{"task":"test"},"project_dir":"../vendor"}`))
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if req.Command != "run" {
		t.Errorf("Command: %s", req.Command)
	}
	if req.Args["task"] != "test" {
		t.Errorf("Args: %v", req.Args)
	}
	if req.ProjectDir != "../vendor" {
		t.Errorf("ProjectDir: %s", req.ProjectDir)
	}
}

func TestDecodeRequestDefaultsArgs(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"command":"info"}`))
	if err != nil {
		t.Fatal(err)
	}
	if req.Args == nil {
		t.Error("Args must be defaulted to an empty map")
	}
}

func TestDecodeRequestMissingCommand(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"args":{}}`))
	if err == nil {
		t.Fatal("Expected error for missing command")
	}
	var se *errors.SkillifyError
	if !errors.As(err, &se) || se.Code != errors.ExitContract {
		t.Errorf("Expected contract violation, got %v", err)
	}
}

func TestResultRoundTripOK(t *testing.T) {
	in := OK{
		Artifacts: []Artifact{{Type: "file", Path: "out/report.txt"}},
		Summary:   "done",
	}
	data, err := EncodeResult(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeResult(data)
	if err != nil {
		t.Fatal(err)
	}
	ok, isOK := out.(OK)
	if !isOK {
		t.Fatalf("Expected OK, got %T", out)
	}
	if ok.Summary != "done" || len(ok.Artifacts) != 1 || ok.Artifacts[0].Path != "out/report.txt" {
		t.Errorf("Round trip lost data: %+v", ok)
	}
}

func TestResultOKEmptyArtifactsEncodesArray(t *testing.T) {
	data, err := EncodeResult(OK{Summary: "nothing produced"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"artifacts":[]`) {
		t.Errorf("Empty artifacts must encode as [], got %s", data)
	}
}

func TestResultRoundTripError(t *testing.T) {
	data, err := EncodeResult(Error{Message: "boom"})
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeResult(data)
	if err != nil {
		t.Fatal(err)
	}
	e, isErr := out.(Error)
	if !isErr || e.Message != "boom" {
		t.Errorf("Expected Error{boom}, got %+v", out)
	}
}

func TestResultRoundTripPending(t *testing.T) {
	in := Pending{Action: Action{
		Tool: "sessions_spawn",
		Params: ActionParams{
			Task:  "run the test suite",
			Label: "tests",
		},
	}}
	data, err := EncodeResult(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeResult(data)
	if err != nil {
		t.Fatal(err)
	}
	p, isPending := out.(Pending)
	if !isPending {
		t.Fatalf("Expected Pending, got %T", out)
	}
	if p.Action.Tool != "sessions_spawn" {
		t.Errorf("Tool: %s", p.Action.Tool)
	}
	if p.Action.Params.RunTimeoutSeconds != DefaultRunTimeoutSeconds {
		t.Errorf("Zero timeout must be defaulted, got %d", p.Action.Params.RunTimeoutSeconds)
	}
}

func TestDecodeResultRejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing status", `{"message":"x"}`},
		{"unknown status", `{"status":"maybe"}`},
		{"ok without artifacts", `{"status":"ok"}`},
		{"ok artifacts not array", `{"status":"ok","artifacts":{"type":"file"}}`},
		{"error without message", `{"status":"error"}`},
		{"pending without action", `{"status":"pending"}`},
		{"pending action without tool", `{"status":"pending","action":{"params":{"task":"t"}}}`},
		{"pending action without task", `{"status":"pending","action":{"tool":"sessions_spawn","params":{}}}`},
		{"pending negative timeout", `{"status":"pending","action":{"tool":"sessions_spawn","params":{"task":"t","runTimeoutSeconds":-1}}}`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResult([]byte(tt.data))
			if err == nil {
				t.Fatalf("Expected rejection for %s", tt.data)
			}
			var se *errors.SkillifyError
			if !errors.As(err, &se) || se.Code != errors.ExitContract {
				t.Errorf("Expected contract exit code, got %v", err)
			}
		})
	}
}

func TestDecodeResultOKEmptyArray(t *testing.T) {
	out, err := DecodeResult([]byte(`{"status":"ok","artifacts":[]}`))
	if err != nil {
		t.Fatalf("Empty artifacts array is valid: %v", err)
	}
	ok := out.(OK)
	if ok.Artifacts == nil || len(ok.Artifacts) != 0 {
		t.Errorf("Expected empty non-nil artifacts, got %+v", ok.Artifacts)
	}
}
