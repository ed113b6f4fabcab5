// Package contract defines the request/result protocol generated wrapper
// scripts must implement.
//
// The generator never executes this protocol itself; it emits scripts that
// do. A script reads input/request.json, performs one command against the
// vendored project, and writes output/result.json in one of three shapes:
//
//	{"status": "ok", "artifacts": [...], "summary": "..."}
//	{"status": "error", "message": "..."}
//	{"status": "pending", "action": {"tool": "...", "params": {...}}}
//
// Pending is not a failure: it asks the invoking orchestrator to perform
// the named follow-up action (typically spawning a sub-task with a bounded
// timeout) and resubmit its result before the operation can complete.
//
// Result is modeled as a sealed tagged variant so per-status payloads stay
// scoped to their tag; DecodeResult enforces the same shapes on the wire.
package contract
