// Package logging provides logging utilities for skillify.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("collecting evidence", "root", root)
//	logging.Warn("skipping unreadable candidate", "path", path)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Analyzing %s...", repoName)
//	logging.UserSuccess("Skill generated at %s", outputDir)
//	logging.UserWarning("No documentation found in %s", repoName)
//	logging.UserError("Failed to generate skill: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
