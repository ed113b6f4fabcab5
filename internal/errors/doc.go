// Package errors provides typed errors with exit codes for skillify.
//
// # Error Types
//
// SkillifyError is the base error type that wraps an error with an exit code:
//
//	type SkillifyError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitRepository   = 2  // Repository path or fetch failure
//	ExitAnalysis     = 3  // Analysis pipeline failure
//	ExitCompose      = 4  // Bundle composition or write failure
//	ExitContract     = 5  // Wrapper contract validation failure
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.RepositoryNotFound("/no/such/repo")
//	errors.CloneFailed("https://example.com/repo.git", err)
//	errors.ComposeFailed("skills/demo/SKILL.md", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
