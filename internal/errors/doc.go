// Package errors provides typed errors with exit codes for conswap.
//
// # Error Types
//
// Error is the base error type that wraps an error with an exit code:
//
//	type Error struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess           = 0  // Success
//	ExitGeneralError      = 1  // General/unknown errors
//	ExitGroupNotFound     = 2  // Group does not exist
//	ExitConfigNotFound    = 3  // Config does not exist in store or trash
//	ExitAlreadyExists     = 4  // Name collision on create/install/restore
//	ExitCorruptDescriptor = 5  // Descriptor unreadable (recoverable via fix)
//	ExitSourceUnavailable = 6  // Install source missing or unreachable
//	ExitInvalidField      = 7  // Unknown configure target
//	ExitWriteFailed       = 8  // Filesystem write/rename failure
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.GroupNotFound("neovim")
//	errors.ConfigNotFound("neovim", "minimal")
//	errors.CorruptDescriptor("neovim", err)
//	errors.SourceUnavailable("https://example.com/repo.git", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
