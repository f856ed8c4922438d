// Package logging provides logging utilities for conswap.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("installing config", "group", group, "name", name)
//	logging.Warn("trash collision", "name", name)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Swapping group %s to config %s...", group, config)
//	logging.UserSuccess("Created group %s", name)
//	logging.UserWarning("Destination %s has untracked contents", dest)
//	logging.UserError("Failed to install config: %v", err)
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
