package main

import (
	"context"
	"os"
)

// Exit codes for different error types
const (
	ExitSuccess         = 0 // Successful execution
	ExitGenericError    = 1 // Generic error
	ExitConfigError     = 2 // Configuration error
	ExitValidationError = 3 // Invalid flags or arguments
	ExitRepositoryError = 4 // Not inside a git repository
	ExitRemoteError     = 5 // Remote missing or its URL unparseable
	ExitGitError        = 6 // git failed, could not run, or produced bad output
	ExitBrowserError    = 7 // URL could not be opened
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code.
func run() int {
	cmd := newRootCommand()
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return ExitSuccess
	}

	cliErr := asCLIError(err)
	printError(cmd.ErrOrStderr(), cliErr)
	return cliErr.ExitCode()
}
