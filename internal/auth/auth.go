// Package auth provides private-token resolution for GitLab instances.
// It implements a simple interface with multiple providers following the
// "deep modules" principle - simple interface, complex implementation hidden.
package auth

import (
	"errors"
	"fmt"
	"os"
)

// TokenProvider defines the interface for obtaining an instance API token.
// Implementations may use different sources (command-line value, environment
// variables, etc).
type TokenProvider interface {
	GetToken() (string, error)
}

// ArgProvider returns a token passed directly on the command line.
// The value "-" is a placeholder meaning "defer to the environment", so
// tokens can be kept out of shell history.
type ArgProvider struct {
	Value string
}

// GetToken returns the command-line value.
// Returns an error when the value is empty or the "-" placeholder.
func (a *ArgProvider) GetToken() (string, error) {
	if a.Value == "" || a.Value == "-" {
		return "", errors.New("no token given on the command line")
	}
	return a.Value, nil
}

// EnvProvider obtains tokens from a named environment variable.
// This is the fallback method when no token is given as an argument.
type EnvProvider struct {
	Var string
}

// GetToken reads the configured environment variable.
// Returns an error if the variable is not set or is empty.
func (e *EnvProvider) GetToken() (string, error) {
	token := os.Getenv(e.Var)
	if token == "" {
		return "", fmt.Errorf("%s environment variable not set or empty", e.Var)
	}
	return token, nil
}

// Resolve attempts to obtain an instance token using the following strategy:
// 1. Use the command-line value when it is neither empty nor "-"
// 2. Fall back to the named environment variable
// 3. Return a clear, actionable error if both fail
//
// This is the main entry point for token resolution in the application.
func Resolve(arg, envVar string) (string, error) {
	argProvider := &ArgProvider{Value: arg}
	token, err := argProvider.GetToken()
	if err == nil {
		return token, nil
	}

	envProvider := &EnvProvider{Var: envVar}
	token, err = envProvider.GetToken()
	if err == nil {
		return token, nil
	}

	return "", fmt.Errorf(
		"failed to obtain token: %v.\n"+
			"Please either:\n"+
			"  1. Pass the token as a positional argument, or\n"+
			"  2. Pass \"-\" and set the %s environment variable",
		err, envVar,
	)
}
