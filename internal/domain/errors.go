package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDeployFirst is returned when an operation needs a deployment that
	// doesn't exist yet in either the record store or the ephemeral cache
	ErrDeployFirst = errors.New("no deployment found: run 'dforge deploy' first")

	// ErrRunFailed signals that a test or coverage run completed with
	// failures. It maps to a nonzero exit code without an error message:
	// the runner already streamed the details.
	ErrRunFailed = errors.New("run failed")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidChainID is returned when a chain ID is invalid
	ErrInvalidChainID = errors.New("invalid chain ID")

	// ErrNetworkMismatch is returned when network configurations don't match
	ErrNetworkMismatch = errors.New("network mismatch")
)

// MissingToolError indicates a required external binary is not installed.
type MissingToolError struct {
	Tool string
	Hint string
}

func (e *MissingToolError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s not found in PATH (%s)", e.Tool, e.Hint)
	}
	return fmt.Sprintf("%s not found in PATH", e.Tool)
}

// UnknownDiamondError carries fuzzy-matched suggestions for a diamond name
// that has no deployment records.
type UnknownDiamondError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownDiamondError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("no deployments for diamond %q (did you mean %s?)", e.Name, e.Suggestions[0])
	}
	return fmt.Sprintf("no deployments for diamond %q", e.Name)
}
