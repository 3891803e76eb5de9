// Package errors provides standardized error handling for actionlens.
// It defines sentinel errors for the failure classes the CLI must surface
// distinctly, plus structured wrappers following Go 1.20+ error handling
// best practices.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Parsing errors
	ErrParseFailed = errors.New("workflow parse failed")

	// Visualization errors
	ErrNoJobs       = errors.New("workflow defines no jobs")
	ErrRenderFailed = errors.New("diagram rendering failed")
	ErrExportFailed = errors.New("artifact export failed")

	// Remote-fetch errors. The CLI presents each class with a distinct
	// message, so they must stay distinguishable after wrapping.
	ErrRepoNotFound     = errors.New("repository not found")
	ErrWorkflowNotFound = errors.New("workflow file not found")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrTransport        = errors.New("transport failure")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError represents a failure to parse a workflow document
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("parse workflow: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FetchError represents a failure while retrieving a remote resource
type FetchError struct {
	Repo      string
	Resource  string
	Operation string
	Err       error
}

func (e *FetchError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("fetch %s/%s: operation %s: %v", e.Repo, e.Resource, e.Operation, e.Err)
	}
	return fmt.Sprintf("fetch %s: operation %s: %v", e.Repo, e.Operation, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RenderError represents a failure in the external rendering collaborator
type RenderError struct {
	Renderer string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render via %s: %v", e.Renderer, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Error wrapping constructors
func WrapParseError(source string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Source: source, Err: fmt.Errorf("%w: %v", ErrParseFailed, err)}
}

func WrapFetchError(repo, resource, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Repo: repo, Resource: resource, Operation: operation, Err: err}
}

func WrapRenderError(renderer string, err error) error {
	if err == nil {
		return nil
	}
	return &RenderError{Renderer: renderer, Err: fmt.Errorf("%w: %v", ErrRenderFailed, err)}
}

func WrapConfigError(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Field: field, Err: fmt.Errorf("%w: %v", ErrInvalidConfig, err)}
}

// Error classification functions
func IsParseError(err error) bool {
	return errors.Is(err, ErrParseFailed)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrRepoNotFound) ||
		errors.Is(err, ErrWorkflowNotFound)
}

func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}

func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}

func IsRenderError(err error) bool {
	return errors.Is(err, ErrRenderFailed)
}

// Error extraction helpers
func GetRepo(err error) (string, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Repo, true
	}
	return "", false
}

func GetResource(err error) (string, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Resource, true
	}
	return "", false
}
