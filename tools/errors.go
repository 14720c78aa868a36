package tools

import "errors"

// Sentinel errors for the tools registry.
var (
	ErrNotFound        = errors.New("tool not found")
	ErrAlreadyExists   = errors.New("tool already registered")
	ErrEmptyName       = errors.New("tool name is empty")
	ErrInvalidSpec     = errors.New("tool spec carries no variant payload")
	ErrNotDispatchable = errors.New("builtin tools execute on the provider and cannot be registered")
	ErrArguments       = errors.New("tool arguments rejected by schema")
)
