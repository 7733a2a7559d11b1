package domain

import "go.trai.ch/zerr"

var (
	// ErrDependencyNotFound is returned when every resolution strategy for
	// a dependency has been exhausted.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrPathTraversal is returned when a relative path resolves outside
	// the plugin root. Treated as a security violation, never defaulted.
	ErrPathTraversal = zerr.New("path escapes plugin root")
)
