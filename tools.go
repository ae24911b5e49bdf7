//go:build tools
// +build tools

// Package tools pins Go-based tools invoked through go generate, so that
// mockgen is tracked in go.mod.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
