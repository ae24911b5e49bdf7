package executor

import "context"

//go:generate mockgen -destination=../../internal/mocks/executor_mock.go -package=mocks . Executor

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteInDir is Execute with dir as the working directory.
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
