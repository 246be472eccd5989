package executor

import (
	"context"
	"io"
)

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteWithStdin(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error)
}
