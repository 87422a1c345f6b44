package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// NewCtx returns a context canceled on the first interrupt or termination signal.
func NewCtx() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
