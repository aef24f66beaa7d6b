package main

import (
	"context"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWatchSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	caught := watchSignal(ctx, cancel, sigCh)

	sigCh <- syscall.SIGINT
	<-ctx.Done()
	select {
	case sig := <-caught:
		require.Equal(t, syscall.SIGINT, sig)
	default:
		require.Fail(t, "signal should be caught before ctx is canceled")
	}
}
