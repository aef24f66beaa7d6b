package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lance6716/provinces/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	caught := watchSignal(ctx, cancel, sigCh)

	err := cmd.Execute(ctx)
	if err != nil {
		var sig os.Signal
		select {
		case sig = <-caught:
		default:
		}
		if errors.Is(err, context.Canceled) && sig != nil {
			fmt.Fprintf(os.Stderr, "cancel provinces by user signal %s\n", sig.String())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		cancel()
		os.Exit(1)
	}
}

// watchSignal cancels ctx on the first signal from sigCh. The signal is sent to
// the returned channel before cancel is called.
func watchSignal(
	ctx context.Context,
	cancel context.CancelFunc,
	sigCh <-chan os.Signal,
) <-chan os.Signal {
	caught := make(chan os.Signal, 1)
	go func() {
		select {
		case <-ctx.Done():
		case sig := <-sigCh:
			caught <- sig
			cancel()
		}
	}()
	return caught
}
