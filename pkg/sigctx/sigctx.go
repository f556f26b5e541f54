package sigctx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// ShutdownSignals stop the catalog processes.
var ShutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}

// SignalError is the cancellation cause of a context done by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e SignalError) Error() string {
	return fmt.Sprintf("received signal %s", e.Signal)
}

// NotifyContext returns a context canceled on the first shutdown signal or
// when stop is called. context.Cause reports the signal as SignalError.
func NotifyContext() (ctx context.Context, stop context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, ShutdownSignals...)

	go func() {
		select {
		case sig := <-ch:
			slog.Info("shutting down", "signal", sig.String())
			cancel(SignalError{Signal: sig})
		case <-ctx.Done():
		}
		signal.Stop(ch)
	}()

	return ctx, func() { cancel(context.Canceled) }
}
