// Package signals lets long-running output loops stop cleanly.
// Commands that stream unbounded output install a handler so an
// interrupt ends the run at a line boundary instead of mid-write.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/quarrylane/pastime/internal/pkg/logger"
)

// SetupHandler cancels ctx when SIGINT, SIGTERM or SIGHUP arrives.
// The returned cleanup releases the handler; call it before the
// command returns so a later signal gets the default treatment again.
func SetupHandler(ctx context.Context, cancel context.CancelFunc) (cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Debug("Received signal, stopping", "signal", sig.String())
			cancel()
		case <-ctx.Done():
			// Context already cancelled, nothing to do
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
