package app

import (
	"os"
	"os/signal"
)

// watchSignals tears the session down and exits with status 1 when a
// termination signal arrives. The returned function stops watching.
func (app *Application) watchSignals() func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, terminationSignals()...)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigCh:
			app.logger.Info("quit", "cause", "signal", "signal", sig.String())
			app.teardown(true)
			exit(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
