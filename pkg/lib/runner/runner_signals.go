//go:build unix

package runner

import (
	"os"
	"os/signal"
	"syscall"
)

// ignoreInterrupts keeps SIGINT and SIGQUIT from killing the timer while the
// child runs, so the child decides how to react and its report is still
// produced. The signals are caught rather than set to SIG_IGN, so the child
// gets the default disposition back on exec.
func ignoreInterrupts() (restore func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGQUIT)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
