package term

import (
	"os"
	"os/signal"
	"syscall"
)

// WatchResize installs a SIGWINCH handler that calls onResize on a
// dedicated goroutine until stop is closed (spec 4.13, "POSIX: ...
// install SIGWINCH -> carryFlags.resize").
func (t *Terminal) WatchResize(onResize func(width, height int), stop <-chan struct{}) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(ch)
		for {
			select {
			case <-stop:
				return
			case <-ch:
				w, h := t.Size()
				onResize(w, h)
			}
		}
	}()
}

// fatalSignals is every signal spec 4.13 names as part of the exit
// path: SIGINT/SIGTERM for ordinary termination, plus the fault
// signals a crashing process may receive.
var fatalSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGSEGV,
	syscall.SIGILL,
	syscall.SIGFPE,
	syscall.SIGABRT,
}

// WatchFatalSignals installs a handler that runs Cleanup exactly once
// and exits the process on any signal in fatalSignals. Cleanup's own
// sync.Once guards re-entrancy if a signal arrives while another
// exit path is already running (spec §7, "re-entrant signal short-
// circuits cleanup").
func (t *Terminal) WatchFatalSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, fatalSignals...)

	go func() {
		<-ch
		t.Cleanup()
		os.Exit(1)
	}()
}
