package term

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchResizeFiresOnSIGWINCH(t *testing.T) {
	term, _ := newTestTerminal(t)
	stop := make(chan struct{})
	defer close(stop)

	fired := make(chan struct{}, 1)
	term.WatchResize(func(w, h int) {
		select {
		case fired <- struct{}{}:
		default:
		}
	}, stop)

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGWINCH))

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("resize callback never fired")
	}
}

// WatchFatalSignals itself is not exercised here: it installs a
// process-wide handler that calls os.Exit, which would tear down the
// test binary rather than report a result.
