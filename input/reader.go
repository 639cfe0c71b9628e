package input

import (
	"io"

	"github.com/gravitational/trace"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// readBufferSize is the input thread's worst-case per-read buffer:
// two 256-byte escape sequences (spec 4.10, "buffer worst case 2x256
// bytes, larger reads truncated").
const readBufferSize = 2 * 256

// Reader is the input thread's byte source. On a real TTY it blocks in
// Read the way a raw-mode terminal is expected to; on a non-TTY stdin
// (piped input, tests) it polls the file descriptor first and returns
// immediately with no bytes when nothing is ready, rather than
// blocking the input thread on a read that may never return (spec
// 4.10, "non-TTY stdin: input thread reads only on poll-readable").
type Reader struct {
	r     io.Reader
	fd    int
	isTTY bool
	buf   [readBufferSize]byte
}

// NewReader wraps r, reading from the OS file descriptor fd for TTY
// detection and polling.
func NewReader(r io.Reader, fd int) *Reader {
	return &Reader{r: r, fd: fd, isTTY: term.IsTerminal(fd)}
}

// ReadAvailable returns whatever bytes are currently available,
// possibly none. On a TTY it may block briefly in the underlying
// Read; on a non-TTY source it never blocks.
func (rd *Reader) ReadAvailable() ([]byte, error) {
	if !rd.isTTY {
		ready, err := pollReadable(rd.fd)
		if err != nil {
			return nil, trace.Wrap(err, "polling stdin")
		}
		if !ready {
			return nil, nil
		}
	}

	n, err := rd.r.Read(rd.buf[:])
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, trace.Wrap(err, "reading stdin")
	}
	return rd.buf[:n], nil
}

func pollReadable(fd int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
}
