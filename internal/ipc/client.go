package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
	"time"
)

var (
	// ErrConnect wraps failures to reach the daemon socket.
	ErrConnect = errors.New("connect to yabai socket")
	// ErrIO wraps write or read failures after the connection is established.
	ErrIO = errors.New("yabai socket I/O")
)

// Exchange performs one request/response roundtrip on a fresh connection.
//
// The reply is everything the daemon writes before closing its end. A zero
// timeout leaves the exchange unbounded apart from ctx.
func Exchange(ctx context.Context, path string, args []string, timeout time.Duration) ([]byte, error) {
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConnect, path, err)
	}
	defer conn.Close()

	if timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return nil, fmt.Errorf("%w: set deadline: %w", ErrIO, err)
		}
	}

	// A deadline in the past unblocks pending reads and writes on cancellation.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	// A daemon may hang up without reading the request; that is an empty reply.
	if _, err := conn.Write(EncodeRequest(args)); err != nil && !isPeerClosed(err) {
		return nil, fmt.Errorf("%w: write request: %w", ErrIO, contextCause(ctx, err))
	}

	reply, err := io.ReadAll(conn)
	if err != nil && !isPeerClosed(err) {
		return nil, fmt.Errorf("%w: read reply: %w", ErrIO, contextCause(ctx, err))
	}
	return reply, nil
}

// Probe checks whether a listener is currently accepting on path.
func Probe(ctx context.Context, path string, timeout time.Duration) (bool, error) {
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "unix", path)
	if err == nil {
		_ = conn.Close()
		return true, nil
	}
	if isSocketMissing(err) || isConnectionRefused(err) {
		return false, nil
	}
	return false, fmt.Errorf("probe socket: %w", err)
}

// contextCause prefers the context error when cancellation caused err.
func contextCause(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// isSocketMissing reports absent-socket failures.
func isSocketMissing(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, os.ErrNotExist)
}

// isConnectionRefused reports no-listener failures.
func isConnectionRefused(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}

// isPeerClosed reports a hangup from the daemon side of the connection.
func isPeerClosed(err error) bool {
	return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE)
}
