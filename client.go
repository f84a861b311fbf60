package yabai

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rbright/yabai/internal/ipc"
)

// Client sends messages to the daemon listening on SocketPath.
//
// A Client holds no connection; every call dials, exchanges one message and
// closes, so a Client may be shared between goroutines.
type Client struct {
	SocketPath string
	// Timeout bounds dial plus exchange. Zero waits for as long as ctx allows.
	Timeout time.Duration
}

// NewClient returns a client for an explicit socket path.
func NewClient(socketPath string) *Client {
	return &Client{SocketPath: socketPath}
}

// DefaultClient returns a client for the invoking user's conventional socket.
func DefaultClient() (*Client, error) {
	path, err := ipc.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	return NewClient(path), nil
}

// Send delivers a whitespace-separated message, exactly as it would follow
// `yabai -m`. ok reports whether the daemon replied with a payload.
func (c *Client) Send(ctx context.Context, message string) (reply string, ok bool, err error) {
	args := ipc.SplitArgs(message)
	if len(args) == 0 {
		return "", false, ErrEmptyMessage
	}

	raw, err := ipc.Exchange(ctx, c.SocketPath, args, c.Timeout)
	if err != nil {
		return "", false, err
	}
	return decodeReply(strings.Join(args, " "), raw)
}

// SendCommand formats cmd and delivers it with Send.
func (c *Client) SendCommand(ctx context.Context, cmd Command) (string, bool, error) {
	return c.Send(ctx, cmd.String())
}

func decodeReply(message string, raw []byte) (string, bool, error) {
	reply := ipc.ParseReply(raw)
	if !utf8.Valid(reply.Body) {
		return "", false, fmt.Errorf("%w: %d bytes in reply to %q", ErrEncoding, len(reply.Body), message)
	}
	if reply.Failed {
		return "", false, &CommandError{Command: message, Message: strings.TrimSpace(string(reply.Body))}
	}
	if len(reply.Body) == 0 {
		return "", false, nil
	}
	return string(reply.Body), true, nil
}

// Send delivers message through DefaultClient.
func Send(ctx context.Context, message string) (string, bool, error) {
	c, err := DefaultClient()
	if err != nil {
		return "", false, err
	}
	return c.Send(ctx, message)
}

// SendCommand delivers cmd through DefaultClient.
func SendCommand(ctx context.Context, cmd Command) (string, bool, error) {
	c, err := DefaultClient()
	if err != nil {
		return "", false, err
	}
	return c.SendCommand(ctx, cmd)
}
