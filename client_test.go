package yabai

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/rbright/yabai/internal/ipc"
	"github.com/stretchr/testify/require"
)

// fakeDaemon serves replies from handler on a temporary socket.
func fakeDaemon(t *testing.T, handler func(args []string) []byte) *Client {
	t.Helper()
	return serveAt(t, filepath.Join(t.TempDir(), "yabai.sock"), handler)
}

// serveAt serves replies from handler on socketPath until the test ends.
func serveAt(t *testing.T, socketPath string, handler func(args []string) []byte) *Client {
	t.Helper()

	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- ipc.Serve(ctx, listener, ipc.HandlerFunc(func(_ context.Context, args []string) []byte {
			return handler(args)
		}))
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-serveDone)
	})

	return NewClient(socketPath)
}

func TestSendEmptyReplyHasNoPayload(t *testing.T) {
	client := fakeDaemon(t, func([]string) []byte { return nil })

	reply, ok, err := client.Send(context.Background(), "space --balance")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, reply)
}

func TestSendImmediateCloseHasNoPayload(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "yabai.sock")
	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	go func() {
		for {
			c, err := listener.Accept()
			if err != nil {
				return
			}
			_ = c.Close()
		}
	}()

	client := NewClient(socketPath)
	for i := 0; i < 20; i++ {
		reply, ok, err := client.Send(context.Background(), "space --balance")
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, reply)
	}
}

func TestSendReturnsPayloadVerbatim(t *testing.T) {
	client := fakeDaemon(t, func([]string) []byte { return []byte("hello") })

	reply, ok, err := client.Send(context.Background(), "query --displays")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hello", reply)
}

func TestSendCommandFramesFormattedArguments(t *testing.T) {
	received := make(chan []string, 1)
	client := fakeDaemon(t, func(args []string) []byte {
		received <- args
		return nil
	})

	_, _, err := client.SendCommand(context.Background(), FocusSpace{Option: SpaceRecent})
	require.NoError(t, err)
	require.Equal(t, []string{"space", "--focus", "recent"}, <-received)
}

func TestSendMissingSocketIsConnectError(t *testing.T) {
	client := NewClient(filepath.Join(t.TempDir(), "absent.sock"))

	_, _, err := client.Send(context.Background(), "query --spaces")
	require.ErrorIs(t, err, ErrConnect)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSendDaemonFailureIsCommandError(t *testing.T) {
	client := fakeDaemon(t, func([]string) []byte {
		return ipc.FailureReply("could not locate the selected space.\n")
	})

	_, ok, err := client.SendCommand(context.Background(), FocusSpace{Option: SpaceIndex(9)})
	require.False(t, ok)

	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	require.Equal(t, "space --focus 9", cmdErr.Command)
	require.Equal(t, "could not locate the selected space.", cmdErr.Message)
	require.Contains(t, err.Error(), "space --focus 9")
}

func TestSendInvalidUTF8IsEncodingError(t *testing.T) {
	client := fakeDaemon(t, func([]string) []byte { return []byte{0xff, 0xfe, 'x'} })

	_, ok, err := client.Send(context.Background(), "query --windows")
	require.False(t, ok)
	require.ErrorIs(t, err, ErrEncoding)
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	client := NewClient(filepath.Join(t.TempDir(), "unused.sock"))

	_, _, err := client.Send(context.Background(), " \t ")
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, _, err = client.SendCommand(context.Background(), Raw(""))
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestDefaultClientUsesUserSocket(t *testing.T) {
	t.Setenv("USER", "bob")

	client, err := DefaultClient()
	require.NoError(t, err)
	require.Equal(t, "/tmp/yabai_bob.socket", client.SocketPath)
	require.Zero(t, client.Timeout)
}
