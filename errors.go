package yabai

import (
	"errors"
	"fmt"

	"github.com/rbright/yabai/internal/ipc"
)

var (
	// ErrConnect reports that the daemon socket could not be reached. The
	// underlying syscall error stays in the chain for errors.Is checks.
	ErrConnect = ipc.ErrConnect
	// ErrIO reports a write or read failure after connecting.
	ErrIO = ipc.ErrIO
	// ErrEncoding reports reply bytes that are not valid UTF-8.
	ErrEncoding = errors.New("reply is not valid UTF-8")
	// ErrDecode reports a query reply whose JSON does not match the expected shape.
	ErrDecode = errors.New("decode query reply")
	// ErrNoResponse reports a query that came back with no payload.
	ErrNoResponse = errors.New("no reply from yabai")
	// ErrEmptyMessage is returned before dialing when a message has no arguments.
	ErrEmptyMessage = errors.New("message has no arguments")
)

// CommandError is the daemon's rejection of a command it received.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("yabai %q failed: %s", e.Command, e.Message)
}
