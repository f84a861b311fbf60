package ipc

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"
)

// SocketDir is where the daemon creates its socket regardless of $TMPDIR.
const SocketDir = "/tmp"

// ErrUnknownUser is returned when no user name can be resolved for the socket path.
var ErrUnknownUser = errors.New("unable to resolve current user name")

// SocketPath returns the daemon socket for the invoking user.
func SocketPath() (string, error) {
	name, err := UserName()
	if err != nil {
		return "", err
	}
	return SocketPathFor(name), nil
}

// SocketPathFor returns the daemon socket owned by name.
func SocketPathFor(name string) string {
	return fmt.Sprintf("%s/yabai_%s.socket", SocketDir, name)
}

// UserName resolves $USER, falling back to the OS account database.
func UserName() (string, error) {
	if name := strings.TrimSpace(os.Getenv("USER")); name != "" {
		return name, nil
	}

	current, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownUser, err)
	}
	if name := strings.TrimSpace(current.Username); name != "" {
		return name, nil
	}
	return "", ErrUnknownUser
}
