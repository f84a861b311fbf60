package ipc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSocketPathUsesUserEnv(t *testing.T) {
	t.Setenv("USER", "alice")

	path, err := SocketPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/yabai_alice.socket", path)
}

func TestSocketPathFallsBackToAccountName(t *testing.T) {
	t.Setenv("USER", "  ")

	name, err := UserName()
	if err != nil {
		require.ErrorIs(t, err, ErrUnknownUser)
		return
	}
	require.NotEmpty(t, name)
	require.Equal(t, SocketPathFor(name), "/tmp/yabai_"+name+".socket")
}
