package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rbright/yabai/internal/ipc"
	"github.com/stretchr/testify/require"
)

// recorder is a fake daemon that remembers every message it received.
type recorder struct {
	mu       sync.Mutex
	messages []string
	replies  map[string][]byte
}

func (r *recorder) received() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

func startDaemon(t *testing.T, replies map[string][]byte) (string, *recorder) {
	t.Helper()

	rec := &recorder{replies: replies}
	socketPath := filepath.Join(t.TempDir(), "yabai.sock")
	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- ipc.Serve(ctx, listener, ipc.HandlerFunc(func(_ context.Context, args []string) []byte {
			message := strings.Join(args, " ")
			rec.mu.Lock()
			rec.messages = append(rec.messages, message)
			rec.mu.Unlock()
			return rec.replies[message]
		}))
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-serveDone)
	})
	return socketPath, rec
}

func isolateEnv(t *testing.T) string {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("USER", "tester")
	return configHome
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecuteHelpAndVersion(t *testing.T) {
	isolateEnv(t)

	code, stdout, _ := run(t, "--help")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Usage:")
	require.Contains(t, stdout, "focus-space")

	code, stdout, stderr := run(t, "version")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "yabaictl dev")
	require.Empty(t, stderr)
}

func TestExecuteUsageErrorsExitTwo(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown command", args: []string{"not-a-command"}, wantErr: "unknown command"},
		{name: "unknown flag", args: []string{"--bogus"}, wantErr: "unknown flag"},
		{name: "missing argument", args: []string{"focus-space"}, wantErr: "accepts 1 arg"},
		{name: "invalid option", args: []string{"focus-space", "sideways"}, wantErr: "invalid option"},
		{name: "invalid query target", args: []string{"query", "tabs"}, wantErr: "invalid argument"},
		{name: "invalid format", args: []string{"query", "spaces", "--format", "yaml"}, wantErr: "--format"},
		{name: "raw message needs args", args: []string{"msg"}, wantErr: "requires at least 1 arg"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, tc.args...)
			require.Equal(t, 2, code)
			require.Contains(t, stderr, tc.wantErr)
			require.Contains(t, stderr, "--help")
		})
	}
}

func TestExecuteRawMessagePrintsReply(t *testing.T) {
	isolateEnv(t)
	socketPath, rec := startDaemon(t, map[string][]byte{
		"query --windows --space 2": []byte("[]\n"),
	})

	code, stdout, stderr := run(t, "--socket", socketPath, "msg", "--", "query", "--windows", "--space", "2")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "[]\n", stdout)
	require.Equal(t, []string{"query --windows --space 2"}, rec.received())
}

func TestExecuteRawMessageKeepsReplyBytes(t *testing.T) {
	isolateEnv(t)
	socketPath, _ := startDaemon(t, map[string][]byte{
		"config layout":  []byte("bsp"),
		"query --spaces": []byte("[]\n\n"),
	})

	code, stdout, stderr := run(t, "--socket", socketPath, "msg", "--", "config", "layout")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "bsp", stdout)

	code, stdout, stderr = run(t, "--socket", socketPath, "msg", "--", "query", "--spaces")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "[]\n\n", stdout)
}

func TestExecuteTypedCommandsSendFormattedMessages(t *testing.T) {
	isolateEnv(t)
	socketPath, rec := startDaemon(t, nil)

	for _, args := range [][]string{
		{"focus-space", "recent"},
		{"rotate-space", "90"},
		{"focus-window", "west"},
		{"toggle", "zoom-fullscreen"},
		{"window-to-space", "3"},
	} {
		code, stdout, stderr := run(t, append([]string{"--socket", socketPath}, args...)...)
		require.Equal(t, 0, code, stderr)
		require.Empty(t, stdout)
	}

	require.Equal(t, []string{
		"space --focus recent",
		"space --rotate 90",
		"window --focus west",
		"window --toggle zoom-fullscreen",
		"window --space 3",
	}, rec.received())
}

func TestExecuteDaemonRejectionExitsOne(t *testing.T) {
	isolateEnv(t)
	socketPath, _ := startDaemon(t, map[string][]byte{
		"space --focus 9": ipc.FailureReply("could not locate the selected space."),
	})

	code, _, stderr := run(t, "--socket", socketPath, "focus-space", "9")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "could not locate the selected space.")
}

func TestExecuteMissingSocketExitsOne(t *testing.T) {
	isolateEnv(t)

	code, _, stderr := run(t, "--socket", filepath.Join(t.TempDir(), "absent.sock"), "balance-space")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "connect to yabai socket")
}

func TestExecuteQueryFormats(t *testing.T) {
	isolateEnv(t)
	socketPath, _ := startDaemon(t, map[string][]byte{
		"query --spaces":         []byte(`[{"id":3,"index":1,"label":"code","type":"bsp","display":1,"windows":[1,2],"has-focus":true}]`),
		"query --spaces --space": []byte(`{"id":3,"index":1,"label":"code","type":"bsp","display":1,"windows":[1,2],"has-focus":true}`),
	})

	code, stdout, stderr := run(t, "--socket", socketPath, "query", "spaces", "--format", "json")
	require.Equal(t, 0, code, stderr)
	var spaces []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &spaces))
	require.Len(t, spaces, 1)
	require.Equal(t, "code", spaces[0]["label"])

	code, stdout, stderr = run(t, "--socket", socketPath, "query", "spaces", "--focused", "-o", "json")
	require.Equal(t, 0, code, stderr)
	var focused map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &focused))
	require.Equal(t, true, focused["has-focus"])

	code, stdout, stderr = run(t, "--socket", socketPath, "query", "spaces", "--format", "table")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "Label")
	require.Contains(t, stdout, "code")
}

func TestExecuteQueryUsesConfigFormatAndSocket(t *testing.T) {
	configHome := isolateEnv(t)
	socketPath, rec := startDaemon(t, map[string][]byte{
		"query --displays": []byte(`[{"id":1,"uuid":"U-1","index":1,"frame":{"x":0,"y":0,"w":10,"h":10},"spaces":[1]}]`),
	})

	configPath := filepath.Join(configHome, "yabaictl", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o700))
	require.NoError(t, os.WriteFile(configPath, []byte("socket_path = \""+socketPath+"\"\n\n[output]\nformat = \"table\"\n"), 0o600))

	code, stdout, stderr := run(t, "query", "displays")
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "U-1")
	require.Contains(t, stdout, "UUID")
	require.Equal(t, []string{"query --displays"}, rec.received())
}

func TestExecuteMalformedQueryReplyExitsOne(t *testing.T) {
	isolateEnv(t)
	socketPath, _ := startDaemon(t, map[string][]byte{
		"query --windows": []byte(`[{"id":`),
	})

	code, _, stderr := run(t, "--socket", socketPath, "query", "windows", "-o", "json")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "decode query reply")
}

func TestExecuteWritesCommandLog(t *testing.T) {
	isolateEnv(t)
	stateHome := os.Getenv("XDG_STATE_HOME")
	socketPath, _ := startDaemon(t, nil)

	code, _, stderr := run(t, "--socket", socketPath, "balance-space")
	require.Equal(t, 0, code, stderr)

	contents, err := os.ReadFile(filepath.Join(stateHome, "yabaictl", "log.jsonl"))
	require.NoError(t, err)
	require.Contains(t, string(contents), `"msg":"command start"`)
	require.Contains(t, string(contents), `"message":"space --balance"`)
	require.Contains(t, string(contents), `"session_id":`)
}

func TestExecuteDoctorReportsSocketChecks(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PATH", t.TempDir())
	socketPath, _ := startDaemon(t, map[string][]byte{
		"query --displays": []byte(`[]`),
	})

	code, stdout, stderr := run(t, "--socket", socketPath, "doctor")
	require.Equal(t, 1, code)
	require.Contains(t, stdout, "[OK] socket:")
	require.Contains(t, stdout, "[OK] daemon: answered with 0 display(s)")
	require.Contains(t, stdout, "[FAIL] yabai:")
	require.NotContains(t, stderr, "error:")
}
