// Package app wires config, logging, and the yabai client into the yabaictl command tree.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rbright/yabai"
	"github.com/rbright/yabai/internal/config"
	"github.com/rbright/yabai/internal/ipc"
	"github.com/rbright/yabai/internal/logging"
)

const binaryName = "yabaictl"

// errChecksFailed is returned by doctor after printing a report with failures.
var errChecksFailed = errors.New("doctor checks failed")

// usageError marks argument problems detected after cobra's own validation.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

// Execute runs one CLI invocation and returns its process exit code:
// 0 on success, 1 on runtime failure, 2 on usage errors.
func (r Runner) Execute(ctx context.Context, args []string) int {
	s := &session{runner: r}
	defer s.close()

	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(r.Stdout)
	root.SetErr(r.Stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var usage usageError
	if !s.started || errors.As(err, &usage) {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		fmt.Fprintf(r.Stderr, "Run '%s --help' for usage.\n", binaryName)
		return 2
	}

	s.logger.Error("command failed", "error", err.Error())
	if !errors.Is(err, errChecksFailed) {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
	}
	return 1
}

// session carries per-invocation state resolved before any subcommand runs.
type session struct {
	runner Runner

	configFlag string
	socketFlag string

	started    bool
	loaded     config.Loaded
	logRuntime logging.Runtime
	logger     *slog.Logger
	client     *yabai.Client
}

// setup loads config, opens the log, and resolves the daemon socket.
func (s *session) setup(cmd *cobra.Command) error {
	s.started = true
	s.logRuntime = logging.Discard()
	s.logger = s.logRuntime.Logger

	loaded, err := config.Load(s.configFlag)
	if err != nil {
		return err
	}
	s.loaded = loaded
	for _, w := range loaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(s.runner.Stderr, "warning: %s\n", msg)
	}

	if loaded.Config.Log.Enable {
		s.logRuntime, err = logging.New(loaded.Config.Log.Level)
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
	}
	s.logger = s.runner.Logger
	if s.logger == nil {
		s.logger = s.logRuntime.Logger
	}
	s.logger = s.logger.With("session_id", uuid.NewString())
	for _, w := range loaded.Warnings {
		s.logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	socketPath, err := s.resolveSocket()
	if err != nil {
		return err
	}
	s.client = &yabai.Client{SocketPath: socketPath, Timeout: loaded.Config.Timeout}

	s.logger.Info("command start",
		"command", cmd.CommandPath(),
		"config", loaded.Path,
		"socket", socketPath,
		"log", s.logRuntime.Path,
	)
	return nil
}

// resolveSocket applies flag, then config, then the per-user convention.
func (s *session) resolveSocket() (string, error) {
	if path := strings.TrimSpace(s.socketFlag); path != "" {
		return path, nil
	}
	if path := s.loaded.Config.SocketPath; path != "" {
		return path, nil
	}
	path, err := ipc.SocketPath()
	if err != nil {
		return "", fmt.Errorf("resolve socket path: %w", err)
	}
	return path, nil
}

func (s *session) close() {
	_ = s.logRuntime.Close()
}

// deliver sends message and prints the reply payload, if any, verbatim.
func (s *session) deliver(cmd *cobra.Command, message string) error {
	reply, ok, err := s.client.Send(cmd.Context(), message)
	if err != nil {
		return err
	}
	s.logger.Info("message sent", "message", message, "reply_bytes", len(reply))
	if ok {
		fmt.Fprint(cmd.OutOrStdout(), reply)
	}
	return nil
}
