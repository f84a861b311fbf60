// Package doctor runs readiness diagnostics for config, socket, and daemon.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/rbright/yabai"
	"github.com/rbright/yabai/internal/config"
	"github.com/rbright/yabai/internal/ipc"
)

// daemonTimeout bounds the live query so a wedged daemon cannot hang doctor.
const daemonTimeout = 2 * time.Second

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes config/socket/daemon checks against socketPath.
func Run(ctx context.Context, cfg config.Loaded, socketPath string) Report {
	checks := []Check{}

	configMessage := fmt.Sprintf("loaded %q", cfg.Path)
	if !cfg.Exists {
		configMessage = fmt.Sprintf("%q not found; using defaults", cfg.Path)
	}
	checks = append(checks, Check{Name: "config", Pass: true, Message: configMessage})

	checks = append(checks, checkUser())
	checks = append(checks, checkBinary("yabai", "daemon binary installed"))

	socket := checkSocket(socketPath)
	checks = append(checks, socket)
	if !socket.Pass {
		return Report{Checks: checks}
	}

	checks = append(checks, checkSocketAccess(socketPath))

	listening := checkListening(ctx, socketPath)
	checks = append(checks, listening)
	if !listening.Pass {
		return Report{Checks: checks}
	}

	checks = append(checks, checkDaemon(ctx, socketPath))

	return Report{Checks: checks}
}

// checkUser validates that the socket owner name can be resolved.
func checkUser() Check {
	name, err := ipc.UserName()
	if err != nil {
		return Check{Name: "user", Pass: false, Message: err.Error()}
	}
	return Check{Name: "user", Pass: true, Message: fmt.Sprintf("resolved %q", name)}
}

// checkBinary validates that a binary exists in PATH.
func checkBinary(bin string, okMsg string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: bin, Pass: false, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: bin, Pass: true, Message: fmt.Sprintf("found at %s (%s)", path, okMsg)}
}

// checkSocket validates that path exists and is a Unix socket.
func checkSocket(path string) Check {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Check{Name: "socket", Pass: false, Message: fmt.Sprintf("%s does not exist; is yabai running?", path)}
		}
		return Check{Name: "socket", Pass: false, Message: err.Error()}
	}
	if info.Mode()&os.ModeSocket == 0 {
		return Check{Name: "socket", Pass: false, Message: fmt.Sprintf("%s is not a socket (mode %s)", path, info.Mode())}
	}
	return Check{Name: "socket", Pass: true, Message: path}
}

// checkSocketAccess validates write permission, which connect(2) on a Unix socket requires.
func checkSocketAccess(path string) Check {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return Check{Name: "socket.access", Pass: false, Message: fmt.Sprintf("no write permission on %s: %v", path, err)}
	}
	return Check{Name: "socket.access", Pass: true, Message: "writable"}
}

// checkListening separates a stale socket file from a daemon that answers badly.
func checkListening(ctx context.Context, path string) Check {
	ok, err := ipc.Probe(ctx, path, daemonTimeout)
	if err != nil {
		return Check{Name: "socket.listening", Pass: false, Message: err.Error()}
	}
	if !ok {
		return Check{Name: "socket.listening", Pass: false, Message: fmt.Sprintf("nothing is listening on %s; stale socket from a stopped yabai?", path)}
	}
	return Check{Name: "socket.listening", Pass: true, Message: "accepting connections"}
}

// checkDaemon runs a live display query to prove the daemon answers and its JSON decodes.
func checkDaemon(ctx context.Context, path string) Check {
	client := yabai.NewClient(path)
	client.Timeout = daemonTimeout

	displays, err := client.QueryDisplays(ctx)
	if err != nil {
		return Check{Name: "daemon", Pass: false, Message: err.Error()}
	}
	return Check{Name: "daemon", Pass: true, Message: fmt.Sprintf("answered with %d display(s)", len(displays))}
}
