// Command m forwards its arguments to yabai unchanged and prints the reply.
//
//	m query --windows --space 2
//
// It deliberately has no flags of its own so every argument reaches the daemon.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rbright/yabai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: m <yabai message arguments>")
		return 2
	}

	reply, ok, err := yabai.Send(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if ok {
		fmt.Print(reply)
	}
	return 0
}
