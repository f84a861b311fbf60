package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
)

// Handler answers one decoded request with raw reply bytes.
type Handler interface {
	Handle(context.Context, []string) []byte
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(context.Context, []string) []byte

func (f HandlerFunc) Handle(ctx context.Context, args []string) []byte {
	return f(ctx, args)
}

// Serve speaks the daemon side of the protocol until context cancellation or
// listener close. Each connection carries one request and is closed after the
// reply, which is how the client detects end of message.
func Serve(ctx context.Context, listener net.Listener, handler Handler) error {
	var wg sync.WaitGroup

	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				wg.Wait()
				return nil
			}
			return fmt.Errorf("accept IPC connection: %w", err)
		}

		wg.Add(1)
		go func(c net.Conn) {
			defer wg.Done()
			defer c.Close()

			args, err := ReadRequest(c)
			if err != nil {
				_, _ = c.Write(FailureReply(fmt.Sprintf("read request: %v", err)))
				return
			}

			if reply := handler.Handle(ctx, args); len(reply) > 0 {
				_, _ = c.Write(reply)
			}
		}(conn)
	}
}
