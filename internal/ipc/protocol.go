package ipc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FailureMarker prefixes replies for commands the daemon rejected.
const FailureMarker byte = 0x07

// MaxRequestSize bounds the payload length accepted by ReadRequest.
const MaxRequestSize = 1 << 16

var requestTerminator = []byte{0, 0}

// ErrMalformedRequest reports a frame that does not follow the daemon's request layout.
var ErrMalformedRequest = errors.New("malformed request frame")

// Reply is one daemon response split into its failure flag and body.
type Reply struct {
	Body   []byte
	Failed bool
}

// SplitArgs breaks a free-form message into the argument vector the daemon expects.
func SplitArgs(message string) []string {
	return strings.Fields(message)
}

// EncodeRequest frames args as a little-endian length prefix followed by
// NUL-separated arguments and a double-NUL terminator.
func EncodeRequest(args []string) []byte {
	payload := strings.Join(args, "\x00") + string(requestTerminator)

	frame := make([]byte, 4, 4+len(payload))
	binary.LittleEndian.PutUint32(frame, uint32(len(payload)))
	return append(frame, payload...)
}

// ReadRequest reads one framed request and returns its argument vector.
func ReadRequest(r io.Reader) ([]string, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("read request length: %w", err)
	}

	size := binary.LittleEndian.Uint32(header[:])
	if size > MaxRequestSize {
		return nil, fmt.Errorf("%w: length %d exceeds %d", ErrMalformedRequest, size, MaxRequestSize)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read request payload: %w", err)
	}
	if !bytes.HasSuffix(payload, requestTerminator) {
		return nil, fmt.Errorf("%w: missing terminator", ErrMalformedRequest)
	}

	body := payload[:len(payload)-len(requestTerminator)]
	if len(body) == 0 {
		return []string{}, nil
	}
	return strings.Split(string(body), "\x00"), nil
}

// ParseReply separates the failure marker from the reply body.
func ParseReply(raw []byte) Reply {
	if len(raw) > 0 && raw[0] == FailureMarker {
		return Reply{Body: raw[1:], Failed: true}
	}
	return Reply{Body: raw}
}

// FailureReply builds the bytes a daemon writes when rejecting a command.
func FailureReply(message string) []byte {
	return append([]byte{FailureMarker}, message...)
}
