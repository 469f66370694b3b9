// Package hostname resolves the local hostname directly from the kernel.
//
// The kernel hands back a fixed-size byte buffer; the hostname is the
// NUL-terminated UTF-8 prefix of that buffer. Both the terminator and the
// encoding are validated rather than assumed.
package hostname

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var (
	// ErrMissingNull indicates the kernel buffer contained no NUL terminator.
	ErrMissingNull = errors.New("hostname: missing NUL byte in nodename buffer")

	// ErrNonUTF8 indicates the hostname bytes are not valid UTF-8.
	ErrNonUTF8 = errors.New("hostname: nodename is not valid UTF-8")
)

// parseNodename extracts the hostname from a raw kernel nodename buffer.
func parseNodename(buf []byte) (string, error) {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return "", ErrMissingNull
	}
	name := buf[:i]
	if !utf8.Valid(name) {
		return "", ErrNonUTF8
	}
	return string(name), nil
}
