package scpi

import (
	"errors"
	"fmt"
)

// Error taxonomy for the transport and framer. Every I/O fault is mapped onto
// exactly one of these sentinels so callers can classify failures with
// errors.Is without parsing message text.
var (
	// ErrConnection means the physical channel could not be opened or the
	// remote end refused. Surfaced once at startup, never retried here.
	ErrConnection = errors.New("scpi: connection error")

	// ErrWrite means an I/O fault occurred while sending a command.
	ErrWrite = errors.New("scpi: write error")

	// ErrRead means an I/O fault occurred while receiving a response,
	// including the channel closing before a requested byte count was met.
	ErrRead = errors.New("scpi: read error")

	// ErrDecode means a payload was malformed or short. A decode failure
	// never yields a partial result.
	ErrDecode = errors.New("scpi: decode error")
)

func connectionErr(err error) error {
	return fmt.Errorf("%w: %w", ErrConnection, err)
}

func writeErr(err error) error {
	return fmt.Errorf("%w: %w", ErrWrite, err)
}

func readErr(err error) error {
	return fmt.Errorf("%w: %w", ErrRead, err)
}

func decodeErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}
