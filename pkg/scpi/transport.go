// Package scpi implements the command/response transport layer for SCPI
// instruments: a line-oriented write path, two interchangeable physical
// transports (TCP socket and GPIB bus), and the framing rules for the three
// response shapes a BOSA-class analyzer produces (text line, fixed-count
// binary float64 pairs, ASCII numeric list).
package scpi

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Kind selects the physical medium a Transport runs over.
type Kind string

const (
	KindLAN  Kind = "lan"
	KindGPIB Kind = "gpib"
)

const (
	// DefaultPort is the instrument's SCPI-over-TCP listener port.
	DefaultPort = 10000

	// DefaultTimeout bounds every blocking read on the LAN transport and is
	// handed to the serial layer in GPIB mode.
	DefaultTimeout = 30 * time.Second

	// lineBufferSize is the per-read capacity while accumulating a text
	// response. Large enough that a full ASCII trace rarely needs more than
	// a handful of syscalls.
	lineBufferSize = 115200

	// maxChunkSize caps a single read during a binary trace transfer.
	maxChunkSize = 19200

	// terminator is appended to every outgoing command.
	terminator = "\r\n"
)

// Config carries the connection parameters for either transport kind.
type Config struct {
	Kind    Kind
	Address string // IP/hostname (LAN) or serial port of the bus controller (GPIB)
	Port    int    // LAN only, defaults to DefaultPort
	Timeout time.Duration

	// GPIB only.
	GPIBAddress int // primary address of the instrument on the bus
	Baud        int // controller serial baud rate, defaults to 115200
}

func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Baud == 0 {
		c.Baud = 115200
	}
	return c
}

// Transport delivers raw bytes to and from the instrument, abstracting over
// the physical medium. A Transport is exclusively owned by one caller at a
// time: overlapping operations on the same channel corrupt framing, so the
// request/response discipline is exactly one receive per send.
//
// Transports never retry or reconnect; every fault is surfaced to the caller
// as one of the package error sentinels.
type Transport interface {
	// Send appends the canonical "\r\n" terminator to command and writes
	// all bytes.
	Send(command string) error

	// ReceiveLine returns one textual response. In LAN mode it accumulates
	// bounded reads until the accumulated text contains a newline anywhere
	// and then returns the entire accumulation, terminator included; the
	// caller strips trailing "\r\n". In GPIB mode it returns the first
	// non-empty payload verbatim.
	ReceiveLine(ctx context.Context) (string, error)

	// ReceiveExact reads exactly n bytes, chunking individual reads to at
	// most maxChunkSize. Used only for binary trace transfers.
	ReceiveExact(ctx context.Context, n int) ([]byte, error)

	// Close releases the underlying handle. Safe to call more than once;
	// errors from the close itself are logged, not propagated.
	Close() error
}

// Dial opens a Transport for the given configuration. The logger is injected
// by the caller; pass zerolog.Nop() to silence the channel-level debug trace.
func Dial(cfg Config, logger zerolog.Logger) (Transport, error) {
	cfg = cfg.withDefaults()
	switch cfg.Kind {
	case KindLAN:
		return DialLAN(cfg, logger)
	case KindGPIB:
		return DialGPIB(cfg, logger)
	default:
		return nil, connectionErr(fmt.Errorf("unknown transport kind %q", cfg.Kind))
	}
}
