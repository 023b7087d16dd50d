package scpi

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LANTransport drives the instrument over its SCPI TCP listener.
type LANTransport struct {
	conn    net.Conn
	timeout time.Duration
	log     zerolog.Logger
}

// DialLAN opens a stream socket to (cfg.Address, cfg.Port). The configured
// timeout bounds both the connect and every subsequent read.
func DialLAN(cfg Config, logger zerolog.Logger) (*LANTransport, error) {
	cfg = cfg.withDefaults()
	addr := net.JoinHostPort(cfg.Address, fmt.Sprintf("%d", cfg.Port))

	logger.Debug().Str("addr", addr).Msg("connecting to remote socket")
	conn, err := net.DialTimeout("tcp", addr, cfg.Timeout)
	if err != nil {
		return nil, connectionErr(err)
	}
	logger.Debug().Str("addr", addr).Msg("connected to remote socket")

	return &LANTransport{
		conn:    conn,
		timeout: cfg.Timeout,
		log:     logger,
	}, nil
}

// Send writes command plus the line terminator in a single call.
func (t *LANTransport) Send(command string) error {
	if t.conn == nil {
		return writeErr(net.ErrClosed)
	}
	t.log.Debug().Str("command", command).Msg("sending over LAN")
	if err := t.conn.SetWriteDeadline(time.Now().Add(t.timeout)); err != nil {
		return writeErr(err)
	}
	if _, err := t.conn.Write([]byte(command + terminator)); err != nil {
		return writeErr(err)
	}
	return nil
}

// ReceiveLine performs successive bounded reads into an accumulator, decoding
// each chunk as text, until the accumulated text contains a newline anywhere.
// The entire accumulation is returned, terminator included: stripping the
// trailing "\r\n" is deliberately left to the caller.
func (t *LANTransport) ReceiveLine(ctx context.Context) (string, error) {
	if t.conn == nil {
		return "", readErr(net.ErrClosed)
	}
	var message strings.Builder
	buf := make([]byte, lineBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return "", readErr(err)
		}
		if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
			return "", readErr(err)
		}
		n, err := t.conn.Read(buf)
		if err != nil {
			return "", readErr(err)
		}
		message.Write(buf[:n])
		if strings.Contains(message.String(), "\n") {
			break
		}
	}
	t.log.Debug().Str("response", message.String()).Msg("line received")
	return message.String(), nil
}

// ReceiveExact reads exactly n bytes, each underlying read capped at
// maxChunkSize. A channel that closes before the count is met is a read
// failure; no partial buffer is ever returned.
func (t *LANTransport) ReceiveExact(ctx context.Context, n int) ([]byte, error) {
	if t.conn == nil {
		return nil, readErr(net.ErrClosed)
	}
	payload := make([]byte, 0, n)
	buf := make([]byte, maxChunkSize)
	remaining := n
	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return nil, readErr(err)
		}
		chunk := remaining
		if chunk > maxChunkSize {
			chunk = maxChunkSize
		}
		if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
			return nil, readErr(err)
		}
		rn, err := t.conn.Read(buf[:chunk])
		if rn > 0 {
			payload = append(payload, buf[:rn]...)
			remaining -= rn
		}
		if err != nil {
			if err == io.EOF && remaining > 0 {
				return nil, readErr(fmt.Errorf("channel closed with %d of %d bytes outstanding", remaining, n))
			}
			if err != io.EOF {
				return nil, readErr(err)
			}
		}
	}
	t.log.Debug().Int("bytes", n).Msg("binary payload received")
	return payload, nil
}

// Close shuts the socket down. Best-effort: a second call is a no-op and
// close failures are logged, not propagated.
func (t *LANTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	if err := t.conn.Close(); err != nil {
		t.log.Warn().Err(err).Msg("could not close socket cleanly")
	}
	t.conn = nil
	return nil
}
