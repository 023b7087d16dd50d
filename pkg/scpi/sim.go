package scpi

import (
	"context"
	"fmt"
)

// SendHook lets a simulated instrument react to commands, typically by
// queueing the matching reply.
type SendHook func(command string)

// SimTransport is an in-memory transport useful for unit tests and for
// exercising the command façade without hardware. It records every command
// sent and serves queued textual and binary replies in FIFO order.
type SimTransport struct {
	OnSend SendHook

	sent    []string
	lines   []string
	binary  []byte
	closed  int
	sendErr error
	recvErr error
}

// NewSimTransport constructs an empty simulator.
func NewSimTransport() *SimTransport {
	return &SimTransport{}
}

// QueueLine adds a textual reply served by the next ReceiveLine call.
func (s *SimTransport) QueueLine(line string) {
	s.lines = append(s.lines, line)
}

// QueueBinary appends bytes to the binary reply stream consumed by
// ReceiveExact. Fragment boundaries are invisible to the reader.
func (s *SimTransport) QueueBinary(b []byte) {
	s.binary = append(s.binary, b...)
}

// FailSends makes every subsequent Send return err.
func (s *SimTransport) FailSends(err error) { s.sendErr = err }

// FailReceives makes every subsequent receive return err.
func (s *SimTransport) FailReceives(err error) { s.recvErr = err }

// Sent returns a copy of the commands sent so far, in order.
func (s *SimTransport) Sent() []string {
	return append([]string(nil), s.sent...)
}

// LastSent returns the most recent command, or "" when nothing was sent.
func (s *SimTransport) LastSent() string {
	if len(s.sent) == 0 {
		return ""
	}
	return s.sent[len(s.sent)-1]
}

// CloseCount reports how many times Close has been called.
func (s *SimTransport) CloseCount() int { return s.closed }

func (s *SimTransport) Send(command string) error {
	if s.sendErr != nil {
		return writeErr(s.sendErr)
	}
	s.sent = append(s.sent, command)
	if s.OnSend != nil {
		s.OnSend(command)
	}
	return nil
}

func (s *SimTransport) ReceiveLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", readErr(err)
	}
	if s.recvErr != nil {
		return "", readErr(s.recvErr)
	}
	if len(s.lines) == 0 {
		return "", readErr(fmt.Errorf("no queued reply for %q", s.LastSent()))
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *SimTransport) ReceiveExact(ctx context.Context, n int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, readErr(err)
	}
	if s.recvErr != nil {
		return nil, readErr(s.recvErr)
	}
	if len(s.binary) < n {
		return nil, readErr(fmt.Errorf("only %d of %d bytes queued", len(s.binary), n))
	}
	payload := append([]byte(nil), s.binary[:n]...)
	s.binary = s.binary[n:]
	return payload, nil
}

func (s *SimTransport) Close() error {
	s.closed++
	return nil
}

var _ Transport = (*SimTransport)(nil)
