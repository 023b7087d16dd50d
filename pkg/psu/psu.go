// Package psu drives the bench power supply that biases the device under
// test during sweeps. The supply speaks SCPI over a raw TCP socket, so it
// shares the scpi.Transport machinery with the analyzer driver.
package psu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/opticslab/bosactl/pkg/scpi"
)

// maxChannel is the highest output channel the supply exposes.
const maxChannel = 4

// Supply owns one transport session with the power supply.
type Supply struct {
	t   scpi.Transport
	log zerolog.Logger
}

// Option configures Connect and NewWithTransport.
type Option func(*Supply)

// WithLogger injects the logger used for command tracing and validation
// warnings. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Supply) { s.log = logger }
}

// Connect dials the supply.
func Connect(cfg scpi.Config, opts ...Option) (*Supply, error) {
	s := &Supply{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	t, err := scpi.Dial(cfg, s.log)
	if err != nil {
		return nil, err
	}
	s.t = t
	return s, nil
}

// NewWithTransport wraps an already-open transport, mainly for tests.
func NewWithTransport(t scpi.Transport, opts ...Option) *Supply {
	s := &Supply{t: t, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close tears the session down. Idempotent.
func (s *Supply) Close() error {
	return s.t.Close()
}

// checkChannel validates an output channel number. An out-of-range channel is
// logged and the command skipped; sweeps carry on.
func (s *Supply) checkChannel(channel int) error {
	if channel < 1 || channel > maxChannel {
		err := fmt.Errorf("psu: channel %d outside 1..%d", channel, maxChannel)
		s.log.Warn().Int("channel", channel).Msg("invalid channel, command skipped")
		return err
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// SetVoltage programs the voltage setpoint of one output channel. The supply
// does not acknowledge setters, so nothing is read back.
func (s *Supply) SetVoltage(ctx context.Context, channel int, volts float64) error {
	if err := s.checkChannel(channel); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.t.Send(fmt.Sprintf("CH%d:VOLT %s", channel, formatAmount(volts)))
}

// SetCurrent programs the current limit of one output channel.
func (s *Supply) SetCurrent(ctx context.Context, channel int, amps float64) error {
	if err := s.checkChannel(channel); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.t.Send(fmt.Sprintf("CH%d:CURR %s", channel, formatAmount(amps)))
}

// SetOutput switches one output channel on or off.
func (s *Supply) SetOutput(ctx context.Context, channel int, on bool) error {
	if err := s.checkChannel(channel); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	state := "OFF"
	if on {
		state = "ON"
	}
	return s.t.Send(fmt.Sprintf("OUTP CH%d,%s", channel, state))
}

// MeasureVoltage reads back the actual output voltage of one channel.
func (s *Supply) MeasureVoltage(ctx context.Context, channel int) (string, error) {
	if err := s.checkChannel(channel); err != nil {
		return "", err
	}
	if err := s.t.Send(fmt.Sprintf("MEAS:VOLT? CH%d", channel)); err != nil {
		return "", err
	}
	return s.t.ReceiveLine(ctx)
}

// Identification asks *IDN? and returns the identification string with its
// terminator.
func (s *Supply) Identification(ctx context.Context) (string, error) {
	if err := s.t.Send("*IDN?"); err != nil {
		return "", err
	}
	return s.t.ReceiveLine(ctx)
}
