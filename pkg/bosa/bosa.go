// Package bosa is the command façade for a BOSA-class optical spectrum
// analyzer. It formats SCPI command strings, validates parameters against the
// instrument's accepted enumerations, and delegates all I/O to a
// scpi.Transport. The request/response discipline is strict: exactly one read
// follows each write, and nothing is pipelined.
//
// Getter replies are returned exactly as the transport delivered them,
// trailing "\r\n" included; callers strip the terminator themselves.
package bosa

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opticslab/bosactl/pkg/scpi"
	"github.com/opticslab/bosactl/pkg/trace"
)

// Device owns one transport session with the analyzer.
type Device struct {
	t   scpi.Transport
	log zerolog.Logger
}

type options struct {
	logger   zerolog.Logger
	identify bool
	reset    bool
}

// Option configures Connect and NewWithTransport.
type Option func(*options)

// WithLogger injects the logger used for command tracing and validation
// warnings. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithIdentify controls the startup *IDN? query. On by default.
func WithIdentify(on bool) Option {
	return func(o *options) { o.identify = on }
}

// WithReset issues *RST after connecting. Off by default.
func WithReset(on bool) Option {
	return func(o *options) { o.reset = on }
}

// Connect dials the configured transport and prepares the device, optionally
// identifying and resetting it. A connection failure aborts startup and is
// returned as-is.
func Connect(ctx context.Context, cfg scpi.Config, opts ...Option) (*Device, error) {
	o := options{logger: zerolog.Nop(), identify: true}
	for _, opt := range opts {
		opt(&o)
	}

	t, err := scpi.Dial(cfg, o.logger)
	if err != nil {
		return nil, err
	}
	d := &Device{t: t, log: o.logger}

	if o.identify {
		idn, err := d.Identification(ctx)
		if err != nil {
			t.Close()
			return nil, err
		}
		d.log.Info().Str("idn", strings.TrimRight(idn, "\r\n")).Msg("instrument identified")
	}
	if o.reset {
		d.log.Info().Msg("resetting instrument")
		if err := d.Write("*RST"); err != nil {
			t.Close()
			return nil, err
		}
	}
	return d, nil
}

// NewWithTransport wraps an already-open transport, mainly for tests and for
// sharing a simulator between façades.
func NewWithTransport(t scpi.Transport, opts ...Option) *Device {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Device{t: t, log: o.logger}
}

// Close tears the session down. Idempotent; close faults are logged by the
// transport, never propagated.
func (d *Device) Close() error {
	return d.t.Close()
}

// Write sends one command without waiting for a reply.
func (d *Device) Write(command string) error {
	return d.t.Send(command)
}

// Ask writes command and reads one textual reply. The reply is returned with
// its terminator: trimming is deliberately the caller's job.
func (d *Device) Ask(ctx context.Context, command string) (string, error) {
	if err := d.t.Send(command); err != nil {
		return "", err
	}
	return d.t.ReceiveLine(ctx)
}

// AskTraceReal queries the current trace in REAL (binary) format. The point
// count must have been obtained beforehand via TraceCount; the binary stream
// carries no length prefix. The instrument must already be in FORM REAL.
func (d *Device) AskTraceReal(ctx context.Context, points int) (trace.Trace, error) {
	if err := d.t.Send("TRAC?"); err != nil {
		return nil, err
	}
	return scpi.ReadTraceReal(ctx, d.t, points)
}

// AskTraceASCII switches the transfer format to ASCII and queries the current
// trace as a comma-separated number list of instrument-determined length.
func (d *Device) AskTraceASCII(ctx context.Context) ([]float64, error) {
	if err := d.t.Send("FORM ASCII"); err != nil {
		return nil, err
	}
	if err := d.t.Send("TRAC?"); err != nil {
		return nil, err
	}
	line, err := d.t.ReceiveLine(ctx)
	if err != nil {
		return nil, err
	}
	return scpi.ParseASCIIList(line)
}

// ask validates nothing; setters call it after their parameter checks pass.
func (d *Device) ask(ctx context.Context, command string) (string, error) {
	return d.Ask(ctx, command)
}

// warn reports a skipped operation caused by an invalid parameter. The
// command is not sent; scripting sessions carry on.
func (d *Device) warn(err *ValidationError) {
	d.log.Warn().Str("param", err.Param).Str("value", err.Value).
		Strs("allowed", err.Allowed).Msg("invalid parameter, command skipped")
}

// Identification asks *IDN? and returns the identification string.
func (d *Device) Identification(ctx context.Context) (string, error) {
	return d.ask(ctx, "*IDN?")
}

// OperationComplete asks *OPC?.
func (d *Device) OperationComplete(ctx context.Context) (string, error) {
	return d.ask(ctx, "*OPC?")
}

// Reset issues *RST without reading a reply.
func (d *Device) Reset() error {
	return d.Write("*RST")
}

// formatValue renders a numeric SCPI argument the way the panel shows it.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// onOff renders a boolean as the instrument's numeric switch token.
func onOff(on bool) string {
	if on {
		return "1"
	}
	return "0"
}
