package bosa

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/opticslab/bosactl/pkg/scpi"
)

// Trace, format and mmemory subsystems. Several trace commands exist in a
// plain and a :DATA variant; the data boolean splices the optional node in.

func tracePath(data bool) string {
	if data {
		return "TRAC:DATA"
	}
	return "TRAC"
}

// TraceCount queries the number of points in the current trace. The reply is
// parsed; binary transfers need the count before the stream is read because
// the stream carries no length prefix.
func (d *Device) TraceCount(ctx context.Context, data bool) (int, error) {
	reply, err := d.ask(ctx, tracePath(data)+":COUNT?")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimRight(reply, "\r\n")))
	if err != nil {
		return 0, fmt.Errorf("%w: trace count %q: %w", scpi.ErrDecode, strings.TrimRight(reply, "\r\n"), err)
	}
	return n, nil
}

// TraceLine queries the current trace as one textual reply in whatever
// transfer format is active. Binary transfers use AskTraceReal instead.
func (d *Device) TraceLine(ctx context.Context, data bool) (string, error) {
	return d.ask(ctx, tracePath(data)+"?")
}

// TraceMaxX queries the X coordinate of the trace maximum.
func (d *Device) TraceMaxX(ctx context.Context, data bool) (string, error) {
	return d.ask(ctx, tracePath(data)+":MAX:X?")
}

// TraceMaxY queries the Y coordinate of the trace maximum.
func (d *Device) TraceMaxY(ctx context.Context, data bool) (string, error) {
	return d.ask(ctx, tracePath(data)+":MAX:Y?")
}

func formPath(data bool) string {
	if data {
		return "FORM:DATA"
	}
	return "FORM"
}

// SetFormat selects the trace transfer format. For ASCII a non-negative
// length selects the digit count per number; pass length < 0 for the
// instrument default. REAL ignores length.
func (d *Device) SetFormat(ctx context.Context, format TraceFormat, length int, data bool) (string, error) {
	if err := format.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	cmd := formPath(data) + " " + string(format)
	if format == FormatASCII && length >= 0 {
		cmd += "," + strconv.Itoa(length)
	}
	return d.ask(ctx, cmd)
}

// Format queries the active trace transfer format.
func (d *Device) Format(ctx context.Context, data bool) (string, error) {
	return d.ask(ctx, formPath(data)+"?")
}

// StoreTrace saves the current trace to instrument storage under name with
// the given file format. ink selects the printer-friendly color scheme for
// image formats.
func (d *Device) StoreTrace(ctx context.Context, name string, format StoreFormat, ink bool) (string, error) {
	if err := format.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "MMEM:STOR:TRAC "+name+"."+strings.ToLower(string(format))+", "+onOff(ink))
}

// DeleteTrace removes a stored trace file.
func (d *Device) DeleteTrace(ctx context.Context, name string) (string, error) {
	return d.ask(ctx, "MMEM:DEL:TRAC "+name)
}

// LoadTrace loads a stored trace file into one of the memory slots.
func (d *Device) LoadTrace(ctx context.Context, slot MemorySlot, name string) (string, error) {
	if err := slot.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "MMEM:LOAD:TRAC "+string(slot)+","+name)
}
