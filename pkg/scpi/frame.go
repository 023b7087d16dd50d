package scpi

import (
	"context"
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/opticslab/bosactl/pkg/trace"
)

// Each trace point is two IEEE-754 float64 values, wavelength then power.
const bytesPerPoint = 2 * 8

// traceByteOrder is the instrument's native byte order for REAL-format
// transfers. It is a configuration constant, never auto-detected.
var traceByteOrder binary.ByteOrder = binary.LittleEndian

// DecodeTraceReal decodes a REAL-format payload of exactly points*16 bytes
// into a trace of exactly that many (wavelength, power) pairs. A buffer of
// any other length is a decode failure; a truncated trace is never returned.
func DecodeTraceReal(buf []byte, points int) (trace.Trace, error) {
	if points < 0 {
		return nil, decodeErrf("negative point count %d", points)
	}
	want := points * bytesPerPoint
	if len(buf) != want {
		return nil, decodeErrf("trace payload is %d bytes, want %d for %d points", len(buf), want, points)
	}
	t := make(trace.Trace, points)
	for i := 0; i < points; i++ {
		off := i * bytesPerPoint
		t[i] = trace.Point{
			Wavelength: math.Float64frombits(traceByteOrder.Uint64(buf[off : off+8])),
			Power:      math.Float64frombits(traceByteOrder.Uint64(buf[off+8 : off+16])),
		}
	}
	return t, nil
}

// ReadTraceReal computes the byte count for the negotiated point count,
// receives it over t, and decodes the result. The point count must have been
// obtained beforehand (TRAC:COUNT?): the binary stream itself carries no
// framing or length prefix.
func ReadTraceReal(ctx context.Context, t Transport, points int) (trace.Trace, error) {
	if points < 0 {
		return nil, decodeErrf("negative point count %d", points)
	}
	buf, err := t.ReceiveExact(ctx, points*bytesPerPoint)
	if err != nil {
		return nil, err
	}
	return DecodeTraceReal(buf, points)
}

// ParseASCIIList parses a comma-separated sequence of decimal numbers, as
// produced by an ASCII-format trace query. The line terminator and
// surrounding whitespace are tolerated; the sequence length is whatever the
// instrument sent.
func ParseASCIIList(line string) ([]float64, error) {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	tokens := strings.Split(line, ",")
	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, decodeErrf("token %d %q is not a number", i, tok)
		}
		values[i] = v
	}
	return values, nil
}

// FormatASCIIList renders values the way the instrument does, for simulator
// replies and loopback tests.
func FormatASCIIList(values []float64) string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(tokens, ",")
}
