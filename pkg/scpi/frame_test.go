package scpi

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/opticslab/bosactl/pkg/trace"
)

func encodeTrace(t trace.Trace) []byte {
	buf := make([]byte, 0, len(t)*bytesPerPoint)
	for _, p := range t {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.Wavelength))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p.Power))
	}
	return buf
}

func TestDecodeTraceReal(t *testing.T) {
	points := trace.Trace{
		{Wavelength: 1550.0, Power: -30.5},
		{Wavelength: 1550.1, Power: -31.0},
		{Wavelength: 1550.2, Power: -29.8},
		{Wavelength: 1550.3, Power: -60.1},
		{Wavelength: 1550.4, Power: -59.9},
	}
	payload := encodeTrace(points)
	if len(payload) != 80 {
		t.Fatalf("payload is %d bytes, want 80", len(payload))
	}

	got, err := DecodeTraceReal(payload, len(points))
	if err != nil {
		t.Fatalf("DecodeTraceReal() error = %v", err)
	}
	if len(got) != len(points) {
		t.Fatalf("decoded %d points, want %d", len(got), len(points))
	}
	for i, p := range got {
		if p != points[i] {
			t.Errorf("point %d = %+v, want %+v", i, p, points[i])
		}
	}
}

func TestDecodeTraceRealErrors(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		points int
	}{
		{"short buffer", make([]byte, 79), 5},
		{"long buffer", make([]byte, 81), 5},
		{"negative count", nil, -1},
		{"empty buffer nonzero count", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTraceReal(tt.buf, tt.points)
			if !errors.Is(err, ErrDecode) {
				t.Errorf("DecodeTraceReal() error = %v, want ErrDecode", err)
			}
		})
	}
}

func TestDecodeTraceRealEmpty(t *testing.T) {
	got, err := DecodeTraceReal(nil, 0)
	if err != nil {
		t.Fatalf("DecodeTraceReal() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("decoded %d points, want 0", len(got))
	}
}

func TestReadTraceReal(t *testing.T) {
	points := trace.Trace{
		{Wavelength: 1310.0, Power: -12.25},
		{Wavelength: 1310.5, Power: -13.75},
	}
	sim := NewSimTransport()
	sim.QueueBinary(encodeTrace(points))

	got, err := ReadTraceReal(context.Background(), sim, 2)
	if err != nil {
		t.Fatalf("ReadTraceReal() error = %v", err)
	}
	if len(got) != 2 || got[0] != points[0] || got[1] != points[1] {
		t.Errorf("ReadTraceReal() = %+v, want %+v", got, points)
	}
}

func TestReadTraceRealShortStream(t *testing.T) {
	sim := NewSimTransport()
	sim.QueueBinary(make([]byte, 40))

	_, err := ReadTraceReal(context.Background(), sim, 5)
	if !errors.Is(err, ErrRead) {
		t.Errorf("ReadTraceReal() error = %v, want ErrRead", err)
	}
}

func TestParseASCIIList(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []float64
	}{
		{"plain", "1.5,2.5,3.5", []float64{1.5, 2.5, 3.5}},
		{"terminator kept", "1550.1,-30.5\r\n", []float64{1550.1, -30.5}},
		{"spaced tokens", " 1 , 2 ", []float64{1, 2}},
		{"scientific", "1.5501e3,-6.01e1", []float64{1550.1, -60.1}},
		{"empty", "\r\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseASCIIList(tt.line)
			if err != nil {
				t.Fatalf("ParseASCIIList() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseASCIIList() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("value %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseASCIIListBadToken(t *testing.T) {
	_, err := ParseASCIIList("1.5,abc,3.5")
	if !errors.Is(err, ErrDecode) {
		t.Errorf("ParseASCIIList() error = %v, want ErrDecode", err)
	}
}

func TestFormatASCIIListRoundTrip(t *testing.T) {
	values := []float64{1550.1, -30.5, 0, 1e-3}
	got, err := ParseASCIIList(FormatASCIIList(values))
	if err != nil {
		t.Fatalf("ParseASCIIList() error = %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("round trip lost values: %v", got)
	}
	for i := range got {
		if got[i] != values[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], values[i])
		}
	}
}
