package bosa

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/opticslab/bosactl/pkg/scpi"
	"github.com/opticslab/bosactl/pkg/trace"
)

func newSimDevice() (*Device, *scpi.SimTransport) {
	sim := scpi.NewSimTransport()
	return NewWithTransport(sim), sim
}

func TestAskKeepsTerminator(t *testing.T) {
	dev, sim := newSimDevice()
	sim.QueueLine("MAIN\r\n")

	got, err := dev.Mode(context.Background())
	if err != nil {
		t.Fatalf("Mode() error = %v", err)
	}
	if got != "MAIN\r\n" {
		t.Errorf("Mode() = %q, want terminator kept", got)
	}
	if sim.LastSent() != "INST:STAT:MODE ?" {
		t.Errorf("sent %q", sim.LastSent())
	}
}

func TestSetterCommandFormat(t *testing.T) {
	tests := []struct {
		name string
		call func(ctx context.Context, dev *Device) error
		want string
	}{
		{
			name: "span in nm",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetSpan(ctx, 40, UnitNM)
				return err
			},
			want: "SENS:WAV:SPAN 40 NM",
		},
		{
			name: "center max",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetWavelengthCenterMax(ctx)
				return err
			},
			want: "SENS:WAV:CENT MAX",
		},
		{
			name: "mode",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetMode(ctx, ModeCA)
				return err
			},
			want: "INST:STAT:MODE CA",
		},
		{
			name: "run state on",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetState(ctx, StateRun, true)
				return err
			},
			want: "INST:STAT:RUN 1",
		},
		{
			name: "norm off",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetNormY(ctx, false, false, false)
				return err
			},
			want: "DISP:TRAC:Y:NORM 0",
		},
		{
			name: "windowed scaled bottom",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetBottomY(ctx, -60, PowerDBm, true, true)
				return err
			},
			want: "DISP:WIND:TRAC:Y:SCAL:BOTT -60DBM",
		},
		{
			name: "polarization",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetPolarization(ctx, PolSimul)
				return err
			},
			want: "INP:POL SIMUL",
		},
		{
			name: "osnr on",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetOSNR(ctx, true)
				return err
			},
			want: "CALC:OSNR:STAT 1",
		},
		{
			name: "max hold with stat node",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetMaxHold(ctx, true, true)
				return err
			},
			want: "CALC:MAX:STAT 1",
		},
		{
			name: "format ascii with length",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetFormat(ctx, FormatASCII, 6, false)
				return err
			},
			want: "FORM ASCII,6",
		},
		{
			name: "format real",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.SetFormat(ctx, FormatReal, -1, true)
				return err
			},
			want: "FORM:DATA REAL",
		},
		{
			name: "load trace",
			call: func(ctx context.Context, dev *Device) error {
				_, err := dev.LoadTrace(ctx, MemoryM2, "run7")
				return err
			},
			want: "MMEM:LOAD:TRAC M2,run7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, sim := newSimDevice()
			sim.QueueLine("OK\r\n")
			if err := tt.call(context.Background(), dev); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if sim.LastSent() != tt.want {
				t.Errorf("sent %q, want %q", sim.LastSent(), tt.want)
			}
		})
	}
}

func TestInvalidParameterSkipsCommand(t *testing.T) {
	dev, sim := newSimDevice()

	_, err := dev.SetMode(context.Background(), Mode("TURBO"))
	if err == nil {
		t.Fatal("SetMode() accepted an invalid mode")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("SetMode() error = %T, want *ValidationError", err)
	}
	if verr.Param != "mode" || verr.Value != "TURBO" {
		t.Errorf("ValidationError = %+v", verr)
	}
	if len(sim.Sent()) != 0 {
		t.Errorf("invalid command was sent anyway: %v", sim.Sent())
	}
}

func TestInvalidUnitSkipsCommand(t *testing.T) {
	dev, sim := newSimDevice()

	if _, err := dev.SetSpan(context.Background(), 40, WavelengthUnit("KM")); err == nil {
		t.Fatal("SetSpan() accepted an invalid unit")
	}
	if len(sim.Sent()) != 0 {
		t.Errorf("invalid command was sent anyway: %v", sim.Sent())
	}
}

func TestTraceCount(t *testing.T) {
	dev, sim := newSimDevice()
	sim.QueueLine("2001\r\n")

	n, err := dev.TraceCount(context.Background(), false)
	if err != nil {
		t.Fatalf("TraceCount() error = %v", err)
	}
	if n != 2001 {
		t.Errorf("TraceCount() = %d, want 2001", n)
	}
	if sim.LastSent() != "TRAC:COUNT?" {
		t.Errorf("sent %q", sim.LastSent())
	}
}

func TestTraceCountDataVariant(t *testing.T) {
	dev, sim := newSimDevice()
	sim.QueueLine("512\r\n")

	if _, err := dev.TraceCount(context.Background(), true); err != nil {
		t.Fatalf("TraceCount() error = %v", err)
	}
	if sim.LastSent() != "TRAC:DATA:COUNT?" {
		t.Errorf("sent %q", sim.LastSent())
	}
}

func TestTraceCountGarbage(t *testing.T) {
	dev, sim := newSimDevice()
	sim.QueueLine("whoops\r\n")

	_, err := dev.TraceCount(context.Background(), false)
	if !errors.Is(err, scpi.ErrDecode) {
		t.Errorf("TraceCount() error = %v, want ErrDecode", err)
	}
}

func TestAskTraceReal(t *testing.T) {
	want := trace.Trace{
		{Wavelength: 1550.0, Power: -30.5},
		{Wavelength: 1550.1, Power: -31.0},
	}
	payload := make([]byte, 0, 32)
	for _, p := range want {
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(p.Wavelength))
		payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(p.Power))
	}

	dev, sim := newSimDevice()
	sim.QueueBinary(payload)

	got, err := dev.AskTraceReal(context.Background(), len(want))
	if err != nil {
		t.Fatalf("AskTraceReal() error = %v", err)
	}
	if sim.LastSent() != "TRAC?" {
		t.Errorf("sent %q, want TRAC?", sim.LastSent())
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("AskTraceReal() = %+v, want %+v", got, want)
	}
}

func TestAskTraceASCII(t *testing.T) {
	dev, sim := newSimDevice()
	sim.QueueLine("1550.1,-30.5,1550.2,-31\r\n")

	got, err := dev.AskTraceASCII(context.Background())
	if err != nil {
		t.Fatalf("AskTraceASCII() error = %v", err)
	}
	sent := sim.Sent()
	if len(sent) != 2 || sent[0] != "FORM ASCII" || sent[1] != "TRAC?" {
		t.Errorf("sent %v", sent)
	}
	want := []float64{1550.1, -30.5, 1550.2, -31}
	if len(got) != len(want) {
		t.Fatalf("AskTraceASCII() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWriteDoesNotRead(t *testing.T) {
	dev, sim := newSimDevice()

	if err := dev.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if sim.LastSent() != "*RST" {
		t.Errorf("sent %q, want *RST", sim.LastSent())
	}
}
