package psu

import (
	"context"
	"testing"

	"github.com/opticslab/bosactl/pkg/scpi"
)

func TestSetVoltageCommand(t *testing.T) {
	sim := scpi.NewSimTransport()
	s := NewWithTransport(sim)

	if err := s.SetVoltage(context.Background(), 2, 5); err != nil {
		t.Fatalf("SetVoltage() error = %v", err)
	}
	if sim.LastSent() != "CH2:VOLT 5.000" {
		t.Errorf("sent %q", sim.LastSent())
	}
}

func TestSetCurrentCommand(t *testing.T) {
	sim := scpi.NewSimTransport()
	s := NewWithTransport(sim)

	if err := s.SetCurrent(context.Background(), 1, 0.25); err != nil {
		t.Fatalf("SetCurrent() error = %v", err)
	}
	if sim.LastSent() != "CH1:CURR 0.250" {
		t.Errorf("sent %q", sim.LastSent())
	}
}

func TestSetOutputCommand(t *testing.T) {
	sim := scpi.NewSimTransport()
	s := NewWithTransport(sim)

	if err := s.SetOutput(context.Background(), 3, true); err != nil {
		t.Fatalf("SetOutput() error = %v", err)
	}
	if sim.LastSent() != "OUTP CH3,ON" {
		t.Errorf("sent %q", sim.LastSent())
	}
	if err := s.SetOutput(context.Background(), 3, false); err != nil {
		t.Fatalf("SetOutput() error = %v", err)
	}
	if sim.LastSent() != "OUTP CH3,OFF" {
		t.Errorf("sent %q", sim.LastSent())
	}
}

func TestInvalidChannelSkipsCommand(t *testing.T) {
	sim := scpi.NewSimTransport()
	s := NewWithTransport(sim)

	for _, channel := range []int{0, -1, 5} {
		if err := s.SetVoltage(context.Background(), channel, 1); err == nil {
			t.Errorf("SetVoltage() accepted channel %d", channel)
		}
	}
	if len(sim.Sent()) != 0 {
		t.Errorf("invalid commands were sent: %v", sim.Sent())
	}
}

func TestMeasureVoltage(t *testing.T) {
	sim := scpi.NewSimTransport()
	s := NewWithTransport(sim)
	sim.QueueLine("5.001\r\n")

	got, err := s.MeasureVoltage(context.Background(), 2)
	if err != nil {
		t.Fatalf("MeasureVoltage() error = %v", err)
	}
	if got != "5.001\r\n" {
		t.Errorf("MeasureVoltage() = %q", got)
	}
	if sim.LastSent() != "MEAS:VOLT? CH2" {
		t.Errorf("sent %q", sim.LastSent())
	}
}
