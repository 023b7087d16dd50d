package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opticslab/bosactl/pkg/scpi"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[instrument]
kind = "lan"
address = "10.10.68.64"

[supply]
address = "169.254.211.244"
port = 1026
channel = 2

[output]
dir = "data"
prefix = "mxln10"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Instrument.Address != "10.10.68.64" {
		t.Errorf("address = %q", cfg.Instrument.Address)
	}
	if cfg.Instrument.Port != scpi.DefaultPort {
		t.Errorf("port default = %d, want %d", cfg.Instrument.Port, scpi.DefaultPort)
	}
	if cfg.Supply.Channel != 2 || cfg.Supply.Port != 1026 {
		t.Errorf("supply = %+v", cfg.Supply)
	}
	if cfg.Output.Dir != "data" || cfg.Output.Prefix != "mxln10" {
		t.Errorf("output = %+v", cfg.Output)
	}

	tc := cfg.InstrumentTransport()
	if tc.Kind != scpi.KindLAN || tc.Address != "10.10.68.64" || tc.Port != scpi.DefaultPort {
		t.Errorf("transport config = %+v", tc)
	}
	if tc.Timeout != time.Duration(cfg.Instrument.TimeoutSeconds)*time.Second {
		t.Errorf("timeout = %v", tc.Timeout)
	}
}

func TestLoadGPIB(t *testing.T) {
	path := writeConfig(t, `
[instrument]
kind = "gpib"
serial_port = "/dev/ttyUSB0"
gpib_address = 4
baud = 115200
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tc := cfg.InstrumentTransport()
	if tc.Kind != scpi.KindGPIB || tc.Address != "/dev/ttyUSB0" || tc.GPIBAddress != 4 {
		t.Errorf("transport config = %+v", tc)
	}
}

func TestLoadRejectsBadKind(t *testing.T) {
	path := writeConfig(t, `
[instrument]
kind = "usb"
address = "10.0.0.1"
`)
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted an unknown kind")
	}
}

func TestLoadRejectsMissingAddress(t *testing.T) {
	path := writeConfig(t, `
[instrument]
kind = "lan"
`)
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a LAN config without address")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Instrument.Kind != "lan" {
		t.Errorf("kind = %q", cfg.Instrument.Kind)
	}
	if cfg.Instrument.Port != scpi.DefaultPort {
		t.Errorf("port = %d", cfg.Instrument.Port)
	}
	if cfg.Output.Dir != "." || cfg.Output.Prefix != "bosa" {
		t.Errorf("output = %+v", cfg.Output)
	}
}
