// Package config loads the TOML configuration shared by the bosactl
// commands: the analyzer connection, the optional power supply, and where
// sweep artifacts land.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/opticslab/bosactl/pkg/scpi"
)

type Config struct {
	Instrument InstrumentConfig `toml:"instrument"`
	Supply     SupplyConfig     `toml:"supply"`
	Output     OutputConfig     `toml:"output"`
}

type InstrumentConfig struct {
	Kind           string `toml:"kind"`
	Address        string `toml:"address"`
	Port           int    `toml:"port"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	GPIBAddress    int    `toml:"gpib_address"`
	SerialPort     string `toml:"serial_port"`
	Baud           int    `toml:"baud"`
}

type SupplyConfig struct {
	Address string `toml:"address"`
	Port    int    `toml:"port"`
	Channel int    `toml:"channel"`
}

type OutputConfig struct {
	Dir    string `toml:"dir"`
	Prefix string `toml:"prefix"`
}

func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Instrument.Kind == "" {
		cfg.Instrument.Kind = "lan"
	}
	if cfg.Instrument.Port == 0 {
		cfg.Instrument.Port = scpi.DefaultPort
	}
	if cfg.Instrument.TimeoutSeconds == 0 {
		cfg.Instrument.TimeoutSeconds = int(scpi.DefaultTimeout / time.Second)
	}
	if cfg.Supply.Channel == 0 {
		cfg.Supply.Channel = 1
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}
	if cfg.Output.Prefix == "" {
		cfg.Output.Prefix = "bosa"
	}
}

func Validate(cfg Config) error {
	switch strings.ToLower(cfg.Instrument.Kind) {
	case "lan":
		if strings.TrimSpace(cfg.Instrument.Address) == "" {
			return fmt.Errorf("instrument config missing address")
		}
	case "gpib":
		if strings.TrimSpace(cfg.Instrument.SerialPort) == "" {
			return fmt.Errorf("instrument config missing serial_port")
		}
	default:
		return fmt.Errorf("instrument kind must be lan or gpib, got %q", cfg.Instrument.Kind)
	}
	if cfg.Instrument.TimeoutSeconds < 0 {
		return fmt.Errorf("instrument timeout must not be negative")
	}
	return nil
}

// InstrumentTransport translates the instrument section into a transport
// config.
func (c Config) InstrumentTransport() scpi.Config {
	kind := scpi.KindLAN
	address := c.Instrument.Address
	if strings.ToLower(c.Instrument.Kind) == "gpib" {
		kind = scpi.KindGPIB
		address = c.Instrument.SerialPort
	}
	return scpi.Config{
		Kind:        kind,
		Address:     address,
		Port:        c.Instrument.Port,
		Timeout:     time.Duration(c.Instrument.TimeoutSeconds) * time.Second,
		GPIBAddress: c.Instrument.GPIBAddress,
		Baud:        c.Instrument.Baud,
	}
}

// SupplyTransport translates the supply section into a transport config. The
// supply only speaks TCP.
func (c Config) SupplyTransport() scpi.Config {
	return scpi.Config{
		Kind:    scpi.KindLAN,
		Address: c.Supply.Address,
		Port:    c.Supply.Port,
		Timeout: time.Duration(c.Instrument.TimeoutSeconds) * time.Second,
	}
}
