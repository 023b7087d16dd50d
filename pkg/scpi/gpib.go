package scpi

import (
	"context"
	"io"

	"github.com/gotmc/prologix"
	"github.com/rs/zerolog"
	"github.com/soypat/cereal"
)

// GPIBTransport drives the instrument through a Prologix-style USB-GPIB
// controller sitting on a serial port. Blocking behavior on the bus is
// governed by the serial layer's read timeout rather than a socket deadline.
type GPIBTransport struct {
	port io.ReadWriteCloser
	ctrl *prologix.Controller
	log  zerolog.Logger
}

// DialGPIB opens the controller's serial port and addresses the instrument at
// cfg.GPIBAddress. The configured timeout becomes the serial read timeout.
func DialGPIB(cfg Config, logger zerolog.Logger) (*GPIBTransport, error) {
	cfg = cfg.withDefaults()

	logger.Debug().Str("port", cfg.Address).Int("gpib", cfg.GPIBAddress).Msg("opening GPIB controller")
	opener := cereal.Tarm{}
	port, err := opener.OpenPort(cfg.Address, cereal.Mode{
		BaudRate:    cfg.Baud,
		ReadTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, connectionErr(err)
	}

	// Some controller clones (AR488) reject the device-clear on init.
	ctrl, err := prologix.NewController(port, cfg.GPIBAddress, false)
	if err != nil {
		port.Close()
		return nil, connectionErr(err)
	}
	logger.Debug().Msg("connected to GPIB device")

	return &GPIBTransport{
		port: port,
		ctrl: ctrl,
		log:  logger,
	}, nil
}

// Send writes command plus the line terminator to the addressed device.
func (t *GPIBTransport) Send(command string) error {
	if t.port == nil {
		return writeErr(io.ErrClosedPipe)
	}
	t.log.Debug().Str("command", command).Msg("sending over GPIB")
	if _, err := t.ctrl.Write([]byte(command + terminator)); err != nil {
		return writeErr(err)
	}
	return nil
}

// ReceiveLine performs one logical bus read per iteration and loops only
// while the returned payload is empty; the first non-empty payload is
// returned verbatim, without waiting for an explicit newline.
func (t *GPIBTransport) ReceiveLine(ctx context.Context) (string, error) {
	if t.port == nil {
		return "", readErr(io.ErrClosedPipe)
	}
	buf := make([]byte, lineBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return "", readErr(err)
		}
		n, err := t.ctrl.Read(buf)
		if err != nil && err != io.EOF {
			return "", readErr(err)
		}
		if n > 0 {
			message := string(buf[:n])
			t.log.Debug().Str("response", message).Msg("line received")
			return message, nil
		}
		// Empty read: the bus had nothing for us yet.
	}
}

// ReceiveExact accumulates bus reads, each capped at maxChunkSize, until
// exactly n bytes have arrived. Timed-out reads that delivered nothing keep
// the loop going; cancellation is the caller's way out.
func (t *GPIBTransport) ReceiveExact(ctx context.Context, n int) ([]byte, error) {
	if t.port == nil {
		return nil, readErr(io.ErrClosedPipe)
	}
	payload := make([]byte, 0, n)
	buf := make([]byte, maxChunkSize)
	remaining := n
	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return nil, readErr(err)
		}
		chunk := remaining
		if chunk > maxChunkSize {
			chunk = maxChunkSize
		}
		rn, err := t.ctrl.Read(buf[:chunk])
		if rn > 0 {
			payload = append(payload, buf[:rn]...)
			remaining -= rn
		}
		if err != nil && err != io.EOF {
			return nil, readErr(err)
		}
	}
	t.log.Debug().Int("bytes", n).Msg("binary payload received")
	return payload, nil
}

// Close returns the instrument to front-panel control and releases the serial
// port. Best-effort and idempotent.
func (t *GPIBTransport) Close() error {
	if t.port == nil {
		return nil
	}
	if err := t.ctrl.FrontPanel(true); err != nil {
		t.log.Warn().Err(err).Msg("could not return instrument to local control")
	}
	if err := t.port.Close(); err != nil {
		t.log.Warn().Err(err).Msg("could not close serial port cleanly")
	}
	t.port = nil
	t.ctrl = nil
	return nil
}

var (
	_ Transport = (*GPIBTransport)(nil)
	_ Transport = (*LANTransport)(nil)
)
