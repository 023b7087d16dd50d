package bosa

import "context"

// Instrument subsystem: operating mode and the hold/run measurement state.

// Mode queries the current operating mode. The reply keeps its terminator.
func (d *Device) Mode(ctx context.Context) (string, error) {
	return d.ask(ctx, "INST:STAT:MODE ?")
}

// SetMode switches the instrument into the given operating mode. Mode changes
// are slow; callers poll Mode until the switch completes.
func (d *Device) SetMode(ctx context.Context, mode Mode) (string, error) {
	if err := mode.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "INST:STAT:MODE "+string(mode))
}

// State queries the given hold/run switch.
func (d *Device) State(ctx context.Context, state MeasState) (string, error) {
	if err := state.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "INST:STAT:"+string(state)+" ?")
}

// SetState flips the given hold/run switch.
func (d *Device) SetState(ctx context.Context, state MeasState, on bool) (string, error) {
	if err := state.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "INST:STAT:"+string(state)+" "+onOff(on))
}
