package bosa

import "context"

// Input subsystem.

// SetSParameter selects the measured scattering parameter.
func (d *Device) SetSParameter(ctx context.Context, param SParameter) (string, error) {
	if err := param.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "INP:SPAR "+string(param))
}

// SParameterState queries the measured scattering parameter.
func (d *Device) SParameterState(ctx context.Context) (string, error) {
	return d.ask(ctx, "INP:SPAR?")
}

// SetPolarization selects the input polarization processing.
func (d *Device) SetPolarization(ctx context.Context, pol Polarization) (string, error) {
	if err := pol.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "INP:POL "+string(pol))
}

// PolarizationState queries the input polarization processing.
func (d *Device) PolarizationState(ctx context.Context) (string, error) {
	return d.ask(ctx, "INP:POL?")
}

// SetMueller switches Mueller-matrix processing.
func (d *Device) SetMueller(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "INP:POL:MUELL "+onOff(on))
}

// Mueller queries the Mueller-matrix switch.
func (d *Device) Mueller(ctx context.Context) (string, error) {
	return d.ask(ctx, "INP:POL:MUELL?")
}

// InputPower queries the optical input power.
func (d *Device) InputPower(ctx context.Context) (string, error) {
	return d.ask(ctx, "INP:POW?")
}
