package bosa

import "context"

// Sense subsystem: wavelength window, sweep control, averaging, and the
// laser/sweep switches.

// SetWavelengthCenter sets the center wavelength.
func (d *Device) SetWavelengthCenter(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:CENT "+formatValue(value)+" "+string(unit))
}

// SetWavelengthCenterMax centers the window on the trace maximum.
func (d *Device) SetWavelengthCenterMax(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:CENT MAX")
}

// WavelengthCenter queries the center wavelength.
func (d *Device) WavelengthCenter(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:CENT?")
}

// SetWavelengthSingle switches single-wavelength acquisition.
func (d *Device) SetWavelengthSingle(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "SENS:WAV:SINGLE "+onOff(on))
}

// WavelengthSingle queries the single-wavelength switch.
func (d *Device) WavelengthSingle(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:SINGLE?")
}

// SetWavelengthSmooth sets the smoothing window width.
func (d *Device) SetWavelengthSmooth(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:SMOOTH "+formatValue(value)+" "+string(unit))
}

// WavelengthSmooth queries the smoothing window width.
func (d *Device) WavelengthSmooth(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:SMOOTH?")
}

// SetSpan sets the wavelength span.
func (d *Device) SetSpan(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:SPAN "+formatValue(value)+" "+string(unit))
}

// Span queries the wavelength span.
func (d *Device) Span(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:SPAN?")
}

// SetSweepSpeed sets the sweep speed.
func (d *Device) SetSweepSpeed(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:SPEED "+formatValue(value)+" "+string(unit))
}

// SweepSpeed queries the sweep speed.
func (d *Device) SweepSpeed(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:SPEED?")
}

// SetSweepCal switches per-sweep calibration.
func (d *Device) SetSweepCal(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "SENS:WAV:SWEEPCAL "+onOff(on))
}

// SweepCal queries the per-sweep calibration switch.
func (d *Device) SweepCal(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:SWEEPCAL?")
}

// SetWavelengthStat sets the wavelength statistics window.
func (d *Device) SetWavelengthStat(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:STAT "+formatValue(value)+" "+string(unit))
}

// WavelengthStat queries the wavelength statistics window.
func (d *Device) WavelengthStat(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:STAT?")
}

// SetStart sets the sweep start wavelength.
func (d *Device) SetStart(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:STAR "+formatValue(value)+" "+string(unit))
}

// Start queries the sweep start wavelength.
func (d *Device) Start(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:STAR?")
}

// SetStop sets the sweep stop wavelength.
func (d *Device) SetStop(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:STOP "+formatValue(value)+" "+string(unit))
}

// Stop queries the sweep stop wavelength.
func (d *Device) Stop(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:STOP?")
}

// SetResolution sets the wavelength resolution.
func (d *Device) SetResolution(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:RES "+formatValue(value)+" "+string(unit))
}

// Resolution queries the wavelength resolution.
func (d *Device) Resolution(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:RES?")
}

// SetSweepMode selects high-resolution or high-speed sweeping.
func (d *Device) SetSweepMode(ctx context.Context, mode SweepMode) (string, error) {
	if err := mode.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:WAV:SMOD "+string(mode))
}

// SweepModeState queries the sweep mode.
func (d *Device) SweepModeState(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:WAV:SMOD?")
}

// SetAveragingCount sets the averaging depth.
func (d *Device) SetAveragingCount(ctx context.Context, count AveragingCount) (string, error) {
	if err := count.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:AVER:COUN "+string(count))
}

// AveragingCountState queries the averaging depth.
func (d *Device) AveragingCountState(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:AVER:COUN?")
}

// SetAveraging switches trace averaging.
func (d *Device) SetAveraging(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "SENS:AVER:STAT "+onOff(on))
}

// Averaging queries the averaging switch.
func (d *Device) Averaging(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:AVER:STAT?")
}

// SetAveragingCorrection switches drift correction during averaging.
func (d *Device) SetAveragingCorrection(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "SENS:AVER:CORR "+onOff(on))
}

// AveragingCorrection queries the drift correction switch.
func (d *Device) AveragingCorrection(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:AVER:CORR?")
}

// SetAveragingCorrectionCenter sets the correction window center. Only
// nanometers (or the instrument default) are accepted here.
func (d *Device) SetAveragingCorrectionCenter(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := validate("correction center unit", string(unit), "", "NM"); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:AVER:CORR:CENT "+formatValue(value)+" "+string(unit))
}

// AveragingCorrectionCenter queries the correction window center.
func (d *Device) AveragingCorrectionCenter(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:AVER:CORR:CENT?")
}

// SetAveragingCorrectionSpan sets the correction window span, nanometers only.
func (d *Device) SetAveragingCorrectionSpan(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := validate("correction span unit", string(unit), "", "NM"); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:AVER:CORR:SPAN "+formatValue(value)+" "+string(unit))
}

// AveragingCorrectionSpan queries the correction window span.
func (d *Device) AveragingCorrectionSpan(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:AVER:CORR:SPAN?")
}

// NoiseZero triggers a noise-floor zeroing measurement.
func (d *Device) NoiseZero(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:NOIS")
}

// SetLaser switches the sweep laser.
func (d *Device) SetLaser(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "SENS:SWITCH "+onOff(on))
}

// Laser queries the sweep laser switch.
func (d *Device) Laser(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:SWITCH?")
}

// SetSweep switches sweeping.
func (d *Device) SetSweep(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "SENS:SWEEP "+onOff(on))
}

// Sweep queries the sweeping switch.
func (d *Device) Sweep(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:SWEEP?")
}

// SetLaserBand selects the laser band.
func (d *Device) SetLaserBand(ctx context.Context, band Band) (string, error) {
	if err := band.validate("laser band", false); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:LAS "+string(band))
}

// LaserBand queries the laser band.
func (d *Device) LaserBand(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:LAS ?")
}

// SetMeasurementBand selects the measured band combination.
func (d *Device) SetMeasurementBand(ctx context.Context, band Band) (string, error) {
	if err := band.validate("measurement band", true); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "SENS:BAND "+string(band))
}

// MeasurementBand queries the measured band combination.
func (d *Device) MeasurementBand(ctx context.Context) (string, error) {
	return d.ask(ctx, "SENS:BAND ?")
}
