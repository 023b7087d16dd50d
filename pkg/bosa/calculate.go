package bosa

import "context"

// Calculate subsystem: markers, hold traces, total power, OSNR.

// MarkersOff disables all markers.
func (d *Device) MarkersOff(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:AOFF")
}

// SetMarkerState switches the active marker.
func (d *Device) SetMarkerState(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "CALC:MARK:STAT "+onOff(on))
}

// MarkerState queries the active marker switch.
func (d *Device) MarkerState(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:STAT?")
}

// SetMarkerMode selects how the marker follows the trace.
func (d *Device) SetMarkerMode(ctx context.Context, mode MarkerMode) (string, error) {
	if err := mode.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:MARK:MOD "+string(mode))
}

// MarkerModeState queries the marker mode.
func (d *Device) MarkerModeState(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:MOD?")
}

// MarkerToMax moves the marker to the trace maximum.
func (d *Device) MarkerToMax(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:MAX")
}

// MarkerToNextMax moves the marker to the next-highest peak.
func (d *Device) MarkerToNextMax(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:MAX:NEXT")
}

// MarkerToMaxRight moves the marker to the next peak to the right.
func (d *Device) MarkerToMaxRight(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:MAX:RIGHT")
}

// MarkerToMaxLeft moves the marker to the next peak to the left.
func (d *Device) MarkerToMaxLeft(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:MAX:LEFT")
}

// MarkerToCenter centers the wavelength window on the marker.
func (d *Device) MarkerToCenter(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:SCEN")
}

// SetMarkerX positions the marker on the X axis.
func (d *Device) SetMarkerX(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:MARK:X "+formatValue(value)+" "+string(unit))
}

// MarkerX queries the marker X position.
func (d *Device) MarkerX(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:X?")
}

// SetMarkerY positions the marker on the Y axis.
func (d *Device) SetMarkerY(ctx context.Context, value float64, unit PowerUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:MARK:Y "+formatValue(value)+" "+string(unit))
}

// MarkerY queries the marker Y position.
func (d *Device) MarkerY(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:Y?")
}

// SetMarkerThreshold sets the peak-search threshold, in dB or unitless.
func (d *Device) SetMarkerThreshold(ctx context.Context, value float64, unit string) (string, error) {
	if err := validate("threshold unit", unit, "", "DB"); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:MARK:THRE "+formatValue(value)+" "+unit)
}

// MarkerThreshold queries the peak-search threshold.
func (d *Device) MarkerThreshold(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:THRE?")
}

// SetMarkerReadout selects the marker readout domain.
func (d *Device) SetMarkerReadout(ctx context.Context, readout MarkerReadout) (string, error) {
	if err := readout.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:MARK:READ "+string(readout))
}

// MarkerReadoutState queries the marker readout domain.
func (d *Device) MarkerReadoutState(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:READ?")
}

// MarkerToRefLevel sets the reference level from the marker.
func (d *Device) MarkerToRefLevel(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:SRL")
}

// MarkerPolarization queries the delta-function polarization readout.
func (d *Device) MarkerPolarization(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:FUNC:DELT:POL")
}

// deltaPath splices the optional :STAT node into a delta-function command.
func deltaPath(state bool) string {
	if state {
		return "CALC:MARK:FUNC:DELT:STAT"
	}
	return "CALC:MARK:FUNC:DELT"
}

// SetMarkerDelta switches the marker delta function.
func (d *Device) SetMarkerDelta(ctx context.Context, on, state bool) (string, error) {
	return d.ask(ctx, deltaPath(state)+" "+onOff(on))
}

// MarkerDelta queries the marker delta function switch.
func (d *Device) MarkerDelta(ctx context.Context, state bool) (string, error) {
	return d.ask(ctx, deltaPath(state)+"?")
}

// MarkerDeltaReset re-anchors the delta reference at the current marker.
func (d *Device) MarkerDeltaReset(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:FUNC:DELT:RES")
}

// MarkerDeltaXOffset queries the delta X offset.
func (d *Device) MarkerDeltaXOffset(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:FUNC:DELT:X:OFFS?")
}

// MarkerDeltaXRef queries the delta X reference.
func (d *Device) MarkerDeltaXRef(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:FUNC:DELT:X:REF?")
}

// MarkerDeltaYOffset queries the delta Y offset.
func (d *Device) MarkerDeltaYOffset(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:FUNC:DELT:Y:OFFS?")
}

// MarkerDeltaYRef queries the delta Y reference.
func (d *Device) MarkerDeltaYRef(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:FUNC:DELT:Y:REF?")
}

// MarkerDeltaPolarization queries the delta polarization readout.
func (d *Device) MarkerDeltaPolarization(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:FUNC:DELT:POL?")
}

// MarkerDeltaAngle queries the delta polarization angle.
func (d *Device) MarkerDeltaAngle(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:MARK:FUNC:DELT:ANG?")
}

// holdPath splices the optional :STAT node into a hold command.
func holdPath(base string, state bool) string {
	if state {
		return base + ":STAT"
	}
	return base
}

// SetMaxHold switches the max-hold trace.
func (d *Device) SetMaxHold(ctx context.Context, on, state bool) (string, error) {
	return d.ask(ctx, holdPath("CALC:MAX", state)+" "+onOff(on))
}

// MaxHold queries the max-hold switch.
func (d *Device) MaxHold(ctx context.Context, state bool) (string, error) {
	return d.ask(ctx, holdPath("CALC:MAX", state)+"?")
}

// SetMinHold switches the min-hold trace.
func (d *Device) SetMinHold(ctx context.Context, on, state bool) (string, error) {
	return d.ask(ctx, holdPath("CALC:MIN", state)+" "+onOff(on))
}

// MinHold queries the min-hold switch.
func (d *Device) MinHold(ctx context.Context, state bool) (string, error) {
	return d.ask(ctx, holdPath("CALC:MIN", state)+"?")
}

// SetTotalPower switches the total-power measurement.
func (d *Device) SetTotalPower(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "CALC:TPOW "+onOff(on))
}

// TotalPower queries the total-power measurement, optionally its data value.
func (d *Device) TotalPower(ctx context.Context, data bool) (string, error) {
	if data {
		return d.ask(ctx, "CALC:TPOW:DATA?")
	}
	return d.ask(ctx, "CALC:TPOW?")
}

// SetTotalPowerUpper sets the integration range upper bound.
func (d *Device) SetTotalPowerUpper(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:TPOW:IRAN:UPP "+formatValue(value)+" "+string(unit))
}

// TotalPowerUpper queries the integration range upper bound.
func (d *Device) TotalPowerUpper(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:TPOW:IRAN:UPP?")
}

// SetTotalPowerLower sets the integration range lower bound.
func (d *Device) SetTotalPowerLower(ctx context.Context, value float64, unit WavelengthUnit) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:TPOW:IRAN:LOW "+formatValue(value)+" "+string(unit))
}

// TotalPowerLower queries the integration range lower bound.
func (d *Device) TotalPowerLower(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:TPOW:IRAN:LOW?")
}

// AuxInputPower queries the auxiliary input power.
func (d *Device) AuxInputPower(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:AUXIN:POW?")
}

// SetOSNR switches the OSNR measurement.
func (d *Device) SetOSNR(ctx context.Context, on bool) (string, error) {
	return d.ask(ctx, "CALC:OSNR:STAT "+onOff(on))
}

// OSNR queries the OSNR measurement switch.
func (d *Device) OSNR(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:OSNR:STAT?")
}

// OSNRValue queries the measured OSNR.
func (d *Device) OSNRValue(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:OSNR:VALUE?")
}

// SetOSNRDistance sets the noise sampling distance.
func (d *Device) SetOSNRDistance(ctx context.Context, value float64) (string, error) {
	return d.ask(ctx, "CALC:OSNR:DIST "+formatValue(value))
}

// OSNRDistance queries the noise sampling distance.
func (d *Device) OSNRDistance(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:OSNR:DIST?")
}

// SetOSNRNoiseMode selects how the noise power term is estimated.
func (d *Device) SetOSNRNoiseMode(ctx context.Context, mode OSNRPowerMode) (string, error) {
	if err := mode.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:OSNR:NOISEPOWMODE "+string(mode))
}

// OSNRNoiseMode queries the noise power estimation mode.
func (d *Device) OSNRNoiseMode(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:OSNR:NOISEPOWMODE?")
}

// SetOSNRNoiseRefBandwidth sets the noise reference bandwidth.
func (d *Device) SetOSNRNoiseRefBandwidth(ctx context.Context, value float64) (string, error) {
	return d.ask(ctx, "CALC:OSNR:NOISEREFBW "+formatValue(value))
}

// OSNRNoiseRefBandwidth queries the noise reference bandwidth.
func (d *Device) OSNRNoiseRefBandwidth(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:OSNR:NOISEREFBW?")
}

// SetOSNRSignalMode selects how the signal power term is estimated.
func (d *Device) SetOSNRSignalMode(ctx context.Context, mode OSNRPowerMode) (string, error) {
	if err := mode.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "CALC:OSNR:SIGNALPOWMODE "+string(mode))
}

// OSNRSignalMode queries the signal power estimation mode.
func (d *Device) OSNRSignalMode(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:OSNR:SIGNALPOWMODE?")
}

// SetOSNRSignalBandwidth sets the signal integration bandwidth.
func (d *Device) SetOSNRSignalBandwidth(ctx context.Context, value float64) (string, error) {
	return d.ask(ctx, "CALC:OSNR:SIGNALBW "+formatValue(value))
}

// OSNRSignalBandwidth queries the signal integration bandwidth.
func (d *Device) OSNRSignalBandwidth(ctx context.Context) (string, error) {
	return d.ask(ctx, "CALC:OSNR:SIGNALBW?")
}
