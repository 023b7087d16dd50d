package bosa

import "context"

// Display subsystem. Most display commands exist in a plain and a windowed
// variant, and separately in a plain and an explicit-:SCAL variant; the
// window/scale booleans splice the optional nodes into the command path.

func displayPath(window, scale bool) string {
	path := "DISP"
	if window {
		path += ":WIND"
	}
	path += ":TRAC:Y"
	if scale {
		path += ":SCAL"
	}
	return path
}

// AutoscaleY triggers a Y-axis autoscale, continuously or once.
func (d *Device) AutoscaleY(ctx context.Context, window, scale, once bool) (string, error) {
	cmd := displayPath(window, scale) + ":AUTO"
	if once {
		cmd += " ONCE"
	}
	return d.ask(ctx, cmd)
}

// SetBottomY sets the Y-axis bottom level. The unit is appended directly to
// the magnitude, the form the panel parser expects.
func (d *Device) SetBottomY(ctx context.Context, value float64, unit PowerUnit, window, scale bool) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, displayPath(window, scale)+":BOTT "+formatValue(value)+string(unit))
}

// BottomY queries the Y-axis bottom level.
func (d *Device) BottomY(ctx context.Context, window, scale bool) (string, error) {
	return d.ask(ctx, displayPath(window, scale)+":BOTT?")
}

// SetPowerDivY sets the Y-axis power per division.
func (d *Device) SetPowerDivY(ctx context.Context, value float64, unit PowerUnit, window, scale bool) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, displayPath(window, scale)+":PDIV "+formatValue(value)+string(unit))
}

// PowerDivY queries the Y-axis power per division.
func (d *Device) PowerDivY(ctx context.Context, window, scale bool) (string, error) {
	return d.ask(ctx, displayPath(window, scale)+":PDIV?")
}

// SetRefY sets the Y-axis reference level.
func (d *Device) SetRefY(ctx context.Context, value float64, unit PowerUnit, window, scale bool) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, displayPath(window, scale)+":RLEV "+formatValue(value)+string(unit))
}

// RefY queries the Y-axis reference level.
func (d *Device) RefY(ctx context.Context, window, scale bool) (string, error) {
	return d.ask(ctx, displayPath(window, scale)+":RLEV?")
}

// SetNormY switches trace normalization.
func (d *Device) SetNormY(ctx context.Context, on, window, scale bool) (string, error) {
	return d.ask(ctx, displayPath(window, scale)+":NORM "+onOff(on))
}

// NormY queries the normalization switch.
func (d *Device) NormY(ctx context.Context, window, scale bool) (string, error) {
	return d.ask(ctx, displayPath(window, scale)+":NORM?")
}

// SetSpacingY selects logarithmic or linear Y-axis spacing.
func (d *Device) SetSpacingY(ctx context.Context, spacing YSpacing, window bool) (string, error) {
	if err := spacing.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, displayPrefix(window)+":TRAC:Y:SPAC "+string(spacing))
}

// SpacingY queries the Y-axis spacing.
func (d *Device) SpacingY(ctx context.Context, window bool) (string, error) {
	return d.ask(ctx, displayPrefix(window)+":TRAC:Y:SPAC?")
}

// SetXUnits selects wavelength or frequency for the X axis.
func (d *Device) SetXUnits(ctx context.Context, unit XUnit, window bool) (string, error) {
	if err := unit.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, displayPrefix(window)+":TRAC:X "+string(unit))
}

// XUnits queries the X-axis domain.
func (d *Device) XUnits(ctx context.Context, window bool) (string, error) {
	return d.ask(ctx, displayPrefix(window)+":TRAC:X?")
}

// SetTraceState shows or hides one displayable trace.
func (d *Device) SetTraceState(ctx context.Context, slot TraceSlot, on, window bool) (string, error) {
	if err := slot.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, displayPrefix(window)+":TRAC:STAT "+string(slot)+" "+onOff(on))
}

// TraceStates queries the visibility of all displayable traces.
func (d *Device) TraceStates(ctx context.Context, window bool) (string, error) {
	return d.ask(ctx, displayPrefix(window)+":TRAC:STAT?")
}

// SetGraphBand selects the band the graph displays.
func (d *Device) SetGraphBand(ctx context.Context, band Band, window bool) (string, error) {
	if err := band.validate("graph band", false); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, displayPrefix(window)+":GRAPHICSEL "+string(band))
}

// GraphBand queries the displayed band.
func (d *Device) GraphBand(ctx context.Context, window bool) (string, error) {
	return d.ask(ctx, displayPrefix(window)+":GRAPHSEL ?")
}

// SetGraphView selects which bands the graph view combines.
func (d *Device) SetGraphView(ctx context.Context, band Band, window bool) (string, error) {
	if err := band.validate("graph view", true); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, displayPrefix(window)+":GRAPHICVIEW "+string(band))
}

// GraphView queries the graph view band combination.
func (d *Device) GraphView(ctx context.Context, window bool) (string, error) {
	return d.ask(ctx, displayPrefix(window)+":GRAPHICVIEW ?")
}

// SetGraphSelector picks the active graph in component view.
func (d *Device) SetGraphSelector(ctx context.Context, graph GraphSelector) (string, error) {
	if err := graph.validate(); err != nil {
		d.warn(err)
		return "", err
	}
	return d.ask(ctx, "DISP:COMP:GRAPHICSEL "+string(graph))
}

// GraphSelectorState queries the active graph in component view.
func (d *Device) GraphSelectorState(ctx context.Context) (string, error) {
	return d.ask(ctx, "DISP:COMP:GRAPHSEL ?")
}

func displayPrefix(window bool) string {
	if window {
		return "DISP:WIND"
	}
	return "DISP"
}
