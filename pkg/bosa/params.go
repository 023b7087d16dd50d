package bosa

import (
	"fmt"
	"strings"
)

// ValidationError reports a parameter outside the instrument's accepted
// enumeration. It is a non-fatal diagnostic: the façade logs it, skips the
// command, and the session continues.
type ValidationError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bosa: %s %q not in {%s}", e.Param, e.Value, strings.Join(e.Allowed, ", "))
}

func validate(param, value string, allowed ...string) *ValidationError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{Param: param, Value: value, Allowed: allowed}
}

// Mode is the instrument operating mode.
type Mode string

const (
	ModeMain Mode = "MAIN"
	ModeBOSA Mode = "BOSA"
	ModeTLS  Mode = "TLS"
	ModeCA   Mode = "CA"
)

func (m Mode) validate() *ValidationError {
	return validate("mode", string(m), "MAIN", "BOSA", "TLS", "CA")
}

// MeasState selects the measurement hold/run switch a state command targets.
type MeasState string

const (
	StateHold MeasState = "HOLD"
	StateRun  MeasState = "RUN"
)

func (s MeasState) validate() *ValidationError {
	return validate("measurement state", string(s), "HOLD", "RUN")
}

// WavelengthUnit qualifies an X-axis magnitude. Empty means "let the
// instrument assume its default".
type WavelengthUnit string

const (
	UnitNone WavelengthUnit = ""
	UnitNM   WavelengthUnit = "NM"
	UnitPM   WavelengthUnit = "PM"
	UnitGHz  WavelengthUnit = "GHZ"
	UnitTHz  WavelengthUnit = "THZ"
)

func (u WavelengthUnit) validate() *ValidationError {
	return validate("wavelength unit", string(u), "", "NM", "PM", "GHZ", "THZ")
}

// PowerUnit qualifies a Y-axis magnitude.
type PowerUnit string

const (
	PowerNone PowerUnit = ""
	PowerDBm  PowerUnit = "DBM"
	PowerMW   PowerUnit = "MW"
)

func (u PowerUnit) validate() *ValidationError {
	return validate("power unit", string(u), "", "DBM", "MW")
}

// YSpacing selects logarithmic or linear Y-axis spacing.
type YSpacing string

const (
	SpacingLog YSpacing = "LOG"
	SpacingLin YSpacing = "LIN"
)

func (s YSpacing) validate() *ValidationError {
	return validate("y spacing", string(s), "LOG", "LIN")
}

// XUnit selects the X-axis domain.
type XUnit string

const (
	XWavelength XUnit = "WAV"
	XFrequency  XUnit = "FREQ"
)

func (u XUnit) validate() *ValidationError {
	return validate("x units", string(u), "WAV", "FREQ")
}

// TraceSlot names a displayable trace: the live A/B traces or a memory slot.
type TraceSlot string

const (
	TraceA  TraceSlot = "A"
	TraceB  TraceSlot = "B"
	TraceM1 TraceSlot = "M1"
	TraceM2 TraceSlot = "M2"
	TraceM3 TraceSlot = "M3"
	TraceM4 TraceSlot = "M4"
)

func (t TraceSlot) validate() *ValidationError {
	return validate("trace", string(t), "A", "B", "M1", "M2", "M3", "M4")
}

// MemorySlot names a trace memory, the only slots MMEM:LOAD accepts.
type MemorySlot string

const (
	MemoryM1 MemorySlot = "M1"
	MemoryM2 MemorySlot = "M2"
	MemoryM3 MemorySlot = "M3"
	MemoryM4 MemorySlot = "M4"
)

func (m MemorySlot) validate() *ValidationError {
	return validate("memory slot", string(m), "M1", "M2", "M3", "M4")
}

// GraphSelector picks the active graph in component view.
type GraphSelector string

const (
	GraphA GraphSelector = "A"
	GraphB GraphSelector = "B"
	GraphC GraphSelector = "C"
)

func (g GraphSelector) validate() *ValidationError {
	return validate("graph", string(g), "A", "B", "C")
}

// Band is an optical band selector. The instrument groups the C and L bands
// together; commands accepting a band take either the combined C+L band, the
// O band, or (where supported) all three.
type Band string

const (
	BandCL  Band = "C+L"
	BandO   Band = "O"
	BandOCL Band = "O+C+L"
)

func (b Band) validate(param string, allowOCL bool) *ValidationError {
	allowed := []string{"C+L", "O"}
	if allowOCL {
		allowed = append(allowed, "O+C+L")
	}
	return validate(param, string(b), allowed...)
}

// SParameter selects the measured scattering parameter in component analyzer
// mode.
type SParameter string

const (
	SParamIL   SParameter = "IL"
	SParamRL   SParameter = "RL"
	SParamILRL SParameter = "IL&RL"
)

func (s SParameter) validate() *ValidationError {
	return validate("s-parameter", string(s), "IL", "RL", "IL&RL")
}

// Polarization selects the input polarization processing.
type Polarization string

const (
	PolBoth  Polarization = "1+2"
	Pol1     Polarization = "1"
	Pol2     Polarization = "2"
	PolAnd   Polarization = "1&2"
	PolPDL   Polarization = "PDL"
	PolMax   Polarization = "MAX"
	PolMin   Polarization = "MIN"
	PolSimul Polarization = "SIMUL"
	PolIndep Polarization = "INDEP"
)

func (p Polarization) validate() *ValidationError {
	return validate("polarization", string(p), "1+2", "1", "2", "1&2", "PDL", "MAX", "MIN", "SIMUL", "INDEP")
}

// MarkerMode selects how the active marker follows the trace.
type MarkerMode string

const (
	MarkerTrack MarkerMode = "TRCK"
	MarkerFixX  MarkerMode = "FIXX"
	MarkerFixY  MarkerMode = "FIXY"
)

func (m MarkerMode) validate() *ValidationError {
	return validate("marker mode", string(m), "TRCK", "FIXX", "FIXY")
}

// MarkerReadout selects the marker readout domain.
type MarkerReadout string

const (
	ReadoutFrequency  MarkerReadout = "FREQ"
	ReadoutWavelength MarkerReadout = "WAV"
)

func (r MarkerReadout) validate() *ValidationError {
	return validate("marker readout", string(r), "FREQ", "WAV")
}

// SweepMode selects high-resolution or high-speed sweeping.
type SweepMode string

const (
	SweepHighRes   SweepMode = "HR"
	SweepHighSpeed SweepMode = "HS"
)

func (s SweepMode) validate() *ValidationError {
	return validate("sweep mode", string(s), "HR", "HS")
}

// AveragingCount is one of the discrete averaging depths, or continuous.
type AveragingCount string

const (
	Average4    AveragingCount = "4"
	Average8    AveragingCount = "8"
	Average12   AveragingCount = "12"
	Average32   AveragingCount = "32"
	AverageCont AveragingCount = "CONT"
)

func (a AveragingCount) validate() *ValidationError {
	return validate("averaging count", string(a), "4", "8", "12", "32", "CONT")
}

// OSNRPowerMode selects how OSNR estimates a power term.
type OSNRPowerMode string

const (
	OSNRPeak      OSNRPowerMode = "PEAK"
	OSNRBandwidth OSNRPowerMode = "BW"
)

func (m OSNRPowerMode) validate() *ValidationError {
	return validate("osnr power mode", string(m), "PEAK", "BW")
}

// StoreFormat is a file type MMEM:STOR:TRAC accepts.
type StoreFormat string

const (
	StoreBDF StoreFormat = "BDF"
	StoreTXT StoreFormat = "TXT"
	StoreCSV StoreFormat = "CSV"
	StoreJPG StoreFormat = "JPG"
	StoreBMP StoreFormat = "BMP"
	StoreGIF StoreFormat = "GIF"
	StoreTIF StoreFormat = "TIF"
)

func (f StoreFormat) validate() *ValidationError {
	return validate("store format", string(f), "BDF", "TXT", "CSV", "JPG", "BMP", "GIF", "TIF")
}

// TraceFormat selects the transfer encoding for trace queries.
type TraceFormat string

const (
	FormatASCII TraceFormat = "ASCII"
	FormatReal  TraceFormat = "REAL"
)

func (f TraceFormat) validate() *ValidationError {
	return validate("trace format", string(f), "ASCII", "REAL")
}
