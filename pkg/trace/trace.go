// Package trace holds the captured-spectrum data model and the flat-file
// exporters the capture scripts write their artifacts with.
package trace

// Point is one sample of a captured spectrum: wavelength on X, power on Y.
type Point struct {
	Wavelength float64
	Power      float64
}

// Trace is an ordered sequence of sample points. A Trace is either complete
// or was never produced; the decoder upstream refuses partial transfers.
type Trace []Point

// Xs returns the wavelength column.
func (t Trace) Xs() []float64 {
	xs := make([]float64, len(t))
	for i, p := range t {
		xs[i] = p.Wavelength
	}
	return xs
}

// Ys returns the power column.
func (t Trace) Ys() []float64 {
	ys := make([]float64, len(t))
	for i, p := range t {
		ys[i] = p.Power
	}
	return ys
}

// MaxPower returns the point with the highest power, for quick peak checks in
// sweep runs. The second return is false for an empty trace.
func (t Trace) MaxPower() (Point, bool) {
	if len(t) == 0 {
		return Point{}, false
	}
	max := t[0]
	for _, p := range t[1:] {
		if p.Power > max.Power {
			max = p
		}
	}
	return max, true
}
