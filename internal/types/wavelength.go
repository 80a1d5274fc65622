package types

// InstrumentMode describes the spectral setup of an OIWavelength table.
type InstrumentMode struct {
	WavelengthRange Range
}

// OIWavelength is the OI_WAVELENGTH metadata table: a spectral channel
// table keyed by insName, compared by identity when used as a merge-scope
// map key.
type OIWavelength struct {
	InsName string
	EffWave []float64
	Mode    InstrumentMode
}

// NewOIWavelength builds a table from effective wavelengths, deriving
// its instrument mode range from the min/max of effWave.
func NewOIWavelength(insName string, effWave []float64) *OIWavelength {
	w := &OIWavelength{InsName: insName, EffWave: append([]float64(nil), effWave...)}
	w.Mode = InstrumentMode{WavelengthRange: wavelengthExtent(effWave)}
	return w
}

func wavelengthExtent(effWave []float64) Range {
	if len(effWave) == 0 {
		return Range{}
	}
	lo, hi := effWave[0], effWave[0]
	for _, v := range effWave[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	// close the half-open interval just past the maximum sample so the
	// extremal wavelength itself is considered in-range.
	return Range{Lo: lo, Hi: hi + 1e-12}
}

// NbRows returns the number of spectral channels.
func (w *OIWavelength) NbRows() int {
	return len(w.EffWave)
}

// Clone deep-copies the table for independent mutation.
func (w *OIWavelength) Clone() *OIWavelength {
	return &OIWavelength{
		InsName: w.InsName,
		EffWave: append([]float64(nil), w.EffWave...),
		Mode:    w.Mode,
	}
}

// Resize shrinks the table in place to the rows selected by mask,
// preserving row order.
func (w *OIWavelength) Resize(mask *BitSet) {
	kept := make([]float64, 0, mask.Cardinality())
	for i, v := range w.EffWave {
		if mask.Get(i) {
			kept = append(kept, v)
		}
	}
	w.EffWave = kept
}
