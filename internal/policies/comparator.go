// Package policies hosts pure decision logic the Merger core consults:
// strict content equality between metadata tables, used to decide
// whether a name collision is a true duplicate or merely a naming clash.
package policies

import "oifits-merge/internal/types"

// StrictEqualWavelength reports whether two OI_WAVELENGTH tables are
// content-identical (same name, same channel count, same effective
// wavelengths).
func StrictEqualWavelength(a, b *types.OIWavelength) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.InsName != b.InsName || len(a.EffWave) != len(b.EffWave) {
		return false
	}
	for i := range a.EffWave {
		if a.EffWave[i] != b.EffWave[i] {
			return false
		}
	}
	return true
}

// StrictEqualArray reports whether two OI_ARRAY tables are
// content-identical (same name, same station list).
func StrictEqualArray(a, b *types.OIArray) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.ArrName != b.ArrName || len(a.Stations) != len(b.Stations) {
		return false
	}
	for i := range a.Stations {
		if a.Stations[i] != b.Stations[i] {
			return false
		}
	}
	return true
}
