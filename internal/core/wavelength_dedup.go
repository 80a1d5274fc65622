package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"oifits-merge/internal/policies"
	"oifits-merge/internal/types"
)

// processOIWavelengths copies, deduplicates, and range-filters every
// referenced OI_WAVELENGTH table.
func processOIWavelengths(ctx context.Context, mc *mergeContext) {
	if len(mc.usedOIWavelength) == 0 {
		return
	}

	selector := mc.selectorResult.Selector
	var gWlRanges []types.Range
	hasWlRanges := selector.HasWavelengthRanges()
	if hasWlRanges {
		gWlRanges = selector.WavelengthRanges
	}

	for _, oiWavelength := range mc.usedOIWavelength {
		name := oiWavelength.InsName

		newName := name
		idx := 0
		var prev *types.OIWavelength
		var prevMask *types.BitSet
		for {
			prev = mc.resultFile.GetOiWavelength(newName)
			if prev == nil {
				break
			}
			// compare against the unfiltered source the output table was
			// copied from, so a range-filtered copy still dedupes.
			src := prev
			for orig, out := range mc.mapOIWavelength {
				if out == prev {
					src = orig
					break
				}
			}
			if policies.StrictEqualWavelength(oiWavelength, src) {
				prevMask = mc.maskOIWavelength[src]
				log.Ctx(ctx).Info().Str("name", newName).Msg("reusing identical wavelength table")
				break
			}
			idx++
			newName = fmt.Sprintf("%s_%d", name, idx)
		}

		var newOiWavelength *types.OIWavelength
		var maskRows *types.BitSet

		if prev != nil {
			newOiWavelength = prev
			maskRows = prevMask
		} else {
			newOiWavelength = oiWavelength.Clone()
			newOiWavelength.InsName = newName

			checkWlRanges := false
			var wlRangeMatchings []types.Range

			if hasWlRanges {
				wavelengthRange := oiWavelength.Mode.WavelengthRange
				wlRangeMatchings = types.GetMatchingSelected(gWlRanges, wavelengthRange)
				if len(wlRangeMatchings) == 0 {
					log.Ctx(ctx).Debug().Str("name", name).Msg("skip wavelength table, no matching range")
					continue
				}
				checkWlRanges = !types.MatchFullyOne(wlRangeMatchings, wavelengthRange)
			}

			filterRows := false
			if checkWlRanges {
				nRows := newOiWavelength.NbRows()
				maskRows = types.NewBitSet(nRows)
				effWaves := newOiWavelength.EffWave

				for i := 0; i < nRows; i++ {
					if types.ContainsAny(wlRangeMatchings, effWaves[i]) {
						maskRows.Set(i)
					} else {
						filterRows = true
					}
				}
				if filterRows {
					nKeep := maskRows.Cardinality()
					if nKeep <= 0 {
						log.Ctx(ctx).Debug().Str("name", name).Msg("skip wavelength table, all rows filtered")
						continue
					} else if nKeep == nRows {
						maskRows = nil
					} else {
						newOiWavelength.Resize(maskRows)
					}
				}
			}

			mc.resultFile.AddOiTable(newOiWavelength)
			if filterRows {
				log.Ctx(ctx).Warn().Str("from", name).Str("to", newName).Msg("wavelength table filtered")
			}
		}

		mc.mapOIWavelength[oiWavelength] = newOiWavelength
		mc.maskOIWavelength[oiWavelength] = maskRows
	}

	log.Ctx(ctx).Info().Strs("insNames", mc.resultFile.AcceptedInsNames()).Msg("wavelength tables merged")
}
