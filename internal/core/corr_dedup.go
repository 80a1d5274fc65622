package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// processOICorrs copies every referenced OI_CORR table, renaming on
// collision. Unlike wavelength/array, correlation tables are never
// deduplicated by content; see DESIGN.md for why that asymmetry stays.
func processOICorrs(ctx context.Context, mc *mergeContext) {
	if len(mc.usedOICorr) == 0 {
		return
	}

	for _, oiCorr := range mc.usedOICorr {
		name := oiCorr.CorrName

		newName := name
		idx := 0
		for mc.resultFile.GetOiCorr(newName) != nil {
			idx++
			newName = fmt.Sprintf("%s_%d", name, idx)
		}

		newOiCorr := oiCorr.Clone()
		newOiCorr.CorrName = newName
		mc.resultFile.AddOiTable(newOiCorr)

		mc.mapOICorr[oiCorr] = newOiCorr
	}

	log.Ctx(ctx).Info().Strs("corrNames", mc.resultFile.AcceptedCorrNames()).Msg("correlation tables merged")
}
