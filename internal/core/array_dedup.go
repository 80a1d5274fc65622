package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"oifits-merge/internal/policies"
	"oifits-merge/internal/types"
)

// processOIArrays copies and deduplicates every referenced OI_ARRAY
// table.
func processOIArrays(ctx context.Context, mc *mergeContext) {
	if len(mc.usedOIArray) == 0 {
		return
	}

	for _, oiArray := range mc.usedOIArray {
		name := oiArray.ArrName

		newName := name
		idx := 0
		var prev *types.OIArray
		for {
			prev = mc.resultFile.GetOiArray(newName)
			if prev == nil {
				break
			}
			if policies.StrictEqualArray(oiArray, prev) {
				log.Ctx(ctx).Info().Str("name", newName).Msg("reusing identical array table")
				break
			}
			idx++
			newName = fmt.Sprintf("%s_%d", name, idx)
		}

		var newOiArray *types.OIArray
		if prev != nil {
			newOiArray = prev
		} else {
			newOiArray = oiArray.Clone()
			newOiArray.ArrName = newName
			mc.resultFile.AddOiTable(newOiArray)
		}
		mc.mapOIArray[oiArray] = newOiArray
	}

	log.Ctx(ctx).Info().Strs("arrNames", mc.resultFile.AcceptedArrNames()).Msg("array tables merged")
}
