package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"oifits-merge/internal/types"
)

// processOITarget builds the global OI_TARGET table and per-source id
// maps.
func processOITarget(ctx context.Context, mc *mergeContext) {
	tm := mc.selectorResult.OiFitsCollection.TargetManager
	gTargets := mc.selectorResult.DistinctTargets
	nbTargets := len(gTargets)

	newTargetIds := make(map[*types.Target]int16, nbTargets)
	newOiTarget := types.NewOITarget(nbTargets)

	for i, target := range gTargets {
		assert.NotEmpty(ctx, target.Name, "distinct target must carry a name")
		id := int16(i + 1)
		newOiTarget.SetTarget(i, id, target)
		newTargetIds[target] = id
	}

	mc.resultFile.AddOiTable(newOiTarget)

	for _, oiTarget := range mc.usedOITargets {
		mapIds := make(map[int16]int16, 4)

		for _, target := range gTargets {
			targetIds := oiTarget.TargetIDs(tm, target)
			if targetIds == nil {
				continue
			}
			newID := newTargetIds[target]
			for id := range targetIds {
				mapIds[id] = newID
			}
		}
		mc.mapOITargetIDs[oiTarget] = mapIds
	}

	log.Ctx(ctx).Debug().Int("targets", nbTargets).Msg("target table remapped")
}
