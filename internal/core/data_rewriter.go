package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"oifits-merge/internal/types"
)

// processOIData copies every selected data table, rewrites its metadata
// references and target ids, and filters its rows along up to five
// independent axes: wavelength, target, night, MJD, and baseline.
func processOIData(ctx context.Context, mc *mergeContext) {
	selector := mc.selectorResult.Selector

	var nightMatcher *types.NightIdMatcher
	if len(mc.selectorResult.DistinctNightIds) > 0 {
		nightMatcher = types.NewNightIdMatcher(mc.selectorResult.DistinctNightIds)
	}

	for _, oiData := range mc.selectorResult.SortedOIDatas {
		rewritten, skip := resolveReferences(ctx, mc, oiData)
		if skip {
			continue
		}
		assert.NotEmpty(ctx, rewritten.insName, "resolved wavelength reference must carry a name")

		maskWavelengths := mc.maskOIWavelength[oiData.OiWavelength()]
		checkWavelengths := maskWavelengths != nil

		targetIds, checkTargetId := remapTargetIds(mc, oiData)

		checkNightId := nightMatcher != nil && !oiData.HasSingleNight() && !nightMatcher.MatchAll(oiData.DistinctNightID())

		checkBaselines := false
		var matchingSta map[*types.StaIndex]struct{}
		if selector.HasBaselines() {
			matchingSta = oiData.MatchingStaIndexes(oiData.OiArray(), selector.Baselines)
			if len(matchingSta) == 0 {
				log.Ctx(ctx).Debug().Str("insName", oiData.InsName()).Msg("skip data table, no matching baseline")
				continue
			}
			checkBaselines = len(matchingSta) < len(oiData.DistinctStaIndex())
		}

		checkMJDRanges := false
		if selector.HasMJDRanges() {
			distinctMJD := oiData.DistinctMJDRanges()
			matchingMJD := types.GetMatchingSelectedSet(selector.MJDRanges, distinctMJD)
			if len(matchingMJD) == 0 {
				log.Ctx(ctx).Debug().Str("insName", oiData.InsName()).Msg("skip data table, no matching MJD range")
				continue
			}
			checkMJDRanges = !types.MatchFully(distinctMJD, matchingMJD)
		}

		copyTable := oiData.Clone()
		copyTable.SetInsName(rewritten.insName)
		copyTable.SetArrName(rewritten.arrName)
		copyTable.SetCorrName(rewritten.corrName)
		copyTable.SetOiWavelength(rewritten.wavelength)
		if rewritten.array != nil {
			copyTable.SetOiArray(rewritten.array)
		}
		if rewritten.corr != nil {
			copyTable.SetOiCorr(rewritten.corr)
		}
		copyTable.BindTarget(mc.resultFile.OiTarget)

		anyFilter := checkWavelengths || checkTargetId || checkNightId || checkBaselines || checkMJDRanges
		if anyFilter {
			nRows := copyTable.NbRows()
			rowMask := types.NewBitSet(nRows)
			newTargetIds := make([]int16, nRows)

			for i := 0; i < nRows; i++ {
				skipRow := false

				newID := copyTable.TargetID()[i]
				if checkTargetId {
					mapped, ok := targetIds[newID]
					if !ok {
						mapped = types.UndefinedShort
					}
					newID = mapped
				}
				newTargetIds[i] = newID
				if newID == types.UndefinedShort {
					skipRow = true
				}

				if !skipRow && checkNightId {
					if !nightMatcher.Match(copyTable.NightID()[i]) {
						skipRow = true
					}
				}

				if !skipRow && checkMJDRanges {
					if !types.ContainsAny(selector.MJDRanges, copyTable.MJD()[i]) {
						skipRow = true
					}
				}

				if !skipRow && checkBaselines {
					if _, ok := matchingSta[copyTable.StaIndexes()[i]]; !ok {
						skipRow = true
					}
				}

				if !skipRow {
					rowMask.Set(i)
				}
			}

			copyTable.SetTargetID(newTargetIds)

			nKeep := rowMask.Cardinality()
			if nKeep == 0 {
				log.Ctx(ctx).Debug().Str("insName", rewritten.insName).Msg("skip data table, all rows filtered")
				continue
			}
			copyTable.Resize(rowMask, maskWavelengths)
		}

		mc.resultFile.AddOiData(copyTable)
	}
}

type resolvedReferences struct {
	insName    string
	wavelength *types.OIWavelength
	arrName    string
	array      *types.OIArray
	corrName   *string
	corr       *types.OICorr
}

// resolveReferences maps a data table's OIWavelength/OIArray/OICorr
// references through the metadata phases' output, applying the
// per-reference recoverable-failure policy: a missing wavelength drops
// the whole table, a missing array or correlation substitutes.
func resolveReferences(ctx context.Context, mc *mergeContext, oiData types.OIData) (resolvedReferences, bool) {
	newWavelength, ok := mc.mapOIWavelength[oiData.OiWavelength()]
	if !ok {
		log.Ctx(ctx).Warn().Str("insName", oiData.InsName()).Msg("dropping data table, wavelength reference missing")
		return resolvedReferences{}, true
	}

	arrName := types.Undefined
	var array *types.OIArray
	if newArray, ok := mc.mapOIArray[oiData.OiArray()]; ok {
		arrName = newArray.ArrName
		array = newArray
	} else {
		log.Ctx(ctx).Warn().Str("arrName", oiData.ArrName()).Msg("array reference missing, substituting UNDEFINED")
	}

	var corrName *string
	var corr *types.OICorr
	if oiData.OiCorr() != nil {
		if newCorr, ok := mc.mapOICorr[oiData.OiCorr()]; ok {
			name := newCorr.CorrName
			corrName = &name
			corr = newCorr
		} else {
			log.Ctx(ctx).Warn().Msg("correlation reference missing, nulling CORRNAME")
		}
	}

	return resolvedReferences{
		insName:    newWavelength.InsName,
		wavelength: newWavelength,
		arrName:    arrName,
		array:      array,
		corrName:   corrName,
		corr:       corr,
	}, false
}

// remapTargetIds resolves a data table's local target ids through the
// TargetRemapper output for its owning OI_TARGET table. checkTargetId
// reports whether any resolved local id maps to something other than
// itself, or is absent, and therefore requires per-row rewriting.
func remapTargetIds(mc *mergeContext, oiData types.OIData) (map[int16]int16, bool) {
	mapIds := mc.mapOITargetIDs[oiData.OiTarget()]
	checkTargetId := false
	for _, id := range oiData.DistinctTargetID() {
		mapped, ok := mapIds[id]
		if !ok || mapped != id {
			checkTargetId = true
			break
		}
	}
	return mapIds, checkTargetId
}
