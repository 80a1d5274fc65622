// Package selector provides a minimal query engine that turns an
// OIFitsCollection and an optional filter criteria set into the
// SelectorResult the merge pipeline consumes. The full front-end this
// module was distilled from (query planning, caching, UI-facing facets)
// is out of scope; this package only builds what the pipeline needs to
// be exercised end to end.
package selector

import (
	"sort"

	"oifits-merge/internal/types"
)

// BuildSelectorResult resolves the working set of data tables, distinct
// targets, and distinct nights for collection under sel. A nil sel
// selects every data table in every file, in file order.
func BuildSelectorResult(collection *types.OIFitsCollection, sel *types.Selector) *types.SelectorResult {
	if collection.IsEmpty() {
		return nil
	}

	var sortedData []types.OIData
	seenTarget := map[*types.Target]bool{}
	var distinctTargets []*types.Target
	seenNight := map[types.NightID]bool{}
	var distinctNights []types.NightID

	for _, file := range collection.Files {
		for _, d := range file.OiData {
			if !matchesInsMode(sel, d.InsName()) {
				continue
			}
			if !tableHasSelectedTarget(d, sel) {
				continue
			}
			if !tableHasSelectedNight(d, sel) {
				continue
			}
			sortedData = append(sortedData, d)

			for _, id := range d.DistinctTargetID() {
				target := targetForID(d.OiTarget(), id)
				if target == nil || seenTarget[target] {
					continue
				}
				if !matchesTargetName(sel, target.Name) {
					continue
				}
				seenTarget[target] = true
				distinctTargets = append(distinctTargets, target)
			}
			for _, night := range d.DistinctNightID() {
				if !matchesNight(sel, night) {
					continue
				}
				if !seenNight[night] {
					seenNight[night] = true
					distinctNights = append(distinctNights, night)
				}
			}
		}
	}

	if len(sortedData) == 0 {
		return nil
	}

	sort.Slice(distinctNights, func(i, j int) bool { return distinctNights[i] < distinctNights[j] })

	return &types.SelectorResult{
		Selector:         sel,
		OiFitsCollection: collection,
		SortedOIDatas:    sortedData,
		DistinctTargets:  distinctTargets,
		DistinctNightIds: distinctNights,
	}
}

func targetForID(t *types.OITarget, id int16) *types.Target {
	if t == nil {
		return nil
	}
	for _, row := range t.Rows {
		if row.ID == id {
			return row.Target
		}
	}
	return nil
}

func matchesInsMode(sel *types.Selector, insName string) bool {
	if sel == nil || len(sel.InsModes) == 0 {
		return true
	}
	for _, m := range sel.InsModes {
		if m == insName {
			return true
		}
	}
	return false
}

func matchesTargetName(sel *types.Selector, name string) bool {
	if sel == nil || len(sel.TargetNames) == 0 {
		return true
	}
	for _, n := range sel.TargetNames {
		if n == name {
			return true
		}
	}
	return false
}

func matchesNight(sel *types.Selector, night types.NightID) bool {
	if sel == nil || len(sel.Nights) == 0 {
		return true
	}
	for _, n := range sel.Nights {
		if n == night {
			return true
		}
	}
	return false
}

// tableHasSelectedNight reports whether at least one row of d falls on a
// night the selector accepts; tables with none of their nights selected
// are excluded from the working set entirely.
func tableHasSelectedNight(d types.OIData, sel *types.Selector) bool {
	if sel == nil || len(sel.Nights) == 0 {
		return true
	}
	for _, n := range d.DistinctNightID() {
		if matchesNight(sel, n) {
			return true
		}
	}
	return false
}

// tableHasSelectedTarget reports whether at least one row of d resolves
// to a target the selector accepts; tables with none of their targets
// selected are excluded from the working set entirely rather than
// carried through as an all-rows-filtered table.
func tableHasSelectedTarget(d types.OIData, sel *types.Selector) bool {
	if sel == nil || len(sel.TargetNames) == 0 {
		return true
	}
	for _, id := range d.DistinctTargetID() {
		if target := targetForID(d.OiTarget(), id); target != nil && matchesTargetName(sel, target.Name) {
			return true
		}
	}
	return false
}
