// Package core implements the Merger: the six-phase pipeline that
// consolidates a SelectorResult into a single self-consistent
// OIFitsFile.
package core

import "oifits-merge/internal/types"

// mergeContext holds the temporary state threaded across the merge
// pipeline's phases. Fields are populated monotonically, one phase at a
// time, and never read before their producing phase has run.
type mergeContext struct {
	selectorResult *types.SelectorResult
	resultFile     *types.OIFitsFile

	usedOIPrimaryHDU []*types.OIPrimaryHDU
	usedOITargets    []*types.OITarget
	usedOIWavelength []*types.OIWavelength
	usedOIArray      []*types.OIArray
	usedOICorr       []*types.OICorr

	seenPrimaryHDU map[*types.OIPrimaryHDU]bool
	seenOITarget   map[*types.OITarget]bool
	seenWavelength map[*types.OIWavelength]bool
	seenArray      map[*types.OIArray]bool
	seenCorr       map[*types.OICorr]bool

	mapOITargetIDs map[*types.OITarget]map[int16]int16

	mapOIWavelength  map[*types.OIWavelength]*types.OIWavelength
	maskOIWavelength map[*types.OIWavelength]*types.BitSet
	mapOIArray       map[*types.OIArray]*types.OIArray
	mapOICorr        map[*types.OICorr]*types.OICorr

	now func() string
}

func newMergeContext(result *types.SelectorResult, resultFile *types.OIFitsFile, now func() string) *mergeContext {
	return &mergeContext{
		selectorResult:   result,
		resultFile:       resultFile,
		seenPrimaryHDU:   make(map[*types.OIPrimaryHDU]bool),
		seenOITarget:     make(map[*types.OITarget]bool),
		seenWavelength:   make(map[*types.OIWavelength]bool),
		seenArray:        make(map[*types.OIArray]bool),
		seenCorr:         make(map[*types.OICorr]bool),
		mapOITargetIDs:   make(map[*types.OITarget]map[int16]int16),
		mapOIWavelength:  make(map[*types.OIWavelength]*types.OIWavelength),
		maskOIWavelength: make(map[*types.OIWavelength]*types.BitSet),
		mapOIArray:       make(map[*types.OIArray]*types.OIArray),
		mapOICorr:        make(map[*types.OICorr]*types.OICorr),
		now:              now,
	}
}
