package core

// collectTables walks the selected data tables and records the distinct
// primary HDU, target, wavelength, array, and correlation tables they
// reference, in first-seen order.
func collectTables(ctx *mergeContext) {
	for _, oiData := range ctx.selectorResult.SortedOIDatas {
		if f := oiData.SourceFile(); f != nil {
			if hdu := f.GetOIPrimaryHDU(); hdu != nil && !ctx.seenPrimaryHDU[hdu] {
				ctx.seenPrimaryHDU[hdu] = true
				ctx.usedOIPrimaryHDU = append(ctx.usedOIPrimaryHDU, hdu)
			}
		}
		if t := oiData.OiTarget(); t != nil && !ctx.seenOITarget[t] {
			ctx.seenOITarget[t] = true
			ctx.usedOITargets = append(ctx.usedOITargets, t)
		}
		if w := oiData.OiWavelength(); w != nil && !ctx.seenWavelength[w] {
			ctx.seenWavelength[w] = true
			ctx.usedOIWavelength = append(ctx.usedOIWavelength, w)
		}
		if a := oiData.OiArray(); a != nil && !ctx.seenArray[a] {
			ctx.seenArray[a] = true
			ctx.usedOIArray = append(ctx.usedOIArray, a)
		}
		if c := oiData.OiCorr(); c != nil && !ctx.seenCorr[c] {
			ctx.seenCorr[c] = true
			ctx.usedOICorr = append(ctx.usedOICorr, c)
		}
		// OI_INSPOL is intentionally not collected; see DESIGN.md.
	}
}
