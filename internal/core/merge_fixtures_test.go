package core

import (
	"oifits-merge/internal/types"
)

// fixtureOptions describes one source file's contents for the tests in
// this package. Every field mirrors a construct a real OIFITS document
// would carry, kept minimal enough to hand-build without a YAML fixture.
type fixtureOptions struct {
	version    types.OIFitsStandard
	targetName string
	localID    int16
	insName    string
	effWave    []float64
	arrName    string
	stations   []types.StationEntry
	night      types.NightID
	mjd        float64
	staIndex   []int16
	channel    []float64
	// telescop overrides the primary HDU's TELESCOP keyword; defaults to
	// "VLTI" when empty.
	telescop string
}

// buildFixtureFile constructs a single-data-table OIFitsFile from opts,
// resolving its target through tm so cross-file target identity works
// the way OIFitsCollection expects.
func buildFixtureFile(tm *types.TargetManager, opts fixtureOptions) *types.OIFitsFile {
	file := types.NewOIFitsFile(opts.version)

	telescop := opts.telescop
	if telescop == "" {
		telescop = "VLTI"
	}

	hdu := types.NewOIPrimaryHDU()
	hdu.SetKeyword("TELESCOP", telescop)
	hdu.SetKeyword("INSTRUME", opts.insName)
	hdu.SetKeyword("OBSERVER", "TEST")
	hdu.SetKeyword("OBJECT", opts.targetName)
	hdu.SetKeyword("INSMODE", opts.insName)
	hdu.SetKeyword("ORIGIN", "TEST")
	hdu.SetKeyword("DATE-OBS", "2024-01-01")
	file.SetPrimaryImageHdu(hdu)

	target := tm.Resolve(opts.targetName, 0, 0)
	oiTarget := types.NewOITarget(1)
	oiTarget.SetTarget(0, opts.localID, target)
	file.AddOiTable(oiTarget)

	wl := types.NewOIWavelength(opts.insName, opts.effWave)
	file.AddOiTable(wl)

	arr := types.NewOIArray(opts.arrName, opts.stations)
	file.AddOiTable(arr)

	interner := types.NewStaIndexInterner()
	table := types.NewOIVis2Data(wl, arr, nil)
	table.BindTarget(oiTarget)
	table.AddRow(opts.localID, opts.night, opts.mjd, interner.Intern(opts.staIndex...), opts.channel)
	file.AddOiData(table)

	return file
}

func vltiStations() []types.StationEntry {
	return []types.StationEntry{
		{StaIndex: 1, StaName: "A0"},
		{StaIndex: 2, StaName: "A1"},
	}
}
