package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"oifits-merge/internal/types"
)

// buildBaselineFixture builds a single file with one OI_VIS2 table whose
// rows span two distinct baselines over a three-station array.
func buildBaselineFixture(tm *types.TargetManager) *types.OIFitsFile {
	file := types.NewOIFitsFile(types.VersionV1)

	hdu := types.NewOIPrimaryHDU()
	hdu.SetKeyword("TELESCOP", "VLTI")
	hdu.SetKeyword("INSTRUME", "H_LOW")
	hdu.SetKeyword("OBSERVER", "TEST")
	hdu.SetKeyword("OBJECT", "Star1")
	hdu.SetKeyword("INSMODE", "H_LOW")
	hdu.SetKeyword("ORIGIN", "TEST")
	hdu.SetKeyword("DATE-OBS", "2024-01-01")
	file.SetPrimaryImageHdu(hdu)

	target := tm.Resolve("Star1", 0, 0)
	oiTarget := types.NewOITarget(1)
	oiTarget.SetTarget(0, 1, target)
	file.AddOiTable(oiTarget)

	wl := types.NewOIWavelength("H_LOW", []float64{1.0, 1.1})
	file.AddOiTable(wl)

	arr := types.NewOIArray("VLTI", []types.StationEntry{
		{StaIndex: 1, StaName: "A0"},
		{StaIndex: 2, StaName: "A1"},
		{StaIndex: 3, StaName: "A2"},
	})
	file.AddOiTable(arr)

	interner := types.NewStaIndexInterner()
	table := types.NewOIVis2Data(wl, arr, nil)
	table.BindTarget(oiTarget)
	table.AddRow(1, 1, 55000.0, interner.Intern(1, 2), []float64{0.9, 0.8}) // baseline A0-A1
	table.AddRow(1, 1, 55000.0, interner.Intern(1, 3), []float64{0.5, 0.4}) // baseline A0-A2
	file.AddOiData(table)

	return file
}

// TestMergeBaselineSelectorFiltering covers a baseline selector dropping
// rows whose station-index pair is not among the selected baselines.
func TestMergeBaselineSelectorFiltering(t *testing.T) {
	tm := types.NewTargetManager()
	file := buildBaselineFixture(tm)

	out := mergeFiles(t, tm, &types.Selector{Baselines: []string{"A0-A1"}}, file)

	require.Len(t, out.OiData, 1)
	vis2, ok := out.OiData[0].(*types.OIVis2Data)
	require.True(t, ok)
	require.Equal(t, 1, vis2.NbRows())
	require.Equal(t, [][]float64{{0.9, 0.8}}, vis2.Vis2Data())
}

// TestMergeBaselineSelectorDropsWholeTable covers a baseline selector that
// matches none of a table's baselines, dropping the table entirely.
func TestMergeBaselineSelectorDropsWholeTable(t *testing.T) {
	tm := types.NewTargetManager()
	file := buildBaselineFixture(tm)

	out := mergeFiles(t, tm, &types.Selector{Baselines: []string{"A1-A2"}}, file)

	require.Empty(t, out.OiData)
}

// buildMJDFixture builds a single file with one OI_VIS2 table whose rows
// span three distinct nights/MJD values, used to exercise MJD-range
// selector filtering at the half-open [Lo, Hi) boundary.
func buildMJDFixture(tm *types.TargetManager) *types.OIFitsFile {
	file := types.NewOIFitsFile(types.VersionV1)

	hdu := types.NewOIPrimaryHDU()
	hdu.SetKeyword("TELESCOP", "VLTI")
	hdu.SetKeyword("INSTRUME", "H_LOW")
	hdu.SetKeyword("OBSERVER", "TEST")
	hdu.SetKeyword("OBJECT", "Star1")
	hdu.SetKeyword("INSMODE", "H_LOW")
	hdu.SetKeyword("ORIGIN", "TEST")
	hdu.SetKeyword("DATE-OBS", "2024-01-01")
	file.SetPrimaryImageHdu(hdu)

	target := tm.Resolve("Star1", 0, 0)
	oiTarget := types.NewOITarget(1)
	oiTarget.SetTarget(0, 1, target)
	file.AddOiTable(oiTarget)

	wl := types.NewOIWavelength("H_LOW", []float64{1.0, 1.1})
	file.AddOiTable(wl)

	arr := types.NewOIArray("VLTI", vltiStations())
	file.AddOiTable(arr)

	interner := types.NewStaIndexInterner()
	table := types.NewOIVis2Data(wl, arr, nil)
	table.BindTarget(oiTarget)
	sta := interner.Intern(1, 2)
	table.AddRow(1, 1, 54999.0, sta, []float64{0.1, 0.1}) // below the selected range
	table.AddRow(1, 2, 55000.0, sta, []float64{0.2, 0.2}) // at Lo, included
	table.AddRow(1, 3, 55001.0, sta, []float64{0.3, 0.3}) // at Hi, excluded
	file.AddOiData(table)

	return file
}

// TestMergeMJDRangeSelectorFiltering covers MJD-range selector filtering,
// verifying the half-open [Lo, Hi) interpretation: a row exactly at Lo is
// kept, a row exactly at Hi is dropped.
func TestMergeMJDRangeSelectorFiltering(t *testing.T) {
	tm := types.NewTargetManager()
	file := buildMJDFixture(tm)

	out := mergeFiles(t, tm, &types.Selector{MJDRanges: []types.Range{{Lo: 55000, Hi: 55001}}}, file)

	require.Len(t, out.OiData, 1)
	vis2, ok := out.OiData[0].(*types.OIVis2Data)
	require.True(t, ok)
	require.Equal(t, 1, vis2.NbRows())
	require.Equal(t, []float64{55000.0}, vis2.MJD())
}
