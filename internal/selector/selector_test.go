package selector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"oifits-merge/internal/types"
)

func buildTable(tm *types.TargetManager, targetName string, localID int16, insName string, night types.NightID) types.OIData {
	target := tm.Resolve(targetName, 0, 0)
	oiTarget := types.NewOITarget(1)
	oiTarget.SetTarget(0, localID, target)

	wl := types.NewOIWavelength(insName, []float64{1.0, 1.1})
	arr := types.NewOIArray("VLTI", []types.StationEntry{{StaIndex: 1, StaName: "A0"}, {StaIndex: 2, StaName: "A1"}})
	interner := types.NewStaIndexInterner()

	table := types.NewOIVis2Data(wl, arr, nil)
	table.BindTarget(oiTarget)
	table.AddRow(localID, night, 55000.0, interner.Intern(1, 2), []float64{0.5, 0.5})
	return table
}

func collectionOf(tables ...types.OIData) *types.OIFitsCollection {
	file := types.NewOIFitsFile(types.VersionV1)
	for _, d := range tables {
		file.AddOiData(d)
	}
	return types.NewOIFitsCollection(file)
}

func TestBuildSelectorResultNoFilter(t *testing.T) {
	tm := types.NewTargetManager()
	table := buildTable(tm, "Star1", 1, "H_LOW", 1)

	result := BuildSelectorResult(collectionOf(table), nil)

	require.NotNil(t, result)
	require.Len(t, result.SortedOIDatas, 1)
	require.Len(t, result.DistinctTargets, 1)
	require.Equal(t, "Star1", result.DistinctTargets[0].Name)
	require.Equal(t, []types.NightID{1}, result.DistinctNightIds)
}

func TestBuildSelectorResultFiltersByInsMode(t *testing.T) {
	tm := types.NewTargetManager()
	a := buildTable(tm, "Star1", 1, "H_LOW", 1)
	b := buildTable(tm, "Star1", 1, "H_HIGH", 1)

	result := BuildSelectorResult(collectionOf(a, b), &types.Selector{InsModes: []string{"H_LOW"}})

	require.NotNil(t, result)
	require.Len(t, result.SortedOIDatas, 1)
	require.Equal(t, "H_LOW", result.SortedOIDatas[0].InsName())
}

func TestBuildSelectorResultFiltersByTargetName(t *testing.T) {
	tm := types.NewTargetManager()
	a := buildTable(tm, "Star1", 1, "H_LOW", 1)
	b := buildTable(tm, "Star2", 1, "H_LOW", 2)

	result := BuildSelectorResult(collectionOf(a, b), &types.Selector{TargetNames: []string{"Star2"}})

	require.NotNil(t, result)
	require.Len(t, result.SortedOIDatas, 1)
	require.Len(t, result.DistinctTargets, 1)
	require.Equal(t, "Star2", result.DistinctTargets[0].Name)
	require.Equal(t, []types.NightID{2}, result.DistinctNightIds)
}

func TestBuildSelectorResultEmptyCollectionReturnsNil(t *testing.T) {
	require.Nil(t, BuildSelectorResult(types.NewOIFitsCollection(), nil))
}

func TestBuildSelectorResultAllFilteredReturnsNil(t *testing.T) {
	tm := types.NewTargetManager()
	a := buildTable(tm, "Star1", 1, "H_LOW", 1)

	result := BuildSelectorResult(collectionOf(a), &types.Selector{TargetNames: []string{"Nonexistent"}})

	require.Nil(t, result)
}
