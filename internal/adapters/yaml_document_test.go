package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"oifits-merge/internal/types"
)

func sampleFile() *types.OIFitsFile {
	file := types.NewOIFitsFile(types.VersionV2)

	hdu := types.NewOIPrimaryHDU()
	hdu.SetKeyword("TELESCOP", "VLTI")
	hdu.SetKeyword("OBJECT", "Star1")
	hdu.OptionalCard["COMMENT"] = "test fixture"
	hdu.AddHistory("created for a round-trip test")
	file.SetPrimaryImageHdu(hdu)

	tm := types.NewTargetManager()
	oiTarget := types.NewOITarget(1)
	oiTarget.SetTarget(0, 1, tm.Resolve("Star1", 10.5, -20.25))
	file.AddOiTable(oiTarget)

	wl := types.NewOIWavelength("H_LOW", []float64{1.0, 1.1, 1.2})
	file.AddOiTable(wl)

	arr := types.NewOIArray("VLTI", []types.StationEntry{
		{StaIndex: 1, StaName: "A0"},
		{StaIndex: 2, StaName: "A1"},
	})
	file.AddOiTable(arr)

	corr := types.NewOICorr("CORR1", 4)
	file.AddOiTable(corr)

	interner := types.NewStaIndexInterner()
	table := types.NewOIVis2Data(wl, arr, corr)
	table.BindTarget(oiTarget)
	table.AddRow(1, 1, 55000.5, interner.Intern(1, 2), []float64{0.9, 0.8, 0.7})
	file.AddOiData(table)

	return file
}

func TestYAMLDocumentRoundTrip(t *testing.T) {
	adapter := NewYAMLDocumentAdapter()
	path := filepath.Join(t.TempDir(), "doc.yaml")

	original := sampleFile()
	require.NoError(t, adapter.WriteFile(path, original))

	loaded, err := adapter.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, types.VersionV2, loaded.Version)
	require.Equal(t, "VLTI", loaded.GetOIPrimaryHDU().Keywords["TELESCOP"])
	require.Equal(t, "test fixture", loaded.GetOIPrimaryHDU().OptionalCard["COMMENT"])
	require.Equal(t, []string{"created for a round-trip test"}, loaded.GetOIPrimaryHDU().HistoryLines)

	require.Len(t, loaded.OiTarget.Rows, 1)
	require.Equal(t, "Star1", loaded.OiTarget.Rows[0].Target.Name)
	require.InDelta(t, 10.5, loaded.OiTarget.Rows[0].Target.RA, 1e-9)

	require.Len(t, loaded.OiWavelength, 1)
	require.Equal(t, []float64{1.0, 1.1, 1.2}, loaded.OiWavelength[0].EffWave)

	require.Len(t, loaded.OiArray, 1)
	require.Len(t, loaded.OiArray[0].Stations, 2)

	require.Len(t, loaded.OiCorr, 1)
	require.Equal(t, "CORR1", loaded.OiCorr[0].CorrName)

	require.Len(t, loaded.OiData, 1)
	vis2, ok := loaded.OiData[0].(*types.OIVis2Data)
	require.True(t, ok)
	require.Equal(t, 1, vis2.NbRows())
	require.Equal(t, [][]float64{{0.9, 0.8, 0.7}}, vis2.Vis2Data())
	require.NotNil(t, vis2.CorrName())
	require.Equal(t, "CORR1", *vis2.CorrName())
}

func TestYAMLDocumentReadMissingFile(t *testing.T) {
	adapter := NewYAMLDocumentAdapter()
	_, err := adapter.ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestYAMLDocumentReadDanglingWavelengthReference(t *testing.T) {
	adapter := NewYAMLDocumentAdapter()
	path := filepath.Join(t.TempDir(), "bad.yaml")
	raw := `
version: OIFITS1
target:
  - id: 1
    name: Star1
data:
  - kind: OI_VIS2
    insName: MISSING
    arrName: MISSING
    rows: []
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := adapter.ReadFile(path)
	require.Error(t, err)
}
