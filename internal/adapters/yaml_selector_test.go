package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"oifits-merge/internal/types"
)

func TestYAMLSelectorLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selector.yaml")
	raw := `
targetNames: [Star1, Star2]
insModes: [H_LOW]
nights: [1, 2]
baselines: [A0-A1]
mjdRanges:
  - lo: 55000
    hi: 55010
wavelengthRanges:
  - lo: 1.0
    hi: 1.2
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	adapter := NewYAMLSelectorAdapter()
	sel, err := adapter.LoadSelector(path)
	require.NoError(t, err)

	require.Equal(t, []string{"Star1", "Star2"}, sel.TargetNames)
	require.Equal(t, []string{"H_LOW"}, sel.InsModes)
	require.Equal(t, []types.NightID{1, 2}, sel.Nights)
	require.Equal(t, []string{"A0-A1"}, sel.Baselines)
	require.Equal(t, []types.Range{{Lo: 55000, Hi: 55010}}, sel.MJDRanges)
	require.Equal(t, []types.Range{{Lo: 1.0, Hi: 1.2}}, sel.WavelengthRanges)
	require.True(t, sel.HasMJDRanges())
	require.True(t, sel.HasWavelengthRanges())
	require.True(t, sel.HasBaselines())
}

func TestYAMLSelectorLoadMissingFile(t *testing.T) {
	adapter := NewYAMLSelectorAdapter()
	_, err := adapter.LoadSelector(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
