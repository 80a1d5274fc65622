package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"oifits-merge/internal/adapters"
	"oifits-merge/internal/core"
	"oifits-merge/internal/types"
	"oifits-merge/tests/testutil"
)

// TestMergeFixturesEndToEnd exercises the full in-process flow a `merge`
// invocation drives: load documents, build a collection, run the
// pipeline, write the result back out, and reload it.
func TestMergeFixturesEndToEnd(t *testing.T) {
	root := testutil.RepoRoot(t)
	docAdapter := adapters.NewYAMLDocumentAdapter()

	night1, err := docAdapter.ReadFile(filepath.Join(root, "tests", "e2e", "fixtures", "night1.yaml"))
	require.NoError(t, err)
	night2, err := docAdapter.ReadFile(filepath.Join(root, "tests", "e2e", "fixtures", "night2.yaml"))
	require.NoError(t, err)

	collection := types.NewOIFitsCollection(night1, night2)
	require.NotNil(t, collection.TargetManager)

	merged, err := core.MergeCollection(t.Context(), collection)
	require.NoError(t, err)

	require.Equal(t, types.VersionV2, merged.Version)
	require.Len(t, merged.OiTarget.Rows, 1)
	require.Len(t, merged.OiWavelength, 1)
	require.Len(t, merged.OiArray, 1)
	require.Len(t, merged.OiData, 2)

	outPath := filepath.Join(t.TempDir(), "merged.yaml")
	require.NoError(t, docAdapter.WriteFile(outPath, merged))

	reloaded, err := docAdapter.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, merged.Version, reloaded.Version)
	require.Len(t, reloaded.OiData, len(merged.OiData))
}

// TestMergeFixturesWithSelector exercises the selector-scoped path a
// `merge --selector` invocation drives.
func TestMergeFixturesWithSelector(t *testing.T) {
	root := testutil.RepoRoot(t)
	docAdapter := adapters.NewYAMLDocumentAdapter()
	selAdapter := adapters.NewYAMLSelectorAdapter()

	night1, err := docAdapter.ReadFile(filepath.Join(root, "tests", "e2e", "fixtures", "night1.yaml"))
	require.NoError(t, err)
	night2, err := docAdapter.ReadFile(filepath.Join(root, "tests", "e2e", "fixtures", "night2.yaml"))
	require.NoError(t, err)

	selPath := filepath.Join(t.TempDir(), "selector.yaml")
	require.NoError(t, os.WriteFile(selPath, []byte("nights: [1]\n"), 0o644))
	sel, err := selAdapter.LoadSelector(selPath)
	require.NoError(t, err)

	collection := types.NewOIFitsCollection(night1, night2)
	merged, err := core.MergeSelected(t.Context(), collection, sel)
	require.NoError(t, err)

	require.Len(t, merged.OiData, 1, "night2's table has no row on the selected night and must be dropped entirely")
	require.Equal(t, []int64{1}, distinctNightIDs(merged))
}

func distinctNightIDs(f *types.OIFitsFile) []int64 {
	seen := map[types.NightID]bool{}
	var out []int64
	for _, d := range f.OiData {
		for _, n := range d.DistinctNightID() {
			if !seen[n] {
				seen[n] = true
				out = append(out, int64(n))
			}
		}
	}
	return out
}
