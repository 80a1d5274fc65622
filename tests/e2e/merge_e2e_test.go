package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"oifits-merge/tests/testutil"
)

func TestMergeCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outPath := filepath.Join(t.TempDir(), "merged.yaml")

	cmd := exec.Command("go", "run", "./cmd/oifits-merge", "merge",
		"--input", "tests/e2e/fixtures/night1.yaml",
		"--input", "tests/e2e/fixtures/night2.yaml",
		"--output", outPath,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.FileExists(t, outPath)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))

	require.Equal(t, "OIFITS2", doc["version"], "a V1 and a V2 source must dominate to OIFITS2")

	target, _ := doc["target"].([]any)
	require.Len(t, target, 1, "both nights observe the same target, expected one merged OI_TARGET row")

	wavelength, _ := doc["wavelength"].([]any)
	require.Len(t, wavelength, 1, "identical wavelength tables must be reused, not duplicated")

	data, _ := doc["data"].([]any)
	require.Len(t, data, 2, "each source's measurement table survives independently")
}

func TestValidateCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/oifits-merge", "validate",
		"--input", "tests/e2e/fixtures/night1.yaml",
		"--input", "tests/e2e/fixtures/night2.yaml",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.Contains(t, string(out), "valid: tests/e2e/fixtures/night1.yaml")
	require.Contains(t, string(out), "valid: tests/e2e/fixtures/night2.yaml")
}
