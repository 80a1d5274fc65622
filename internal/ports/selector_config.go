package ports

import "oifits-merge/internal/types"

// SelectorConfigPort loads the optional filter criteria (target names,
// instrument modes, nights, baselines, MJD ranges, wavelength ranges) a
// merge is scoped by from an on-disk configuration file.
type SelectorConfigPort interface {
	LoadSelector(path string) (*types.Selector, error)
}
