package types

// Selector carries the optional filter criteria a merge can be scoped
// by: target names, instrument modes, nights, baselines, MJD ranges, and
// wavelength ranges. A nil *Selector means "no filtering".
type Selector struct {
	TargetNames      []string
	InsModes         []string
	Nights           []NightID
	Baselines        []string
	MJDRanges        []Range
	WavelengthRanges []Range
}

// HasWavelengthRanges reports whether wavelength-range filtering applies.
func (s *Selector) HasWavelengthRanges() bool {
	return s != nil && len(s.WavelengthRanges) > 0
}

// HasMJDRanges reports whether MJD-range filtering applies.
func (s *Selector) HasMJDRanges() bool {
	return s != nil && len(s.MJDRanges) > 0
}

// HasBaselines reports whether baseline filtering applies.
func (s *Selector) HasBaselines() bool {
	return s != nil && len(s.Baselines) > 0
}

// SelectorResult is the precomputed selection the Merger consumes: the
// data-table working set plus the distinct targets and nights it spans.
// Building one from an OIFitsCollection and a Selector is the
// responsibility of the (out of scope) Selector front-end; this module's
// internal/selector package provides a minimal concrete implementation
// so the Merger can be exercised end to end.
type SelectorResult struct {
	Selector         *Selector
	OiFitsCollection *OIFitsCollection
	SortedOIDatas    []OIData
	DistinctTargets  []*Target
	DistinctNightIds []NightID
}

// GetSortedOIFitsFiles returns every file of this result's collection,
// in collection order, including files none of whose data tables were
// selected.
func (r *SelectorResult) GetSortedOIFitsFiles() []*OIFitsFile {
	if r == nil || r.OiFitsCollection == nil {
		return nil
	}
	return r.OiFitsCollection.Files
}
