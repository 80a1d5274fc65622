package types

// OIFitsFile is the container for one OIFITS document: a primary HDU, a
// single OI_TARGET table, and ordered lists of OI_WAVELENGTH, OI_ARRAY,
// OI_CORR, and measurement tables, tagged with a standard version.
type OIFitsFile struct {
	Version      OIFitsStandard
	PrimaryHDU   PrimaryHDU
	OiTarget     *OITarget
	OiWavelength []*OIWavelength
	OiArray      []*OIArray
	OiCorr       []*OICorr
	OiData       []OIData
}

// NewOIFitsFile returns an empty file tagged with the given version.
func NewOIFitsFile(version OIFitsStandard) *OIFitsFile {
	return &OIFitsFile{Version: version}
}

// IsOIFits2 reports whether this file's standard is V2.
func (f *OIFitsFile) IsOIFits2() bool {
	return f.Version == VersionV2
}

// SetPrimaryImageHdu assigns the primary HDU.
func (f *OIFitsFile) SetPrimaryImageHdu(h PrimaryHDU) {
	f.PrimaryHDU = h
}

// GetOIPrimaryHDU returns the primary HDU when it is an *OIPrimaryHDU,
// or nil if this file has none or carries a bare FitsImageHDU. The
// file's Version tag is not consulted.
func (f *OIFitsFile) GetOIPrimaryHDU() *OIPrimaryHDU {
	h, _ := f.PrimaryHDU.(*OIPrimaryHDU)
	return h
}

// GetOiWavelength looks up a wavelength table by name.
func (f *OIFitsFile) GetOiWavelength(name string) *OIWavelength {
	for _, w := range f.OiWavelength {
		if w.InsName == name {
			return w
		}
	}
	return nil
}

// GetOiArray looks up an array table by name.
func (f *OIFitsFile) GetOiArray(name string) *OIArray {
	for _, a := range f.OiArray {
		if a.ArrName == name {
			return a
		}
	}
	return nil
}

// GetOiCorr looks up a correlation table by name.
func (f *OIFitsFile) GetOiCorr(name string) *OICorr {
	for _, c := range f.OiCorr {
		if c.CorrName == name {
			return c
		}
	}
	return nil
}

// AddOiData appends a measurement table and binds it to this file, so
// later ReferenceCollector lookups of a row's owning file resolve
// correctly. Use this (not AddOiTable) when first constructing a source
// file's contents.
func (f *OIFitsFile) AddOiData(d OIData) {
	d.SetSourceFile(f)
	f.OiData = append(f.OiData, d)
}

// AddOiTable appends a metadata or data table, dispatching on its
// concrete type.
func (f *OIFitsFile) AddOiTable(table interface{}) {
	switch t := table.(type) {
	case *OITarget:
		f.OiTarget = t
	case *OIWavelength:
		f.OiWavelength = append(f.OiWavelength, t)
	case *OIArray:
		f.OiArray = append(f.OiArray, t)
	case *OICorr:
		f.OiCorr = append(f.OiCorr, t)
	case OIData:
		f.OiData = append(f.OiData, t)
	}
}

// CopyTable deep-copies a metadata or data table for independent
// mutation.
func (f *OIFitsFile) CopyTable(table interface{}) interface{} {
	switch t := table.(type) {
	case *OITarget:
		return t.Clone()
	case *OIWavelength:
		return t.Clone()
	case *OIArray:
		return t.Clone()
	case *OICorr:
		return t.Clone()
	case OIData:
		return t.Clone()
	default:
		return nil
	}
}

// AcceptedInsNames returns the names of all OI_WAVELENGTH tables in file
// order.
func (f *OIFitsFile) AcceptedInsNames() []string {
	names := make([]string, len(f.OiWavelength))
	for i, w := range f.OiWavelength {
		names[i] = w.InsName
	}
	return names
}

// AcceptedArrNames returns the names of all OI_ARRAY tables in file
// order.
func (f *OIFitsFile) AcceptedArrNames() []string {
	names := make([]string, len(f.OiArray))
	for i, a := range f.OiArray {
		names[i] = a.ArrName
	}
	return names
}

// AcceptedCorrNames returns the names of all OI_CORR tables in file
// order.
func (f *OIFitsFile) AcceptedCorrNames() []string {
	names := make([]string, len(f.OiCorr))
	for i, c := range f.OiCorr {
		names[i] = c.CorrName
	}
	return names
}

// OIFitsCollection groups the input files of a merge operation together
// with the shared TargetManager used to give cross-file targets pointer
// identity.
type OIFitsCollection struct {
	Files         []*OIFitsFile
	TargetManager *TargetManager
}

// NewOIFitsCollection builds a collection over the given files, first
// re-resolving every file's OI_TARGET rows through a single shared
// TargetManager. Files are typically decoded independently (one
// DocumentReaderPort call per source), each with its own TargetManager,
// so without this canonicalization pass targets with the same name in
// different files would keep distinct identities and never dedupe.
func NewOIFitsCollection(files ...*OIFitsFile) *OIFitsCollection {
	tm := NewTargetManager()
	for _, f := range files {
		if f.OiTarget == nil {
			continue
		}
		for i, row := range f.OiTarget.Rows {
			f.OiTarget.Rows[i].Target = tm.Resolve(row.Target.Name, row.Target.RA, row.Target.Dec)
		}
	}
	return &OIFitsCollection{Files: files, TargetManager: tm}
}

// IsEmpty reports whether the collection has no files.
func (c *OIFitsCollection) IsEmpty() bool {
	return c == nil || len(c.Files) == 0
}
