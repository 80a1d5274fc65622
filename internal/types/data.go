package types

import "sort"

// StaIndex is a station-index tuple identifying an interferometric
// baseline (length 2) or closure triangle (length 3). Row-level StaIndex
// values are interned (see StaIndexInterner) so that rows sharing a
// baseline share the same pointer, allowing baseline-membership checks
// to compare pointers instead of tuple contents.
type StaIndex []int16

// StaIndexInterner canonicalizes station-index tuples to a single shared
// *StaIndex per distinct tuple.
type StaIndexInterner struct {
	seen map[string]*StaIndex
}

// NewStaIndexInterner returns an empty interner.
func NewStaIndexInterner() *StaIndexInterner {
	return &StaIndexInterner{seen: make(map[string]*StaIndex)}
}

// Intern returns the canonical *StaIndex for the given tuple.
func (in *StaIndexInterner) Intern(idx ...int16) *StaIndex {
	key := staIndexKey(idx)
	if p, ok := in.seen[key]; ok {
		return p
	}
	si := StaIndex(append([]int16(nil), idx...))
	in.seen[key] = &si
	return &si
}

func staIndexKey(idx []int16) string {
	b := make([]byte, 0, len(idx)*3)
	for _, v := range idx {
		b = append(b, byte(v>>8), byte(v), '|')
	}
	return string(b)
}

// OIDataKind names the OIFITS measurement table an OIData instance
// represents.
type OIDataKind string

const (
	KindVis2 OIDataKind = "OI_VIS2"
	KindVis  OIDataKind = "OI_VIS"
	KindT3   OIDataKind = "OI_T3"
)

// OIData is any OIFITS measurement table: rows carry a target id, night
// id, MJD, and station-index reference; the table references exactly one
// OIWavelength and OIArray and optionally one OICorr. All three concrete
// measurement kinds (OI_VIS2, OI_VIS, OI_T3) share this row shape, so a
// single generic implementation backs all three instead of duplicating
// row-filtering logic per kind.
type OIData interface {
	Kind() OIDataKind
	NbRows() int
	InsName() string
	SetInsName(string)
	ArrName() string
	SetArrName(string)
	CorrName() *string
	SetCorrName(*string)
	OiWavelength() *OIWavelength
	SetOiWavelength(*OIWavelength)
	OiArray() *OIArray
	SetOiArray(*OIArray)
	OiCorr() *OICorr
	SetOiCorr(*OICorr)
	OiTarget() *OITarget
	BindTarget(*OITarget)
	SourceFile() *OIFitsFile
	SetSourceFile(*OIFitsFile)
	TargetID() []int16
	SetTargetID([]int16)
	NightID() []NightID
	MJD() []float64
	StaIndexes() []*StaIndex
	DistinctTargetID() []int16
	HasSingleNight() bool
	DistinctNightID() []NightID
	DistinctStaIndex() []*StaIndex
	DistinctMJDRanges() []Range
	MatchingStaIndexes(arr *OIArray, baselines []string) map[*StaIndex]struct{}
	Clone() OIData
	Resize(rowMask, channelMask *BitSet)
	AddRow(targetID int16, nightID NightID, mjd float64, sta *StaIndex, channelValues []float64)
}

type baseOIData struct {
	kind         OIDataKind
	insName      string
	arrName      string
	corrName     *string
	oiWavelength *OIWavelength
	oiArray      *OIArray
	oiCorr       *OICorr
	oiTarget     *OITarget
	sourceFile   *OIFitsFile
	targetID     []int16
	nightID      []NightID
	mjd          []float64
	staIndex     []*StaIndex
	// channel holds the table's channel-indexed measurement column (one
	// slice of len(oiWavelength.EffWave) per row): OI_VIS2's VIS2DATA,
	// OI_VIS's VISAMP, OI_T3's T3PHI. Modeling exactly one such column
	// per row (instead of the several real OIFITS carries, e.g. VIS2DATA
	// *and* VIS2ERR) is sufficient to exercise the wavelength-mask
	// consistency invariant the Merger must uphold; see DESIGN.md.
	channel [][]float64
}

// NewOIData builds a measurement table of the given kind.
func NewOIData(kind OIDataKind, wl *OIWavelength, arr *OIArray, corr *OICorr) *baseOIData {
	d := &baseOIData{kind: kind, oiWavelength: wl, oiArray: arr, oiCorr: corr, insName: wl.InsName, arrName: arr.ArrName}
	if corr != nil {
		name := corr.CorrName
		d.corrName = &name
	}
	return d
}

// BindTarget associates the table with the OI_TARGET table its rows'
// target ids are local to.
func (d *baseOIData) BindTarget(t *OITarget) { d.oiTarget = t }

// AddRow appends one measurement row. channelValues must have one entry
// per channel of the table's OIWavelength.
func (d *baseOIData) AddRow(targetID int16, nightID NightID, mjd float64, sta *StaIndex, channelValues []float64) {
	d.targetID = append(d.targetID, targetID)
	d.nightID = append(d.nightID, nightID)
	d.mjd = append(d.mjd, mjd)
	d.staIndex = append(d.staIndex, sta)
	d.channel = append(d.channel, append([]float64(nil), channelValues...))
}

// ChannelValues returns the per-row channel-indexed measurement column.
func (d *baseOIData) ChannelValues() [][]float64 { return d.channel }

func (d *baseOIData) Kind() OIDataKind             { return d.kind }
func (d *baseOIData) NbRows() int                  { return len(d.targetID) }
func (d *baseOIData) InsName() string              { return d.insName }
func (d *baseOIData) SetInsName(v string)          { d.insName = v }
func (d *baseOIData) ArrName() string              { return d.arrName }
func (d *baseOIData) SetArrName(v string)          { d.arrName = v }
func (d *baseOIData) CorrName() *string            { return d.corrName }
func (d *baseOIData) SetCorrName(v *string)        { d.corrName = v }
func (d *baseOIData) OiWavelength() *OIWavelength  { return d.oiWavelength }
func (d *baseOIData) SetOiWavelength(w *OIWavelength) { d.oiWavelength = w }
func (d *baseOIData) OiArray() *OIArray            { return d.oiArray }
func (d *baseOIData) SetOiArray(a *OIArray)        { d.oiArray = a }
func (d *baseOIData) OiCorr() *OICorr              { return d.oiCorr }
func (d *baseOIData) SetOiCorr(c *OICorr)          { d.oiCorr = c }
func (d *baseOIData) OiTarget() *OITarget          { return d.oiTarget }
func (d *baseOIData) SourceFile() *OIFitsFile      { return d.sourceFile }
func (d *baseOIData) SetSourceFile(f *OIFitsFile)  { d.sourceFile = f }
func (d *baseOIData) TargetID() []int16            { return d.targetID }
func (d *baseOIData) SetTargetID(v []int16)        { d.targetID = v }
func (d *baseOIData) NightID() []NightID           { return d.nightID }
func (d *baseOIData) MJD() []float64               { return d.mjd }
func (d *baseOIData) StaIndexes() []*StaIndex      { return d.staIndex }

// DistinctTargetID returns the sorted set of distinct target ids present.
func (d *baseOIData) DistinctTargetID() []int16 {
	seen := map[int16]struct{}{}
	for _, id := range d.targetID {
		seen[id] = struct{}{}
	}
	out := make([]int16, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasSingleNight reports whether every row shares one night id.
func (d *baseOIData) HasSingleNight() bool {
	if len(d.nightID) == 0 {
		return true
	}
	first := d.nightID[0]
	for _, id := range d.nightID[1:] {
		if id != first {
			return false
		}
	}
	return true
}

// DistinctNightID returns the distinct night ids present.
func (d *baseOIData) DistinctNightID() []NightID {
	seen := map[NightID]struct{}{}
	for _, id := range d.nightID {
		seen[id] = struct{}{}
	}
	out := make([]NightID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DistinctStaIndex returns the distinct station-index pointers present,
// in first-seen order, preserving pointer identity for downstream
// membership tests.
func (d *baseOIData) DistinctStaIndex() []*StaIndex {
	seen := map[*StaIndex]struct{}{}
	var out []*StaIndex
	for _, si := range d.staIndex {
		if _, ok := seen[si]; !ok {
			seen[si] = struct{}{}
			out = append(out, si)
		}
	}
	return out
}

// DistinctMJDRanges buckets this table's MJD values into one half-open
// sub-range per night, [min, max+1e-9), so the night's last sample lies
// inside it; used by the MJD selection check.
func (d *baseOIData) DistinctMJDRanges() []Range {
	byNight := map[NightID]*Range{}
	order := []NightID{}
	for i, night := range d.nightID {
		mjd := d.mjd[i]
		r, ok := byNight[night]
		if !ok {
			nr := Range{Lo: mjd, Hi: mjd + 1e-9}
			byNight[night] = &nr
			order = append(order, night)
			continue
		}
		if mjd < r.Lo {
			r.Lo = mjd
		}
		if mjd+1e-9 > r.Hi {
			r.Hi = mjd + 1e-9
		}
	}
	out := make([]Range, 0, len(order))
	for _, night := range order {
		out = append(out, *byNight[night])
	}
	return out
}

// MatchingStaIndexes returns the distinct station-index pointers of this
// table whose baseline name (resolved through arr) is among baselines.
func (d *baseOIData) MatchingStaIndexes(arr *OIArray, baselines []string) map[*StaIndex]struct{} {
	wanted := make(map[string]struct{}, len(baselines)*2)
	for _, b := range baselines {
		wanted[b] = struct{}{}
		wanted[reverseBaseline(b)] = struct{}{}
	}
	out := map[*StaIndex]struct{}{}
	for _, si := range d.DistinctStaIndex() {
		name := arr.BaselineName(si)
		if _, ok := wanted[name]; ok {
			out[si] = struct{}{}
		}
	}
	return out
}

func reverseBaseline(name string) string {
	var parts []string
	start := 0
	for i := 0; i < len(name); i++ {
		if name[i] == '-' {
			parts = append(parts, name[start:i])
			start = i + 1
		}
	}
	parts = append(parts, name[start:])
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return joinHyphen(parts)
}

func (d *baseOIData) cloneInto(kind OIDataKind) *baseOIData {
	var corrName *string
	if d.corrName != nil {
		v := *d.corrName
		corrName = &v
	}
	return &baseOIData{
		kind:         kind,
		insName:      d.insName,
		arrName:      d.arrName,
		corrName:     corrName,
		oiWavelength: d.oiWavelength,
		oiArray:      d.oiArray,
		oiCorr:       d.oiCorr,
		oiTarget:     d.oiTarget,
		sourceFile:   d.sourceFile,
		targetID:     append([]int16(nil), d.targetID...),
		nightID:      append([]NightID(nil), d.nightID...),
		mjd:          append([]float64(nil), d.mjd...),
		staIndex:     append([]*StaIndex(nil), d.staIndex...),
		channel:      cloneChannels(d.channel),
	}
}

func cloneChannels(src [][]float64) [][]float64 {
	if src == nil {
		return nil
	}
	out := make([][]float64, len(src))
	for i, row := range src {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Resize shrinks the table in place to the rows selected by rowMask; if
// channelMask is non-nil, every retained row's channel column is also
// shrunk to the channels selected by channelMask.
func (d *baseOIData) Resize(rowMask, channelMask *BitSet) {
	n := rowMask.Cardinality()
	targetID := make([]int16, 0, n)
	nightID := make([]NightID, 0, n)
	mjd := make([]float64, 0, n)
	staIndex := make([]*StaIndex, 0, n)
	channel := make([][]float64, 0, n)
	for i := 0; i < len(d.targetID); i++ {
		if !rowMask.Get(i) {
			continue
		}
		targetID = append(targetID, d.targetID[i])
		nightID = append(nightID, d.nightID[i])
		mjd = append(mjd, d.mjd[i])
		staIndex = append(staIndex, d.staIndex[i])

		row := d.channel[i]
		if channelMask == nil || row == nil {
			channel = append(channel, row)
			continue
		}
		kept := make([]float64, 0, channelMask.Cardinality())
		for c := 0; c < len(row); c++ {
			if channelMask.Get(c) {
				kept = append(kept, row[c])
			}
		}
		channel = append(channel, kept)
	}
	d.targetID, d.nightID, d.mjd, d.staIndex, d.channel = targetID, nightID, mjd, staIndex, channel
}

// OIVis2Data is the OI_VIS2 squared-visibility measurement table.
type OIVis2Data struct{ *baseOIData }

// NewOIVis2Data builds an empty OI_VIS2 table.
func NewOIVis2Data(wl *OIWavelength, arr *OIArray, corr *OICorr) *OIVis2Data {
	return &OIVis2Data{NewOIData(KindVis2, wl, arr, corr)}
}

// Clone deep-copies the table for independent mutation.
func (d *OIVis2Data) Clone() OIData { return &OIVis2Data{d.baseOIData.cloneInto(KindVis2)} }

// Vis2Data returns the per-row, per-channel squared-visibility column.
func (d *OIVis2Data) Vis2Data() [][]float64 { return d.channel }

// OIVisData is the OI_VIS complex-visibility measurement table.
type OIVisData struct{ *baseOIData }

// NewOIVisData builds an empty OI_VIS table.
func NewOIVisData(wl *OIWavelength, arr *OIArray, corr *OICorr) *OIVisData {
	return &OIVisData{NewOIData(KindVis, wl, arr, corr)}
}

// Clone deep-copies the table for independent mutation.
func (d *OIVisData) Clone() OIData { return &OIVisData{d.baseOIData.cloneInto(KindVis)} }

// VisAmp returns the per-row, per-channel visibility-amplitude column.
func (d *OIVisData) VisAmp() [][]float64 { return d.channel }

// OIT3Data is the OI_T3 closure-phase/amplitude measurement table.
type OIT3Data struct{ *baseOIData }

// NewOIT3Data builds an empty OI_T3 table.
func NewOIT3Data(wl *OIWavelength, arr *OIArray, corr *OICorr) *OIT3Data {
	return &OIT3Data{NewOIData(KindT3, wl, arr, corr)}
}

// Clone deep-copies the table for independent mutation.
func (d *OIT3Data) Clone() OIData { return &OIT3Data{d.baseOIData.cloneInto(KindT3)} }

// T3Phi returns the per-row, per-channel closure-phase column.
func (d *OIT3Data) T3Phi() [][]float64 { return d.channel }
