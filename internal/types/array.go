package types

// StationEntry is one row of an OI_ARRAY table: a station's compact
// index and display name.
type StationEntry struct {
	StaIndex int16
	StaName  string
}

// OIArray is the OI_ARRAY metadata table: telescope array geometry
// keyed by arrName, compared by identity when used as a merge-scope map
// key.
type OIArray struct {
	ArrName  string
	Stations []StationEntry
}

// NewOIArray builds a table from its station entries.
func NewOIArray(arrName string, stations []StationEntry) *OIArray {
	return &OIArray{ArrName: arrName, Stations: append([]StationEntry(nil), stations...)}
}

// Clone deep-copies the table for independent mutation.
func (a *OIArray) Clone() *OIArray {
	return &OIArray{ArrName: a.ArrName, Stations: append([]StationEntry(nil), a.Stations...)}
}

// stationName resolves a station index to its display name, or "?" if
// this array has no matching entry.
func (a *OIArray) stationName(idx int16) string {
	for _, s := range a.Stations {
		if s.StaIndex == idx {
			return s.StaName
		}
	}
	return "?"
}

// BaselineName renders a station-index tuple as a hyphen-joined baseline
// name, e.g. "A0-A1", used to match against selector baseline criteria.
func (a *OIArray) BaselineName(staIndex *StaIndex) string {
	names := make([]string, len(*staIndex))
	for i, idx := range *staIndex {
		names[i] = a.stationName(idx)
	}
	return joinHyphen(names)
}

func joinHyphen(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "-"
		}
		out += n
	}
	return out
}
