package types

// Target is a logical astronomical target, deduplicated across input
// files by identity (pointer equality) once a collection is built. Its
// fields beyond Name are informative only; the Merger never inspects
// them.
type Target struct {
	Name string
	RA   float64
	Dec  float64
}

// TargetManager resolves target names to a single shared *Target across
// an OIFitsCollection, giving cross-file targets pointer identity.
// Deduplication happens once, at collection-build time, so later
// identity comparisons (map keys, ==) are cheap and correct.
type TargetManager struct {
	byName map[string]*Target
}

// NewTargetManager returns an empty target registry.
func NewTargetManager() *TargetManager {
	return &TargetManager{byName: make(map[string]*Target)}
}

// Resolve returns the shared *Target for name, creating and registering
// one on first use.
func (tm *TargetManager) Resolve(name string, ra, dec float64) *Target {
	if t, ok := tm.byName[name]; ok {
		return t
	}
	t := &Target{Name: name, RA: ra, Dec: dec}
	tm.byName[name] = t
	return t
}

// OITargetRow binds a compact local id to a shared Target.
type OITargetRow struct {
	ID     int16
	Target *Target
}

// OITarget is the OI_TARGET metadata table: a per-file mapping from
// local target id to Target. Two OITarget instances are always distinct
// map keys under identity comparison, even if their contents coincide.
type OITarget struct {
	Rows []OITargetRow
}

// NewOITarget builds an OI_TARGET table sized for n rows.
func NewOITarget(n int) *OITarget {
	return &OITarget{Rows: make([]OITargetRow, n)}
}

// SetTarget writes row i as (id, target).
func (t *OITarget) SetTarget(i int, id int16, target *Target) {
	t.Rows[i] = OITargetRow{ID: id, Target: target}
}

// TargetIDs returns the set of local ids in this table that resolve to
// target, or nil if target has no rows here. tm is accepted for callers
// that resolve targets lazily; identity of Target values already came
// from tm at collection-build time, so no further lookup is needed here.
func (t *OITarget) TargetIDs(tm *TargetManager, target *Target) map[int16]struct{} {
	_ = tm
	var ids map[int16]struct{}
	for _, row := range t.Rows {
		if row.Target == target {
			if ids == nil {
				ids = make(map[int16]struct{})
			}
			ids[row.ID] = struct{}{}
		}
	}
	return ids
}

// Clone deep-copies the table's row slice, leaving Target pointers
// shared (Targets are immutable once created).
func (t *OITarget) Clone() *OITarget {
	rows := make([]OITargetRow, len(t.Rows))
	copy(rows, t.Rows)
	return &OITarget{Rows: rows}
}
