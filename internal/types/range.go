package types

// Range is an interval used for wavelength- and MJD-range selection
// criteria. Per DESIGN.md's Open Question decision, ranges are
// interpreted as half-open [Lo, Hi) throughout this module, giving
// wavelength and MJD range matching one consistent convention.
type Range struct {
	Lo float64
	Hi float64
}

// Contains reports whether v falls within the half-open interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v < r.Hi
}

// Intersects reports whether r and other overlap.
func (r Range) Intersects(other Range) bool {
	return r.Lo < other.Hi && other.Lo < r.Hi
}

// ContainsAny reports whether v falls within any of the given ranges.
func ContainsAny(ranges []Range, v float64) bool {
	for _, r := range ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// GetMatchingSelected returns the subset of selected ranges that
// intersect target.
func GetMatchingSelected(selected []Range, target Range) []Range {
	var out []Range
	for _, s := range selected {
		if s.Intersects(target) {
			out = append(out, s)
		}
	}
	return out
}

// GetMatchingSelectedSet returns the subset of selected ranges that
// intersect any range in targets, deduplicated in first-seen order.
func GetMatchingSelectedSet(selected []Range, targets []Range) []Range {
	seen := make(map[Range]bool, len(selected))
	var out []Range
	for _, t := range targets {
		for _, s := range selected {
			if s.Intersects(t) && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// MatchFullyOne reports whether a single range in matching fully covers
// target. Coverage that needs the union of several ranges is not
// detected and reports false.
func MatchFullyOne(matching []Range, target Range) bool {
	for _, m := range matching {
		if m.Lo <= target.Lo && m.Hi >= target.Hi {
			return true
		}
	}
	return false
}

// MatchFully reports whether every range in target is fully covered by
// some range in matching.
func MatchFully(target []Range, matching []Range) bool {
	for _, t := range target {
		if !MatchFullyOne(matching, t) {
			return false
		}
	}
	return true
}
