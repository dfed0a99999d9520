package model

// UnspecifiedSize buckets records whose note carries no recognizable size token.
const UnspecifiedSize = "unspecified"

// SizeSummary maps a size label to the total quantity ordered for that size
// across one batch. Derived, recomputed fresh on every normalization run.
type SizeSummary map[string]int

// Total returns the summed quantity across all size buckets.
func (s SizeSummary) Total() int {
	var total int
	for _, qty := range s {
		total += qty
	}
	return total
}
