package ivl

import "strconv" // minimal formatting helper, mirrors the teacher's own use of fmt.Sprintf for bound text (vrp.go's Interval.String)

// trimFloat formats a finite bound with the shortest round-trippable
// representation, matching the teacher's texture of human-readable interval
// endpoints in debug output (vrp.go's Interval.String/SymbolicIntersection.String).
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
