package password

import "math"

// Entropy returns the Shannon entropy in bits of passwords generated for
// the plan: the sum over every random position of log2 of that position's
// alphabet size. Separators are fixed by the layout and contribute no
// entropy. For a uniform body of A characters this reduces to
// positions * log2(A).
func Entropy(p Profile, plan SegmentPlan) float64 {
	var perSegment float64
	for i := 0; i < plan.SegmentLength; i++ {
		perSegment += math.Log2(float64(p.CharsetAt(i).Len()))
	}
	return float64(plan.Segments) * perSegment
}
