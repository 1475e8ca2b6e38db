// Package wavefront partitions pairwise work across parallel lanes.
//
// All unordered index pairs (i,j), i<j of an n-item batch are
// enumerated along anti-diagonals of the index grid and dealt
// round-robin to lanes. A row-major deal would front-load one lane
// with cache-warm boundary indices and another with first-touch
// misses; the anti-diagonal order interleaves both kinds evenly.
package wavefront

// Pair is an unordered index pair with I < J.
type Pair struct {
	I, J int
}

// Partition assigns every unordered pair (i,j), i<j, 0 <= i,j < n to
// exactly one of lanes buckets. Enumeration walks anti-diagonals from
// the farthest diagonal (distance n-1) down to the nearest (distance
// 1); pair number k lands in lane k mod lanes.
//
// lanes below 1 is treated as 1. n below 2 yields empty lanes.
func Partition(n, lanes int) [][]Pair {
	if lanes < 1 {
		lanes = 1
	}

	out := make([][]Pair, lanes)
	if n < 2 {
		return out
	}

	// Spread the n*(n-1)/2 pairs up front so append never reallocates.
	per := (n*(n-1)/2 + lanes - 1) / lanes
	for i := range out {
		out[i] = make([]Pair, 0, per)
	}

	k := 0
	for d := n - 1; d > 0; d-- {
		for j := 0; j+d < n; j++ {
			out[k%lanes] = append(out[k%lanes], Pair{I: j, J: j + d})
			k++
		}
	}

	return out
}
