// core/seq/composition.go
package seq

// Counts holds per-base tallies. N is only filled when requested.
type Counts struct {
	A, C, G, T int
	N          int
}

// BaseCounts tallies A, C, G and T case-insensitively, and N when withN is
// set.
func BaseCounts(s string, withN bool) Counts {
	var c Counts
	for i := 0; i < len(s); i++ {
		switch s[i] | 0x20 {
		case 'a':
			c.A++
		case 'c':
			c.C++
		case 'g':
			c.G++
		case 't':
			c.T++
		case 'n':
			if withN {
				c.N++
			}
		}
	}
	return c
}

// GC returns (G+C)/(A+C+G+T+U). Ambiguous bases are ignored; 0 is returned
// when no A, C, G, T or U is present.
func GC(s string) float64 {
	var gc, all int
	for i := 0; i < len(s); i++ {
		switch s[i] | 0x20 {
		case 'c', 'g':
			gc++
			all++
		case 'a', 't', 'u':
			all++
		}
	}
	if all == 0 {
		return 0
	}
	return float64(gc) / float64(all)
}
