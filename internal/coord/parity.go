package coord

// Helpers for coordinates built from a set of identical, independent values
// with a fixed whole-puzzle parity.

// CalcParityCoord encodes all but the last of vals in base `base`:
// c = v_0 + v_1*base + v_2*base^2 + ...
//
// The last value is excluded because the whole puzzle has a fixed parity,
// so it is determined by the others.
func CalcParityCoord(vals []int, base int) int64 {
	var c int64
	for i := len(vals) - 2; i >= 0; i-- {
		c = c*int64(base) + int64(vals[i])
	}
	return c
}

// ExtractParityCoord decodes a coordinate built with CalcParityCoord into n
// values, fixing the last one so the sum of all values modulo base equals
// parity.
func ExtractParityCoord(c int64, base, n, parity int) []int {
	vals := make([]int, n)
	sum := 0
	for i := 0; i < n-1; i++ {
		v := int(c % int64(base))
		c /= int64(base)
		vals[i] = v
		sum = (sum + v) % base
	}
	vals[n-1] = (parity + base - sum) % base
	return vals
}
