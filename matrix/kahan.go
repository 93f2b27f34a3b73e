// SPDX-License-Identifier: MIT

package matrix

// Kahan is a compensated running sum. The zero value is an empty sum.
//
// Each term is folded in as
//
//	y = term - c
//	t = sum + y
//	c = (t - sum) - y
//	sum = t
//
// which keeps the accumulated rounding error bounded by a small constant
// independent of the number of terms, where naive accumulation grows with it.
// Every dot product in this package accumulates through Kahan.
type Kahan struct {
	sum float64 // running sum
	c   float64 // running compensation (lost low-order bits)
}

// Add folds term into the running sum.
func (k *Kahan) Add(term float64) {
	y := term - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Sum returns the compensated sum of all terms added so far.
func (k *Kahan) Sum() float64 { return k.sum }

// KahanSum returns the compensated sum of terms, accumulated left to right.
func KahanSum(terms ...float64) float64 {
	var k Kahan
	for _, v := range terms {
		k.Add(v)
	}

	return k.Sum()
}

// dotKahan returns Σ_k a[i,k]*b[k,j] for k = 0..a.c-1 in increasing k,
// accumulated with Kahan. It is the single per-cell kernel shared by the
// sequential and parallel multiplies, which is what makes them bit-identical.
// Caller guarantees a.c == b.r and valid (i, j).
func dotKahan(a, b *Dense, i, j int) float64 {
	var acc Kahan
	rowA := a.data[i*a.c : (i+1)*a.c]
	for k, av := range rowA {
		// explicit conversion forces the product to be rounded, forbidding FMA fusion
		acc.Add(float64(av * b.data[k*b.c+j]))
	}

	return acc.Sum()
}
