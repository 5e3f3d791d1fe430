// SPDX-License-Identifier: MIT

package scalar

// Lerp returns u·(1−t) + v·t.
//
// Contract: t ∈ [0, 1]; otherwise (zero, *InvalidParameterError).
// Endpoints are exact for finite inputs: Lerp(u, v, 0) == u, Lerp(u, v, 1) == v.
// Integer scalars truncate each scaled term toward zero.
func Lerp[K Scalar[K]](u, v K, t float64) (K, error) {
	if err := ValidateT(t); err != nil {
		return Zero[K](), err
	}

	return u.Scale(1 - t).Add(v.Scale(t)), nil
}
