// SPDX-License-Identifier: MIT

package numeric

import "github.com/cockroachdb/apd/v3"

// Format renders x in its shortest exact form: trailing zeros that
// rounding left in the coefficient are dropped, so 0.2500…0 prints as 0.25
// and 2.000…0 as 2. Integral values never switch to exponent notation.
// The value itself is unchanged.
func Format(x *apd.Decimal) string {
	if x == nil {
		return "<nil>"
	}
	r, _ := new(apd.Decimal).Reduce(x)
	if r.Exponent > 0 {
		return r.Text('f')
	}

	return r.String()
}
