// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// ErrLengthMismatch is returned by vector kernels whose operands differ in length.
var ErrLengthMismatch = fmt.Errorf("numeric: vector length mismatch")

// Vector is a dense decimal vector. Elements are owned by the vector; kernels
// never alias operand elements into results.
type Vector []*apd.Decimal

// NewVector allocates a zero vector of length n.
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = new(apd.Decimal)
	}

	return v
}

// Clone returns a deep copy of v.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = new(apd.Decimal).Set(x)
	}

	return out
}

// Strings renders every element with Format.
func (v Vector) Strings() []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = Format(x)
	}

	return out
}

// String implements fmt.Stringer: "[a, b, c]".
func (v Vector) String() string {
	return "[" + strings.Join(v.Strings(), ", ") + "]"
}

// AddVec returns a + b element-wise, each sum rounded in c.
func (c Context) AddVec(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("AddVec: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	out := make(Vector, len(a))
	var err error
	for i := range a {
		if out[i], err = c.Add(a[i], b[i]); err != nil {
			return nil, fmt.Errorf("AddVec[%d]: %w", i, err)
		}
	}

	return out, nil
}

// SubVec returns a - b element-wise, each difference rounded in c.
func (c Context) SubVec(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("SubVec: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	out := make(Vector, len(a))
	var err error
	for i := range a {
		if out[i], err = c.Sub(a[i], b[i]); err != nil {
			return nil, fmt.Errorf("SubVec[%d]: %w", i, err)
		}
	}

	return out, nil
}

// MaxAbsDiff returns max_i |a[i] - b[i]| computed in c (0 for empty vectors).
func (c Context) MaxAbsDiff(a, b Vector) (*apd.Decimal, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("MaxAbsDiff: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	maxDiff := new(apd.Decimal)
	for i := range a {
		diff, err := c.Sub(a[i], b[i])
		if err != nil {
			return nil, fmt.Errorf("MaxAbsDiff[%d]: %w", i, err)
		}
		diff.Abs(diff) // |x| is exact
		if diff.Cmp(maxDiff) > 0 {
			maxDiff = diff
		}
	}

	return maxDiff, nil
}
