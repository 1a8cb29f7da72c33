// SPDX-License-Identifier: MIT

// Package input acquires a linear system from a line-oriented text stream:
// the system size, the convergence accuracy and the N×(N+1) augmented matrix.
//
// Format (one item per line, tokens separated by any whitespace):
//
//	3                  ← size, 1..MaxSize
//	1e-6               ← accuracy, a positive decimal
//	10  1  1  12       ← N lines of N+1 decimals (coefficients, then RHS)
//	 2 10  1  13
//	 2  2 10  14
//
// Values are parsed in the 50-digit half-up context unless WithContext says
// otherwise. Matrix errors are *LineError values naming the 1-based matrix
// row and column. Interactive callers re-prompt with Retry; file sessions
// stop at the first error.
package input
