// SPDX-License-Identifier: MIT

// Package dominance searches for a row reordering that makes an augmented
// system row-diagonally-dominant, and applies it.
//
// 🚀 Why?
//
//	Simple iteration x ← Cx + d converges when every row satisfies
//	|a[i][i]| > Σ_{j≠i} |a[i][j]|. Many systems fail the test as written but
//	pass after their equations are reordered.
//
// ✨ Algorithm (greedy, order-dependent, NOT exhaustive):
//
//	for each original row r = 0..N-1:
//	  for each still-unused column c:
//	    if every other coefficient of row r is exactly zero → take c, stop
//	    else if Σ_{k≠c}|a[r][k]| ≠ 0, ratio = |a[r][c]| / Σ
//	         keep c if ratio is STRICTLY greater than the best so far (>0)
//	  no candidate → ErrNoDominantPermutation
//	invert the row→slot assignment into a row ORDER
//
// Sums and ratios are evaluated in numeric.Search() (20 digits, HALF_UP);
// absolute values are exact. The search can miss a valid permutation that a
// bipartite matching would find; that policy is kept on purpose.
//
// ⚙️ Usage:
//
//	reordered, perm, err := dominance.FindDominantReordering(m)
//	if errors.Is(err, dominance.ErrNoDominantPermutation) { /* ask for another matrix */ }
//
// Complexity: O(N³) time, O(N) extra space.
package dominance
