// SPDX-License-Identifier: MIT

// Package report renders solver results.
//
// Text writes the human-readable report (norm, iteration count, achieved
// accuracy, unknowns, per-round error history and the last step Δx) with
// lipgloss-styled headings; WithPlain drops the styling. YAML writes the
// same data as a YAML document for scripts.
package report
