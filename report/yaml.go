// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simpleiter/dominance"
	"github.com/katalvlaran/simpleiter/numeric"
	"github.com/katalvlaran/simpleiter/solver"
)

// Document is the machine-readable form of a run. Decimals are kept as
// strings in numeric.Format form so no significant digit is lost.
type Document struct {
	Order      []int    `yaml:"order,omitempty"`
	Norm       string   `yaml:"norm"`
	Iterations int      `yaml:"iterations"`
	Accuracy   string   `yaml:"accuracy"`
	Solution   []string `yaml:"solution"`
	History    []string `yaml:"history"`
	LastDelta  []string `yaml:"last_delta,omitempty"`
}

// NewDocument flattens res; perm is the row order applied before solving
// (nil when unknown).
func NewDocument(res *solver.Result, perm dominance.Permutation) Document {
	doc := Document{
		Norm:       numeric.Format(res.Norm),
		Iterations: res.Iterations,
		Accuracy:   numeric.Format(res.LastError()),
		Solution:   res.Solution.Strings(),
		History:    make([]string, len(res.History)),
	}
	if perm != nil {
		doc.Order = []int(perm)
	}
	for i, e := range res.History {
		doc.History[i] = numeric.Format(e)
	}
	if res.LastDelta != nil {
		doc.LastDelta = res.LastDelta.Strings()
	}

	return doc
}

// YAML writes NewDocument(res, perm) as a YAML document with two-space indent.
func YAML(w io.Writer, res *solver.Result, perm dominance.Permutation) error {
	if res == nil {
		return fmt.Errorf("report: YAML: nil result")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res, perm)); err != nil {
		return fmt.Errorf("report: YAML: %w", err)
	}

	return enc.Close()
}
