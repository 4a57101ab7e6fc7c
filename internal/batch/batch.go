// Package batch reads tabular input files (xlsx or tsv) into ordered
// row batches for mapping.
package batch

import (
	"strings"
)

// Batch is one input file: a header row plus data rows. Rows may be ragged;
// Genes pads short rows with empty values.
type Batch struct {
	Name   string
	Header []string
	Rows   [][]string
}

// GeneColumn finds the column whose header is "gene", matched
// case-insensitively after trimming whitespace.
func (b *Batch) GeneColumn() (int, bool) {
	for i, h := range b.Header {
		if strings.EqualFold(strings.TrimSpace(h), "gene") {
			return i, true
		}
	}
	return 0, false
}

// Genes returns column col of every row, in row order.
func (b *Batch) Genes(col int) []string {
	out := make([]string, len(b.Rows))
	for i, row := range b.Rows {
		if col < len(row) {
			out[i] = row[col]
		}
	}
	return out
}
