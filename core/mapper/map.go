// core/mapper/map.go
package mapper

import "strings"

// Lookup is the read side of a gene→protein table.
type Lookup interface {
	Get(key string) (string, bool)
}

// Counts reports how many gene IDs in a batch were non-empty and how many
// of those resolved to a protein ID.
type Counts struct {
	Attempted int
	Mapped    int
}

// Map resolves each gene ID through table after trimming and upper-casing.
// The result has the same length and order as genes; unmapped or empty
// inputs yield "". Misses are a metric, never an error.
func Map(table Lookup, genes []string) ([]string, Counts) {
	out := make([]string, len(genes))
	var c Counts
	for i, g := range genes {
		g = strings.ToUpper(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		c.Attempted++
		if id, ok := table.Get(g); ok {
			out[i] = id
			c.Mapped++
		}
	}
	return out, c
}
