// internal/writers/tsv.go
package writers

import (
	"fmt"
	"io"
	"strings"

	"genemap/internal/batch"
)

// StringIDColumn is the column appended to every mapped output table.
const StringIDColumn = "string_id"

// WriteMapped emits b as TSV with one extra string_id column holding the
// mapped protein ID per row (empty when unmapped). Ragged rows are padded
// to the header width so every output line has the same column count.
func WriteMapped(w io.Writer, b *batch.Batch, ids []string) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\n", strings.Join(b.Header, "\t"), StringIDColumn); err != nil {
		return err
	}
	width := len(b.Header)
	for i, row := range b.Rows {
		cells := make([]string, width+1)
		copy(cells, row)
		id := ""
		if i < len(ids) {
			id = ids[i]
		}
		cells[width] = id
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}
