// core/alias/load.go
package alias

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrSourceNotFound marks an alias source that could not be opened.
var ErrSourceNotFound = errors.New("alias source not found")

// Record is one line of a STRING alias file: protein ID, then one alias.
type Record struct {
	ProteinID string
	Alias     string
}

// ParseLine splits a raw alias line on tabs. Lines with fewer than two
// fields, or with an empty field after trimming, are rejected (ok=false);
// extra columns are ignored.
func ParseLine(line string) (Record, bool) {
	f := strings.Split(line, "\t")
	if len(f) < 2 {
		return Record{}, false
	}
	r := Record{
		ProteinID: strings.TrimSpace(f[0]),
		Alias:     strings.TrimSpace(f[1]),
	}
	if r.ProteinID == "" || r.Alias == "" {
		return Record{}, false
	}
	return r, true
}

// Load builds a Table from raw alias lines, keeping only aliases that start
// with prefix after trimming and upper-casing. Malformed lines are skipped.
// Duplicate aliases keep the first occurrence. A STRING header line never
// matches a gene prefix, so no header handling is needed.
func Load(r io.Reader, prefix string) (*Table, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	t := NewTable()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		rec, ok := ParseLine(strings.TrimSpace(sc.Text()))
		if !ok {
			continue
		}
		key := strings.ToUpper(rec.Alias)
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		t.Add(key, rec.ProteinID)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile opens path and delegates to Load. Open failures wrap
// ErrSourceNotFound so callers can classify them with errors.Is.
func LoadFile(path, prefix string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}
	defer func() { _ = fh.Close() }()
	t, err := Load(fh, prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return t, nil
}
