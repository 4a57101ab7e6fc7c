// internal/batch/dir.go
package batch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Dir provides input batches from a directory of .xlsx and .tsv files.
type Dir struct {
	Path string
}

// List returns the batch filenames in the directory, sorted for a
// deterministic processing order.
func (d Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("input dir %s: %v", d.Path, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".xlsx", ".tsv":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load parses one input file. The first row is the header.
func (d Dir) Load(name string) (*Batch, error) {
	path := filepath.Join(d.Path, name)
	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		rows, err = readXLSX(path)
	} else {
		rows, err = readTSV(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	b := &Batch{Name: name}
	if len(rows) > 0 {
		b.Header = rows[0]
		b.Rows = rows[1:]
	}
	return b, nil
}

// readXLSX reads the first sheet of a workbook.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return f.GetRows(f.GetSheetName(0))
}

func readTSV(path string) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var rows [][]string
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
