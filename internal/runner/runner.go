// Package runner orchestrates a mapping run: it routes each input file to
// the single configuration group whose pattern matches, loads each group's
// lookup table once, maps the file's gene column, and writes the result
// with an appended string_id column. File-level failures skip that file
// and the run continues.
package runner

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"genemap-core/mapper"
	"genemap/internal/batch"
	"genemap/internal/config"
	"genemap/internal/writers"
)

var (
	// ErrNoMatchingGroup marks a filename no group pattern claims.
	ErrNoMatchingGroup = errors.New("no group pattern matches")
	// ErrAmbiguousGroup marks a filename claimed by more than one group;
	// patterns must partition the input namespace.
	ErrAmbiguousGroup = errors.New("filename matches multiple groups")

	errNoGeneColumn = errors.New(`no "gene" column`)
)

// Provider supplies input batches by filename.
type Provider interface {
	List() ([]string, error)
	Load(name string) (*batch.Batch, error)
}

// Store creates output files.
type Store interface {
	Create(name string) (io.WriteCloser, error)
}

// TableLoader builds the lookup table for a group. Called at most once per
// group per run; results (and failures) are memoized by the Runner.
type TableLoader func(g *config.Group) (mapper.Lookup, error)

// FileResult is the outcome of one processed input file.
type FileResult struct {
	File      string
	Group     string
	Rows      int
	Attempted int
	Mapped    int
}

// Stats accumulates per-file results across a run. Aggregation is by
// summation, so it is independent of processing order.
type Stats struct {
	Files   []FileResult
	Skipped int
}

// Runner drives one mapping run over a set of input files.
type Runner struct {
	cfg    config.Config
	load   TableLoader
	logw   io.Writer
	quiet  bool
	tables map[string]mapper.Lookup
	errs   map[string]error
}

func New(cfg config.Config, load TableLoader, logw io.Writer, quiet bool) *Runner {
	return &Runner{
		cfg:    cfg,
		load:   load,
		logw:   logw,
		quiet:  quiet,
		tables: make(map[string]mapper.Lookup),
		errs:   make(map[string]error),
	}
}

// logf prints progress; suppressed by quiet.
func (r *Runner) logf(format string, args ...any) {
	if !r.quiet {
		fmt.Fprintf(r.logw, format+"\n", args...)
	}
}

// errorf prints skip and failure reasons; never suppressed.
func (r *Runner) errorf(format string, args ...any) {
	fmt.Fprintf(r.logw, format+"\n", args...)
}

// Run processes every file the provider lists. It fails only when the input
// listing itself fails, or when files were routed to groups but every single
// one lacked a gene column — a malformed-input-set condition rather than a
// per-file accident.
func (r *Runner) Run(in Provider, out Store) (*Stats, error) {
	files, err := in.List()
	if err != nil {
		return nil, err
	}
	st := &Stats{}
	matched, missingGene := 0, 0
	for _, name := range files {
		g, err := r.dispatch(name)
		if err != nil {
			r.errorf("skipping %s: %v", name, err)
			st.Skipped++
			continue
		}
		matched++
		tbl, err := r.table(g)
		if err != nil {
			r.errorf("skipping %s: group %s: %v", name, g.Name, err)
			st.Skipped++
			continue
		}
		res, err := r.processFile(in, out, g, tbl, name)
		if err != nil {
			if errors.Is(err, errNoGeneColumn) {
				missingGene++
			}
			r.errorf("skipping %s: %v", name, err)
			st.Skipped++
			continue
		}
		st.Files = append(st.Files, res)
	}
	if matched > 0 && len(st.Files) == 0 && missingGene == matched {
		return st, fmt.Errorf(`no input file has a "gene" column`)
	}
	return st, nil
}

// dispatch finds the single group claiming name.
func (r *Runner) dispatch(name string) (*config.Group, error) {
	var hit *config.Group
	var names []string
	for i := range r.cfg.Groups {
		g := &r.cfg.Groups[i]
		if g.Match(name) {
			hit = g
			names = append(names, g.Name)
		}
	}
	switch len(names) {
	case 0:
		return nil, ErrNoMatchingGroup
	case 1:
		return hit, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousGroup, strings.Join(names, ", "))
	}
}

// table returns the group's lookup table, loading it on first use. Load
// failures are memoized too, so a broken group reports once per file
// without retrying the load.
func (r *Runner) table(g *config.Group) (mapper.Lookup, error) {
	if t, ok := r.tables[g.Name]; ok {
		return t, nil
	}
	if err, ok := r.errs[g.Name]; ok {
		return nil, err
	}
	r.logf("loading lookup table for group %s", g.Name)
	t, err := r.load(g)
	if err != nil {
		r.errs[g.Name] = err
		return nil, err
	}
	r.logf("  %d gene IDs loaded", tableLen(t))
	r.tables[g.Name] = t
	return t, nil
}

func tableLen(t mapper.Lookup) int {
	if s, ok := t.(interface{ Len() int }); ok {
		return s.Len()
	}
	return -1
}

func (r *Runner) processFile(in Provider, out Store, g *config.Group, tbl mapper.Lookup, name string) (FileResult, error) {
	r.logf("processing %s (group %s)", name, g.Name)
	b, err := in.Load(name)
	if err != nil {
		return FileResult{}, err
	}
	col, ok := b.GeneColumn()
	if !ok {
		return FileResult{}, errNoGeneColumn
	}
	ids, counts := mapper.Map(tbl, b.Genes(col))

	wc, err := out.Create(OutputName(g, name))
	if err != nil {
		return FileResult{}, err
	}
	if err := writers.WriteMapped(wc, b, ids); err != nil {
		_ = wc.Close()
		return FileResult{}, err
	}
	if err := wc.Close(); err != nil {
		return FileResult{}, err
	}

	pct := 0.0
	if counts.Attempted > 0 {
		pct = float64(counts.Mapped) / float64(counts.Attempted) * 100
	}
	r.logf("  mapped %d of %d genes (%.1f%%)", counts.Mapped, counts.Attempted, pct)
	return FileResult{
		File:      name,
		Group:     g.Name,
		Rows:      len(b.Rows),
		Attempted: counts.Attempted,
		Mapped:    counts.Mapped,
	}, nil
}

// OutputName derives the output filename: mapped_<stem>.tsv for direct
// groups, mapped_ortholog_<stem>.tsv for ortholog groups.
func OutputName(g *config.Group, input string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	if g.Ortholog() {
		return "mapped_ortholog_" + stem + ".tsv"
	}
	return "mapped_" + stem + ".tsv"
}
