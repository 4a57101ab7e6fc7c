// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"strings"

	"genemap/internal/config"
	"genemap/internal/runner"
)

const rule = 70

// Summary prints per-group and grand totals in config group order.
func Summary(w io.Writer, groups []config.Group, st *runner.Stats) {
	if len(st.Files) == 0 {
		fmt.Fprintln(w, "No input files were processed.")
		return
	}

	byGroup := make(map[string][]runner.FileResult)
	for _, f := range st.Files {
		byGroup[f.Group] = append(byGroup[f.Group], f)
	}

	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintln(w, "SUMMARY BY STUDY")
	fmt.Fprintln(w, strings.Repeat("=", rule))

	var totalFiles, totalAttempted, totalMapped int
	for _, g := range groups {
		files := byGroup[g.Name]
		if len(files) == 0 {
			continue
		}
		var attempted, mapped int
		for _, f := range files {
			attempted += f.Attempted
			mapped += f.Mapped
		}
		fmt.Fprintf(w, "\n%s:\n", g.Name)
		fmt.Fprintf(w, "  Files processed: %d\n", len(files))
		fmt.Fprintf(w, "  Genes mapped: %d out of %d (%s)\n", mapped, attempted, pct(mapped, attempted))
		totalFiles += len(files)
		totalAttempted += attempted
		totalMapped += mapped
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", rule))
	fmt.Fprintln(w, "TOTAL:")
	fmt.Fprintf(w, "  Files processed: %d\n", totalFiles)
	fmt.Fprintf(w, "  Genes mapped: %d out of %d (%s)\n", totalMapped, totalAttempted, pct(totalMapped, totalAttempted))
	fmt.Fprintln(w, strings.Repeat("=", rule))
}

func pct(part, whole int) string {
	if whole == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(whole)*100)
}
