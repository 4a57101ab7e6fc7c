// Package ortholog derives a cross-species lookup table from matching
// numeric gene-ID suffixes. This is positional inference — FPSE_00123 is
// assumed to correspond to FGSG_00123 — not curated orthology.
package ortholog

import (
	"strings"

	"genemap-core/alias"
)

const sep = "_"

// Infer rewrites every TARGETPREFIX_<digits> key of target into
// SOURCEPREFIX_<digits>, keeping the protein ID. Keys that do not match the
// target prefix + separator + all-digit suffix shape are skipped. Suffixes
// are compared as strings, so FGSG_001 and FGSG_0001 yield distinct keys;
// should two target keys ever derive the same source key, the first in
// table order wins.
func Infer(target *alias.Table, sourcePrefix, targetPrefix string) *alias.Table {
	tp := strings.ToUpper(strings.TrimSpace(targetPrefix)) + sep
	sp := strings.ToUpper(strings.TrimSpace(sourcePrefix)) + sep
	out := alias.NewTable()
	for _, key := range target.Keys() {
		if !strings.HasPrefix(key, tp) {
			continue
		}
		suffix := key[len(tp):]
		if !allDigits(suffix) {
			continue
		}
		id, _ := target.Get(key)
		out.Add(sp+suffix, id)
	}
	return out
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
