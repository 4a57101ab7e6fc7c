// internal/runner/tables.go
package runner

import (
	"fmt"
	"path/filepath"

	"genemap-core/alias"
	"genemap-core/mapper"
	"genemap-core/ortholog"
	"genemap/internal/config"
)

// StringTables is the production TableLoader: it reads STRING alias files
// from dir, named per cfg.AliasFile. Direct groups get the prefix-filtered
// alias table; ortholog groups get a table inferred from the target
// species' aliases. An empty inferred table means the configured prefixes
// do not occur in the alias file, so it is treated as a group-level error.
func StringTables(dir string, cfg config.Config) TableLoader {
	return func(g *config.Group) (mapper.Lookup, error) {
		path := filepath.Join(dir, cfg.AliasFile(g.TableTaxID()))
		if !g.Ortholog() {
			return alias.LoadFile(path, g.Prefix)
		}
		target, err := alias.LoadFile(path, g.TargetPrefix)
		if err != nil {
			return nil, err
		}
		inferred := ortholog.Infer(target, g.SourcePrefix, g.TargetPrefix)
		if inferred.Len() == 0 {
			return nil, fmt.Errorf("no %s_* orthologs inferred from %s", g.SourcePrefix, path)
		}
		return inferred, nil
	}
}
