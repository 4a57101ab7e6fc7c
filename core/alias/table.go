// core/alias/table.go
package alias

// Table maps uppercased gene IDs to STRING protein IDs and remembers
// insertion order, which follows alias-file line order. Consumers treat a
// loaded Table as read-only.
type Table struct {
	keys []string
	ids  map[string]string
}

func NewTable() *Table {
	return &Table{ids: make(map[string]string)}
}

// Add inserts key→proteinID unless key is already present (first-seen wins).
// It reports whether the entry was inserted.
func (t *Table) Add(key, proteinID string) bool {
	if _, dup := t.ids[key]; dup {
		return false
	}
	t.ids[key] = proteinID
	t.keys = append(t.keys, key)
	return true
}

func (t *Table) Get(key string) (string, bool) {
	id, ok := t.ids[key]
	return id, ok
}

func (t *Table) Len() int { return len(t.keys) }

// Keys returns the keys in insertion order. The slice is shared; callers
// must not modify it.
func (t *Table) Keys() []string { return t.keys }
