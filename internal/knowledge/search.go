package knowledge

import "strings"

// Index answers substring queries over the lines of a Store.
type Index struct {
	store *Store
}

// NewIndex creates a search index over store.
func NewIndex(store *Store) *Index {
	return &Index{store: store}
}

// Search returns every line containing term, case-insensitively, in document
// order. An empty or whitespace-only term yields an empty, non-nil result.
func (idx *Index) Search(term string) []string {
	results := []string{}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || idx == nil || idx.store == nil {
		return results
	}

	for _, line := range idx.store.lines {
		if strings.Contains(strings.ToLower(line), term) {
			results = append(results, line)
		}
	}
	return results
}
