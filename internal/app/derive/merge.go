package derive

import (
	"sort"
	"strings"
	"time"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Accessors supplies the field getters MergeAndFilter needs for a given
// entity type. Category may be nil for types without one; Search may be nil
// to disable text matching.
type Accessors[T any] struct {
	ID        func(T) string
	CreatedAt func(T) time.Time
	Deleted   func(T) bool
	Category  func(T) string
	Search    func(T) []string
}

// Query holds the active listing filters.
type Query struct {
	Category string // CategoryAll or "" means no category filter
	Search   string // case-insensitive substring, OR across search fields
}

// MergeAndFilter produces the ordered listing for a screen:
//
//  1. seed items whose id already exists in the live list are suppressed
//     (a promoted seed item lives on in the live collection under its own
//     id, so the seed copy must not duplicate it),
//  2. live and remaining seed items are concatenated,
//  3. soft-deleted items are dropped,
//  4. the result is stably sorted by creation time descending,
//  5. the category filter is applied when active,
//  6. the search term keeps items whose search fields contain it,
//     case-insensitively.
//
// The output never contains the same id twice and is ready for windowing.
func MergeAndFilter[T any](live, seed []T, acc Accessors[T], q Query) []T {
	liveIDs := make(map[string]struct{}, len(live))
	for _, item := range live {
		liveIDs[acc.ID(item)] = struct{}{}
	}

	all := make([]T, 0, len(live)+len(seed))
	all = append(all, live...)
	for _, item := range seed {
		if _, promoted := liveIDs[acc.ID(item)]; !promoted {
			all = append(all, item)
		}
	}

	kept := all[:0]
	for _, item := range all {
		if !acc.Deleted(item) {
			kept = append(kept, item)
		}
	}
	all = kept

	sort.SliceStable(all, func(i, j int) bool {
		return acc.CreatedAt(all[i]).After(acc.CreatedAt(all[j]))
	})

	if acc.Category != nil && q.Category != "" && q.Category != CategoryAll {
		kept = all[:0]
		for _, item := range all {
			if acc.Category(item) == q.Category {
				kept = append(kept, item)
			}
		}
		all = kept
	}

	if acc.Search != nil {
		if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
			kept = all[:0]
			for _, item := range all {
				for _, field := range acc.Search(item) {
					if strings.Contains(strings.ToLower(field), term) {
						kept = append(kept, item)
						break
					}
				}
			}
			all = kept
		}
	}

	return all
}
