// Package derive contains the view-derivation layer: the pure logic that
// merges live collection snapshots with the bundled seed dataset, filters and
// windows them for each screen, and plans mutations (like, bookmark, comment,
// suggestion transitions) as explicit write commands.
//
// Everything here is deterministic over its inputs. Handlers own the I/O.
package derive

import "strings"

// IDSet is the canonical in-memory representation of a liking-id set.
//
// The stored shape differs per collection: ideas persist a comma-delimited
// string, comments and courses persist a list. Both are normalized into an
// IDSet at the read boundary and serialized back to the original shape only
// at the write boundary. Insertion order is preserved so round-trips do not
// reshuffle the stored value.
type IDSet struct {
	ids []string
}

// ParseLikedByString builds an IDSet from the comma-delimited idea shape.
// Empty segments (from a leading/trailing comma or an empty string) are
// dropped.
func ParseLikedByString(s string) IDSet {
	var set IDSet
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set.Add(id)
		}
	}
	return set
}

// ParseLikedByList builds an IDSet from the list shape used by comments and
// courses.
func ParseLikedByList(ids []string) IDSet {
	var set IDSet
	for _, id := range ids {
		if id != "" {
			set.Add(id)
		}
	}
	return set
}

// Has reports membership.
func (s IDSet) Has(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id if absent.
func (s *IDSet) Add(id string) {
	if !s.Has(id) {
		s.ids = append(s.ids, id)
	}
}

// Remove deletes id if present, preserving the order of the rest.
func (s *IDSet) Remove(id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

// Len returns the set cardinality.
func (s IDSet) Len() int { return len(s.ids) }

// List returns the members as a fresh slice, never nil, in insertion order.
func (s IDSet) List() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Delimited serializes back to the comma-delimited idea shape.
func (s IDSet) Delimited() string { return strings.Join(s.ids, ",") }
