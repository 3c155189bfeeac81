package derive

import "testing"

func TestParseLikedByString(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"u1", []string{"u1"}},
		{"u1,u2,u3", []string{"u1", "u2", "u3"}},
		{",u1,", []string{"u1"}},          // stray delimiters from legacy writes
		{"u1,u1,u2", []string{"u1", "u2"}}, // duplicates collapse
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			set := ParseLikedByString(tt.input)
			got := set.List()
			if len(got) != len(tt.want) {
				t.Fatalf("ParseLikedByString(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseLikedByString(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIDSet_DelimitedRoundTrip(t *testing.T) {
	set := ParseLikedByString("a,b,c")
	if got := set.Delimited(); got != "a,b,c" {
		t.Errorf("Delimited: got %q, want %q", got, "a,b,c")
	}
}

func TestIDSet_ListRoundTrip(t *testing.T) {
	set := ParseLikedByList([]string{"a", "b"})
	got := set.List()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("List: got %v, want [a b]", got)
	}

	// The returned slice is a copy.
	got[0] = "mutated"
	if set.List()[0] != "a" {
		t.Error("List must return a fresh slice")
	}
}

func TestIDSet_RemovePreservesOrder(t *testing.T) {
	set := ParseLikedByString("a,b,c")
	set.Remove("b")
	if got := set.Delimited(); got != "a,c" {
		t.Errorf("after Remove: got %q, want %q", got, "a,c")
	}
	set.Remove("missing") // no-op
	if got := set.Len(); got != 2 {
		t.Errorf("Len after removing missing id: got %d, want 2", got)
	}
}

func TestIDSet_AddIsIdempotent(t *testing.T) {
	var set IDSet
	set.Add("u1")
	set.Add("u1")
	if got := set.Len(); got != 1 {
		t.Errorf("Len: got %d, want 1", got)
	}
}
