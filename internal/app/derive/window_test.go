package derive

import "testing"

func TestWindow_ResetsWhenFiltersChange(t *testing.T) {
	w := NewWindow(20)
	w.Sync("all", "")
	w.More()
	w.More()
	if got := w.Visible(); got != 60 {
		t.Fatalf("after two More: got %d, want 60", got)
	}

	w.Sync("all", "quantum")
	if got := w.Visible(); got != 20 {
		t.Errorf("search change: got %d, want reset to 20", got)
	}

	w.More()
	w.Sync("علوم", "quantum")
	if got := w.Visible(); got != 20 {
		t.Errorf("category change: got %d, want reset to 20", got)
	}
}

func TestWindow_SyncWithSameFiltersKeepsCursor(t *testing.T) {
	w := NewWindow(20)
	w.Sync("all", "x")
	w.More()
	w.Sync("all", "x")
	if got := w.Visible(); got != 40 {
		t.Errorf("unchanged filters: got %d, want 40", got)
	}
}

func TestWindow_ShowMoreCapsAtListLength(t *testing.T) {
	list := make([]int, 45)
	w := NewWindow(20)

	if got := len(Slice(list, w.Visible())); got != 20 {
		t.Errorf("initial: got %d visible, want 20", got)
	}
	w.More()
	if got := len(Slice(list, w.Visible())); got != 40 {
		t.Errorf("after one More: got %d visible, want 40", got)
	}
	w.More()
	if got := len(Slice(list, w.Visible())); got != 45 {
		t.Errorf("after two More: got %d visible, want capped at 45", got)
	}
	w.More()
	if got := len(Slice(list, w.Visible())); got != 45 {
		t.Errorf("further More: got %d visible, want still 45", got)
	}
}

func TestSlice_IsAlwaysAPrefix(t *testing.T) {
	list := []string{"a", "b", "c"}
	out := Slice(list, 2)
	if len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("got %v, want prefix [a b]", out)
	}
	if got := Slice(list, -1); len(got) != 0 {
		t.Errorf("negative visible: got %v, want empty", got)
	}
}

func TestNewWindow_DefaultsPageSize(t *testing.T) {
	w := NewWindow(0)
	if got := w.Visible(); got != DefaultPageSize {
		t.Errorf("got %d, want %d", got, DefaultPageSize)
	}
}
