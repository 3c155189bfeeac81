package derive

// DefaultPageSize is the initial visible count for windowed listings.
const DefaultPageSize = 20

// Window is the visible-count cursor for a filtered listing. The visible
// slice is always a prefix of the filtered list; the cursor only grows,
// except that changing the active filters resets it to one page.
type Window struct {
	page      int
	visible   int
	filterKey string
}

// NewWindow returns a window showing one page. A non-positive pageSize falls
// back to DefaultPageSize.
func NewWindow(pageSize int) *Window {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Window{page: pageSize, visible: pageSize}
}

// Sync resets the cursor to one page if the active category or search term
// changed since the last call. It never grows the cursor.
func (w *Window) Sync(category, search string) {
	key := category + "\x00" + search
	if key != w.filterKey {
		w.filterKey = key
		w.visible = w.page
	}
}

// More grows the cursor by one page. It never shrinks.
func (w *Window) More() { w.visible += w.page }

// Visible returns the current cursor value.
func (w *Window) Visible() int { return w.visible }

// Slice returns the visible prefix of list, capped at its length.
func Slice[T any](list []T, visible int) []T {
	if visible < 0 {
		visible = 0
	}
	if visible > len(list) {
		visible = len(list)
	}
	return list[:visible]
}
