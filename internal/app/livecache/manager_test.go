package livecache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/livecache"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// fakeSource is an in-memory Source. Tests mutate its data then call notify
// to simulate a change event.
type fakeSource struct {
	mu          sync.Mutex
	ideas       []models.Idea
	comments    []models.Comment
	courses     []models.Course
	quotes      []models.Quote
	suggestions []models.Suggestion
	users       []models.User
	bookmarks   []models.Bookmark

	watchErr error
	chans    map[string]chan struct{}
}

func newFakeSource() *fakeSource {
	return &fakeSource{chans: make(map[string]chan struct{})}
}

func (f *fakeSource) Watch(_ context.Context, coll string) (<-chan struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	ch := make(chan struct{}, 1)
	f.chans[coll] = ch
	return ch, nil
}

func (f *fakeSource) notify(coll string) {
	f.mu.Lock()
	ch := f.chans[coll]
	f.mu.Unlock()
	if ch != nil {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (f *fakeSource) Ideas(_ context.Context, limit int64) ([]models.Idea, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := append([]models.Idea(nil), f.ideas...)
	if int64(len(items)) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeSource) Comments(_ context.Context, limit int64) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := append([]models.Comment(nil), f.comments...)
	if int64(len(items)) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeSource) Courses(_ context.Context) ([]models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Course(nil), f.courses...), nil
}

func (f *fakeSource) Quotes(_ context.Context) ([]models.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Quote(nil), f.quotes...), nil
}

func (f *fakeSource) Suggestions(_ context.Context) ([]models.Suggestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Suggestion(nil), f.suggestions...), nil
}

func (f *fakeSource) Users(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeSource) Bookmarks(_ context.Context, userID string) ([]models.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []models.Bookmark
	for _, b := range f.bookmarks {
		if b.UserID == userID {
			items = append(items, b)
		}
	}
	return items, nil
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestStart_TakesInitialSnapshots(t *testing.T) {
	src := newFakeSource()
	src.ideas = []models.Idea{{ID: "i1", Title: "الأولى"}}
	src.quotes = []models.Quote{{ID: "q1"}, {ID: "q2"}}

	m := livecache.NewManager(src, 500, zap.NewNop())
	defer m.Stop()
	m.Start(context.Background(), "uid-1")

	waitFor(t, func() bool { return !m.Loading() })

	if got := m.Ideas(); len(got) != 1 || got[0].ID != "i1" {
		t.Errorf("ideas snapshot = %+v", got)
	}
	if got := m.Quotes(); len(got) != 2 {
		t.Errorf("quotes snapshot = %+v", got)
	}
}

func TestChangeSignal_ReplacesSnapshotWholesale(t *testing.T) {
	src := newFakeSource()
	src.ideas = []models.Idea{{ID: "i1"}}

	m := livecache.NewManager(src, 500, zap.NewNop())
	defer m.Stop()
	m.Start(context.Background(), "uid-1")
	waitFor(t, func() bool { return !m.Loading() })

	before := m.Ideas()

	src.mu.Lock()
	src.ideas = []models.Idea{{ID: "i2"}, {ID: "i1"}}
	src.mu.Unlock()

	// The stream may not be armed yet; keep signaling until the refresh lands.
	waitFor(t, func() bool {
		src.notify(livecache.CollIdeas)
		return len(m.Ideas()) == 2
	})

	// The old snapshot slice is untouched; replacement, not mutation.
	if len(before) != 1 || before[0].ID != "i1" {
		t.Errorf("previous snapshot mutated: %+v", before)
	}
}

func TestSnapshotLimit_BoundsIdeasAndComments(t *testing.T) {
	src := newFakeSource()
	for i := 0; i < 10; i++ {
		src.ideas = append(src.ideas, models.Idea{ID: string(rune('a' + i))})
	}

	m := livecache.NewManager(src, 3, zap.NewNop())
	defer m.Stop()
	m.Start(context.Background(), "uid-1")
	waitFor(t, func() bool { return !m.Loading() })

	if got := len(m.Ideas()); got != 3 {
		t.Errorf("ideas snapshot length = %d, want 3", got)
	}
}

func TestBookmarks_ScopedToActor(t *testing.T) {
	src := newFakeSource()
	src.bookmarks = []models.Bookmark{
		{ID: "b1", UserID: "uid-1", CourseID: "c1"},
		{ID: "b2", UserID: "uid-2", CourseID: "c1"},
		{ID: "b3", UserID: "uid-1", CourseID: "c2"},
	}

	m := livecache.NewManager(src, 500, zap.NewNop())
	defer m.Stop()
	m.Start(context.Background(), "uid-1")
	waitFor(t, func() bool { return !m.Loading() })

	got := m.Bookmarks()
	if len(got) != 2 {
		t.Fatalf("bookmarks = %+v, want 2 for uid-1", got)
	}
	for _, b := range got {
		if b.UserID != "uid-1" {
			t.Errorf("foreign bookmark leaked: %+v", b)
		}
	}
}

func TestStop_ClearsAllCaches(t *testing.T) {
	src := newFakeSource()
	src.ideas = []models.Idea{{ID: "i1"}}
	src.users = []models.User{{ID: "u1"}}

	m := livecache.NewManager(src, 500, zap.NewNop())
	m.Start(context.Background(), "uid-1")
	waitFor(t, func() bool { return !m.Loading() })

	m.Stop()

	if got := m.Ideas(); got != nil {
		t.Errorf("ideas after Stop = %+v, want nil", got)
	}
	if got := m.Users(); got != nil {
		t.Errorf("users after Stop = %+v, want nil", got)
	}
	if m.ActorID() != "" {
		t.Errorf("actor id after Stop = %q, want empty", m.ActorID())
	}
}

func TestDeadStream_KeepsLastSnapshot(t *testing.T) {
	src := newFakeSource()
	src.ideas = []models.Idea{{ID: "i1"}}
	src.watchErr = errors.New("change streams need a replica set")

	m := livecache.NewManager(src, 500, zap.NewNop())
	defer m.Stop()
	m.Start(context.Background(), "uid-1")
	waitFor(t, func() bool { return !m.Loading() })

	// Streams never opened, but the initial snapshot stays visible.
	if got := m.Ideas(); len(got) != 1 {
		t.Errorf("ideas = %+v, want the initial snapshot", got)
	}
}

func TestRestart_SwitchesActor(t *testing.T) {
	src := newFakeSource()
	src.bookmarks = []models.Bookmark{
		{ID: "b1", UserID: "uid-1", CourseID: "c1"},
		{ID: "b2", UserID: "uid-2", CourseID: "c1"},
	}

	m := livecache.NewManager(src, 500, zap.NewNop())
	defer m.Stop()

	m.Start(context.Background(), "uid-1")
	waitFor(t, func() bool { return !m.Loading() })
	if got := m.Bookmarks(); len(got) != 1 || got[0].ID != "b1" {
		t.Fatalf("uid-1 bookmarks = %+v", got)
	}

	m.Start(context.Background(), "uid-2")
	waitFor(t, func() bool { return !m.Loading() })
	got := m.Bookmarks()
	if len(got) != 1 || got[0].ID != "b2" {
		t.Fatalf("uid-2 bookmarks = %+v", got)
	}
	if m.ActorID() != "uid-2" {
		t.Errorf("actor id = %q, want uid-2", m.ActorID())
	}
}
