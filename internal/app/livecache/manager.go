// Package livecache keeps in-memory snapshots of the content collections,
// refreshed whenever the backing collections change. Every refresh replaces a
// snapshot wholesale; nothing downstream mutates the slices it reads.
package livecache

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Collection names watched by the manager.
const (
	CollIdeas       = "ideas"
	CollComments    = "comments"
	CollCourses     = "courses"
	CollQuotes      = "quotes"
	CollSuggestions = "suggestions"
	CollUsers       = "users"
	CollBookmarks   = "bookmarks"
)

// Source supplies snapshots and change notifications for the watched
// collections. The production source sits on MongoDB; tests inject a fake.
//
// Watch returns a channel that receives a signal for every relevant change
// in the named collection and closes when the stream dies. A dead or
// unavailable stream is not retried: the last snapshot stays visible.
type Source interface {
	Watch(ctx context.Context, coll string) (<-chan struct{}, error)

	Ideas(ctx context.Context, limit int64) ([]models.Idea, error)
	Comments(ctx context.Context, limit int64) ([]models.Comment, error)
	Courses(ctx context.Context) ([]models.Course, error)
	Quotes(ctx context.Context) ([]models.Quote, error)
	Suggestions(ctx context.Context) ([]models.Suggestion, error)
	Users(ctx context.Context) ([]models.User, error)
	Bookmarks(ctx context.Context, userID string) ([]models.Bookmark, error)
}

// Manager owns one subscription per collection for the current actor.
// Bookmarks are scoped to the actor; everything else is shared. With no
// actor the caches are empty.
type Manager struct {
	src   Source
	limit int64
	log   *zap.Logger

	mu      sync.RWMutex
	actorID string
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	pending atomic.Int32

	ideas       []models.Idea
	comments    []models.Comment
	courses     []models.Course
	quotes      []models.Quote
	suggestions []models.Suggestion
	users       []models.User
	bookmarks   []models.Bookmark
}

// NewManager builds an idle manager. limit bounds the ideas and comments
// snapshots (most recent first); the other collections load in full.
func NewManager(src Source, limit int64, logger *zap.Logger) *Manager {
	return &Manager{src: src, limit: limit, log: logger}
}

// Start arms all subscriptions for the given actor, replacing any previous
// actor's subscriptions. Each collection takes an initial snapshot and then
// re-queries on every change notification.
func (m *Manager) Start(ctx context.Context, actorID string) {
	m.Stop()

	ctx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	m.actorID = actorID
	m.cancel = cancel
	m.mu.Unlock()

	subs := []struct {
		coll    string
		refresh func(context.Context) error
	}{
		{CollIdeas, m.refreshIdeas},
		{CollComments, m.refreshComments},
		{CollCourses, m.refreshCourses},
		{CollQuotes, m.refreshQuotes},
		{CollSuggestions, m.refreshSuggestions},
		{CollUsers, m.refreshUsers},
		{CollBookmarks, func(c context.Context) error { return m.refreshBookmarks(c, actorID) }},
	}

	m.pending.Store(int32(len(subs)))
	for _, sub := range subs {
		m.wg.Add(1)
		go m.run(ctx, sub.coll, sub.refresh)
	}
}

// run takes the initial snapshot then re-queries on every change signal.
// A stream that cannot be opened, or that closes, ends the subscription
// with the last snapshot left in place.
func (m *Manager) run(ctx context.Context, coll string, refresh func(context.Context) error) {
	defer m.wg.Done()

	if err := refresh(ctx); err != nil {
		m.log.Warn("initial snapshot failed", zap.String("collection", coll), zap.Error(err))
	}
	m.pending.Add(-1)

	events, err := m.src.Watch(ctx, coll)
	if err != nil {
		m.log.Warn("change stream unavailable", zap.String("collection", coll), zap.Error(err))
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				m.log.Warn("change stream closed", zap.String("collection", coll))
				return
			}
			if err := refresh(ctx); err != nil {
				m.log.Warn("snapshot refresh failed", zap.String("collection", coll), zap.Error(err))
			}
		}
	}
}

// Stop tears down all subscriptions and clears every cache. Safe to call on
// an idle manager.
func (m *Manager) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()

	m.mu.Lock()
	m.actorID = ""
	m.ideas = nil
	m.comments = nil
	m.courses = nil
	m.quotes = nil
	m.suggestions = nil
	m.users = nil
	m.bookmarks = nil
	m.mu.Unlock()
	m.pending.Store(0)
}

// Loading reports whether any collection is still waiting on its initial
// snapshot.
func (m *Manager) Loading() bool { return m.pending.Load() > 0 }

// ActorID returns the actor the bookmark subscription is scoped to.
func (m *Manager) ActorID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.actorID
}

func (m *Manager) Ideas() []models.Idea {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ideas
}

func (m *Manager) Comments() []models.Comment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.comments
}

func (m *Manager) Courses() []models.Course {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.courses
}

func (m *Manager) Quotes() []models.Quote {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.quotes
}

func (m *Manager) Suggestions() []models.Suggestion {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.suggestions
}

func (m *Manager) Users() []models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users
}

func (m *Manager) Bookmarks() []models.Bookmark {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookmarks
}

// refresh helpers: query, then swap the slice under the lock.

func (m *Manager) refreshIdeas(ctx context.Context) error {
	items, err := m.src.Ideas(ctx, m.limit)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.ideas = items
	m.mu.Unlock()
	return nil
}

func (m *Manager) refreshComments(ctx context.Context) error {
	items, err := m.src.Comments(ctx, m.limit)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.comments = items
	m.mu.Unlock()
	return nil
}

func (m *Manager) refreshCourses(ctx context.Context) error {
	items, err := m.src.Courses(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.courses = items
	m.mu.Unlock()
	return nil
}

func (m *Manager) refreshQuotes(ctx context.Context) error {
	items, err := m.src.Quotes(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.quotes = items
	m.mu.Unlock()
	return nil
}

func (m *Manager) refreshSuggestions(ctx context.Context) error {
	items, err := m.src.Suggestions(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.suggestions = items
	m.mu.Unlock()
	return nil
}

func (m *Manager) refreshUsers(ctx context.Context) error {
	items, err := m.src.Users(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.users = items
	m.mu.Unlock()
	return nil
}

func (m *Manager) refreshBookmarks(ctx context.Context, actorID string) error {
	if actorID == "" {
		m.mu.Lock()
		m.bookmarks = nil
		m.mu.Unlock()
		return nil
	}
	items, err := m.src.Bookmarks(ctx, actorID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.bookmarks = items
	m.mu.Unlock()
	return nil
}
