package feed

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	commentstore "github.com/rashamuf/museumhub/internal/app/store/comments"
	"github.com/rashamuf/museumhub/internal/domain/models"
	"github.com/rashamuf/museumhub/internal/testutil"
)

type stubCache struct {
	ideas    []models.Idea
	comments []models.Comment
}

func (s *stubCache) Ideas() []models.Idea       { return s.ideas }
func (s *stubCache) Comments() []models.Comment { return s.comments }

func TestServeDetail_SeedIdeaWithThread(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := &stubCache{
		comments: []models.Comment{
			{ID: "c2", IdeaID: "static_muf_9", Text: "الأحدث", CreatedAt: base.Add(time.Hour)},
			{ID: "c1", IdeaID: "static_muf_9", Text: "الأقدم", CreatedAt: base},
			{ID: "c3", IdeaID: "other", Text: "لفكرة أخرى", CreatedAt: base},
			{ID: "c4", IdeaID: "static_muf_9", Text: "محذوف", Deleted: true, CreatedAt: base},
		},
	}
	seed := []models.Idea{{ID: "static_muf_9", Title: "فكرة ثابتة", Views: 40}}
	h := NewHandler(cache, seed, nil, nil, zap.NewNop())

	req := testutil.NewRequest("GET", "/feed/static_muf_9")
	req = testutil.WithChiURLParam(req, "id", "static_muf_9")
	rec := testutil.NewRecorder()
	h.ServeDetail(rec, req)

	rec.AssertStatus(t, 200)

	var got detailVM
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.Seed {
		t.Errorf("Seed = false, want true for a bundled idea")
	}
	if got.Views != 40 {
		t.Errorf("Views = %d, want unchanged 40 (no document to bump)", got.Views)
	}
	if len(got.Comments) != 2 {
		t.Fatalf("thread length = %d, want 2 (scoped, deleted dropped)", len(got.Comments))
	}
	if got.Comments[0].ID != "c1" || got.Comments[1].ID != "c2" {
		t.Errorf("thread order = [%s %s], want oldest first", got.Comments[0].ID, got.Comments[1].ID)
	}
}

func TestServeDetail_UnknownIdea(t *testing.T) {
	h := NewHandler(&stubCache{}, nil, nil, nil, zap.NewNop())

	req := testutil.NewRequest("GET", "/feed/nope")
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := testutil.NewRecorder()
	h.ServeDetail(rec, req)

	rec.AssertStatus(t, 404)
}

func TestServeComment_RejectsEmptyText(t *testing.T) {
	cache := &stubCache{ideas: []models.Idea{{ID: "live-1", Title: "فكرة"}}}
	h := NewHandler(cache, nil, nil, nil, zap.NewNop())

	req := testutil.NewFormRequest("/feed/live-1/comments", map[string]string{
		"text": "   ",
	}, testutil.MemberUser())
	req = testutil.WithChiURLParam(req, "id", "live-1")
	rec := testutil.NewRecorder()
	h.ServeComment(rec, req)

	rec.AssertStatus(t, 400)
	rec.AssertContains(t, "نص التعليق فارغ")
}

func TestServeComment_PersistsWithAuthorSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cache := &stubCache{ideas: []models.Idea{{ID: "live-1", Title: "فكرة"}}}
	h := NewHandler(cache, nil, nil, commentstore.New(db), zap.NewNop())
	member := testutil.MemberUser()

	req := testutil.NewFormRequest("/feed/live-1/comments", map[string]string{
		"text": "تعليق جديد",
	}, member)
	req = testutil.WithChiURLParam(req, "id", "live-1")
	rec := testutil.NewRecorder()
	h.ServeComment(rec, req)

	rec.AssertStatus(t, 200)

	var got models.Comment
	err := db.Collection("comments").FindOne(ctx, bson.M{"idea_id": "live-1"}).Decode(&got)
	if err != nil {
		t.Fatalf("comment missing: %v", err)
	}
	if got.AuthorName != member.Name || got.UserID != member.ID {
		t.Errorf("author snapshot = (%q, %q), want (%q, %q)",
			got.AuthorName, got.UserID, member.Name, member.ID)
	}
	if got.LikedBy == nil || len(got.LikedBy) != 0 {
		t.Errorf("LikedBy = %v, want empty list", got.LikedBy)
	}
}

func TestServeCommentLike_TogglesList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	comment := fix.CreateComment(ctx, "idea-1", "someone", "تعليق")

	member := testutil.MemberUser()
	store := commentstore.New(db)

	like := func() {
		current, err := store.GetByID(ctx, comment.ID)
		if err != nil {
			t.Fatalf("reload comment: %v", err)
		}
		cache := &stubCache{comments: []models.Comment{*current}}
		h := NewHandler(cache, nil, nil, store, zap.NewNop())

		req := testutil.NewAuthenticatedRequest("POST", "/feed/comments/"+comment.ID+"/like", member)
		req = testutil.WithChiURLParam(req, "id", comment.ID)
		rec := testutil.NewRecorder()
		h.ServeCommentLike(rec, req)
		rec.AssertStatus(t, 200)
	}

	like()
	got, _ := store.GetByID(ctx, comment.ID)
	if got.Likes != 1 || len(got.LikedBy) != 1 || got.LikedBy[0] != member.ID {
		t.Fatalf("after like: likes=%d likedBy=%v", got.Likes, got.LikedBy)
	}

	like()
	got, _ = store.GetByID(ctx, comment.ID)
	if got.Likes != 0 || len(got.LikedBy) != 0 {
		t.Fatalf("after unlike: likes=%d likedBy=%v", got.Likes, got.LikedBy)
	}
}

func TestServeCommentDelete_HidesFromThread(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	comment := fix.CreateComment(ctx, "idea-1", "member-1", "تعليق مسيء")

	store := commentstore.New(db)
	cache := &stubCache{comments: []models.Comment{comment}}
	h := NewHandler(cache, nil, nil, store, zap.NewNop())

	req := testutil.NewFormRequest("/feed/comments/"+comment.ID+"/delete", map[string]string{
		"confirm": "true",
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", comment.ID)
	rec := testutil.NewRecorder()
	h.ServeCommentDelete(rec, req)

	rec.AssertStatus(t, 200)

	got, err := store.GetByID(ctx, comment.ID)
	if err != nil {
		t.Fatalf("reload comment: %v", err)
	}
	if !got.Deleted {
		t.Error("Deleted = false, want true")
	}
}

func TestServeCommentDelete_UnknownComment(t *testing.T) {
	h := NewHandler(&stubCache{}, nil, nil, nil, zap.NewNop())

	req := testutil.NewFormRequest("/feed/comments/nope/delete", map[string]string{
		"confirm": "true",
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := testutil.NewRecorder()
	h.ServeCommentDelete(rec, req)

	rec.AssertStatus(t, 404)
}
