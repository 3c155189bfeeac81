package suggestions

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	suggestionstore "github.com/rashamuf/museumhub/internal/app/store/suggestions"
	"github.com/rashamuf/museumhub/internal/domain/models"
	"github.com/rashamuf/museumhub/internal/testutil"
)

type stubCache struct {
	suggestions []models.Suggestion
}

func (s *stubCache) Suggestions() []models.Suggestion { return s.suggestions }

func TestServeList_MemberSeesOnlyOwn(t *testing.T) {
	member := testutil.MemberUser()
	cache := &stubCache{suggestions: []models.Suggestion{
		{ID: "s-1", Title: "اقتراحي", AuthorID: member.ID},
		{ID: "s-2", Title: "اقتراح غيري", AuthorID: "someone-else"},
	}}
	h := NewHandler(cache, nil, zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/suggestions", member)
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)

	rec.AssertStatus(t, 200)

	var got struct {
		Items []suggestionVM `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ID != "s-1" {
		t.Fatalf("member list = %+v, want only the member's own entry", got.Items)
	}
}

func TestServeList_AdminSeesAll(t *testing.T) {
	cache := &stubCache{suggestions: []models.Suggestion{
		{ID: "s-1", AuthorID: "a"},
		{ID: "s-2", AuthorID: "b"},
	}}
	h := NewHandler(cache, nil, zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/suggestions", testutil.AdminUser())
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)

	var got struct {
		Items []suggestionVM `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("admin list length = %d, want 2", len(got.Items))
	}
}

func TestServeCreate_ForcesPendingStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := suggestionstore.New(db)
	h := NewHandler(&stubCache{}, store, zap.NewNop())
	member := testutil.MemberUser()

	req := testutil.NewFormRequest("/suggestions", map[string]string{
		"title":   "تحسين البحث",
		"content": "أقترح دعم البحث في التعليقات",
		"type":    "فكرة تطوير",
	}, member)
	rec := testutil.NewRecorder()
	h.ServeCreate(rec, req)

	rec.AssertStatus(t, 200)

	var got models.Suggestion
	if err := db.Collection("suggestions").FindOne(ctx, bson.M{"author_id": member.ID}).Decode(&got); err != nil {
		t.Fatalf("suggestion missing: %v", err)
	}
	if got.Status != models.SuggestionPending {
		t.Errorf("Status = %q, want pending regardless of input", got.Status)
	}
	if got.ReplyContent != "" || got.RepliedBy != "" || got.RepliedAt != nil {
		t.Errorf("reply fields not cleared on create: %+v", got)
	}
}

func TestServeCreate_RejectsEmptyContent(t *testing.T) {
	h := NewHandler(&stubCache{}, nil, zap.NewNop())

	req := testutil.NewFormRequest("/suggestions", map[string]string{
		"title":   "عنوان",
		"content": "   ",
	}, testutil.MemberUser())
	rec := testutil.NewRecorder()
	h.ServeCreate(rec, req)

	rec.AssertStatus(t, 400)
}
