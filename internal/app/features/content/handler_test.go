package content

import (
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/domain/models"
	"github.com/rashamuf/museumhub/internal/testutil"
)

type stubCache struct {
	ideas []models.Idea
}

func (s *stubCache) Ideas() []models.Idea { return s.ideas }

func knowledgeSeed() []models.Idea {
	return []models.Idea{
		{ID: "static_muf_1", Title: "فلسفة الوعي", Category: "فلسفة"},
		{ID: "static_muf_2", Title: "مدخل للفيزياء", Category: "علوم"},
		{ID: "static_muf_3", Title: "شبكات عصبية", Category: "تقنية"},
		{ID: "static_muf_4", Title: "المجتمع الرقمي", Category: "اجتماع"},
	}
}

func TestServeList_RestrictsToKnowledgeSubset(t *testing.T) {
	h := NewHandler(&stubCache{}, knowledgeSeed(), 20, zap.NewNop())

	req := testutil.NewRequest("GET", "/content")
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)

	rec.AssertStatus(t, 200)

	var got listVM
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Total != 2 {
		t.Fatalf("Total = %d, want 2 (فلسفة and اجتماع excluded)", got.Total)
	}
	for _, item := range got.Items {
		if item.Category == "فلسفة" || item.Category == "اجتماع" {
			t.Errorf("item %q leaked category %q into the knowledge screen", item.ID, item.Category)
		}
	}
}

func TestServeList_RejectsCategoryOutsideSubset(t *testing.T) {
	h := NewHandler(&stubCache{}, knowledgeSeed(), 20, zap.NewNop())

	req := testutil.NewRequest("GET", "/content?category=فلسفة")
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)

	rec.AssertStatus(t, 400)
}

func TestServeList_SubsetCategoryTab(t *testing.T) {
	h := NewHandler(&stubCache{}, knowledgeSeed(), 20, zap.NewNop())

	req := testutil.NewRequest("GET", "/content?category=علوم")
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)

	var got listVM
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Total != 1 || got.Items[0].ID != "static_muf_2" {
		t.Fatalf("tab filter returned %+v", got.Items)
	}
}
