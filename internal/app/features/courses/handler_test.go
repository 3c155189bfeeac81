package courses

import (
	"encoding/json"
	"net/url"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	bookmarkstore "github.com/rashamuf/museumhub/internal/app/store/bookmarks"
	coursestore "github.com/rashamuf/museumhub/internal/app/store/courses"
	"github.com/rashamuf/museumhub/internal/domain/models"
	"github.com/rashamuf/museumhub/internal/testutil"
)

type stubCache struct {
	courses   []models.Course
	bookmarks []models.Bookmark
}

func (s *stubCache) Courses() []models.Course     { return s.courses }
func (s *stubCache) Bookmarks() []models.Bookmark { return s.bookmarks }

func seedCourses() []models.Course {
	return []models.Course{
		{ID: "static_course_1", Title: "قناة الفيزياء", Type: "قناة يوتيوب", Likes: 95, Views: 7},
		{ID: "static_course_2", Title: "كتاب المنطق", Type: "كتب", Likes: 40},
	}
}

func TestServeList_TypeTabAndBookmarkFlags(t *testing.T) {
	member := testutil.MemberUser()
	cache := &stubCache{
		bookmarks: []models.Bookmark{
			{ID: "bm-1", UserID: member.ID, CourseID: "static_course_1"},
			{ID: "bm-2", UserID: "someone-else", CourseID: "static_course_2"},
		},
	}
	h := NewHandler(cache, seedCourses(), nil, nil, 20, zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/courses?type="+url.QueryEscape("قناة يوتيوب"), member)
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)

	rec.AssertStatus(t, 200)

	var got listVM
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Total != 1 || got.Items[0].ID != "static_course_1" {
		t.Fatalf("type filter returned %+v", got.Items)
	}
	if !got.Items[0].Bookmarked {
		t.Errorf("Bookmarked = false, want the actor's own bookmark to flag it")
	}
}

func TestServeList_SavedOnly(t *testing.T) {
	member := testutil.MemberUser()
	cache := &stubCache{
		bookmarks: []models.Bookmark{
			{ID: "bm-1", UserID: member.ID, CourseID: "static_course_2"},
		},
	}
	h := NewHandler(cache, seedCourses(), nil, nil, 20, zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/courses?saved=true", member)
	rec := testutil.NewRecorder()
	h.ServeList(rec, req)

	var got listVM
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Total != 1 || got.Items[0].ID != "static_course_2" {
		t.Fatalf("saved filter returned %+v", got.Items)
	}
}

func TestServeCreate_RejectsNonHTTPLink(t *testing.T) {
	h := NewHandler(&stubCache{}, nil, nil, nil, 20, zap.NewNop())

	req := testutil.NewFormRequest("/courses", map[string]string{
		"title": "مصدر",
		"type":  "كتب",
		"link":  "javascript:alert(1)",
	}, testutil.MemberUser())
	rec := testutil.NewRecorder()
	h.ServeCreate(rec, req)

	rec.AssertStatus(t, 400)
}

func TestServeLike_PromotesSeedCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := NewHandler(&stubCache{}, seedCourses(), coursestore.New(db), nil, 20, zap.NewNop())
	member := testutil.MemberUser()

	req := testutil.NewAuthenticatedRequest("POST", "/courses/static_course_1/like", member)
	req = testutil.WithChiURLParam(req, "id", "static_course_1")
	rec := testutil.NewRecorder()
	h.ServeLike(rec, req)

	rec.AssertStatus(t, 200)

	got, err := coursestore.New(db).GetByID(ctx, "static_course_1")
	if err != nil {
		t.Fatalf("promoted document missing: %v", err)
	}
	if got.Likes != 1 || len(got.LikedBy) != 1 || got.LikedBy[0] != member.ID {
		t.Errorf("like state = (%d, %v), want (1, [actor])", got.Likes, got.LikedBy)
	}
	if got.Views != 8 {
		t.Errorf("Views = %d, want seed views + 1", got.Views)
	}
	if !got.Promoted {
		t.Errorf("Promoted flag not set")
	}
}

func TestServeBookmark_ToggleOnThenOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := testutil.MemberUser()
	bookmarks := bookmarkstore.New(db)

	toggle := func() {
		var current []models.Bookmark
		cur, err := db.Collection("bookmarks").Find(ctx, bson.M{"user_id": member.ID})
		if err != nil {
			t.Fatalf("load bookmarks: %v", err)
		}
		if err := cur.All(ctx, &current); err != nil {
			t.Fatalf("decode bookmarks: %v", err)
		}
		cache := &stubCache{bookmarks: current}
		h := NewHandler(cache, seedCourses(), nil, bookmarks, 20, zap.NewNop())

		req := testutil.NewAuthenticatedRequest("POST", "/courses/static_course_1/bookmark", member)
		req = testutil.WithChiURLParam(req, "id", "static_course_1")
		rec := testutil.NewRecorder()
		h.ServeBookmark(rec, req)
		rec.AssertStatus(t, 200)
	}

	toggle()
	count, err := db.Collection("bookmarks").CountDocuments(ctx, bson.M{"user_id": member.ID})
	if err != nil {
		t.Fatalf("count bookmarks: %v", err)
	}
	if count != 1 {
		t.Fatalf("after save: %d bookmarks, want 1", count)
	}

	toggle()
	count, err = db.Collection("bookmarks").CountDocuments(ctx, bson.M{"user_id": member.ID})
	if err != nil {
		t.Fatalf("count bookmarks: %v", err)
	}
	if count != 0 {
		t.Fatalf("after unsave: %d bookmarks, want 0", count)
	}
}

// The cache only tracks the member it was started for. A toggle by any other
// signed-in member must still flip their own record instead of piling up
// duplicate inserts.
func TestServeBookmark_IgnoresCacheActorSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	other := testutil.MemberUser()
	cache := &stubCache{bookmarks: []models.Bookmark{
		{ID: "bm-cache", UserID: "cache-actor", CourseID: "static_course_1"},
	}}
	h := NewHandler(cache, seedCourses(), nil, bookmarkstore.New(db), 20, zap.NewNop())

	toggle := func() {
		req := testutil.NewAuthenticatedRequest("POST", "/courses/static_course_1/bookmark", other)
		req = testutil.WithChiURLParam(req, "id", "static_course_1")
		rec := testutil.NewRecorder()
		h.ServeBookmark(rec, req)
		rec.AssertStatus(t, 200)
	}

	toggle()
	toggle()

	count, err := db.Collection("bookmarks").CountDocuments(ctx, bson.M{"user_id": other.ID})
	if err != nil {
		t.Fatalf("count bookmarks: %v", err)
	}
	if count != 0 {
		t.Fatalf("two toggles left %d bookmarks, want 0", count)
	}
}

func TestServeView_IncrementsPersistedOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	course := fix.CreateCourse(ctx, "دورة البرمجة", "دورات", "member-1")

	store := coursestore.New(db)
	cache := &stubCache{courses: []models.Course{course}}
	h := NewHandler(cache, seedCourses(), store, nil, 20, zap.NewNop())

	req := testutil.NewRequest("POST", "/courses/"+course.ID+"/view")
	req = testutil.WithChiURLParam(req, "id", course.ID)
	rec := testutil.NewRecorder()
	h.ServeView(rec, req)
	rec.AssertStatus(t, 200)

	got, err := store.GetByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("reload course: %v", err)
	}
	if got.Views != course.Views+1 {
		t.Errorf("Views = %d, want %d", got.Views, course.Views+1)
	}

	// A bundled copy has no document to count against.
	req = testutil.NewRequest("POST", "/courses/static_course_1/view")
	req = testutil.WithChiURLParam(req, "id", "static_course_1")
	rec = testutil.NewRecorder()
	h.ServeView(rec, req)
	rec.AssertStatus(t, 200)

	count, err := db.Collection("courses").CountDocuments(ctx, bson.M{"_id": "static_course_1"})
	if err != nil {
		t.Fatalf("count courses: %v", err)
	}
	if count != 0 {
		t.Errorf("bundled view wrote %d documents, want 0", count)
	}
}

func TestServeDelete_RemovesPersistedCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	course := fix.CreateCourse(ctx, "دورة قديمة", "دورات", "member-1")

	store := coursestore.New(db)
	cache := &stubCache{courses: []models.Course{course}}
	h := NewHandler(cache, seedCourses(), store, nil, 20, zap.NewNop())

	req := testutil.NewFormRequest("/courses/"+course.ID+"/delete", map[string]string{
		"confirm": "true",
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", course.ID)
	rec := testutil.NewRecorder()
	h.ServeDelete(rec, req)
	rec.AssertStatus(t, 200)

	count, err := db.Collection("courses").CountDocuments(ctx, bson.M{"_id": course.ID})
	if err != nil {
		t.Fatalf("count courses: %v", err)
	}
	if count != 0 {
		t.Errorf("course still present after delete")
	}
}

func TestServeDelete_RefusesSeedCourse(t *testing.T) {
	h := NewHandler(&stubCache{}, seedCourses(), nil, nil, 20, zap.NewNop())

	req := testutil.NewFormRequest("/courses/static_course_1/delete", map[string]string{
		"confirm": "true",
	}, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", "static_course_1")
	rec := testutil.NewRecorder()
	h.ServeDelete(rec, req)

	rec.AssertStatus(t, 403)
}
