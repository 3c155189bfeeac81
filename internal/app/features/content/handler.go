package content

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	"github.com/rashamuf/museumhub/internal/app/system/normalize"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
type Cache interface {
	Ideas() []models.Idea
}

// Handler serves the knowledge-content screen: the same pool of ideas as the
// gallery, restricted to the fixed knowledge categories.
type Handler struct {
	Cache    Cache
	Seed     []models.Idea
	PageSize int
	Log      *zap.Logger
}

func NewHandler(cache Cache, seedIdeas []models.Idea, pageSize int, logger *zap.Logger) *Handler {
	return &Handler{Cache: cache, Seed: seedIdeas, PageSize: pageSize, Log: logger}
}

type itemVM struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Likes     int       `json:"likes"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}

type listVM struct {
	Items      []itemVM `json:"items"`
	Total      int      `json:"total"`
	HasMore    bool     `json:"has_more"`
	Categories []string `json:"categories"`
	Category   string   `json:"category"`
}

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	category := normalize.Category(query.Get(r, "category"))
	search := normalize.QueryParam(query.Get(r, "q"))
	pages, _ := strconv.Atoi(query.Get(r, "pages"))

	if category != "" && !inContentCategories(category) {
		respond.Fail(w, http.StatusBadRequest, "تصنيف غير معروف")
		return
	}

	merged := derive.MergeAndFilter(h.Cache.Ideas(), h.Seed, derive.IdeaAccessors,
		derive.Query{Category: category, Search: search})

	// No tab selected shows the whole knowledge subset, not all ideas.
	if category == "" {
		kept := merged[:0]
		for _, i := range merged {
			if inContentCategories(i.Category) {
				kept = append(kept, i)
			}
		}
		merged = kept
	}

	win := derive.NewWindow(h.PageSize)
	win.Sync(category, search)
	for i := 1; i < pages; i++ {
		win.More()
	}
	visible := derive.Slice(merged, win.Visible())

	items := make([]itemVM, 0, len(visible))
	for _, i := range visible {
		items = append(items, itemVM{
			ID: i.ID, Title: i.Title, Category: i.Category, Content: i.Content,
			Author: i.Author, Likes: i.Likes, Views: i.Views, CreatedAt: i.CreatedAt,
		})
	}

	respond.OK(w, listVM{
		Items:      items,
		Total:      len(merged),
		HasMore:    len(visible) < len(merged),
		Categories: models.ContentCategories,
		Category:   category,
	})
}

func inContentCategories(cat string) bool {
	for _, c := range models.ContentCategories {
		if c == cat {
			return true
		}
	}
	return false
}
