package home

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	"github.com/rashamuf/museumhub/internal/app/livecache"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Handler holds dependencies needed to serve the landing screen.
type Handler struct {
	Cache *livecache.Manager
	Log   *zap.Logger
}

func NewHandler(cache *livecache.Manager, logger *zap.Logger) *Handler {
	return &Handler{Cache: cache, Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

type homeVM struct {
	Title      string          `json:"title"`
	Tagline    string          `json:"tagline"`
	SignedIn   bool            `json:"signed_in"`
	ActorName  string          `json:"actor_name,omitempty"`
	Categories []string        `json:"categories"`
	Featured   []featuredIdeaVM `json:"featured"`
}

type featuredIdeaVM struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Author   string `json:"author"`
}

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	vm := homeVM{
		Title:      "متحف الفكر",
		Tagline:    "مساحة جامعية لمشاركة الأفكار والمعرفة",
		Categories: models.IdeaCategories,
		Featured:   []featuredIdeaVM{},
	}

	if u, ok := auth.CurrentUser(r); ok {
		vm.SignedIn = true
		vm.ActorName = u.Name
	}

	for _, i := range h.Cache.Ideas() {
		if !i.Featured || i.Deleted {
			continue
		}
		vm.Featured = append(vm.Featured, featuredIdeaVM{
			ID: i.ID, Title: i.Title, Category: i.Category, Author: i.Author,
		})
		if len(vm.Featured) == 6 {
			break
		}
	}

	respond.OK(w, vm)
}
