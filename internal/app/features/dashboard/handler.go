package dashboard

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
type Cache interface {
	Ideas() []models.Idea
	Comments() []models.Comment
	Courses() []models.Course
	Quotes() []models.Quote
	Suggestions() []models.Suggestion
	Users() []models.User
	Loading() bool
}

// Handler serves the admin overview: aggregate counts derived from the live
// snapshots, never from extra queries.
type Handler struct {
	Cache Cache
	Log   *zap.Logger
}

func NewHandler(cache Cache, logger *zap.Logger) *Handler {
	return &Handler{Cache: cache, Log: logger}
}

type statsVM struct {
	Ideas              int  `json:"ideas"`
	Comments           int  `json:"comments"`
	Courses            int  `json:"courses"`
	Quotes             int  `json:"quotes"`
	Members            int  `json:"members"`
	BannedMembers      int  `json:"banned_members"`
	TotalLikes         int  `json:"total_likes"`
	TotalViews         int  `json:"total_views"`
	PendingSuggestions int  `json:"pending_suggestions"`
	Loading            bool `json:"loading"`
}

func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	var vm statsVM
	vm.Loading = h.Cache.Loading()

	for _, i := range h.Cache.Ideas() {
		if i.Deleted {
			continue
		}
		vm.Ideas++
		vm.TotalLikes += len(derive.ParseLikedByString(i.LikedBy).List())
		vm.TotalViews += i.Views
	}
	for _, c := range h.Cache.Comments() {
		if !c.Deleted {
			vm.Comments++
			vm.TotalLikes += len(c.LikedBy)
		}
	}
	for _, c := range h.Cache.Courses() {
		vm.Courses++
		vm.TotalLikes += len(c.LikedBy)
		vm.TotalViews += c.Views
	}
	vm.Quotes = len(h.Cache.Quotes())
	for _, u := range h.Cache.Users() {
		vm.Members++
		if u.IsBanned {
			vm.BannedMembers++
		}
	}
	for _, s := range h.Cache.Suggestions() {
		if s.Status == models.SuggestionPending {
			vm.PendingSuggestions++
		}
	}

	respond.OK(w, vm)
}
