package about

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
)

// Handler serves the static about screen.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type aboutVM struct {
	Title   string   `json:"title"`
	Mission string   `json:"mission"`
	Values  []string `json:"values"`
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, aboutVM{
		Title:   "عن متحف الفكر",
		Mission: "منصة مجتمعية جامعية لتبادل الأفكار والمقالات والمصادر التعليمية",
		Values: []string{
			"حرية الفكر",
			"احترام التنوع",
			"المشاركة المعرفية",
		},
	})
}
