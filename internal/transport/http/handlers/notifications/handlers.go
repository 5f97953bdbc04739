package notificationshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"talenthub/internal/domain/notifications"
	"talenthub/internal/requestctx"
	"talenthub/internal/transport/http/api"
	"talenthub/internal/transport/http/middleware"
	"talenthub/internal/transport/http/shared"
)

type Handler struct {
	Service *notifications.Service
}

func NewHandler(service *notifications.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	page := shared.ParsePagination(r, 20, 100)

	items, err := h.Service.List(r.Context(), user.UserID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list notifications", reqID)
		return
	}
	total, err := h.Service.Count(r.Context(), user.UserID)
	if err != nil {
		total = len(items)
	}
	api.Success(w, map[string]any{
		"items":  items,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, reqID)
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	if err := h.Service.MarkRead(r.Context(), user.UserID, chi.URLParam(r, "id")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_failed", "failed to mark notification read", reqID)
		return
	}
	api.Success(w, map[string]any{"marked": true}, reqID)
}
