package adminhandler

import (
	"net/http"
	"strconv"

	"talenthub/internal/domain/audit"
	"talenthub/internal/platform/metrics"
	"talenthub/internal/requestctx"
	"talenthub/internal/transport/http/api"
	"talenthub/internal/transport/http/shared"
)

type Handler struct {
	Audit   *audit.Service
	Metrics *metrics.Collector
}

func NewHandler(auditSvc *audit.Service, collector *metrics.Collector) *Handler {
	return &Handler{Audit: auditSvc, Metrics: collector}
}

func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	if h.Metrics == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "metrics are disabled", reqID)
		return
	}
	api.Success(w, h.Metrics.Snapshot(), reqID)
}

func (h *Handler) HandleAuditList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	filter := audit.Filter{
		Action:     r.URL.Query().Get("action"),
		EntityType: r.URL.Query().Get("entityType"),
		ActorUser:  r.URL.Query().Get("actor"),
	}
	includeDetails, _ := strconv.ParseBool(r.URL.Query().Get("details"))

	total, err := h.Audit.Count(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to count audit events", reqID)
		return
	}
	events, err := h.Audit.List(r.Context(), filter, includeDetails, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list audit events", reqID)
		return
	}
	api.Success(w, map[string]any{
		"items":  events,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, reqID)
}
