package reportshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talenthub/internal/domain/evaluation"
	"talenthub/internal/domain/hiring"
	"talenthub/internal/domain/reports"
	"talenthub/internal/requestctx"
	"talenthub/internal/transport/http/api"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	summary, err := h.Service.Pipeline(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build pipeline report", reqID)
		return
	}
	api.Success(w, summary, reqID)
}

func (h *Handler) HandleScoreSheet(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	sheet, err := h.Service.ScoreSheet(r.Context(), chi.URLParam(r, "applicationId"))
	if errors.Is(err, hiring.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "application not found", reqID)
		return
	}
	if errors.Is(err, evaluation.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "no evaluation exists for this application", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to build score sheet", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="score-sheet.pdf"`)
	if err := reports.WriteScoreSheetPDF(w, sheet); err != nil {
		// Headers are already out; nothing sensible left to send.
		return
	}
}
