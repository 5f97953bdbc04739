package contractshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talenthub/internal/domain/hire"
	"talenthub/internal/requestctx"
	"talenthub/internal/transport/http/api"
	"talenthub/internal/transport/http/shared"
)

type Handler struct {
	Service *hire.Service
}

func NewHandler(service *hire.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 20, 100)
	contracts, total, err := h.Service.ListContracts(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list contracts", reqID)
		return
	}
	api.Success(w, map[string]any{
		"items":  contracts,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, reqID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	contract, err := h.Service.GetContract(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, hire.ErrContractNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "contract not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", reqID)
		return
	}
	api.Success(w, contract, reqID)
}

func (h *Handler) HandleGetFaculty(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	faculty, err := h.Service.GetFaculty(r.Context(), chi.URLParam(r, "applicationId"))
	if errors.Is(err, hire.ErrFacultyNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "faculty record not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", reqID)
		return
	}
	api.Success(w, faculty, reqID)
}
