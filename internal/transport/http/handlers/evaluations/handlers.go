package evaluationshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"talenthub/internal/domain/audit"
	"talenthub/internal/domain/evaluation"
	"talenthub/internal/domain/hire"
	"talenthub/internal/domain/hiring"
	"talenthub/internal/domain/notifications"
	"talenthub/internal/requestctx"
	"talenthub/internal/transport/http/api"
	"talenthub/internal/transport/http/middleware"
	"talenthub/internal/transport/http/shared"
)

type Handler struct {
	Service *evaluation.Service
	Hire    *hire.Service
	Audit   *audit.Service
	Notify  *notifications.Service
}

func NewHandler(service *evaluation.Service, hireSvc *hire.Service, auditSvc *audit.Service, notify *notifications.Service) *Handler {
	return &Handler{Service: service, Hire: hireSvc, Audit: auditSvc, Notify: notify}
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload evaluation.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}

	result, err := h.Service.Submit(r.Context(), user.UserID, payload)
	if err != nil {
		writeEvaluationError(w, err, reqID)
		return
	}

	if h.Audit != nil {
		_ = h.Audit.Record(r.Context(), user.UserID, audit.ActionEvaluationSubmit, "evaluation",
			result.Evaluation.ID, reqID, r.RemoteAddr, nil, map[string]any{
				"total":     result.Evaluation.TotalScore,
				"qualified": result.Evaluation.Qualified,
				"hired":     result.Hired,
			})
	}
	h.notifySubmitted(r, payload.ApplicationID, result)
	api.Created(w, result, reqID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	eval, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEvaluationError(w, err, reqID)
		return
	}
	api.Success(w, eval, reqID)
}

func (h *Handler) HandleGetForApplication(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	eval, err := h.Service.GetForApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeEvaluationError(w, err, reqID)
		return
	}
	api.Success(w, eval, reqID)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 20, 100)
	evals, total, err := h.Service.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list evaluations", reqID)
		return
	}
	api.Success(w, map[string]any{
		"items":  evals,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, reqID)
}

type contractDecisionRequest struct {
	Decision   string `json:"decision" validate:"required"`
	ActionDate string `json:"actionDate"`
}

func (h *Handler) HandleContractDecision(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	var payload contractDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	decision := strings.ToLower(strings.TrimSpace(payload.Decision))
	switch decision {
	case "approve", "approved":
		decision = "approved"
	case "decline", "declined":
		decision = "declined"
	default:
		api.Fail(w, http.StatusBadRequest, "validation_error", "decision must be approve or decline", reqID)
		return
	}

	actionDate, err := shared.ParseDate(payload.ActionDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "actionDate must be an RFC 3339 timestamp or YYYY-MM-DD", reqID)
		return
	}

	result, err := h.Hire.DecideContract(r.Context(), chi.URLParam(r, "id"), decision, user.UserID, actionDate)
	if err != nil {
		writeContractError(w, err, reqID)
		return
	}

	if h.Audit != nil {
		_ = h.Audit.Record(r.Context(), user.UserID, audit.ActionContractDecide, "evaluation",
			chi.URLParam(r, "id"), reqID, r.RemoteAddr, nil, map[string]any{"decision": decision})
	}
	h.notifyContractDecision(r, chi.URLParam(r, "id"), decision)
	api.Success(w, result, reqID)
}

func (h *Handler) notifySubmitted(r *http.Request, applicationID string, result evaluation.SubmitResult) {
	if h.Notify == nil {
		return
	}
	app, err := h.Service.Apps.GetApplication(r.Context(), applicationID)
	if err != nil || app.ApplicantUserID == "" {
		return
	}
	if result.Hired {
		_ = h.Notify.Notify(r.Context(), app.ApplicantUserID, notifications.TypeHired,
			"Congratulations", "You have been hired. Employee number: "+result.EmployeeNo)
		return
	}
	_ = h.Notify.Notify(r.Context(), app.ApplicantUserID, notifications.TypeEvaluationCompleted,
		"Evaluation completed", "Your evaluation has been recorded and is under review.")
}

func (h *Handler) notifyContractDecision(r *http.Request, evaluationID, decision string) {
	if h.Notify == nil {
		return
	}
	eval, err := h.Service.Get(r.Context(), evaluationID)
	if err != nil {
		return
	}
	app, err := h.Service.Apps.GetApplication(r.Context(), eval.ApplicationID)
	if err != nil || app.ApplicantUserID == "" {
		return
	}
	_ = h.Notify.Notify(r.Context(), app.ApplicantUserID, notifications.TypeContractDecision,
		"Contract decision recorded", "Your contract has been "+decision+".")
}

func writeEvaluationError(w http.ResponseWriter, err error, reqID string) {
	var unknownCodes *evaluation.UnknownCreditCodeError
	var unknownRoles *evaluation.UnknownRoleError
	switch {
	case errors.Is(err, evaluation.ErrApplicationIDRequired):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), reqID)
	case errors.Is(err, evaluation.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "evaluation not found", reqID)
	case errors.Is(err, hiring.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "application not found", reqID)
	case errors.Is(err, evaluation.ErrNotInterviewed):
		api.Fail(w, http.StatusUnprocessableEntity, "precondition_failed", "application has not reached the interview stage", reqID)
	case errors.Is(err, evaluation.ErrApplicationClosed):
		api.Fail(w, http.StatusConflict, "invalid_transition", "application is in a terminal rejected state", reqID)
	case errors.Is(err, hiring.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", "application cannot be hired from its current stage", reqID)
	case errors.As(err, &unknownCodes):
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "unknown credit codes",
			map[string]any{"codes": unknownCodes.Codes}, reqID)
	case errors.As(err, &unknownRoles):
		api.FailWithDetails(w, http.StatusBadRequest, "validation_error", "unknown experience roles",
			map[string]any{"roles": unknownRoles.Roles}, reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", reqID)
	}
}

func writeContractError(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, hire.ErrEvaluationNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "evaluation not found", reqID)
	case errors.Is(err, hire.ErrContractNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "contract not found", reqID)
	case errors.Is(err, hire.ErrInvalidDecision):
		api.Fail(w, http.StatusConflict, "conflict", "decision not allowed from the current contract status", reqID)
	case errors.Is(err, hire.ErrConflict):
		api.Fail(w, http.StatusConflict, "conflict", "contract already exists", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", reqID)
	}
}
