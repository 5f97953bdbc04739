package applicationshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talenthub/internal/domain/audit"
	"talenthub/internal/domain/hiring"
	"talenthub/internal/domain/notifications"
	"talenthub/internal/requestctx"
	"talenthub/internal/transport/http/api"
	"talenthub/internal/transport/http/middleware"
	"talenthub/internal/transport/http/shared"
)

type Handler struct {
	Service *hiring.Service
	Audit   *audit.Service
	Notify  *notifications.Service
}

func NewHandler(service *hiring.Service, auditSvc *audit.Service, notify *notifications.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc, Notify: notify}
}

type createRequest struct {
	VacancyID      string `json:"vacancyId" validate:"required"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Position       string `json:"position" validate:"required"`
	College        string `json:"college" validate:"required"`
	EmploymentType string `json:"employmentType"`
	ResumeURL      string `json:"resumeUrl"`
	PDSURL         string `json:"pdsUrl"`
	TranscriptURL  string `json:"transcriptUrl"`
	TrainingsURL   string `json:"trainingsUrl"`
	EmploymentURL  string `json:"employmentUrl"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}

	app := hiring.Application{
		VacancyID:      payload.VacancyID,
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Email:          payload.Email,
		Phone:          payload.Phone,
		Position:       payload.Position,
		College:        payload.College,
		EmploymentType: payload.EmploymentType,
		ResumeURL:      payload.ResumeURL,
		PDSURL:         payload.PDSURL,
		TranscriptURL:  payload.TranscriptURL,
		TrainingsURL:   payload.TrainingsURL,
		EmploymentURL:  payload.EmploymentURL,
	}
	if user, ok := middleware.GetUser(r.Context()); ok {
		app.ApplicantUserID = user.UserID
	}

	created, err := h.Service.Create(r.Context(), app)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to create application", reqID)
		return
	}

	h.record(r, audit.ActionApplicationCreate, created.ID, nil, created)
	if created.ApplicantUserID != "" && h.Notify != nil {
		_ = h.Notify.Notify(r.Context(), created.ApplicantUserID, notifications.TypeApplicationReceived,
			"Application received", "Your application for "+created.Position+" has been received.")
	}
	api.Created(w, created, reqID)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 20, 100)

	filter := hiring.ListFilter{Limit: page.Limit, Offset: page.Offset}
	if raw := r.URL.Query().Get("stage"); raw != "" {
		stage, ok := hiring.ParseStage(raw)
		if !ok {
			api.Fail(w, http.StatusBadRequest, "validation_error", "unknown stage filter", reqID)
			return
		}
		filter.Stage = stage
	}

	// Applicants only ever see their own applications.
	if user, ok := middleware.GetUser(r.Context()); ok && user.RoleName == "applicant" {
		filter.ApplicantUserID = user.UserID
	}

	apps, total, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list applications", reqID)
		return
	}
	api.Success(w, map[string]any{
		"items":  apps,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	}, reqID)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	app, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeHiringError(w, err, reqID)
		return
	}
	if user, ok := middleware.GetUser(r.Context()); ok && user.RoleName == "applicant" && app.ApplicantUserID != user.UserID {
		api.Fail(w, http.StatusNotFound, "not_found", "application not found", reqID)
		return
	}
	api.Success(w, app, reqID)
}

func (h *Handler) HandleGetInterview(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	interview, err := h.Service.Interview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeHiringError(w, err, reqID)
		return
	}
	api.Success(w, interview, reqID)
}

func (h *Handler) record(r *http.Request, action, entityID string, before, after any) {
	if h.Audit == nil {
		return
	}
	actorID := ""
	if user, ok := middleware.GetUser(r.Context()); ok {
		actorID = user.UserID
	}
	if err := h.Audit.Record(r.Context(), actorID, action, "application", entityID,
		requestctx.GetRequestID(r.Context()), r.RemoteAddr, before, after); err != nil {
		// Audit is best effort on the read path of the response.
		return
	}
}

func writeHiringError(w http.ResponseWriter, err error, reqID string) {
	var missing *hiring.MissingDocumentsError
	switch {
	case errors.Is(err, hiring.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "application not found", reqID)
	case errors.Is(err, hiring.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "role may not perform this transition", reqID)
	case errors.Is(err, hiring.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", "transition is not allowed from the current stage", reqID)
	case errors.Is(err, hiring.ErrAlreadyEndorsed):
		api.Fail(w, http.StatusConflict, "invalid_transition", "application has already been endorsed", reqID)
	case errors.Is(err, hiring.ErrInterviewDateRequired):
		api.Fail(w, http.StatusBadRequest, "validation_error", "interview date is required", reqID)
	case errors.As(err, &missing):
		api.FailWithDetails(w, http.StatusUnprocessableEntity, "precondition_failed",
			"required documents are missing", map[string]any{"missing": missing.Missing}, reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", reqID)
	}
}
