package applicationshandler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"talenthub/internal/domain/audit"
	"talenthub/internal/domain/hiring"
	"talenthub/internal/domain/notifications"
	"talenthub/internal/requestctx"
	"talenthub/internal/transport/http/api"
	"talenthub/internal/transport/http/middleware"
	"talenthub/internal/transport/http/shared"
)

type transitionRequest struct {
	Target           string `json:"target"`
	Notes            string `json:"notes"`
	Reason           string `json:"reason"`
	Decision         string `json:"decision"`
	InterviewDate    string `json:"interviewDate"`
	TeachingDemoDate string `json:"teachingDemoDate"`
}

// HandleTransition is the generic stage-transition endpoint. The intent
// routes below pin the target stage and reuse it.
func (h *Handler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	var payload transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if payload.Target == "" {
		api.Fail(w, http.StatusBadRequest, "validation_error", "target stage is required", reqID)
		return
	}
	target, ok := hiring.ParseStage(payload.Target)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "validation_error", "unknown target stage", reqID)
		return
	}
	h.applyTransition(w, r, target, payload)
}

func (h *Handler) HandleEndorse(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, hiring.StageEndorsed, decodeOptional(r))
}

// HandleDeanDecision accepts {"decision": "approve"|"reject"} with
// remarks required on rejection.
func (h *Handler) HandleDeanDecision(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	payload := decodeOptional(r)
	switch strings.ToLower(strings.TrimSpace(payload.Decision)) {
	case "approve", "approved":
		h.applyTransition(w, r, hiring.StageApprovedByDean, payload)
	case "reject", "rejected":
		v := shared.NewValidator()
		v.Required("notes", firstNonEmpty(payload.Notes, payload.Reason), "remarks are required when rejecting")
		if v.Reject(w, reqID) {
			return
		}
		h.applyTransition(w, r, hiring.StageRejectedByDean, payload)
	default:
		api.Fail(w, http.StatusBadRequest, "validation_error", "decision must be approve or reject", reqID)
	}
}

func (h *Handler) HandleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, hiring.StageInterviewScheduled, decodeOptional(r))
}

func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	payload := decodeOptional(r)
	v := shared.NewValidator()
	v.Required("reason", firstNonEmpty(payload.Reason, payload.Notes), "a rejection reason is required")
	if v.Reject(w, reqID) {
		return
	}
	h.applyTransition(w, r, hiring.StageRejected, payload)
}

func (h *Handler) HandleHire(w http.ResponseWriter, r *http.Request) {
	h.applyTransition(w, r, hiring.StageHired, decodeOptional(r))
}

func (h *Handler) applyTransition(w http.ResponseWriter, r *http.Request, target hiring.Stage, payload transitionRequest) {
	reqID := requestctx.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}

	in := hiring.TransitionInput{
		ApplicationID: chi.URLParam(r, "id"),
		Target:        target,
		Role:          user.RoleName,
		ActorUserID:   user.UserID,
		Notes:         firstNonEmpty(payload.Notes, payload.Reason),
	}
	if payload.InterviewDate != "" {
		parsed, err := shared.ParseDate(payload.InterviewDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "validation_error", "interviewDate must be a valid date", reqID)
			return
		}
		in.InterviewDate = parsed
	}
	if payload.TeachingDemoDate != "" {
		parsed, err := shared.ParseDate(payload.TeachingDemoDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "validation_error", "teachingDemoDate must be a valid date", reqID)
			return
		}
		in.TeachingDemoDate = parsed
	}

	before, beforeErr := h.Service.Get(r.Context(), in.ApplicationID)

	result, err := h.Service.Transition(r.Context(), in)
	if err != nil {
		writeHiringError(w, err, reqID)
		return
	}

	if beforeErr == nil {
		h.record(r, audit.ActionApplicationTransition, in.ApplicationID,
			map[string]any{"stage": before.Stage}, map[string]any{"stage": result.Stage})
		h.notifyTransition(r, before, result)
	}
	api.Success(w, result, reqID)
}

func (h *Handler) notifyTransition(r *http.Request, app hiring.Application, result hiring.TransitionResult) {
	if h.Notify == nil || app.ApplicantUserID == "" {
		return
	}
	var ntype, title, body string
	switch result.Stage {
	case hiring.StageEndorsed:
		ntype, title = notifications.TypeEndorsed, "Application endorsed"
		body = "Your application has been endorsed for dean review."
	case hiring.StageApprovedByDean, hiring.StageRejectedByDean:
		ntype, title = notifications.TypeDeanDecision, "Dean decision recorded"
		body = "The dean has reviewed your application."
	case hiring.StageInterviewScheduled:
		ntype, title = notifications.TypeInterviewScheduled, "Interview scheduled"
		body = "An interview has been scheduled for your application."
	case hiring.StageHired:
		ntype, title = notifications.TypeHired, "Congratulations"
		body = "You have been hired. Employee number: " + result.EmployeeNo
	case hiring.StageRejected:
		ntype, title = notifications.TypeRejected, "Application update"
		body = "Your application was not successful."
	default:
		return
	}
	_ = h.Notify.Notify(r.Context(), app.ApplicantUserID, ntype, title, body)
}

func decodeOptional(r *http.Request) transitionRequest {
	var payload transitionRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}
	return payload
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
