package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"talenthub/internal/domain/audit"
	"talenthub/internal/domain/auth"
	"talenthub/internal/requestctx"
	"talenthub/internal/transport/http/api"
	"talenthub/internal/transport/http/middleware"
)

const tokenTTL = 8 * time.Hour

type Handler struct {
	Store  *auth.Store
	Secret string
	Audit  *audit.Service
}

func NewHandler(store *auth.Store, secret string, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Secret: secret, Audit: auditSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	user, err := h.Store.FindActiveUserByEmail(r.Context(), payload.Email)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID:   user.ID,
		RoleID:   user.RoleID,
		RoleName: user.RoleName,
	}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", reqID)
		return
	}

	_ = h.Store.UpdateLastLogin(r.Context(), user.ID)
	if h.Audit != nil {
		_ = h.Audit.Record(r.Context(), user.ID, audit.ActionLogin, "user", user.ID, reqID, r.RemoteAddr, nil, nil)
	}

	api.Success(w, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.RoleName,
		},
	}, reqID)
}

// HandleLogout ends the session from the server's point of view.
// Tokens are stateless, so the client discards its copy; the event is
// recorded for the audit trail.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	if h.Audit != nil {
		_ = h.Audit.Record(r.Context(), user.UserID, audit.ActionLogout, "user", user.UserID, reqID, r.RemoteAddr, nil, nil)
	}
	api.Success(w, map[string]any{"loggedOut": true}, reqID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	api.Success(w, map[string]any{
		"userId": user.UserID,
		"roleId": user.RoleID,
		"role":   user.RoleName,
	}, reqID)
}
