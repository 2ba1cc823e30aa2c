package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/sevakart/marketplace/pkg/httpx"
	"github.com/sevakart/marketplace/pkg/logger"
)

// SessionResponse describes the identity bound to the current session.
type SessionResponse struct {
	AccountID string `json:"account_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Role      string `json:"role"       example:"vendor"`
} // @name SessionResponse

// NewSessionHandler exchanges a valid bearer token for a session cookie so
// browser clients do not have to resend the token on every request.
//
//	@Summary	Start session
//	@Tags		session
//	@Produce	json
//	@Success	201	{object}	SessionResponse
//	@Failure	401	{object}	map[string]string
//	@Router		/session [post]
func NewSessionHandler(store sessions.Store, verifier *TokenVerifier, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			httpx.JSONError(w, http.StatusUnauthorized, "bearer token required")
			return
		}
		id, err := verifier.Verify(raw)
		if err != nil {
			log.WarnContext(r.Context(), "session exchange rejected", "error", err)
			httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		session, _ := store.Get(r, sessionName)
		session.Values[sessionAccountIDKey] = id.AccountID.String()
		session.Values[sessionRoleKey] = string(id.Role)
		if err := session.Save(r, w); err != nil {
			log.ErrorContext(r.Context(), "save session", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "could not start session")
			return
		}

		log.InfoContext(r.Context(), "session started", "account_id", id.AccountID, "role", id.Role)
		httpx.JSON(w, http.StatusCreated, SessionResponse{AccountID: id.AccountID.String(), Role: string(id.Role)})
	}
}

// EndSessionHandler expires the session cookie and its server-side state.
//
//	@Summary	End session
//	@Tags		session
//	@Success	204
//	@Router		/session [delete]
func EndSessionHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := store.Get(r, sessionName)
		session.Options.MaxAge = -1
		if err := session.Save(r, w); err != nil {
			log.WarnContext(r.Context(), "end session", "error", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
