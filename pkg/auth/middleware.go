package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/sevakart/marketplace/pkg/httpx"
	"github.com/sevakart/marketplace/pkg/logger"
)

const sessionName = "sevakart_session"

const (
	sessionAccountIDKey = "account_id"
	sessionRoleKey      = "role"
)

// RequireAuth is a chi middleware that resolves the caller's Identity from an
// "Authorization: Bearer" token or, failing that, the session cookie, and
// injects it into the request context.
// Returns 401 Unauthorized if neither yields a valid account id and role.
//
// After this middleware, handlers can safely call auth.IdentityFromCtx(r.Context()).
func RequireAuth(store sessions.Store, verifier *TokenVerifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw, ok := bearerToken(r.Header.Get("Authorization")); ok && verifier != nil {
				id, err := verifier.Verify(raw)
				if err != nil {
					log.WarnContext(r.Context(), "invalid bearer token", "error", err)
					httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
					return
				}
				next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
				return
			}

			id, ok := identityFromSession(w, r, store, log)
			if !ok {
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireRole rejects callers whose role is not role with 403. Must be mounted
// after RequireAuth.
func RequireRole(role Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := IdentityFromCtx(r.Context())
			if err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if id.Role != role {
				httpx.JSONError(w, http.StatusForbidden, ErrForbiddenRole.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func identityFromSession(w http.ResponseWriter, r *http.Request, store sessions.Store, log logger.Logger) (Identity, bool) {
	session, err := store.Get(r, sessionName)
	if err != nil {
		log.WarnContext(r.Context(), "invalid session cookie", "error", err)
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return Identity{}, false
	}

	accountIDStr, ok := session.Values[sessionAccountIDKey].(string)
	if !ok || accountIDStr == "" {
		log.WarnContext(r.Context(), "session missing account_id")
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return Identity{}, false
	}

	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		log.WarnContext(r.Context(), "invalid account_id in session", "account_id", accountIDStr, "error", err)
		httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
		return Identity{}, false
	}

	roleStr, _ := session.Values[sessionRoleKey].(string)
	role, err := ParseRole(roleStr)
	if err != nil {
		log.WarnContext(r.Context(), "invalid role in session", "account_id", accountIDStr, "error", err)
		httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
		return Identity{}, false
	}

	return Identity{AccountID: accountID, Role: role}, true
}
