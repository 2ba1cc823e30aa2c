package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/sevakart/marketplace/pkg/config"
	"github.com/sevakart/marketplace/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

func newTestVerifier() *TokenVerifier {
	return NewTokenVerifier([]byte("test-jwt-secret-must-be-32-bytes"))
}

// newTestLogger creates a logger that discards output.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

// requestWithSession builds an *http.Request that carries a session cookie
// holding the given values.
func requestWithSession(t *testing.T, store sessions.Store, values map[any]any) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)

	session, err := store.Get(r, sessionName)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	for k, v := range values {
		session.Values[k] = v
	}
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func capture(got *Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, _ = IdentityFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func mustNotRun(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})
}

func TestRequireAuth_ValidSession(t *testing.T) {
	store := newTestStore()
	accountID := uuid.New()

	var got Identity
	r := requestWithSession(t, store, map[any]any{
		sessionAccountIDKey: accountID.String(),
		sessionRoleKey:      "vendor",
	})
	w := httptest.NewRecorder()
	RequireAuth(store, newTestVerifier(), newTestLogger())(capture(&got)).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got.AccountID != accountID || got.Role != RoleVendor {
		t.Fatalf("unexpected identity in context: %+v", got)
	}
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	verifier := newTestVerifier()
	want := Identity{AccountID: uuid.New(), Role: RoleSupplier}
	tok, err := verifier.Issue(want, time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var got Identity
	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	RequireAuth(newTestStore(), verifier, newTestLogger())(capture(&got)).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRequireAuth_InvalidBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()
	RequireAuth(newTestStore(), newTestVerifier(), newTestLogger())(mustNotRun(t)).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	RequireAuth(newTestStore(), newTestVerifier(), newTestLogger())(mustNotRun(t)).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_RejectsBadSessionData(t *testing.T) {
	tests := []struct {
		name   string
		values map[any]any
	}{
		{"missing account id", map[any]any{sessionRoleKey: "vendor"}},
		{"invalid account id", map[any]any{sessionAccountIDKey: "not-a-valid-uuid", sessionRoleKey: "vendor"}},
		{"missing role", map[any]any{sessionAccountIDKey: uuid.NewString()}},
		{"unknown role", map[any]any{sessionAccountIDKey: uuid.NewString(), sessionRoleKey: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore()
			r := requestWithSession(t, store, tt.values)
			w := httptest.NewRecorder()
			RequireAuth(store, newTestVerifier(), newTestLogger())(mustNotRun(t)).ServeHTTP(w, r)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name       string
		identity   *Identity
		wantStatus int
	}{
		{"matching role", &Identity{AccountID: uuid.New(), Role: RoleSupplier}, http.StatusOK},
		{"other role", &Identity{AccountID: uuid.New(), Role: RoleVendor}, http.StatusForbidden},
		{"anonymous", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/orders/x/accept", nil)
			if tt.identity != nil {
				r = r.WithContext(WithIdentity(r.Context(), *tt.identity))
			}
			w := httptest.NewRecorder()
			RequireRole(RoleSupplier)(ok).ServeHTTP(w, r)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestSessionHandler_ExchangesTokenForCookie(t *testing.T) {
	store := newTestStore()
	verifier := newTestVerifier()
	want := Identity{AccountID: uuid.New(), Role: RoleVendor}
	tok, _ := verifier.Issue(want, time.Minute)

	r := httptest.NewRequest(http.MethodPost, "/api/session", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	NewSessionHandler(store, verifier, newTestLogger()).ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// The issued cookie alone must authenticate the next request.
	next := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}
	var got Identity
	w2 := httptest.NewRecorder()
	RequireAuth(store, verifier, newTestLogger())(capture(&got)).ServeHTTP(w2, next)
	if w2.Code != http.StatusOK || got != want {
		t.Fatalf("expected cookie session for %+v, got %d %+v", want, w2.Code, got)
	}
}

func TestSessionHandler_RequiresBearer(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/session", nil)
	w := httptest.NewRecorder()
	NewSessionHandler(newTestStore(), newTestVerifier(), newTestLogger()).ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
