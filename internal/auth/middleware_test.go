package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ianrury/api-tash-manajement/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type staticResolver struct {
	users map[int64]domain.User
}

type downResolver struct{ err error }

func (r downResolver) GetByID(context.Context, int64) (domain.User, error) {
	return domain.User{}, r.err
}

func (r staticResolver) GetByID(_ context.Context, id int64) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func newGateRouter(t *testing.T, tokens *TokenService, users UserResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(tokens, users), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.JSON(500, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(200, gin.H{"username": u.Username})
	})
	return r
}

func TestRequireAuthSuccess(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	users := staticResolver{users: map[int64]domain.User{
		7: {ID: 7, Name: "Ian", Username: "ian"},
	}}
	router := newGateRouter(t, tokens, users)

	token, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireAuthSchemeCaseInsensitive(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	users := staticResolver{users: map[int64]domain.User{7: {ID: 7, Username: "ian"}}}
	router := newGateRouter(t, tokens, users)

	token, _ := tokens.Issue(7)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for lowercase scheme, got %d", w.Code)
	}
}

func TestRequireAuthRejections(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	users := staticResolver{users: map[int64]domain.User{7: {ID: 7, Username: "ian"}}}
	router := newGateRouter(t, tokens, users)

	expired := NewTokenService([]byte("test-secret"), -time.Minute)
	expiredToken, _ := expired.Issue(7)
	otherSecret := NewTokenService([]byte("other-secret"), time.Hour)
	forgedToken, _ := otherSecret.Issue(7)
	unknownUser, _ := tokens.Issue(99)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"empty bearer", "Bearer "},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expiredToken},
		{"forged token", "Bearer " + forgedToken},
		{"unknown subject", "Bearer " + unknownUser},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, w.Code)
		}
		// Every rejection must look identical to the caller.
		want := `{"message":"Not authorized, no token or invalid token","success":false}`
		if w.Body.String() != want {
			t.Fatalf("%s: unexpected body %s", tc.name, w.Body.String())
		}
	}
}

func TestRequireAuthStorageOutageIs500(t *testing.T) {
	tokens := NewTokenService([]byte("test-secret"), time.Hour)
	users := downResolver{err: errors.New("pg: connection refused")}
	router := newGateRouter(t, tokens, users)

	token, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A storage failure is not an authorization verdict.
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when user lookup fails, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Fatalf("storage detail leaked to the client: %s", w.Body.String())
	}
}
