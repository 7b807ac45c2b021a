package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chudy3122/doradca-ai/internal/adapter/httpserver"
)

func TestRequireAuth_PassesUserID(t *testing.T) {
	var gotUID string
	h := httpserver.RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUID = httpserver.UserIDFrom(r)
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	req.Header.Set("Authorization", bearerFor(t, "user-42"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-42", gotUID)
}

func TestRequireAuth_RejectsMissingAndMalformed(t *testing.T) {
	h := httpserver.RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for name, header := range map[string]string{
		"missing":    "",
		"not-bearer": "Basic abc",
		"garbage":    "Bearer not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
		})
	}
}

func TestRequireAuth_RejectsWrongKeyAndExpired(t *testing.T) {
	h := httpserver.RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	wrongKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, httpserver.Claims{UID: "u1"}).
		SignedString([]byte("other-secret"))
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, httpserver.Claims{
		UID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	for name, tok := range map[string]string{"wrong-key": wrongKey, "expired": expired} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAnalyzeHandler_InvalidJSON(t *testing.T) {
	s := newTestServer(nil)
	h := httpserver.RequireAuth(testSecret)(s.AnalyzeHandler())
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{not json"))
	req.Header.Set("Authorization", bearerFor(t, "u1"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ARGUMENT")
}

func TestAnalyzeHandler_MissingTestID(t *testing.T) {
	s := newTestServer(nil)
	h := httpserver.RequireAuth(testSecret)(s.AnalyzeHandler())
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{}`))
	req.Header.Set("Authorization", bearerFor(t, "u1"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "testid")
}
