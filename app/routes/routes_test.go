package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MentorMountain/blog/app/auth"
	"github.com/MentorMountain/blog/app/config"
	"github.com/MentorMountain/blog/app/models"
	"github.com/MentorMountain/blog/app/repositories"
)

const testOrigin = "https://app.example.com"

func setupTestRouter(t *testing.T) (*mux.Router, *auth.HMACVerifier) {
	opts := badger.DefaultOptions(t.TempDir()).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	cfg := config.Config{
		Port:           8080,
		CollectionName: "test-blog",
		WebAppOrigin:   testOrigin,
		GatewayDomain:  "gateway.example.com",
		SharedSecret:   "test-secret",
	}

	verifier := auth.NewHMACVerifier(cfg.SharedSecret, cfg.GatewayDomain)
	repo := repositories.NewBadgerPostRepository(db, cfg.CollectionName)
	return SetupRoutes(cfg, verifier, repo), verifier
}

func mintToken(t *testing.T, verifier *auth.HMACVerifier, username, role string) string {
	token, err := verifier.Mint(auth.Identity{Username: username, Role: role}, time.Hour)
	require.NoError(t, err)
	return token
}

func TestRoutes(t *testing.T) {
	router, verifier := setupTestRouter(t)
	mentorToken := mintToken(t, verifier, "alice", auth.RoleMentor)

	t.Run("health needs no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"health":"OK"}`, w.Body.String())
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("blog endpoints reject missing token", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			req := httptest.NewRequest(method, "/api/blog", strings.NewReader(`{}`))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "method %s", method)
		}
	})

	t.Run("create then list round trip", func(t *testing.T) {
		payload := `{"title": "  Hi  ", "content": "World"}`
		req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+mentorToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Body.String())

		req = httptest.NewRequest(http.MethodGet, "/api/blog", nil)
		req.Header.Set("Authorization", "Bearer "+mentorToken)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var posts []models.Post
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "alice", posts[0].AuthorID)
		assert.Equal(t, "Hi", posts[0].Title)
		assert.Equal(t, "World", posts[0].Content)
		assert.NotEmpty(t, posts[0].PostID)
		assert.NotZero(t, posts[0].Date)
	})

	t.Run("student token cannot post", func(t *testing.T) {
		studentToken := mintToken(t, verifier, "bob", "student")

		payload := `{"title": "Hi", "content": "World"}`
		req := httptest.NewRequest(http.MethodPost, "/api/blog", strings.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+studentToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("student token can list", func(t *testing.T) {
		studentToken := mintToken(t, verifier, "bob", "student")

		req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
		req.Header.Set("Authorization", "Bearer "+studentToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign origin rejected on every path", func(t *testing.T) {
		for _, path := range []string{"/api/blog", "/api/health"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Origin", "https://evil.example.com")
			req.Header.Set("Authorization", "Bearer "+mentorToken)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code, "path %s", path)
		}
	})

	t.Run("allow-listed origin passes the gate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Authorization", "Bearer "+mentorToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight for the local dev origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/blog", nil)
		req.Header.Set("Origin", config.LocalDevOrigin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, config.LocalDevOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown api path gets JSON 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})
}
