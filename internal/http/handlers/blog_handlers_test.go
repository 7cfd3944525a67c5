package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karthikc1125/simple-login/domain"
	"github.com/karthikc1125/simple-login/internal/http/middleware"
	"github.com/karthikc1125/simple-login/internal/infrastructure/repositories"
	"github.com/karthikc1125/simple-login/internal/mocks"
	"github.com/karthikc1125/simple-login/internal/services"
)

type blogTestEnv struct {
	router *gin.Engine
	repo   *mocks.MockBlogRepository
}

// setupBlogEnv mounts the blog routes with the same middleware chain the
// application uses: session lookup followed by role enforcement. Only the
// admin role may create posts.
func setupBlogEnv(t *testing.T) *blogTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := mocks.NewMockBlogRepository()
	h := NewBlogHandlers(services.NewBlogService(repo), zap.NewNop())

	sessions := repositories.NewMemorySessionStore()
	require.NoError(t, sessions.Put(context.Background(), "admin-token", &domain.SessionUser{
		ID: "admin-1", Email: "admin@x.com", Name: "Admin", Role: domain.RoleAdmin,
	}))
	require.NoError(t, sessions.Put(context.Background(), "user-token", &domain.SessionUser{
		ID: "user-1", Email: "u@x.com", Name: "User", Role: domain.RoleUser,
	}))

	enforcer := mocks.NewMockCasbinEnforcer()
	enforcer.EnforceFunc = func(rvals ...interface{}) (bool, error) {
		return rvals[0] == "role_admin", nil
	}
	cb := middleware.NewCasbinMW(services.NewPolicyServiceWithEnforcer(enforcer))
	mw := middleware.NewAuthMW(sessions)

	r := gin.New()
	blog := r.Group("/blog")
	blog.GET("", h.List)
	blog.GET("/:id", h.Get)
	blog.POST("", mw.RequireSession(), cb.Enforce(), h.Create)

	return &blogTestEnv{router: r, repo: repo}
}

func (env *blogTestEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestBlogHandlers_List(t *testing.T) {
	env := setupBlogEnv(t)
	env.repo.ListFunc = func(ctx context.Context) ([]*domain.BlogPost, error) {
		return []*domain.BlogPost{
			{ID: "p2", Title: "Newer", Slug: "newer", CreatedAt: time.Now()},
			{ID: "p1", Title: "Older", Slug: "older", CreatedAt: time.Now().Add(-time.Hour)},
		}, nil
	}

	w := env.do(t, http.MethodGet, "/blog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0]["id"])
}

func TestBlogHandlers_GetFallsBackToSlug(t *testing.T) {
	env := setupBlogEnv(t)
	env.repo.FindBySlugFunc = func(ctx context.Context, slug string) (*domain.BlogPost, error) {
		if slug == "welcome-post" {
			return &domain.BlogPost{ID: "p1", Title: "Welcome Post", Slug: slug}, nil
		}
		return nil, domain.ErrPostNotFound
	}

	w := env.do(t, http.MethodGet, "/blog/welcome-post", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	assert.Equal(t, "p1", post["id"])

	w = env.do(t, http.MethodGet, "/blog/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogHandlers_CreateAuthorization(t *testing.T) {
	env := setupBlogEnv(t)
	body := gin.H{"title": "Hello World", "content": "First post"}

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "NoToken", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "UnknownToken", token: "bogus", expectedStatus: http.StatusUnauthorized},
		{name: "NonAdmin", token: "user-token", expectedStatus: http.StatusForbidden},
		{name: "Admin", token: "admin-token", expectedStatus: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/blog", tt.token, body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBlogHandlers_CreateRecordsAuthorAndSlug(t *testing.T) {
	env := setupBlogEnv(t)

	var created *domain.BlogPost
	env.repo.CreateFunc = func(ctx context.Context, post *domain.BlogPost) error {
		created = post
		return nil
	}

	w := env.do(t, http.MethodPost, "/blog", "admin-token", gin.H{
		"title":   "City Guides: 2026!",
		"content": "What to see.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, created)
	assert.Equal(t, "city-guides-2026", created.Slug)
	assert.Equal(t, "admin-1", created.AuthorID)
	assert.Equal(t, "Admin", created.AuthorName)
}

func TestBlogHandlers_CreateValidation(t *testing.T) {
	env := setupBlogEnv(t)

	w := env.do(t, http.MethodPost, "/blog", "admin-token", gin.H{"title": "No content"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Title and content are required", body["error"])
}
