package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cleaning-booking/internal/auth"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/i18n"
	"github.com/BruksfildServices01/cleaning-booking/internal/logging"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

func newEngine(t *testing.T, mw ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := i18n.NewDefault("ru")
	require.NoError(t, err)

	r := gin.New()
	r.Use(I18n(svc))
	r.Use(mw...)
	r.GET("/who", func(c *gin.Context) {
		p := auth.FromContext(c)
		if p == nil {
			c.String(http.StatusOK, "guest")
			return
		}
		c.String(http.StatusOK, p.Name)
	})
	return r
}

func issue(t *testing.T, tokens *auth.Tokens, role user.Role) string {
	t.Helper()
	raw, err := tokens.Issue(&models.User{ID: 7, Email: "ann@example.com", Name: "Ann", RoleID: role.ID()})
	require.NoError(t, err)
	return raw
}

func TestAuth(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := newEngine(t, Auth(tokens))
	raw := issue(t, tokens, user.RoleClient)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ann", w.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: raw})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"error_code":"unauthenticated"`)
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"error_code":"invalid_token"`)
	})
}

func TestOptionalAuth(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := newEngine(t, OptionalAuth(tokens))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))
	assert.Equal(t, "guest", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer broken")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "guest", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := newEngine(t, Auth(tokens), RequireRole(user.RoleAdmin))

	for role, want := range map[user.Role]int{
		user.RoleClient:   http.StatusForbidden,
		user.RoleEmployee: http.StatusForbidden,
		user.RoleAdmin:    http.StatusOK,
	} {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens, role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, want, w.Code, role.Name())
	}
}

func TestCORS(t *testing.T) {
	r := newEngine(t, CORS([]string{"https://app.example.com"}))

	req := httptest.NewRequest(http.MethodOptions, "/who", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestI18n(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, err := i18n.NewDefault("ru")
	require.NoError(t, err)

	cases := []struct {
		name, query, header, want string
	}{
		{"query wins", "?lang=en", "ru", "en"},
		{"unsupported query", "?lang=de", "en-US,en;q=0.9", "en"},
		{"header base language", "", "en-GB", "en"},
		{"default", "", "fr", "ru"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
			c.Request.Header.Set("Accept-Language", tc.header)

			I18n(svc)(c)

			assert.Equal(t, tc.want, c.GetString(i18n.LanguageContextKey))
		})
	}
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("1.1.1.1"))

	now = now.Add(10 * time.Minute)
	rl.Allow("3.3.3.3")
	assert.Len(t, rl.clients, 1)
}

func TestRateLimit_Middleware(t *testing.T) {
	r := newEngine(t, RateLimit(NewRateLimiter(0.001, 1)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who?lang=en", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(t, RequestLogger(logging.NewWithWriter(&buf, "info")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))

	assert.Contains(t, buf.String(), `"path":"/who"`)
	assert.Contains(t, buf.String(), `"status":200`)
}
