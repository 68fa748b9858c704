package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"findmylocal/models"
	"findmylocal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClientIDMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", ClientIDMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, GetClientID(c))
	})

	cases := []struct {
		name   string
		header string
		query  string
		code   int
	}{
		{"missing", "", "", http.StatusBadRequest},
		{"reserved prefix", "_users", "", http.StatusBadRequest},
		{"separator", "a:b", "", http.StatusBadRequest},
		{"too long", strings.Repeat("x", maxClientIDLen+1), "", http.StatusBadRequest},
		{"header", "browser-1", "", http.StatusOK},
		{"query fallback", "", "browser-2", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target := "/"
			if tc.query != "" {
				target += "?clientId=" + tc.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tc.header != "" {
				req.Header.Set(ClientIDHeader, tc.header)
			}
			w := serve(r, req)
			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				assert.Equal(t, tc.header+tc.query, w.Body.String())
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2, zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := func(ip string) int {
		rq := httptest.NewRequest(http.MethodGet, "/", nil)
		rq.Header.Set("X-Forwarded-For", ip)
		return serve(r, rq).Code
	}
	assert.Equal(t, http.StatusOK, req("10.0.0.1"))
	assert.Equal(t, http.StatusOK, req("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, req("10.0.0.1"))
	assert.Equal(t, http.StatusOK, req("10.0.0.2"))
}

func TestJWTAuthAndRole(t *testing.T) {
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(emailKey))
	})

	get := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return serve(r, req)
	}

	assert.Equal(t, http.StatusUnauthorized, get("").Code)
	assert.Equal(t, http.StatusUnauthorized, get("not-a-token").Code)

	userToken, err := utils.GenerateToken("u@example.com", "u@example.com", models.RoleUser, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(userToken).Code)

	adminToken, err := utils.GenerateToken("a@example.com", "a@example.com", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	w := get(adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@example.com", w.Body.String())
}

func TestMetricsMiddleware(t *testing.T) {
	metrics := utils.NewMetricsManager("test")
	r := gin.New()
	r.Use(MetricsMiddleware(metrics))
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(r, httptest.NewRequest(http.MethodGet, "/things/1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/things/2", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(metrics.HTTPRequestLatency))
}
