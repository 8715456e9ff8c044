package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hris-etl/internal/config"
	"go-hris-etl/internal/middleware"
	"go-hris-etl/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var authCfg = config.AuthConfig{
	Secret:   "test-secret",
	Issuer:   "go-hris-etl",
	Audience: "go-hris-etl",
	TokenTTL: time.Hour,
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(authCfg.Secret))
	assert.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"tenant_id": "T1",
		"iss":       authCfg.Issuer,
		"aud":       authCfg.Audience,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(authCfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"gin":     c.GetString("tenant_id"),
			"context": contextutil.GetTenantID(c.Request.Context()),
		})
	})
	return r
}

func doAuth(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := setupAuthRouter()

	t.Run("valid token", func(t *testing.T) {
		w := doAuth(r, signToken(t, validClaims()))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"gin":"T1","context":"T1"}`, w.Body.String())
	})

	t.Run("cookie token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, validClaims())})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := doAuth(r, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()

		w := doAuth(r, signToken(t, claims))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("wrong audience", func(t *testing.T) {
		claims := validClaims()
		claims["aud"] = "someone-else"

		w := doAuth(r, signToken(t, claims))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("other"))

		w := doAuth(r, token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing tenant claim", func(t *testing.T) {
		claims := validClaims()
		delete(claims, "tenant_id")

		w := doAuth(r, signToken(t, claims))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})
}
