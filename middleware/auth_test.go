package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(jwtManager *utils.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(jwtManager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": AuthenticatedEmail(c)})
	})
	return r
}

func TestAuthMissingHeaderReturns401(t *testing.T) {
	router := newAuthRouter(utils.NewJWTManager("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMalformedTokenReturns403(t *testing.T) {
	router := newAuthRouter(utils.NewJWTManager("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthWrongSecretReturns403(t *testing.T) {
	other := utils.NewJWTManager("other-secret")
	token, err := other.GenerateToken("pat@example.com", time.Hour)
	require.NoError(t, err)

	router := newAuthRouter(utils.NewJWTManager("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthValidTokenPasses(t *testing.T) {
	jwtManager := utils.NewJWTManager("secret")
	token, err := jwtManager.GenerateToken("pat@example.com", time.Hour)
	require.NoError(t, err)

	router := newAuthRouter(jwtManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pat@example.com")
}

func TestAuthExpiredTokenReturns403(t *testing.T) {
	jwtManager := utils.NewJWTManager("secret")
	token, err := jwtManager.GenerateToken("pat@example.com", -time.Minute)
	require.NoError(t, err)

	router := newAuthRouter(jwtManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
