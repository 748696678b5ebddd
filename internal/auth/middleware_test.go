package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-access-secret")

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userID"))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := setupRouter()
	userID := uuid.New()
	token, err := GenerateToken(userID, time.Minute, testSecret)
	require.NoError(t, err)

	t.Run("заголовок", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("query-параметр", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?token="+token, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("без токена", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "NO_AUTH_HEADER")
	})

	t.Run("чужой секрет", func(t *testing.T) {
		foreign, err := GenerateToken(userID, time.Minute, []byte("other"))
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})
}

func TestParseToken(t *testing.T) {
	userID := uuid.New()

	expired, err := GenerateToken(userID, -time.Minute, testSecret)
	require.NoError(t, err)
	_, err = ParseToken(expired, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	numeric := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Minute).Unix(),
	})
	signed, err := numeric.SignedString(testSecret)
	require.NoError(t, err)
	_, err = ParseToken(signed, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	valid, err := GenerateToken(userID, time.Minute, testSecret)
	require.NoError(t, err)
	got, err := ParseToken(valid, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
