package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/auth"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/internal/testdb"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "role": c.GetString("role")})
}

func serve(r *gin.Engine, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateToken(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := gin.New()
	r.GET("/", ValidateToken(tokens), whoami)

	token, _, err := tokens.Issue("u1", auth.RoleUser)
	require.NoError(t, err)

	w := serve(r, "Authorization", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)

	w = serve(r, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusUnauthorized, serve(r, "Authorization", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Authorization", "garbage").Code)

	other, _, err := auth.NewTokens("other", time.Hour).Issue("u1", auth.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Authorization", other).Code)
}

func TestOptionalToken(t *testing.T) {
	tokens := auth.NewTokens("secret", time.Hour)
	r := gin.New()
	r.GET("/", OptionalToken(tokens), whoami)

	token, _, err := tokens.Issue("u1", auth.RoleUser)
	require.NoError(t, err)

	assert.Contains(t, serve(r, "Authorization", token).Body.String(), `"user_id":"u1"`)

	w := serve(r, "Authorization", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)

	assert.Equal(t, http.StatusOK, serve(r, "", "").Code)
}

func TestActiveAccount(t *testing.T) {
	db := testdb.Open(t)
	active := models.User{ID: "u1", Username: "neo", Email: "neo@example.com", PasswordHash: "x", Status: models.UserActive}
	inactive := models.User{ID: "u2", Username: "cypher", Email: "cypher@example.com", PasswordHash: "x", Status: models.UserInactive}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&inactive).Error)

	tokens := auth.NewTokens("secret", time.Hour)
	r := gin.New()
	r.GET("/", ValidateToken(tokens), ActiveAccount(db), whoami)

	issue := func(userID string) string {
		token, _, err := tokens.Issue(userID, auth.RoleUser)
		require.NoError(t, err)
		return token
	}

	assert.Equal(t, http.StatusOK, serve(r, "Authorization", issue("u1")).Code)
	assert.Equal(t, http.StatusForbidden, serve(r, "Authorization", issue("u2")).Code)
	assert.Equal(t, http.StatusOK, serve(r, "Authorization", issue("ghost")).Code)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "u1").Update("status", models.UserInactive).Error)
	assert.Equal(t, http.StatusForbidden, serve(r, "Authorization", issue("u1")).Code)
}

func TestValidateAPIKey(t *testing.T) {
	r := gin.New()
	r.GET("/", ValidateAPIKey("k3y"), whoami)
	assert.Equal(t, http.StatusOK, serve(r, "X-API-KEY", "k3y").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "X-API-KEY", "nope").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "X-API-KEY", "").Code)

	locked := gin.New()
	locked.GET("/", ValidateAPIKey(""), whoami)
	assert.Equal(t, http.StatusUnauthorized, serve(locked, "X-API-KEY", "").Code)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/", whoami)
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, "", "")
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "/missing", entries[1].ContextMap()["path"])
}
