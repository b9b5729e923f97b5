package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamevault/backend/internal/models"
	"gamevault/backend/internal/testing/testdb"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func tokenFor(t *testing.T, id uint, role models.Role) string {
	t.Helper()
	token, err := jwt.GenerateToken(id, string(role), secret, time.Hour)
	require.NoError(t, err)
	return token
}

func serve(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", AuthMiddleware(secret), func(c *gin.Context) {
		id, ok := UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": c.GetString(RoleKey)})
	})

	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer garbage").Code)

	rec := serve(r, "Bearer "+tokenFor(t, 4, models.RoleUser))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":4,"role":"user"}`, rec.Body.String())
}

func TestRequireRoleUsesStoredRole(t *testing.T) {
	db := testdb.New(t)
	editor := models.User{Username: "ed", Email: "ed@example.com", PasswordHash: "x", Role: models.RoleEditor}
	player := models.User{Username: "pl", Email: "pl@example.com", PasswordHash: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&editor).Error)
	require.NoError(t, db.Create(&player).Error)

	r := gin.New()
	r.GET("/", AuthMiddleware(secret), RequireRole(db, models.RoleEditor), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, serve(r, "Bearer "+tokenFor(t, editor.ID, models.RoleEditor)).Code)
	// The token claims editor but the stored role wins.
	assert.Equal(t, http.StatusForbidden, serve(r, "Bearer "+tokenFor(t, player.ID, models.RoleEditor)).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer "+tokenFor(t, 999, models.RoleAdmin)).Code)
}
