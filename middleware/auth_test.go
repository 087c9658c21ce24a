package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-management-api/config"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", AuthRequired())
	if len(roles) > 0 {
		group.Use(RoleRequired(roles...))
	}
	group.GET("/secure", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	config.JWTSecret = []byte("test-secret")
	r := protectedRouter()

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user := &models.User{ID: 7, Email: "marie@bellaitalia.com", Role: models.RoleWaiter}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	w = get(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuthRejectsForeignSignature(t *testing.T) {
	config.JWTSecret = []byte("test-secret")
	user := &models.User{ID: 7, Email: "marie@bellaitalia.com", Role: models.RoleWaiter}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	// A token minted under one secret is worthless under another
	config.JWTSecret = []byte("rotated-secret")
	w := get(protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired(t *testing.T) {
	config.JWTSecret = []byte("test-secret")
	r := protectedRouter(models.RoleAdmin, models.RoleManager)

	waiter, err := GenerateToken(&models.User{ID: 2, Email: "marie@bellaitalia.com", Role: models.RoleWaiter})
	require.NoError(t, err)
	w := get(r, waiter)
	assert.Equal(t, http.StatusForbidden, w.Code)

	manager, err := GenerateToken(&models.User{ID: 1, Email: "jean@bellaitalia.com", Role: models.RoleManager})
	require.NoError(t, err)
	w = get(r, manager)
	assert.Equal(t, http.StatusOK, w.Code)
}
