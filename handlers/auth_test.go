package handlers

import (
	"net/http"
	"testing"

	"restaurant-management-api/config"
	"restaurant-management-api/middleware"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authRouter() *gin.Engine {
	config.JWTSecret = []byte("test-secret")
	return newRouter(func(r *gin.Engine) {
		r.POST("/api/auth/register", Register)
		r.POST("/api/auth/login", Login)
		r.GET("/api/profile", middleware.AuthRequired(), GetProfile)
	})
}

func createAccount(t *testing.T, email, password string, active bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Name:         "Test Account",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleWaiter,
		Active:       active,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	r := authRouter()

	w := perform(r, "POST", "/api/auth/register", gin.H{
		"name":     "Jean Dupont",
		"email":    "jean@bellaitalia.com",
		"password": "secret123",
		"role":     "manager",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decode(t, w)["token"])

	w = perform(r, "POST", "/api/auth/login", gin.H{
		"email":    "jean@bellaitalia.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "manager", user["role"])

	// Login stamps last_login
	var stored models.User
	require.NoError(t, config.DB.Where("email = ?", "jean@bellaitalia.com").First(&stored).Error)
	assert.NotNil(t, stored.LastLogin)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	r := authRouter()
	createAccount(t, "jean@bellaitalia.com", "secret123", true)

	w := perform(r, "POST", "/api/auth/register", gin.H{
		"name":     "Impostor",
		"email":    "jean@bellaitalia.com",
		"password": "secret123",
		"role":     "staff",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	setupTestDB(t)
	r := authRouter()

	w := perform(r, "POST", "/api/auth/register", gin.H{
		"name":     "Jean Dupont",
		"email":    "jean@bellaitalia.com",
		"password": "secret123",
		"role":     "owner",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	r := authRouter()
	createAccount(t, "jean@bellaitalia.com", "secret123", true)

	w := perform(r, "POST", "/api/auth/login", gin.H{
		"email":    "jean@bellaitalia.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	setupTestDB(t)
	r := authRouter()

	w := perform(r, "POST", "/api/auth/login", gin.H{
		"email":    "nobody@bellaitalia.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	setupTestDB(t)
	r := authRouter()
	createAccount(t, "sophie@bellaitalia.com", "secret123", false)

	w := perform(r, "POST", "/api/auth/login", gin.H{
		"email":    "sophie@bellaitalia.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	setupTestDB(t)
	r := authRouter()
	user := createAccount(t, "jean@bellaitalia.com", "secret123", true)

	w := perform(r, "GET", "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)

	req := authedRequest(r, "GET", "/api/profile", token)
	require.Equal(t, http.StatusOK, req.Code)
	profile := decode(t, req)["user"].(map[string]any)
	assert.Equal(t, "jean@bellaitalia.com", profile["email"])
	// Password hash never leaves the server
	assert.NotContains(t, profile, "password_hash")
	assert.NotContains(t, req.Body.String(), "$2a$")
}
