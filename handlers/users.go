package handlers

import (
	"net/http"
	"strings"

	"restaurant-management-api/config"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Staff account management. Email uniqueness is checked on create and on
// edit (excluding the edited record); a duplicate leaves the collection
// untouched. Deletion is immediate and irreversible.

// ListUsers returns staff accounts, optionally filtered by activity or a
// free-text search over name, email and role
func ListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB

	switch c.Query("tab") {
	case "active":
		query = query.Where("active = ?", true)
	case "inactive":
		query = query.Where("active = ?", false)
	}

	if err := query.Order("created_at asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := users[:0]
		for _, u := range users {
			if strings.Contains(strings.ToLower(u.Name), search) ||
				strings.Contains(strings.ToLower(u.Email), search) ||
				strings.Contains(strings.ToLower(string(u.Role)), search) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type CreateUserRequest struct {
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	Password        string          `json:"password" binding:"required,min=6"`
	ConfirmPassword string          `json:"confirm_password" binding:"required"`
	Role            models.UserRole `json:"role"`
}

// CreateUser adds a staff account from the user management screen
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	if !models.ValidRoles[role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin, manager, staff, waiter, or chef"})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already used by another account"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User " + user.Name + " added successfully",
		"user":    user,
	})
}

type UpdateUserRequest struct {
	Name   string          `json:"name" binding:"required"`
	Email  string          `json:"email" binding:"required,email"`
	Role   models.UserRole `json:"role" binding:"required"`
	Active *bool           `json:"active"`
}

// UpdateUser edits name, email, role and activity of a staff account
func UpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRoles[req.Role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin, manager, staff, waiter, or chef"})
		return
	}

	// Email must stay unique, the edited record excluded
	var existing models.User
	if result := config.DB.Where("email = ? AND id <> ?", req.Email, user.ID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already used by another account"})
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	if req.Active != nil {
		user.Active = *req.Active
	}
	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User " + user.Name + " updated successfully",
		"user":    user,
	})
}

// ToggleUserActive flips the active flag without touching anything else
func ToggleUserActive(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.Active = !user.Active
	if err := config.DB.Model(&user).Update("active", user.Active).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	state := "deactivated"
	if user.Active {
		state = "activated"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Account of " + user.Name + " has been " + state,
		"user":    user,
	})
}

// DeleteUser removes a staff account
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User " + user.Name + " deleted successfully"})
}
