package handlers

import (
	"net/http"
	"regexp"

	"restaurant-management-api/config"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{9,15}$`) // 9 to 15 digits
)

type ReservationRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	DateHeure string `json:"dateHeure" binding:"required"`
	Guests    int    `json:"guests" binding:"gte=0"`
	Notes     string `json:"notes"`
}

// CreateReservation books a table from the public site. Email and phone
// formats are validated before anything is persisted.
func CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address"})
		return
	}
	if !phonePattern.MatchString(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid phone number"})
		return
	}

	reservation := models.Reservation{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		DateHeure: req.DateHeure,
		Guests:    req.Guests,
		Notes:     req.Notes,
	}
	if err := config.DB.Create(&reservation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reservation"})
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// ListReservations returns all bookings for the dashboard
func ListReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := config.DB.Order("date_heure asc").Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}
