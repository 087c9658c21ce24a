package handlers

import (
	"net/http"

	"restaurant-management-api/config"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
)

// Catalog CRUD. Writes are request-first: the collection only changes once
// the database confirms the mutation, and every miss is an explicit 404.

// ── Menus ────────────────────────────────────────────────────────────────────

type MenuRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateMenu adds a menu section to the card
func CreateMenu(c *gin.Context) {
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu := models.Menu{Name: req.Name, Description: req.Description}
	if err := config.DB.Create(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu"})
		return
	}
	c.JSON(http.StatusCreated, menu)
}

// UpdateMenu edits an existing menu
func UpdateMenu(c *gin.Context) {
	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	menu.Name = req.Name
	menu.Description = req.Description
	if err := config.DB.Save(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// DeleteMenu removes a menu
func DeleteMenu(c *gin.Context) {
	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	if err := config.DB.Delete(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Dishes ───────────────────────────────────────────────────────────────────

type DishRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	MenuID      uint    `json:"menuId" binding:"required"`
}

// CreateDish adds a dish under an existing menu
func CreateDish(c *gin.Context) {
	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menu models.Menu
	if err := config.DB.First(&menu, req.MenuID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu does not exist"})
		return
	}

	dish := models.Dish{Name: req.Name, Description: req.Description, Price: req.Price, MenuID: req.MenuID}
	if err := config.DB.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add dish"})
		return
	}
	c.JSON(http.StatusCreated, dish)
}

// UpdateDish edits an existing dish
func UpdateDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}

	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menu models.Menu
	if err := config.DB.First(&menu, req.MenuID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu does not exist"})
		return
	}

	dish.Name = req.Name
	dish.Description = req.Description
	dish.Price = req.Price
	dish.MenuID = req.MenuID
	if err := config.DB.Save(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update dish"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

// DeleteDish removes a dish
func DeleteDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if err := config.DB.Delete(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dish"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Drinks ───────────────────────────────────────────────────────────────────

type DrinkRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Category    string  `json:"category"`
}

// CreateDrink adds a drink to the card
func CreateDrink(c *gin.Context) {
	var req DrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drink := models.Drink{Name: req.Name, Description: req.Description, Price: req.Price, Category: req.Category}
	if err := config.DB.Create(&drink).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add drink"})
		return
	}
	c.JSON(http.StatusCreated, drink)
}

// UpdateDrink edits an existing drink
func UpdateDrink(c *gin.Context) {
	var drink models.Drink
	if err := config.DB.First(&drink, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink not found"})
		return
	}

	var req DrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drink.Name = req.Name
	drink.Description = req.Description
	drink.Price = req.Price
	drink.Category = req.Category
	if err := config.DB.Save(&drink).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update drink"})
		return
	}
	c.JSON(http.StatusOK, drink)
}

// DeleteDrink removes a drink
func DeleteDrink(c *gin.Context) {
	var drink models.Drink
	if err := config.DB.First(&drink, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink not found"})
		return
	}
	if err := config.DB.Delete(&drink).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete drink"})
		return
	}
	c.Status(http.StatusNoContent)
}
