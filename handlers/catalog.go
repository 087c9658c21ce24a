package handlers

import (
	"fmt"
	"net/http"

	"restaurant-management-api/config"
	"restaurant-management-api/logger"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sampleFallback marks a response as built from the built-in sample data.
// Read endpoints degrade to the sample collections when the database errors
// so the dashboard stays usable offline; the header makes that visible.
func sampleFallback(c *gin.Context, resource string, err error) {
	logger.L().Warn("serving sample data", zap.String("resource", resource), zap.Error(err))
	c.Header("X-Sample-Data", "true")
}

// ListMenus returns the full menu collection (public)
func ListMenus(c *gin.Context) {
	var menus []models.Menu
	if err := config.DB.Find(&menus).Error; err != nil {
		sampleFallback(c, "menus", err)
		c.JSON(http.StatusOK, models.SampleMenus())
		return
	}
	c.JSON(http.StatusOK, menus)
}

// GetMenu returns a single menu
func GetMenu(c *gin.Context) {
	var menu models.Menu
	if err := config.DB.First(&menu, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// ListDishes returns all dishes (public)
func ListDishes(c *gin.Context) {
	var dishes []models.Dish
	query := config.DB
	if menuID := c.Query("menuId"); menuID != "" {
		query = query.Where("menu_id = ?", menuID)
	}
	if err := query.Find(&dishes).Error; err != nil {
		sampleFallback(c, "plats", err)
		c.JSON(http.StatusOK, models.SampleDishes())
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// GetDish returns a single dish
func GetDish(c *gin.Context) {
	var dish models.Dish
	if err := config.DB.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

// ListDrinks returns all drinks (public)
func ListDrinks(c *gin.Context) {
	var drinks []models.Drink
	query := config.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&drinks).Error; err != nil {
		sampleFallback(c, "boissons", err)
		c.JSON(http.StatusOK, models.SampleDrinks())
		return
	}
	c.JSON(http.StatusOK, drinks)
}

// GetDrink returns a single drink
func GetDrink(c *gin.Context) {
	var drink models.Drink
	if err := config.DB.First(&drink, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink not found"})
		return
	}
	c.JSON(http.StatusOK, drink)
}

// CatalogEntry is the flattened item list the take-order screen browses.
// IDs are namespaced ("plat:3", "boisson:2") so dish and drink ids never
// collide inside a cart.
type CatalogEntry struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Catalog merges dishes and drinks into one orderable list, optionally
// filtered by category. Dishes take their menu's name as category.
func Catalog(c *gin.Context) {
	var menus []models.Menu
	var dishes []models.Dish
	var drinks []models.Drink

	if err := config.DB.Find(&menus).Error; err != nil {
		sampleFallback(c, "catalog", err)
		menus = models.SampleMenus()
		dishes = models.SampleDishes()
		drinks = models.SampleDrinks()
	} else {
		config.DB.Find(&dishes)
		config.DB.Find(&drinks)
	}

	menuNames := make(map[uint]string, len(menus))
	for _, m := range menus {
		menuNames[m.ID] = m.Name
	}

	category := c.Query("category")
	var entries []CatalogEntry
	for _, d := range dishes {
		entry := CatalogEntry{
			ID:       fmt.Sprintf("plat:%d", d.ID),
			Title:    d.Name,
			Price:    d.Price,
			Category: menuNames[d.MenuID],
		}
		if category == "" || entry.Category == category {
			entries = append(entries, entry)
		}
	}
	for _, d := range drinks {
		entry := CatalogEntry{
			ID:       fmt.Sprintf("boisson:%d", d.ID),
			Title:    d.Name,
			Price:    d.Price,
			Category: d.Category,
		}
		if category == "" || entry.Category == category {
			entries = append(entries, entry)
		}
	}

	c.JSON(http.StatusOK, gin.H{"count": len(entries), "items": entries})
}
