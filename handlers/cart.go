package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"restaurant-management-api/cart"
	"restaurant-management-api/config"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Carts owns every live take-order session. One cart per session; nothing
// here is persisted.
var Carts = cart.NewStore()

// CreateCartSession opens an empty take-order cart
func CreateCartSession(c *gin.Context) {
	sid, _ := Carts.Create()
	c.JSON(http.StatusCreated, gin.H{"session_id": sid})
}

// GetCartSession returns the cart lines in insertion order with the running
// total
func GetCartSession(c *gin.Context) {
	crt, err := Carts.Get(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart session not found"})
		return
	}
	respondCart(c, crt)
}

// DeleteCartSession tears the session down
func DeleteCartSession(c *gin.Context) {
	if err := Carts.Remove(c.Param("sid")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

type AddCartItemRequest struct {
	Kind string `json:"kind" binding:"required"` // "plat" or "boisson"
	ID   uint   `json:"id" binding:"required"`
}

// AddCartItem looks the catalog entry up and adds it to the cart: a repeat
// add bumps the line's quantity, a first add appends a fresh line
func AddCartItem(c *gin.Context) {
	crt, err := Carts.Get(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart session not found"})
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := lookupCatalogItem(req.Kind, req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	line := crt.AddItem(item)
	c.JSON(http.StatusOK, gin.H{
		"message":    item.Title + " has been added to your order",
		"line":       line,
		"item_count": crt.ItemCount(),
		"total":      crt.Total().StringFixed(2),
	})
}

// RemoveCartItem deletes the whole line regardless of its quantity. A
// later re-add starts over at quantity 1.
func RemoveCartItem(c *gin.Context) {
	crt, err := Carts.Get(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart session not found"})
		return
	}

	line, err := crt.RemoveItem(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    line.Title + " has been removed from your order",
		"item_count": crt.ItemCount(),
		"total":      crt.Total().StringFixed(2),
	})
}

// ClearCartSession empties the cart without closing the session
func ClearCartSession(c *gin.Context) {
	crt, err := Carts.Get(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart session not found"})
		return
	}
	crt.Clear()
	respondCart(c, crt)
}

type SubmitCartRequest struct {
	Type        models.OrderType `json:"type" binding:"required"`
	TableNumber string           `json:"table_number"`
	Notes       string           `json:"notes"`
}

// SubmitCart turns the cart into an order on the board and clears the cart
// once the order is confirmed persisted
func SubmitCart(c *gin.Context) {
	crt, err := Carts.Get(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart session not found"})
		return
	}

	var req SubmitCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type != models.TypeDineIn && req.Type != models.TypeTakeaway {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order type '" + string(req.Type) + "'"})
		return
	}
	if req.Type == models.TypeDineIn && req.TableNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Table number is required for dine-in orders"})
		return
	}

	lines := crt.Lines()
	if len(lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	var items []models.OrderItem
	for _, l := range lines {
		items = append(items, models.OrderItem{
			Name:     l.Title,
			Quantity: l.Quantity,
			Price:    l.UnitPrice.InexactFloat64(),
		})
	}

	order, err := createOrder(req.Type, req.TableNumber, req.Notes, items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// The cart only empties once the order is confirmed persisted
	crt.Clear()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order #" + order.OrderNumber + " placed",
		"order":   order,
	})
}

func respondCart(c *gin.Context, crt *cart.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"items":      crt.Lines(),
		"item_count": crt.ItemCount(),
		"total":      crt.Total().StringFixed(2),
	})
}

func cartKey(kind string, id uint) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

// lookupCatalogItem resolves a (kind, id) pair against the catalog tables.
// The line key namespaces the kind so dish and drink ids never collide.
func lookupCatalogItem(kind string, id uint) (cart.Item, error) {
	switch strings.ToLower(kind) {
	case "plat":
		var dish models.Dish
		if err := config.DB.First(&dish, id).Error; err != nil {
			return cart.Item{}, errors.New("Dish not found")
		}
		return cart.Item{
			ID:        cartKey("plat", dish.ID),
			Title:     dish.Name,
			UnitPrice: decimal.NewFromFloat(dish.Price),
		}, nil
	case "boisson":
		var drink models.Drink
		if err := config.DB.First(&drink, id).Error; err != nil {
			return cart.Item{}, errors.New("Drink not found")
		}
		return cart.Item{
			ID:        cartKey("boisson", drink.ID),
			Title:     drink.Name,
			UnitPrice: decimal.NewFromFloat(drink.Price),
		}, nil
	default:
		return cart.Item{}, errors.New("Unknown item kind '" + kind + "'")
	}
}
