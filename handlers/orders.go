package handlers

import (
	"fmt"
	"net/http"

	"restaurant-management-api/config"
	"restaurant-management-api/models"
	"restaurant-management-api/pricing"
	"restaurant-management-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListOrders returns the order board for one fulfillment channel, filtered
// by status. status "all" (or empty) bypasses the status predicate. The
// per-status badge counts are recomputed from the full channel collection on
// every call, so they always equal the live filtered cardinality.
func ListOrders(c *gin.Context) {
	orderType := models.OrderType(c.DefaultQuery("type", string(models.TypeDineIn)))
	if orderType != models.TypeDineIn && orderType != models.TypeTakeaway {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order type '" + string(orderType) + "'"})
		return
	}

	status := models.OrderStatus(c.DefaultQuery("status", "all"))
	if status != "all" && !statemachine.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status '" + string(status) + "'"})
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("type = ?", orderType).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	// Badge counts over the full channel collection
	summary := gin.H{"all": len(orders)}
	for _, s := range statemachine.AllStatuses() {
		n := 0
		for _, o := range orders {
			if o.Status == s {
				n++
			}
		}
		summary[string(s)] = n
	}

	filtered := orders
	if status != "all" {
		filtered = filtered[:0]
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(filtered),
		"summary": summary,
		"orders":  filtered,
	})
}

// GetOrder returns a single order with its payment summary. Subtotal and
// tax are recomputed from the item lines for display; the stored totals
// stay the creation-time snapshots.
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"payment_summary": pricing.Summarize(order.Items).Rendered(),
	})
}

type CreateOrderRequest struct {
	Type        models.OrderType `json:"type" binding:"required"`
	TableNumber string           `json:"table_number"`
	Notes       string           `json:"notes"`
	Items       []struct {
		Name     string  `json:"name" binding:"required"`
		Quantity int     `json:"quantity" binding:"required,min=1"`
		Price    float64 `json:"price" binding:"gte=0"`
	} `json:"items" binding:"required,min=1"`
}

// CreateOrder places an order directly on the board. The take-order screen
// normally goes through the cart submit endpoint instead.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
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

	var items []models.OrderItem
	for _, it := range req.Items {
		items = append(items, models.OrderItem{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}

	order, err := createOrder(req.Type, req.TableNumber, req.Notes, items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order #" + order.OrderNumber + " placed",
		"order":   order,
	})
}

// createOrder persists a new order with its creation-time total snapshots.
// TotalItems and TotalPrice are denormalized on purpose: they are computed
// here once and never recomputed from the item lines afterwards.
func createOrder(orderType models.OrderType, tableNumber, notes string, items []models.OrderItem) (*models.Order, error) {
	summary := pricing.Summarize(items)

	order := models.Order{
		UID:         uuid.NewString(),
		Type:        orderType,
		TableNumber: tableNumber,
		Notes:       notes,
		Items:       items,
		TotalItems:  pricing.ItemCount(items),
		TotalPrice:  summary.Total.Round(2).InexactFloat64(),
		Status:      models.StatusNew,
	}
	if orderType == models.TypeTakeaway {
		order.TableNumber = ""
	}

	if err := config.DB.Create(&order).Error; err != nil {
		return nil, err
	}

	// Display number derives from the backend id once it is known
	order.OrderNumber = fmt.Sprintf("%04d", order.ID)
	if err := config.DB.Model(&order).Update("order_number", order.OrderNumber).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus re-marks an order on the board. Re-marking with the
// current status is a legal no-op; an unknown order id is an explicit 404
// rather than a silent success.
func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order #" + order.OrderNumber + " is now " + statemachine.StatusLabel(req.Status),
		"order_id":        order.ID,
		"order_number":    order.OrderNumber,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}

// DeleteOrder removes an order from the board. Confirmation happens on the
// client; the server removes unconditionally once asked.
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if err := config.DB.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order #" + order.OrderNumber + " deleted successfully",
	})
}

// GetStatusInfo documents the order workflow: statuses, display labels and
// the transition table
func GetStatusInfo(c *gin.Context) {
	statuses := make([]gin.H, 0, len(statemachine.AllStatuses()))
	for _, s := range statemachine.AllStatuses() {
		statuses = append(statuses, gin.H{
			"status": s,
			"label":  statemachine.StatusLabel(s),
			"next":   statemachine.ValidTransitionsFrom(s),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":    statuses,
		"transitions": statemachine.GetAllTransitions(),
	})
}
