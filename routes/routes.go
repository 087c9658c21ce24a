package routes

import (
	"restaurant-management-api/handlers"
	"restaurant-management-api/middleware"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog reads (no auth needed, consumed by the public site)
		public.GET("/menus", handlers.ListMenus)
		public.GET("/menus/:id", handlers.GetMenu)
		public.GET("/plats", handlers.ListDishes)
		public.GET("/plats/:id", handlers.GetDish)
		public.GET("/boissons", handlers.ListDrinks)
		public.GET("/boissons/:id", handlers.GetDrink)
		public.GET("/catalog", handlers.Catalog)

		// Table bookings
		public.POST("/reservations", handlers.CreateReservation)

		// Order workflow info (great for docs/Postman)
		public.GET("/order-statuses", handlers.GetStatusInfo)
	}

	// ── Staff dashboard routes ─────────────────────────────────────
	dashboard := r.Group("/api")
	dashboard.Use(middleware.AuthRequired())
	{
		dashboard.GET("/profile", handlers.GetProfile)

		// Order board
		dashboard.GET("/orders", handlers.ListOrders)
		dashboard.GET("/orders/:id", handlers.GetOrder)
		dashboard.POST("/orders", handlers.CreateOrder)
		dashboard.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
		dashboard.DELETE("/orders/:id", handlers.DeleteOrder)

		// Take-order cart sessions
		dashboard.POST("/cart/sessions", handlers.CreateCartSession)
		dashboard.GET("/cart/sessions/:sid", handlers.GetCartSession)
		dashboard.DELETE("/cart/sessions/:sid", handlers.DeleteCartSession)
		dashboard.POST("/cart/sessions/:sid/items", handlers.AddCartItem)
		dashboard.DELETE("/cart/sessions/:sid/items/:itemId", handlers.RemoveCartItem)
		dashboard.DELETE("/cart/sessions/:sid/items", handlers.ClearCartSession)
		dashboard.POST("/cart/sessions/:sid/submit", handlers.SubmitCart)

		// Bookings list
		dashboard.GET("/reservations", handlers.ListReservations)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
	{
		// Catalog management
		admin.POST("/menus", handlers.CreateMenu)
		admin.PUT("/menus/:id", handlers.UpdateMenu)
		admin.DELETE("/menus/:id", handlers.DeleteMenu)
		admin.POST("/plats", handlers.CreateDish)
		admin.PUT("/plats/:id", handlers.UpdateDish)
		admin.DELETE("/plats/:id", handlers.DeleteDish)
		admin.POST("/boissons", handlers.CreateDrink)
		admin.PUT("/boissons/:id", handlers.UpdateDrink)
		admin.DELETE("/boissons/:id", handlers.DeleteDrink)

		// Staff accounts
		admin.GET("/users", handlers.ListUsers)
		admin.POST("/users", handlers.CreateUser)
		admin.PUT("/users/:id", handlers.UpdateUser)
		admin.PATCH("/users/:id/active", handlers.ToggleUserActive)
		admin.DELETE("/users/:id", handlers.DeleteUser)
	}
}
