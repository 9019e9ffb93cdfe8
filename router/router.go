package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/south-indian-kitchen/backend/controllers"
	"github.com/south-indian-kitchen/backend/middlewares"
	"github.com/south-indian-kitchen/backend/services"
	"github.com/south-indian-kitchen/backend/storage"
)

func SetupRouter(db *gorm.DB, store *storage.CartStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	checkout := services.NewCheckoutService(
		services.NewMockPaymentGateway(),
		services.NewGormOrderCreator(db),
	)

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db, store)
	orderCtrl := controllers.NewOrderController(db, store, checkout)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/login", userCtrl.Login)
	r.POST("/logout", userCtrl.Logout)

	r.GET("/categories", menuCtrl.GetAllCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/by-category", menuCtrl.GetMenuByCategory)
	r.GET("/menus/:dish_id", menuCtrl.GetMenuByID)

	// Event feed for cart badges and admin views
	r.GET("/events/ws", controllers.EventsHandler)

	// Cart and checkout are keyed by the browsing session
	session := r.Group("/", middlewares.CartSession())
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.PATCH("/cart/items/:dish_id", cartCtrl.UpdateItem)
		session.DELETE("/cart/items/:dish_id", cartCtrl.RemoveItem)
		session.DELETE("/cart", cartCtrl.ClearCart)

		session.POST("/checkout", orderCtrl.PlaceOrder)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/", middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		admin := auth.Group("/admin", middlewares.AdminOnly())
		{
			admin.GET("/dashboard", adminCtrl.GetDashboard)

			admin.GET("/orders", orderCtrl.GetAllOrders)
			admin.GET("/orders/:order_id", orderCtrl.GetOrderByID)
			admin.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

			admin.PUT("/menus/:dish_id", menuCtrl.ReplaceDish)
			admin.PATCH("/menus/:dish_id/availability", menuCtrl.SetAvailability)
		}
	}

	return r
}
