package routes

import (
	"github.com/icedmoch/doorsmashorpass/configs"
	"github.com/icedmoch/doorsmashorpass/controllers"
	"github.com/icedmoch/doorsmashorpass/middlewares"
	"github.com/icedmoch/doorsmashorpass/repository"
	"github.com/icedmoch/doorsmashorpass/services"
	"github.com/icedmoch/doorsmashorpass/utils"
	"github.com/icedmoch/doorsmashorpass/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	mealRepo := repository.NewMealRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Order event feed
	hub := ws.NewOrderHub(orderRepo)
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(foodRepo)
	mealSvc := services.NewMealService(mealRepo, foodRepo, orderRepo)
	nutritionSvc := services.NewNutritionService(userRepo, mealRepo)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, hub)
	deliverySvc := services.NewDeliveryService(db, orderRepo, hub)
	paymentSvc := services.NewPaymentService(
		db, orderRepo, userRepo,
		utils.NewStripeClient(cfg.StripeSecretKey),
		cfg.FrontendOrigin,
	)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	mealCtrl := controllers.NewMealController(mealSvc)
	nutritionCtrl := controllers.NewNutritionController(nutritionSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/me/payout-account", authCtrl.ConnectPayout)
	}

	// Menu (public browse)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/locations", menuCtrl.Locations)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Meals + nutrition
	meals := r.Group("/meals", auth())
	{
		meals.POST("", mealCtrl.Log)
		meals.GET("", mealCtrl.ListByDate)
		meals.PATCH("/:id", mealCtrl.UpdateServings)
		meals.DELETE("/:id", mealCtrl.Delete)
	}
	nutrition := r.Group("/nutrition", auth())
	{
		nutrition.GET("/goals", nutritionCtrl.Goals)
		nutrition.GET("/summary", nutritionCtrl.DailySummary)
	}

	// Cart
	cart := r.Group("/cart", auth())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQty)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth())
	{
		orders.POST("", orderCtrl.Checkout)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/cancel", orderCtrl.Cancel)
		orders.POST("/:id/meals", mealCtrl.LogOrder)
		orders.POST("/:id/payment", paymentCtrl.CreateSession)
		orders.GET("/:id/payment", paymentCtrl.Verify)
	}

	// Peer-to-peer deliveries
	deliveries := r.Group("/deliveries", auth())
	{
		deliveries.GET("/available", deliveryCtrl.ListAvailable)
		deliveries.GET("/mine", deliveryCtrl.ListMine)
		deliveries.POST("/:id/claim", deliveryCtrl.Claim)
		deliveries.POST("/:id/unclaim", deliveryCtrl.Unclaim)
		deliveries.POST("/:id/complete", deliveryCtrl.Complete)
	}

	// Kitchen stage (staff/admin)
	staff := r.Group("/staff", auth("staff", "admin"))
	{
		staff.PATCH("/orders/:id/advance", orderCtrl.Advance)
	}

	// Live order status
	r.GET("/ws/orders/:id", auth(), hub.HandleWebSocket)
}
