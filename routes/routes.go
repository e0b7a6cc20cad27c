package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"justeat-backend/configs"
	"justeat-backend/controllers"
	"justeat-backend/middlewares"
	"justeat-backend/repository"
	"justeat-backend/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, notifier services.Notifier, kv services.KVCache) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	popSvc := services.NewPopularityService(orderRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo, orderRepo, popSvc, kv, cfg.MenuCacheTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, notifier)
	reviewSvc := services.NewReviewService(reviewRepo, restRepo, menuRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, popSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	ownerOrderCtrl := controllers.NewOwnerOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Public catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", menuCtrl.ListForRestaurant)
	r.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)
	r.GET("/menu-items/:id/popularity", menuCtrl.Popular)

	// Customer
	u := r.Group("/", auth())
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders", orderCtrl.Place)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)

		u.POST("/reviews", reviewCtrl.Create)
	}

	// Partner (owner/admin)
	partner := r.Group("/partner", auth("owner", "admin"))
	{
		partner.GET("/restaurants", restCtrl.ListMine)
		partner.POST("/restaurants", restCtrl.Create)

		partner.POST("/restaurants/:id/menu", menuCtrl.Create)
		partner.PATCH("/restaurants/:id/menu/:itemId", menuCtrl.Update)
		partner.DELETE("/restaurants/:id/menu/:itemId", menuCtrl.Delete)

		partner.GET("/restaurants/:id/orders", ownerOrderCtrl.List)
		partner.GET("/restaurants/:id/orders/:oid", ownerOrderCtrl.Detail)
		partner.PATCH("/orders/:id/status", ownerOrderCtrl.UpdateStatus)
	}
}
