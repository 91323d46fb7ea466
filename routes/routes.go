package routes

import (
	"github.com/1997mahesh/dfcorner/configs"
	"github.com/1997mahesh/dfcorner/controllers"
	"github.com/1997mahesh/dfcorner/middlewares"
	"github.com/1997mahesh/dfcorner/pkg/metrics"
	"github.com/1997mahesh/dfcorner/repository"
	"github.com/1997mahesh/dfcorner/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. The DB handle is injected explicitly so tests can pass their own.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", metrics.Handler())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	statsSvc := services.NewStatsService(statsRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(statsSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Menu (public)
	r.GET("/menu", menuCtrl.GetMenu)

	// Orders (any authenticated user)
	o := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		o.POST("", orderCtrl.Place)
		o.GET("/my", orderCtrl.ListMy)
		o.GET("/:id", orderCtrl.Detail)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/stats", adminCtrl.Stats)
	}
}
