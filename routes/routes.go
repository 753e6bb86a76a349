package routes

import (
	"github.com/Fer-Urbina/LittleLemon/configs"
	"github.com/Fer-Urbina/LittleLemon/controllers"
	"github.com/Fer-Urbina/LittleLemon/entity"
	"github.com/Fer-Urbina/LittleLemon/middlewares"
	"github.com/Fer-Urbina/LittleLemon/repository"
	"github.com/Fer-Urbina/LittleLemon/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catRepo, menuRepo, cfg.PageSize)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerCtrl := controllers.NewManagerController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(orderSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)
	managerOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleManager, entity.RoleAdmin)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)
	deliveryOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleDelivery, entity.RoleAdmin)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Catalog: anyone may browse, managers mutate
	r.GET("/category", catalogCtrl.ListCategories)
	r.POST("/category", managerOnly, catalogCtrl.CreateCategory)
	r.DELETE("/category/:id", managerOnly, catalogCtrl.DeleteCategory)
	r.GET("/menu-items", catalogCtrl.ListMenuItems)
	r.POST("/menu-items", managerOnly, catalogCtrl.CreateMenuItem)
	r.GET("/menu-items/:id", catalogCtrl.GetMenuItem)
	r.PUT("/menu-items/:id", managerOnly, catalogCtrl.UpdateMenuItem)
	r.DELETE("/menu-items/:id", managerOnly, catalogCtrl.DeleteMenuItem)
	r.GET("/get-all-categories", catalogCtrl.ListCategories)
	r.GET("/get-all-menu-items", catalogCtrl.ListAllMenuItems)
	r.POST("/update-item-of-the-day/:id", managerOnly, catalogCtrl.UpdateItemOfTheDay)

	// Group management
	r.POST("/groups/manager/user", adminOnly, managerCtrl.PromoteToManager)
	r.POST("/assign-to-delivery-crew", managerOnly, managerCtrl.AssignToDeliveryCrew)

	// Order workflow (manager)
	r.GET("/assign-order-to-delivery/:order_id", managerOnly, managerCtrl.OrderDetail)
	r.POST("/assign-order-to-delivery/:order_id", managerOnly, managerCtrl.AssignOrder)

	// Delivery crew
	r.GET("/get-orders-for-delivery", deliveryOnly, deliveryCtrl.ListAssigned)
	r.POST("/mark-order-as-delivered/:order_id", authed, deliveryCtrl.MarkDelivered)

	// Cart + checkout (any authenticated user)
	r.POST("/add-to-cart", authed, cartCtrl.Add)
	r.GET("/get-cart-items", authed, cartCtrl.List)
	r.DELETE("/delete-cart-item", authed, cartCtrl.Clear)
	r.POST("/create-order", authed, orderCtrl.Create)
	r.GET("/get-customer-orders", authed, orderCtrl.ListForCustomer)
}
