package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-app/controllers"
	"github.com/yeremiapane/reservation-app/middlewares"
	"github.com/yeremiapane/reservation-app/repository"
	"github.com/yeremiapane/reservation-app/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Repositories and services
	reservationRepo := repository.NewReservationRepository(db)
	tableRepo := repository.NewTableRepository(db)
	configRepo := repository.NewConfigRepository(db)
	itemRepo := repository.NewItemRepository(db)

	configSvc := services.NewConfigService(configRepo)
	reservationSvc := services.NewReservationService(reservationRepo)

	// Controllers
	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(tableRepo)
	reservationCtrl := controllers.NewReservationController(reservationSvc, reservationRepo, configSvc)
	configCtrl := controllers.NewConfigController(configSvc)
	itemCtrl := controllers.NewItemController(itemRepo)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// WebSocket event stream (token via query string)
	r.GET("/events/ws", middlewares.WebSocketAuthMiddleware(), controllers.EventsHandler)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES (JWT)
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		// Tables
		auth.POST("/tables", tableCtrl.CreateTable)
		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.GET("/tables/active", tableCtrl.GetActiveTables)
		auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
		auth.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
		auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
		auth.GET("/tables/:table_id/reservations", reservationCtrl.GetReservationsByTable)

		// Reservations
		auth.POST("/reservations", reservationCtrl.CreateReservation)
		auth.GET("/reservations", reservationCtrl.GetAllReservations)
		auth.GET("/reservations/range", reservationCtrl.GetReservationsByDateRange)
		auth.GET("/reservations/status/:status", reservationCtrl.GetReservationsByStatus)
		auth.GET("/reservations/:id", reservationCtrl.GetReservationByID)
		auth.GET("/reservations/:id/placement", reservationCtrl.GetReservationPlacement)
		auth.PATCH("/reservations/:id", reservationCtrl.UpdateReservation)
		auth.DELETE("/reservations/:id", reservationCtrl.DeleteReservation)

		// Inventory
		auth.POST("/items", itemCtrl.CreateItem)
		auth.GET("/items", itemCtrl.GetAllItems)
		auth.GET("/items/:item_id", itemCtrl.GetItemByID)
		auth.PATCH("/items/:item_id", itemCtrl.UpdateItem)
		auth.PATCH("/items/:item_id/stock", itemCtrl.UpdateItemStock)
		auth.DELETE("/items/:item_id", itemCtrl.DeleteItem)

		// System configuration (admin only)
		auth.GET("/configs", configCtrl.GetAllConfigs)
		auth.GET("/configs/business", configCtrl.GetBusinessSettings)
		auth.PUT("/configs/:key", middlewares.RequireRoles("admin"), configCtrl.UpsertConfig)
		auth.POST("/configs/init", middlewares.RequireRoles("admin"), configCtrl.InitDefaultConfigs)
	}

	return r
}
