package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/configs"
	"github.com/Makanak1/Restaurant-management-system/controllers"
	"github.com/Makanak1/Restaurant-management-system/repository"
	"github.com/Makanak1/Restaurant-management-system/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	resRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Controllers
	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo))
	tableCtrl := controllers.NewTableController(services.NewTableService(db, tableRepo))
	resCtrl := controllers.NewReservationController(services.NewReservationService(resRepo, tableRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(db, orderRepo, menuRepo, tableRepo))
	paymentCtrl := controllers.NewPaymentController(services.NewPaymentService(db, paymentRepo, orderRepo, tableRepo, cfg.TaxRate))
	inventoryCtrl := controllers.NewInventoryController(services.NewInventoryService(inventoryRepo))
	reportCtrl := controllers.NewReportController(services.NewReportService(reportRepo, inventoryRepo, resRepo))

	m := r.Group("/menu")
	{
		m.GET("", menuCtrl.List)
		m.POST("", menuCtrl.Create)
		m.GET("/categories", menuCtrl.Categories)
		m.GET("/available", menuCtrl.Available)
		m.GET("/:id", menuCtrl.Detail)
		m.PUT("/:id", menuCtrl.Update)
		m.DELETE("/:id", menuCtrl.Delete)
	}

	t := r.Group("/tables")
	{
		t.GET("", tableCtrl.List)
		t.POST("", tableCtrl.Create)
		t.GET("/available", tableCtrl.Available)
		t.GET("/by_capacity", tableCtrl.ByCapacity)
		t.GET("/:id", tableCtrl.Detail)
		t.PUT("/:id", tableCtrl.Update)
		t.DELETE("/:id", tableCtrl.Delete)
		t.POST("/:id/mark_available", tableCtrl.MarkAvailable)
		t.POST("/:id/mark_unavailable", tableCtrl.MarkUnavailable)
	}

	rv := r.Group("/reservations")
	{
		rv.GET("", resCtrl.List)
		rv.POST("", resCtrl.Create)
		rv.GET("/today", resCtrl.Today)
		rv.GET("/upcoming", resCtrl.Upcoming)
		rv.GET("/:id", resCtrl.Detail)
		rv.PUT("/:id", resCtrl.Update)
		rv.DELETE("/:id", resCtrl.Delete)
		rv.POST("/:id/cancel", resCtrl.Cancel)
		rv.POST("/:id/complete", resCtrl.Complete)
	}

	o := r.Group("/orders")
	{
		o.GET("", orderCtrl.List)
		o.POST("", orderCtrl.Create)
		o.GET("/active", orderCtrl.Active)
		o.GET("/today", orderCtrl.Today)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id", orderCtrl.Update)
		o.DELETE("/:id", orderCtrl.Delete)
		o.PATCH("/:id/update_status", orderCtrl.UpdateStatus)
		o.POST("/:id/add_item", orderCtrl.AddItem)
		o.DELETE("/:id/remove_item", orderCtrl.RemoveItem)
	}

	p := r.Group("/payments")
	{
		p.GET("", paymentCtrl.List)
		p.POST("", paymentCtrl.Create)
		p.GET("/today", paymentCtrl.Today)
		p.GET("/summary", paymentCtrl.Summary)
		p.GET("/:id", paymentCtrl.Detail)
		p.PUT("/:id", paymentCtrl.Update)
		p.DELETE("/:id", paymentCtrl.Delete)
		p.POST("/:id/complete_payment", paymentCtrl.Complete)
		p.POST("/:id/refund", paymentCtrl.Refund)
	}

	i := r.Group("/inventory")
	{
		i.GET("", inventoryCtrl.List)
		i.POST("", inventoryCtrl.Create)
		i.GET("/low_stock", inventoryCtrl.LowStock)
		i.GET("/:id", inventoryCtrl.Detail)
		i.PUT("/:id", inventoryCtrl.Update)
		i.DELETE("/:id", inventoryCtrl.Delete)
		i.PATCH("/:id/update_quantity", inventoryCtrl.UpdateQuantity)
		i.POST("/:id/restock", inventoryCtrl.Restock)
	}

	rep := r.Group("/reports")
	{
		rep.GET("/daily_sales", reportCtrl.DailySales)
		rep.GET("/inventory_alerts", reportCtrl.InventoryAlerts)
		rep.GET("/reservation_summary", reportCtrl.ReservationSummary)
		rep.GET("/popular_items", reportCtrl.PopularItems)
	}
}
