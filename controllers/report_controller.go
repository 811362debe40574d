package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Makanak1/Restaurant-management-system/pkg/resp"
	"github.com/Makanak1/Restaurant-management-system/services"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{Service: s}
}

// GET /reports/daily_sales?date=
func (rc *ReportController) DailySales(c *gin.Context) {
	report, err := rc.Service.DailySales(c.Query("date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /reports/inventory_alerts
func (rc *ReportController) InventoryAlerts(c *gin.Context) {
	items, err := rc.Service.InventoryAlerts()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /reports/reservation_summary?start_date=&end_date=
func (rc *ReportController) ReservationSummary(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	start := c.DefaultQuery("start_date", today)
	end := c.DefaultQuery("end_date", today)
	summary, err := rc.Service.ReservationSummaryRange(start, end)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /reports/popular_items?date=
func (rc *ReportController) PopularItems(c *gin.Context) {
	items, err := rc.Service.PopularItems(c.Query("date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}
