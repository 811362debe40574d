package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

// ReportService is read-only: every report is an aggregation over existing
// rows, nothing is mutated.
type ReportService struct {
	Repo          *repository.ReportRepository
	InventoryRepo *repository.InventoryRepository
	ResRepo       *repository.ReservationRepository
}

func NewReportService(
	repo *repository.ReportRepository,
	inventoryRepo *repository.InventoryRepository,
	resRepo *repository.ReservationRepository,
) *ReportService {
	return &ReportService{Repo: repo, InventoryRepo: inventoryRepo, ResRepo: resRepo}
}

type DailySalesReport struct {
	Date              string          `json:"date"`
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalPayments     int             `json:"total_payments"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	CancelledOrders   int             `json:"cancelled_orders"`
	PendingOrders     int             `json:"pending_orders"`
}

func (s *ReportService) DailySales(date string) (*DailySalesReport, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	orders, err := s.Repo.OrdersByDate(date)
	if err != nil {
		return nil, err
	}
	payments, err := s.Repo.CompletedPaymentsByDate(date)
	if err != nil {
		return nil, err
	}

	report := DailySalesReport{
		Date:              date,
		TotalOrders:       len(orders),
		TotalRevenue:      decimal.Zero,
		TotalPayments:     len(payments),
		TotalPaid:         decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	for i := range orders {
		report.TotalRevenue = report.TotalRevenue.Add(orders[i].TotalPrice)
		switch orders[i].Status {
		case entity.OrderCancelled:
			report.CancelledOrders++
		case entity.OrderPending, entity.OrderInProgress:
			report.PendingOrders++
		}
	}
	for i := range payments {
		report.TotalPaid = report.TotalPaid.Add(payments[i].FinalAmount)
	}
	// unrounded quotient; callers round for display if they care
	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue.
			Div(decimal.NewFromInt(int64(report.TotalOrders)))
	}
	return &report, nil
}

func (s *ReportService) InventoryAlerts() ([]entity.Inventory, error) {
	return s.InventoryRepo.LowStock()
}

type ReservationSummary struct {
	TotalReservations int    `json:"total_reservations"`
	Booked            int    `json:"booked"`
	Completed         int    `json:"completed"`
	Cancelled         int    `json:"cancelled"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
}

// ReservationSummaryRange counts reservations in the inclusive date range,
// broken down by status.
func (s *ReportService) ReservationSummaryRange(start, end string) (*ReservationSummary, error) {
	start, err := normalizeDate(start)
	if err != nil {
		return nil, err
	}
	end, err = normalizeDate(end)
	if err != nil {
		return nil, err
	}

	reservations, err := s.ResRepo.InDateRange(start, end)
	if err != nil {
		return nil, err
	}

	summary := ReservationSummary{
		TotalReservations: len(reservations),
		StartDate:         start,
		EndDate:           end,
	}
	for i := range reservations {
		switch reservations[i].Status {
		case entity.ReservationBooked:
			summary.Booked++
		case entity.ReservationCompleted:
			summary.Completed++
		case entity.ReservationCancelled:
			summary.Cancelled++
		}
	}
	return &summary, nil
}

type PopularItem struct {
	MenuItemID    uint            `json:"menu_item_id"`
	MenuItemName  string          `json:"menu_item_name"`
	Category      string          `json:"category"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// PopularItems ranks a date's order lines by quantity sold, top 10.
func (s *ReportService) PopularItems(date string) ([]PopularItem, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	items, err := s.Repo.OrderItemsByOrderDate(date)
	if err != nil {
		return nil, err
	}

	byItem := map[uint]*PopularItem{}
	for i := range items {
		p, ok := byItem[items[i].MenuItemID]
		if !ok {
			p = &PopularItem{
				MenuItemID:   items[i].MenuItemID,
				MenuItemName: items[i].MenuItem.Name,
				Category:     items[i].MenuItem.Category,
				TotalRevenue: decimal.Zero,
			}
			byItem[items[i].MenuItemID] = p
		}
		p.TotalQuantity += items[i].Quantity
		p.TotalRevenue = p.TotalRevenue.Add(items[i].Subtotal())
	}

	out := make([]PopularItem, 0, len(byItem))
	for _, p := range byItem {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalQuantity != out[j].TotalQuantity {
			return out[i].TotalQuantity > out[j].TotalQuantity
		}
		return out[i].MenuItemName < out[j].MenuItemName
	})
	if len(out) > 10 {
		out = out[:10]
	}
	return out, nil
}

// normalizeDate defaults blank to today and rejects malformed input.
func normalizeDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(repository.DateLayout), nil
	}
	if _, err := time.Parse(repository.DateLayout, date); err != nil {
		return "", apperr.Validation("date must be in YYYY-MM-DD format")
	}
	return date, nil
}
