package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/order"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
	"github.com/BruksfildServices01/cleaning-booking/internal/httpresp"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/timezone"
)

const performanceLimit = 5

// StatsHandler serves the admin dashboard figures. Months follow the
// service timezone.
type StatsHandler struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewStatsHandler(db *gorm.DB, loc *time.Location) *StatsHandler {
	return &StatsHandler{db: db, loc: loc, now: time.Now}
}

type DashboardStats struct {
	TotalRevenue            decimal.Decimal `json:"totalRevenue"`
	MonthRevenue            decimal.Decimal `json:"monthRevenue"`
	RevenueChangePercentage int             `json:"revenueChangePercentage"`
	NewClients              int64           `json:"newClients"`
	ClientGrowthPercentage  int             `json:"clientGrowthPercentage"`
	ActiveOrders            int64           `json:"activeOrders"`
	CompletedOrders         int64           `json:"completedOrders"`
	OrdersInProgress        int64           `json:"ordersInProgress"`
	CompletionRate          int             `json:"completionRate"`
}

type EmployeePerformance struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	CompletedOrders int64           `json:"completedOrders"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
}

// Stats compares the current calendar month with the previous one.
// Revenue counts paid orders only.
func (h *StatsHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.now().In(h.loc)
	monthStart := timezone.MonthStart(now, 0)
	lastMonthStart := timezone.MonthStart(now, 1)

	var (
		s   DashboardStats
		err error
	)

	paid := order.PaymentPaid.ID()
	inProgress := order.StatusInProgress.ID()
	completed := order.StatusCompleted.ID()

	if s.TotalRevenue, err = sumTotal(h.orders(ctx).Where("payment_status_id = ?", paid)); err != nil {
		httperr.Respond(c, err)
		return
	}
	if s.MonthRevenue, err = sumTotal(h.orders(ctx).
		Where("payment_status_id = ? AND created_at >= ?", paid, monthStart)); err != nil {
		httperr.Respond(c, err)
		return
	}
	lastRevenue, err := sumTotal(h.orders(ctx).
		Where("payment_status_id = ? AND created_at >= ? AND created_at < ?", paid, lastMonthStart, monthStart))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	s.RevenueChangePercentage = percentChange(s.MonthRevenue.InexactFloat64(), lastRevenue.InexactFloat64())

	clients := func() *gorm.DB {
		return h.db.WithContext(ctx).Model(&models.User{}).Where("role_id = ?", user.RoleClient.ID())
	}
	var lastClients, monthOrders int64
	counts := []struct {
		q   *gorm.DB
		dst *int64
	}{
		{clients().Where("created_at >= ?", monthStart), &s.NewClients},
		{clients().Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart), &lastClients},
		{h.orders(ctx).Where("status_id = ? AND date >= ?", inProgress, monthStart), &s.ActiveOrders},
		{h.orders(ctx).Where("status_id = ? AND date >= ?", completed, monthStart), &s.CompletedOrders},
		{h.orders(ctx).Where("status_id = ?", inProgress), &s.OrdersInProgress},
		{h.orders(ctx).Where("date >= ?", monthStart), &monthOrders},
	}
	for _, q := range counts {
		if err := q.q.Count(q.dst).Error; err != nil {
			httperr.Respond(c, err)
			return
		}
	}

	s.ClientGrowthPercentage = percentChange(float64(s.NewClients), float64(lastClients))
	if monthOrders > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedOrders) / float64(monthOrders) * 100))
	}

	c.JSON(http.StatusOK, s)
}

// EmployeePerformance ranks employees by completed orders, with the paid
// revenue of the orders assigned to them.
func (h *StatsHandler) EmployeePerformance(c *gin.Context) {
	var out []EmployeePerformance
	err := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Select(`users.id, users.name,
			COUNT(CASE WHEN orders.status_id = ? THEN 1 END) AS completed_orders,
			COALESCE(SUM(CASE WHEN orders.payment_status_id = ? THEN orders.total_price ELSE 0 END), 0) AS total_revenue`,
			order.StatusCompleted.ID(), order.PaymentPaid.ID()).
		Joins("LEFT JOIN orders ON orders.employee_id = users.id").
		Where("users.role_id = ?", user.RoleEmployee.ID()).
		Group("users.id, users.name").
		Order("completed_orders DESC, users.id ASC").
		Limit(performanceLimit).
		Scan(&out).Error
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *StatsHandler) orders(ctx context.Context) *gorm.DB {
	return h.db.WithContext(ctx).Model(&models.Order{})
}

func sumTotal(q *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := q.Select("SUM(total_price)").Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// percentChange rounds to whole percent. Growth from zero counts as 100.
func percentChange(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}
