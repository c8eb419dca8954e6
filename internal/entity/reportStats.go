package entity

import (
	"fmt"
	"time"
)

// ReportSummary holds the aggregate figures shown on the dashboard and in
// the monthly report. The headline figures are all-time; PeriodRevenue is
// the only field scoped to the requested month/year.
type ReportSummary struct {
	Month           time.Month     `json:"month"`
	Year            int            `json:"year"`
	TotalCustomers  int            `json:"total_customers"`
	ActiveCustomers int            `json:"active_customers"`
	TotalRevenue    float64        `json:"total_revenue"`
	PeriodRevenue   float64        `json:"period_revenue"`
	TopCustomers    []*TopCustomer `json:"top_customers"`
}

// TopCustomer is one row of the top-spenders ranking.
type TopCustomer struct {
	CustomerID int64   `json:"customer_id"`
	Name       string  `json:"name"`
	TotalSpent float64 `json:"total_spent"`
}

// ActiveRate returns the share of active smokers, 0.0 to 1.0.
func (s *ReportSummary) ActiveRate() float64 {
	if s.TotalCustomers == 0 {
		return 0.0
	}
	return float64(s.ActiveCustomers) / float64(s.TotalCustomers)
}

func (s *ReportSummary) String() string {
	return fmt.Sprintf(
		"Report %02d/%d: %d customers (%d active), revenue $%.2f",
		s.Month, s.Year, s.TotalCustomers, s.ActiveCustomers, s.TotalRevenue,
	)
}
