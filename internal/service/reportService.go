package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	repository "github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/database/postgres"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"

	"github.com/sirupsen/logrus"
)

// TopCustomerCount is how many customers the spend ranking shows.
const TopCustomerCount = 5

// ReportCache caches built summaries. A nil cache disables caching.
type ReportCache interface {
	Get(ctx context.Context, month time.Month, year int) (*entity.ReportSummary, error)
	Set(ctx context.Context, summary *entity.ReportSummary) error
}

// BuildSummary aggregates the report figures from a customer list that is
// already ordered by name ascending; that input order is the tie-breaker of
// the top-spenders ranking.
func BuildSummary(customers []*entity.Customer, month time.Month, year int) *entity.ReportSummary {
	summary := &entity.ReportSummary{
		Month:          month,
		Year:           year,
		TotalCustomers: len(customers),
		TopCustomers:   []*entity.TopCustomer{},
	}

	for _, customer := range customers {
		if customer.ActiveSmoker {
			summary.ActiveCustomers++
		}
		summary.TotalRevenue += customer.TotalSpent
	}

	ranked := make([]*entity.Customer, len(customers))
	copy(ranked, customers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})

	top := len(ranked)
	if top > TopCustomerCount {
		top = TopCustomerCount
	}
	for _, customer := range ranked[:top] {
		summary.TopCustomers = append(summary.TopCustomers, &entity.TopCustomer{
			CustomerID: customer.ID,
			Name:       customer.Name,
			TotalSpent: customer.TotalSpent,
		})
	}

	return summary
}

type reportService struct {
	customerRepo repository.CustomerRepository
	purchaseRepo repository.PurchaseRepository
	cache        ReportCache
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	customerRepo repository.CustomerRepository,
	purchaseRepo repository.PurchaseRepository,
	cache ReportCache,
) ReportService {
	return &reportService{
		customerRepo: customerRepo,
		purchaseRepo: purchaseRepo,
		cache:        cache,
	}
}

// Summary builds the report for a month/year. The headline figures are
// all-time (they read the cumulative spend totals); period_revenue is the
// one month-scoped number.
func (s *reportService) Summary(ctx context.Context, month time.Month, year int) (*entity.ReportSummary, error) {
	if s.cache != nil {
		if summary, err := s.cache.Get(ctx, month, year); err == nil && summary != nil {
			return summary, nil
		}
	}

	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	summary := BuildSummary(customers, month, year)

	periodRevenue, err := s.purchaseRepo.SumTotalsInPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to sum period revenue: %w", err)
	}
	summary.PeriodRevenue = periodRevenue

	logrus.WithFields(logrus.Fields{
		"active_rate":    summary.ActiveRate(),
		"period_revenue": summary.PeriodRevenue,
	}).Info(summary.String())

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			logrus.Warnf("Failed to cache report summary: %v", err)
		}
	}

	return summary, nil
}
