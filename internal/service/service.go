package service

import (
	"context"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
)

type CustomerService interface {
	// Basic operations
	CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req *UpdateCustomerRequest) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)

	// Listings
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	SearchCustomers(ctx context.Context, term string) ([]*entity.Customer, error)
	GetPurchases(ctx context.Context, customerID int64) ([]*entity.PurchaseWithProduct, error)
	BirthdaysInMonth(ctx context.Context, month time.Month, today entity.Date) ([]*entity.BirthdayEntry, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// EnsureSeedCatalog inserts the fixed initial catalog, only when the
	// products table is empty. Safe to call on every startup.
	EnsureSeedCatalog(ctx context.Context) error
}

// SaleService records purchases and raises the matching same-day sale
// notification.
type SaleService interface {
	RecordSale(ctx context.Context, req *RecordSaleRequest) (*entity.Purchase, error)
}

// ReminderService derives and persists due birthday notifications and
// serves the day's notification list.
type ReminderService interface {
	CheckBirthdays(ctx context.Context, today entity.Date) (int, error)
	TodayNotifications(ctx context.Context, today entity.Date) ([]*entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
}

type ReportService interface {
	Summary(ctx context.Context, month time.Month, year int) (*entity.ReportSummary, error)
}
