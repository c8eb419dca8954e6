package repository

import (
	"context"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
)

type CustomerRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)

	// Query operations
	GetAll(ctx context.Context) ([]*entity.Customer, error)
	Search(ctx context.Context, term string) ([]*entity.Customer, error)
	GetBirthdaysInMonth(ctx context.Context, month time.Month) ([]*entity.Customer, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetAll(ctx context.Context) ([]*entity.Product, error)
}

type PurchaseRepository interface {
	// Create inserts the purchase and increments the customer's cumulative
	// spend total by the purchase total in the same transaction.
	Create(ctx context.Context, purchase *entity.Purchase) error

	GetByCustomerID(ctx context.Context, customerID int64) ([]*entity.PurchaseWithProduct, error)
	SumTotalsInPeriod(ctx context.Context, month time.Month, year int) (float64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// GetByDate returns every notification targeted at the day, read or
	// not. The reminder evaluator needs both to stay idempotent.
	GetByDate(ctx context.Context, date entity.Date) ([]*entity.Notification, error)
	GetUnreadByDate(ctx context.Context, date entity.Date) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}
