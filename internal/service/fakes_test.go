package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
)

// In-memory repository stand-ins for service tests. They mirror the
// postgres implementations' contracts: name-ordered listings, case
// insensitive search and the purchase/spend-total coupling.

type fakeCustomerRepo struct {
	nextID    int64
	customers map[int64]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.nextID++
	customer.ID = r.nextID
	stored := *customer
	r.customers[customer.ID] = &stored
	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	stored, ok := r.customers[customer.ID]
	if !ok {
		return entity.ErrCustomerNotFound
	}
	updated := *customer
	updated.TotalSpent = stored.TotalSpent
	r.customers[customer.ID] = &updated
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	stored, ok := r.customers[id]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeCustomerRepo) GetAll(_ context.Context) ([]*entity.Customer, error) {
	all := make([]*entity.Customer, 0, len(r.customers))
	for _, stored := range r.customers {
		copied := *stored
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

func (r *fakeCustomerRepo) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	all, _ := r.GetAll(ctx)
	needle := strings.ToLower(term)
	var matched []*entity.Customer
	for _, customer := range all {
		haystack := strings.ToLower(customer.Name + " " + customer.Phone + " " + customer.Email)
		if strings.Contains(haystack, needle) {
			matched = append(matched, customer)
		}
	}
	return matched, nil
}

func (r *fakeCustomerRepo) GetBirthdaysInMonth(ctx context.Context, month time.Month) ([]*entity.Customer, error) {
	all, _ := r.GetAll(ctx)
	var matched []*entity.Customer
	for _, customer := range all {
		if customer.BirthDate != nil && customer.BirthDate.Month() == month {
			matched = append(matched, customer)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].BirthDate.Day() < matched[j].BirthDate.Day()
	})
	return matched, nil
}

type fakeProductRepo struct {
	nextID   int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.nextID++
	product.ID = r.nextID
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	stored, ok := r.products[id]
	if !ok {
		return nil, entity.ErrProductNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeProductRepo) GetAll(_ context.Context) ([]*entity.Product, error) {
	all := make([]*entity.Product, 0, len(r.products))
	for _, stored := range r.products {
		copied := *stored
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})
	return all, nil
}

// fakePurchaseRepo couples purchase inserts with the customer spend total,
// the same way the postgres implementation does inside one transaction.
type fakePurchaseRepo struct {
	nextID    int64
	purchases []*entity.Purchase
	customers *fakeCustomerRepo
	products  *fakeProductRepo
}

func newFakePurchaseRepo(customers *fakeCustomerRepo, products *fakeProductRepo) *fakePurchaseRepo {
	return &fakePurchaseRepo{customers: customers, products: products}
}

func (r *fakePurchaseRepo) Create(_ context.Context, purchase *entity.Purchase) error {
	customer, ok := r.customers.customers[purchase.CustomerID]
	if !ok {
		return entity.ErrCustomerNotFound
	}
	r.nextID++
	purchase.ID = r.nextID
	stored := *purchase
	r.purchases = append(r.purchases, &stored)
	customer.TotalSpent += purchase.Total
	return nil
}

func (r *fakePurchaseRepo) GetByCustomerID(_ context.Context, customerID int64) ([]*entity.PurchaseWithProduct, error) {
	var history []*entity.PurchaseWithProduct
	for _, purchase := range r.purchases {
		if purchase.CustomerID != customerID {
			continue
		}
		entry := &entity.PurchaseWithProduct{Purchase: *purchase}
		if product, ok := r.products.products[purchase.ProductID]; ok {
			entry.ProductName = product.Name
		}
		history = append(history, entry)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[j].Date.Time.Before(history[i].Date.Time)
	})
	return history, nil
}

func (r *fakePurchaseRepo) SumTotalsInPeriod(_ context.Context, month time.Month, year int) (float64, error) {
	var sum float64
	for _, purchase := range r.purchases {
		if purchase.Date.Month() == month && purchase.Date.Year() == year {
			sum += purchase.Total
		}
	}
	return sum, nil
}

type fakeNotificationRepo struct {
	nextID        int64
	notifications []*entity.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.nextID++
	notification.ID = r.nextID
	notification.CreatedAt = time.Now()
	stored := *notification
	r.notifications = append(r.notifications, &stored)
	return nil
}

func (r *fakeNotificationRepo) GetByDate(_ context.Context, date entity.Date) ([]*entity.Notification, error) {
	var matched []*entity.Notification
	for _, notification := range r.notifications {
		if notification.Date.Equal(date) {
			copied := *notification
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (r *fakeNotificationRepo) GetUnreadByDate(ctx context.Context, date entity.Date) ([]*entity.Notification, error) {
	all, _ := r.GetByDate(ctx, date)
	var unread []*entity.Notification
	for _, notification := range all {
		if !notification.Read {
			unread = append(unread, notification)
		}
	}
	return unread, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id int64) error {
	for _, notification := range r.notifications {
		if notification.ID == id {
			notification.Read = true
		}
	}
	return nil
}
