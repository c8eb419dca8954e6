package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	repository "github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/database/postgres"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
)

// CreateCustomerRequest represents the registration form data.
type CreateCustomerRequest struct {
	Name         string       `json:"name" binding:"required,max=255"`
	Phone        string       `json:"phone" binding:"max=50"`
	Email        string       `json:"email" binding:"max=255"`
	BirthDate    *entity.Date `json:"birth_date,omitempty"`
	Preferences  string       `json:"preferences"`
	Notes        string       `json:"notes"`
	ActiveSmoker *bool        `json:"active_smoker,omitempty"`
}

// UpdateCustomerRequest carries the mutable customer fields. Nil fields are
// left as they are; the cumulative spend total is never accepted here.
type UpdateCustomerRequest struct {
	Name         *string      `json:"name,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Email        *string      `json:"email,omitempty"`
	BirthDate    *entity.Date `json:"birth_date,omitempty"`
	Preferences  *string      `json:"preferences,omitempty"`
	Notes        *string      `json:"notes,omitempty"`
	ActiveSmoker *bool        `json:"active_smoker,omitempty"`
}

type customerService struct {
	customerRepo repository.CustomerRepository
	purchaseRepo repository.PurchaseRepository
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	purchaseRepo repository.PurchaseRepository,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, entity.ErrNameRequired
	}

	// New customers smoke until told otherwise, matching the registration
	// form default.
	activeSmoker := true
	if req.ActiveSmoker != nil {
		activeSmoker = *req.ActiveSmoker
	}

	customer := &entity.Customer{
		Name:         name,
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		BirthDate:    req.BirthDate,
		RegisteredAt: entity.Today(),
		Preferences:  req.Preferences,
		Notes:        req.Notes,
		ActiveSmoker: activeSmoker,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, entity.ErrNameRequired
		}
		customer.Name = name
	}
	if req.Phone != nil {
		customer.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		customer.Email = strings.TrimSpace(*req.Email)
	}
	if req.BirthDate != nil {
		customer.BirthDate = req.BirthDate
	}
	if req.Preferences != nil {
		customer.Preferences = *req.Preferences
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.ActiveSmoker != nil {
		customer.ActiveSmoker = *req.ActiveSmoker
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

func (s *customerService) SearchCustomers(ctx context.Context, term string) ([]*entity.Customer, error) {
	customers, err := s.customerRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	return customers, nil
}

func (s *customerService) GetPurchases(ctx context.Context, customerID int64) ([]*entity.PurchaseWithProduct, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases: %w", err)
	}

	return purchases, nil
}

// BirthdaysInMonth returns the month's birthday customers with their derived
// age and countdown, ordered by day-of-month.
func (s *customerService) BirthdaysInMonth(ctx context.Context, month time.Month, today entity.Date) ([]*entity.BirthdayEntry, error) {
	customers, err := s.customerRepo.GetBirthdaysInMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get birthdays: %w", err)
	}

	entries := make([]*entity.BirthdayEntry, 0, len(customers))
	for _, customer := range customers {
		entries = append(entries, &entity.BirthdayEntry{
			CustomerID: customer.ID,
			Name:       customer.Name,
			BirthDate:  *customer.BirthDate,
			Age:        customer.Age(today),
			DaysUntil:  customer.DaysUntilBirthday(today),
		})
	}

	return entries, nil
}
