package service

import (
	"context"
	"testing"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleFixture(t *testing.T) (*fakeCustomerRepo, *fakeProductRepo, *fakePurchaseRepo, *fakeNotificationRepo, SaleService) {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	productRepo := newFakeProductRepo()
	purchaseRepo := newFakePurchaseRepo(customerRepo, productRepo)
	notificationRepo := newFakeNotificationRepo()
	svc := NewSaleService(purchaseRepo, customerRepo, productRepo, notificationRepo, nil, "")
	return customerRepo, productRepo, purchaseRepo, notificationRepo, svc
}

// TestRecordSale tests recording a purchase end to end
func TestRecordSale(t *testing.T) {
	ctx := context.Background()
	customerRepo, productRepo, _, notificationRepo, svc := newSaleFixture(t)

	ana := &entity.Customer{Name: "Ana", ActiveSmoker: true}
	require.NoError(t, customerRepo.Create(ctx, ana))
	cigar := &entity.Product{Name: "Cuban Cigar", Category: "Cigar", Price: 45.00}
	require.NoError(t, productRepo.Create(ctx, cigar))

	date := entity.NewDate(2024, time.July, 10)
	purchase, err := svc.RecordSale(ctx, &RecordSaleRequest{
		CustomerID: ana.ID,
		ProductID:  cigar.ID,
		Date:       &date,
		Quantity:   2,
	})
	require.NoError(t, err)
	require.NotNil(t, purchase)

	// total frozen at unit price times quantity
	assert.Equal(t, 90.00, purchase.Total)
	assert.True(t, purchase.Date.Equal(date))

	// cumulative spend moved by exactly the purchase total
	stored, err := customerRepo.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 90.00, stored.TotalSpent)

	// sale notification targets the purchase day
	notifications, err := notificationRepo.GetByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.SaleNotificationTitle, notifications[0].Title)
	assert.Equal(t, "Sale of 2x Cuban Cigar to Ana for $90.00", notifications[0].Message)
	assert.Equal(t, entity.NotificationKindSale, notifications[0].Kind)
}

// TestRecordSaleSpendIsolation tests that a sale only moves the buyer's total
func TestRecordSaleSpendIsolation(t *testing.T) {
	ctx := context.Background()
	customerRepo, productRepo, _, _, svc := newSaleFixture(t)

	ana := &entity.Customer{Name: "Ana"}
	bruno := &entity.Customer{Name: "Bruno"}
	require.NoError(t, customerRepo.Create(ctx, ana))
	require.NoError(t, customerRepo.Create(ctx, bruno))
	lighter := &entity.Product{Name: "Zippo Lighter", Category: "Accessory", Price: 85.00}
	require.NoError(t, productRepo.Create(ctx, lighter))

	_, err := svc.RecordSale(ctx, &RecordSaleRequest{
		CustomerID: ana.ID,
		ProductID:  lighter.ID,
		Quantity:   1,
	})
	require.NoError(t, err)

	storedAna, err := customerRepo.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 85.00, storedAna.TotalSpent)

	storedBruno, err := customerRepo.GetByID(ctx, bruno.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, storedBruno.TotalSpent)
}

// TestRecordSaleAccumulates tests repeated sales summing the spend total
func TestRecordSaleAccumulates(t *testing.T) {
	ctx := context.Background()
	customerRepo, productRepo, _, _, svc := newSaleFixture(t)

	ana := &entity.Customer{Name: "Ana"}
	require.NoError(t, customerRepo.Create(ctx, ana))
	tobacco := &entity.Product{Name: "Rope Tobacco", Category: "Loose tobacco", Price: 8.00}
	require.NoError(t, productRepo.Create(ctx, tobacco))

	for i := 0; i < 3; i++ {
		_, err := svc.RecordSale(ctx, &RecordSaleRequest{
			CustomerID: ana.ID,
			ProductID:  tobacco.ID,
			Quantity:   2,
		})
		require.NoError(t, err)
	}

	stored, err := customerRepo.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 48.00, stored.TotalSpent)
}

// failingNotificationRepo rejects every insert.
type failingNotificationRepo struct {
	*fakeNotificationRepo
}

func (r *failingNotificationRepo) Create(_ context.Context, _ *entity.Notification) error {
	return entity.ErrDatabaseError
}

// TestRecordSaleSurvivesNotificationFailure tests that a committed purchase
// is reported as recorded even when the notification insert fails
func TestRecordSaleSurvivesNotificationFailure(t *testing.T) {
	ctx := context.Background()
	customerRepo := newFakeCustomerRepo()
	productRepo := newFakeProductRepo()
	purchaseRepo := newFakePurchaseRepo(customerRepo, productRepo)
	svc := NewSaleService(purchaseRepo, customerRepo, productRepo, &failingNotificationRepo{newFakeNotificationRepo()}, nil, "")

	ana := &entity.Customer{Name: "Ana"}
	require.NoError(t, customerRepo.Create(ctx, ana))
	cigar := &entity.Product{Name: "Cuban Cigar", Category: "Cigar", Price: 45.00}
	require.NoError(t, productRepo.Create(ctx, cigar))

	purchase, err := svc.RecordSale(ctx, &RecordSaleRequest{
		CustomerID: ana.ID,
		ProductID:  cigar.ID,
		Quantity:   2,
	})
	require.NoError(t, err)
	require.NotNil(t, purchase)
	assert.Equal(t, 90.00, purchase.Total)

	stored, err := customerRepo.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 90.00, stored.TotalSpent)
}

// TestRecordSaleValidation tests the rejected sale requests
func TestRecordSaleValidation(t *testing.T) {
	ctx := context.Background()
	customerRepo, productRepo, _, _, svc := newSaleFixture(t)

	ana := &entity.Customer{Name: "Ana"}
	require.NoError(t, customerRepo.Create(ctx, ana))
	cigar := &entity.Product{Name: "Cuban Cigar", Category: "Cigar", Price: 45.00}
	require.NoError(t, productRepo.Create(ctx, cigar))

	tests := []struct {
		name    string
		req     *RecordSaleRequest
		wantErr error
	}{
		{
			name:    "zero quantity",
			req:     &RecordSaleRequest{CustomerID: ana.ID, ProductID: cigar.ID, Quantity: 0},
			wantErr: entity.ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			req:     &RecordSaleRequest{CustomerID: ana.ID, ProductID: cigar.ID, Quantity: -1},
			wantErr: entity.ErrInvalidQuantity,
		},
		{
			name:    "unknown customer",
			req:     &RecordSaleRequest{CustomerID: 999, ProductID: cigar.ID, Quantity: 1},
			wantErr: entity.ErrCustomerNotFound,
		},
		{
			name:    "unknown product",
			req:     &RecordSaleRequest{CustomerID: ana.ID, ProductID: 999, Quantity: 1},
			wantErr: entity.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchase, err := svc.RecordSale(ctx, tt.req)
			assert.Nil(t, purchase)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// nothing moved despite the failed attempts
	stored, err := customerRepo.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.TotalSpent)
}
