package service

import (
	"context"
	"fmt"

	repository "github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/database/postgres"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/pkg/telegram"

	"github.com/sirupsen/logrus"
)

// RecordSaleRequest represents the sale form data. A zero date means today.
type RecordSaleRequest struct {
	CustomerID int64        `json:"customer_id" binding:"required"`
	ProductID  int64        `json:"product_id" binding:"required"`
	Date       *entity.Date `json:"date,omitempty"`
	Quantity   int          `json:"quantity" binding:"required"`
}

type saleService struct {
	purchaseRepo     repository.PurchaseRepository
	customerRepo     repository.CustomerRepository
	productRepo      repository.ProductRepository
	notificationRepo repository.NotificationRepository
	telegramBot      *telegram.Bot
	telegramChatID   string
}

// NewSaleService creates a new instance of SaleService. The telegram bot is
// optional; without one, sale alerts are only stored.
func NewSaleService(
	purchaseRepo repository.PurchaseRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	notificationRepo repository.NotificationRepository,
	telegramBot *telegram.Bot,
	telegramChatID string,
) SaleService {
	return &saleService{
		purchaseRepo:     purchaseRepo,
		customerRepo:     customerRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		telegramBot:      telegramBot,
		telegramChatID:   telegramChatID,
	}
}

// RecordSale stores the purchase with the total frozen at the product's
// current unit price, bumps the customer's cumulative spend and raises a
// same-day sale notification.
func (s *saleService) RecordSale(ctx context.Context, req *RecordSaleRequest) (*entity.Purchase, error) {
	if req.Quantity <= 0 {
		return nil, entity.ErrInvalidQuantity
	}

	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	date := entity.Today()
	if req.Date != nil {
		date = *req.Date
	}

	purchase := &entity.Purchase{
		CustomerID: customer.ID,
		ProductID:  product.ID,
		Date:       date,
		Quantity:   req.Quantity,
		Total:      product.Price * float64(req.Quantity),
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"purchase_id": purchase.ID,
		"customer_id": customer.ID,
		"product_id":  product.ID,
		"quantity":    purchase.Quantity,
		"total":       purchase.Total,
	}).Info("Sale recorded")

	// The sale notification targets the purchase day, not the creation day,
	// so backdated sales don't pop up in today's list.
	notification := entity.NewSaleNotification(customer, product, purchase.Quantity, purchase.Total, date)
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		// the purchase is already committed; a lost notification must not
		// turn the recorded sale into an error
		logrus.Warnf("Failed to create sale notification: %v", err)
	} else if s.telegramBot != nil && s.telegramChatID != "" {
		go s.sendSaleAlert(notification)
	}

	return purchase, nil
}

// sendSaleAlert pushes the notification to the shop owner's chat. Best
// effort only, failures are logged and swallowed.
func (s *saleService) sendSaleAlert(notification *entity.Notification) {
	if err := s.telegramBot.Notify(s.telegramChatID, notification.Title, notification.Message); err != nil {
		logrus.Warnf("Failed to send sale alert: %v", err)
	}
}
