package service

import (
	"context"
	"fmt"

	repository "github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/database/postgres"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/pkg/telegram"

	"github.com/sirupsen/logrus"
)

// DueBirthdays is the reminder evaluator: a pure function of today's date,
// the customer list and the day's already-recorded notifications. It emits
// one birthday notification per customer whose birth month/day matches
// today and who has no birthday notification for today yet, read or unread.
// Running it twice over the same inputs plus its own output yields nothing,
// which is what makes the polling timer safe.
func DueBirthdays(today entity.Date, customers []*entity.Customer, existing []*entity.Notification) []*entity.Notification {
	notified := make(map[int64]bool)
	for _, notification := range existing {
		if notification.Kind == entity.NotificationKindBirthday && notification.CustomerID != nil {
			notified[*notification.CustomerID] = true
		}
	}

	var due []*entity.Notification
	for _, customer := range customers {
		if !customer.IsBirthday(today) {
			continue
		}
		if notified[customer.ID] {
			continue
		}
		due = append(due, entity.NewBirthdayNotification(customer, today))
	}

	return due
}

type reminderService struct {
	customerRepo     repository.CustomerRepository
	notificationRepo repository.NotificationRepository
	telegramBot      *telegram.Bot
	telegramChatID   string
}

// NewReminderService creates a new instance of ReminderService. The telegram
// bot is optional; without one, reminders are only stored.
func NewReminderService(
	customerRepo repository.CustomerRepository,
	notificationRepo repository.NotificationRepository,
	telegramBot *telegram.Bot,
	telegramChatID string,
) ReminderService {
	return &reminderService{
		customerRepo:     customerRepo,
		notificationRepo: notificationRepo,
		telegramBot:      telegramBot,
		telegramChatID:   telegramChatID,
	}
}

// CheckBirthdays evaluates and persists due birthday notifications for the
// given day and returns how many were created.
func (s *reminderService) CheckBirthdays(ctx context.Context, today entity.Date) (int, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load customers: %w", err)
	}

	existing, err := s.notificationRepo.GetByDate(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to load today's notifications: %w", err)
	}

	due := DueBirthdays(today, customers, existing)
	for _, notification := range due {
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return 0, fmt.Errorf("failed to create birthday notification: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"notification_id": notification.ID,
			"customer_id":     *notification.CustomerID,
		}).Info("Birthday notification created")

		if s.telegramBot != nil && s.telegramChatID != "" {
			go s.sendReminder(notification)
		}
	}

	return len(due), nil
}

func (s *reminderService) TodayNotifications(ctx context.Context, today entity.Date) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.GetUnreadByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, nil
}

func (s *reminderService) MarkNotificationRead(ctx context.Context, id int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// sendReminder pushes the reminder to the shop owner's chat. Best effort
// only, failures are logged and swallowed.
func (s *reminderService) sendReminder(notification *entity.Notification) {
	if err := s.telegramBot.Notify(s.telegramChatID, notification.Title, notification.Message); err != nil {
		logrus.Warnf("Failed to send birthday reminder: %v", err)
	}
}
