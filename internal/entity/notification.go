package entity

import (
	"fmt"
	"time"
)

type NotificationKind string

const (
	NotificationKindBirthday NotificationKind = "birthday"
	NotificationKindSale     NotificationKind = "sale"
)

type Notification struct {
	ID         int64            `json:"id" db:"id"`
	Title      string           `json:"title" db:"title"`
	Message    string           `json:"message" db:"message"`
	Date       Date             `json:"date" db:"target_date"`
	Kind       NotificationKind `json:"kind" db:"kind"`
	CustomerID *int64           `json:"customer_id,omitempty" db:"customer_id"`
	Read       bool             `json:"read" db:"read"`
	CreatedAt  time.Time        `json:"created_at" db:"created_at"`
}

const (
	BirthdayNotificationTitle = "Customer Birthday"
	SaleNotificationTitle     = "New sale recorded"
)

// NewBirthdayNotification builds the fixed-template birthday reminder for a
// customer on the given day.
func NewBirthdayNotification(customer *Customer, today Date) *Notification {
	id := customer.ID
	return &Notification{
		Title:      BirthdayNotificationTitle,
		Message:    fmt.Sprintf("Today is %s's birthday. Time to send them a congratulations message!", customer.Name),
		Date:       today,
		Kind:       NotificationKindBirthday,
		CustomerID: &id,
	}
}

// NewSaleNotification builds the same-day sale notification created at
// purchase recording time.
func NewSaleNotification(customer *Customer, product *Product, quantity int, total float64, date Date) *Notification {
	id := customer.ID
	return &Notification{
		Title:      SaleNotificationTitle,
		Message:    fmt.Sprintf("Sale of %dx %s to %s for $%.2f", quantity, product.Name, customer.Name, total),
		Date:       date,
		Kind:       NotificationKindSale,
		CustomerID: &id,
	}
}
