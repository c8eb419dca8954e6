package entity

import (
	"time"
)

type Customer struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Phone        string `json:"phone" db:"phone"`
	Email        string `json:"email" db:"email"`
	BirthDate    *Date  `json:"birth_date,omitempty" db:"birth_date"`
	RegisteredAt Date   `json:"registered_at" db:"registered_at"`
	Preferences  string `json:"preferences" db:"preferences"`
	Notes        string `json:"notes" db:"notes"`
	ActiveSmoker bool   `json:"active_smoker" db:"active_smoker"`
	// TotalSpent is a running cache of the sum of this customer's purchase
	// totals. Only recordPurchase writes it.
	TotalSpent float64 `json:"total_spent" db:"total_spent"`
}

// Age returns the customer's age in full years as of the given date.
// Returns 0 when no birth date is recorded.
func (c *Customer) Age(today Date) int {
	if c.BirthDate == nil {
		return 0
	}
	birth := *c.BirthDate
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// NextBirthday returns the customer's birthday occurrence on or after today:
// this year's month/day if not yet passed, otherwise next year's.
func (c *Customer) NextBirthday(today Date) Date {
	birth := *c.BirthDate
	next := NewDate(today.Year(), birth.Month(), birth.Day())
	if next.Time.Before(today.Time) {
		next = NewDate(today.Year()+1, birth.Month(), birth.Day())
	}
	return next
}

// DaysUntilBirthday returns the number of days from today until the
// customer's next birthday. Zero when today is the birthday.
func (c *Customer) DaysUntilBirthday(today Date) int {
	next := c.NextBirthday(today)
	return int(next.Time.Sub(today.Time) / (24 * time.Hour))
}

// IsBirthday reports whether today matches the customer's birth month/day.
func (c *Customer) IsBirthday(today Date) bool {
	return c.BirthDate != nil && c.BirthDate.SameMonthDay(today)
}

// BirthdayEntry is a read-only projection for the birthdays-of-the-month
// listing. Age and DaysUntil are derived, never persisted.
type BirthdayEntry struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	BirthDate  Date   `json:"birth_date"`
	Age        int    `json:"age"`
	DaysUntil  int    `json:"days_until"`
}
