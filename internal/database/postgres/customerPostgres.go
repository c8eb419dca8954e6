package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, phone, email, birth_date, registered_at, preferences, notes, active_smoker, total_spent`

// Create inserts a new customer. TotalSpent always starts at zero; only
// purchase recording touches it afterwards.
func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (
			name, phone, email, birth_date, registered_at,
			preferences, notes, active_smoker, total_spent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Email,
		birthDateArg(customer.BirthDate),
		customer.RegisteredAt,
		customer.Preferences,
		customer.Notes,
		customer.ActiveSmoker,
	).Scan(&customer.ID)

	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	customer.TotalSpent = 0
	return nil
}

// Update overwrites all mutable fields. The registration date and the
// cumulative spend total are deliberately left untouched.
func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, phone = $2, email = $3, birth_date = $4,
		    preferences = $5, notes = $6, active_smoker = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Email,
		birthDateArg(customer.BirthDate),
		customer.Preferences,
		customer.Notes,
		customer.ActiveSmoker,
		customer.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrCustomerNotFound
	}

	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// GetAll returns every customer ordered by name ascending, id as the
// tie-break for equal names. The ordering is part of the contract: callers
// rely on it for deterministic listings and for tie-breaking in reports.
func (r *customerRepository) GetAll(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

// Search returns customers whose name, phone or email contains the term,
// case-insensitive, ordered by name ascending. Empty-term fallback happens
// at the presentation boundary, not here.
func (r *customerRepository) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		ORDER BY name ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

// GetBirthdaysInMonth returns customers with a recorded birth date in the
// given month, ordered by day-of-month ascending.
func (r *customerRepository) GetBirthdaysInMonth(ctx context.Context, month time.Month) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE birth_date IS NOT NULL
		  AND EXTRACT(MONTH FROM birth_date) = $1
		ORDER BY EXTRACT(DAY FROM birth_date) ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to query birthdays: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var customer entity.Customer
	var birthDate sql.NullTime

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.Email,
		&birthDate,
		&customer.RegisteredAt,
		&customer.Preferences,
		&customer.Notes,
		&customer.ActiveSmoker,
		&customer.TotalSpent,
	)
	if err != nil {
		return nil, err
	}

	if birthDate.Valid {
		d := entity.Date{Time: birthDate.Time}
		customer.BirthDate = &d
	}

	return &customer, nil
}

func collectCustomers(rows *sql.Rows) ([]*entity.Customer, error) {
	var customers []*entity.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

func birthDateArg(d *entity.Date) interface{} {
	if d == nil {
		return nil
	}
	return *d
}
