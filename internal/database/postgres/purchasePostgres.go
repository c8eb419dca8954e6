package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
)

type purchaseRepository struct {
	db *sql.DB
}

func NewPurchaseRepository(db *sql.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create inserts the purchase and increments the customer's cumulative spend
// total in the same transaction; either both happen or neither does.
func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO purchases (customer_id, product_id, purchase_date, quantity, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, query,
		purchase.CustomerID,
		purchase.ProductID,
		purchase.Date,
		purchase.Quantity,
		purchase.Total,
	).Scan(&purchase.ID)

	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	// the increment happens inside the database, never as a
	// read-modify-write in Go
	query = `UPDATE customers SET total_spent = total_spent + $1 WHERE id = $2`
	result, err := tx.ExecContext(ctx, query, purchase.Total, purchase.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to update customer spend total: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrCustomerNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByCustomerID returns the customer's purchases newest first, each joined
// with the product's name at query time.
func (r *purchaseRepository) GetByCustomerID(ctx context.Context, customerID int64) ([]*entity.PurchaseWithProduct, error) {
	query := `
		SELECT
			c.id, c.customer_id, c.product_id, c.purchase_date, c.quantity, c.total,
			p.name AS product_name
		FROM purchases c
		JOIN products p ON c.product_id = p.id
		WHERE c.customer_id = $1
		ORDER BY c.purchase_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*entity.PurchaseWithProduct
	for rows.Next() {
		var purchase entity.PurchaseWithProduct
		err := rows.Scan(
			&purchase.ID,
			&purchase.CustomerID,
			&purchase.ProductID,
			&purchase.Date,
			&purchase.Quantity,
			&purchase.Total,
			&purchase.ProductName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, &purchase)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchases: %w", err)
	}

	return purchases, nil
}

// SumTotalsInPeriod sums purchase totals for a calendar month. Feeds the
// period-revenue line of the report.
func (r *purchaseRepository) SumTotalsInPeriod(ctx context.Context, month time.Month, year int) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM purchases
		WHERE EXTRACT(MONTH FROM purchase_date) = $1
		  AND EXTRACT(YEAR FROM purchase_date) = $2
	`

	var sum float64
	err := r.db.QueryRowContext(ctx, query, int(month), year).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("failed to sum purchases for period: %w", err)
	}

	return sum, nil
}
