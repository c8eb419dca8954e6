package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(50) DEFAULT '',
			email VARCHAR(255) DEFAULT '',
			birth_date DATE,
			registered_at DATE NOT NULL,
			preferences TEXT DEFAULT '',
			notes TEXT DEFAULT '',
			active_smoker BOOLEAN DEFAULT TRUE,
			total_spent NUMERIC(12,2) DEFAULT 0 CHECK (total_spent >= 0)
		)`,

		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) DEFAULT '',
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0)
		)`,

		`CREATE TABLE IF NOT EXISTS purchases (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER NOT NULL REFERENCES customers(id),
			product_id INTEGER NOT NULL REFERENCES products(id),
			purchase_date DATE NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			total NUMERIC(12,2) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			message TEXT DEFAULT '',
			target_date DATE NOT NULL,
			kind VARCHAR(20) NOT NULL,
			customer_id INTEGER REFERENCES customers(id),
			read BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(name)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_customer_id ON purchases(customer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_product_id ON purchases(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_date ON purchases(purchase_date)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_target_date ON notifications(target_date)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_customer_kind ON notifications(customer_id, kind, target_date)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
