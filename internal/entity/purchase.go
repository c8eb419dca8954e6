package entity

type Purchase struct {
	ID         int64 `json:"id" db:"id"`
	CustomerID int64 `json:"customer_id" db:"customer_id"`
	ProductID  int64 `json:"product_id" db:"product_id"`
	Date       Date  `json:"date" db:"purchase_date"`
	Quantity   int   `json:"quantity" db:"quantity"`
	// Total is quantity times the product's unit price at the time of sale,
	// stored redundantly so later price changes do not rewrite history.
	Total float64 `json:"total" db:"total"`
}

// PurchaseWithProduct joins a purchase with the product's current name for
// the customer purchase history listing.
type PurchaseWithProduct struct {
	Purchase
	ProductName string `json:"product_name" db:"product_name"`
}
