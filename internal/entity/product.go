package entity

type Product struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Category string  `json:"category" db:"category"`
	Price    float64 `json:"price" db:"price"`
}

// SeedCatalog is the fixed initial product catalog, inserted once when the
// products table is empty at first initialization.
func SeedCatalog() []Product {
	return []Product{
		{Name: "Marlboro Cigarettes", Category: "Cigarette", Price: 10.00},
		{Name: "Camel Cigarettes", Category: "Cigarette", Price: 9.50},
		{Name: "Cuban Cigar", Category: "Cigar", Price: 45.00},
		{Name: "Rope Tobacco", Category: "Loose tobacco", Price: 8.00},
		{Name: "Parliament Cigarettes", Category: "Cigarette", Price: 11.00},
		{Name: "Hookah", Category: "Accessory", Price: 120.00},
		{Name: "Zippo Lighter", Category: "Accessory", Price: 85.00},
	}
}
