package model

// Product is the single record type managed by the catalog.
//
// ID is assigned by the server on creation and never changes afterwards.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}
