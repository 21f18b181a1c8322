package models

import "time"

type CatalogItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // unique, case-insensitive
	Category  string    `json:"category"`
	Active    bool      `json:"active"`
	Price     float64   `json:"price"` // > 0 for persisted items
	Cost      float64   `json:"cost"`  // >= 0 for persisted items
	QtySold   int       `json:"qty_sold"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PeriodRevenue is the item's revenue for the current reporting period.
func (i CatalogItem) PeriodRevenue() float64 {
	return i.Price * float64(i.QtySold)
}

// PeriodCost is the item's cost of goods for the current reporting period.
func (i CatalogItem) PeriodCost() float64 {
	return i.Cost * float64(i.QtySold)
}
