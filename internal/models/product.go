package models

import "time"

// Product entity. StockQuantity is the authoritative stock figure; any copy
// held outside the store is a snapshot that may be stale between fetches.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null;index" json:"name"`
	UnitPrice     float64   `gorm:"not null" json:"unitPrice"`
	StockQuantity int       `gorm:"not null;default:0" json:"stockQuantity"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
