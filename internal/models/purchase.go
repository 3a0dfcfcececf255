package models

import "time"

// Purchase models
type Purchase struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ClientID  uint           `gorm:"not null;index" json:"clientId"`
	Client    Client         `gorm:"foreignKey:ClientID" json:"-"`
	Total     float64        `gorm:"not null" json:"total"`
	Items     []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
}

// PurchaseItem is one product line of a recorded purchase. Total is the
// line amount at the prices in effect when the purchase was registered.
type PurchaseItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	PurchaseID uint    `gorm:"not null;index" json:"-"`
	ProductID  uint    `gorm:"not null" json:"productId"`
	Product    Product `gorm:"foreignKey:ProductID" json:"-"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Total      float64 `gorm:"not null" json:"total"`
}
