package store

import "time"

// Wire records for the store's JSON contract. Kept separate from the server
// side persistence models so consumers of this package only depend on the
// REST contract.

type ClientRecord struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ProductRecord struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unitPrice"`
	StockQuantity int     `json:"stockQuantity"`
}

type PurchaseRecord struct {
	ID        uint                 `json:"id"`
	ClientID  uint                 `json:"clientId"`
	Total     float64              `json:"total"`
	Items     []PurchaseItemRecord `json:"items"`
	CreatedAt time.Time            `json:"createdAt"`
}

type PurchaseItemRecord struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

// PurchaseRequest is the submission payload for POST /purchases. Item order
// is preserved as sent.
type PurchaseRequest struct {
	ClientID uint                  `json:"clientId"`
	Items    []PurchaseItemRequest `json:"items"`
}

type PurchaseItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}
