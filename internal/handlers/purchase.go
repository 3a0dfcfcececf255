package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/httpx"
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/models"

	"gorm.io/gorm"
)

type PurchaseHandler struct {
	DB *gorm.DB
}

func NewPurchaseHandler(db *gorm.DB) *PurchaseHandler { return &PurchaseHandler{DB: db} }

func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	var purchases []models.Purchase
	if err := h.DB.Preload("Items").Order("id desc").Find(&purchases).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_purchases", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, purchases)
}

type purchaseInput struct {
	ClientID uint `json:"clientId"`
	Items    []struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	} `json:"items"`
}

// Create registers a purchase. The stock check and decrement happen in the
// same transaction as the purchase rows, so a rejected order writes nothing
// and an accepted one decrements each product exactly once.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input purchaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if input.ClientID == 0 || len(input.Items) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_request", nil)
		return
	}
	seen := map[uint]bool{}
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity < 1 {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_item", nil)
			return
		}
		if seen[item.ProductID] {
			httpx.JSONError(w, http.StatusBadRequest, "duplicate_product", nil)
			return
		}
		seen[item.ProductID] = true
	}

	var purchase models.Purchase
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, input.ClientID).Error; err != nil {
			return &apiError{status: http.StatusBadRequest, code: "client_not_found"}
		}
		purchase = models.Purchase{ClientID: client.ID}
		var total float64
		for _, item := range input.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return &apiError{status: http.StatusBadRequest, code: "product_not_found"}
			}
			if product.StockQuantity < item.Quantity {
				return &apiError{status: http.StatusBadRequest, code: "insufficient_stock"}
			}
			lineTotal := product.UnitPrice * float64(item.Quantity)
			total += lineTotal
			product.StockQuantity -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			purchase.Items = append(purchase.Items, models.PurchaseItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Total:     lineTotal,
			})
		}
		purchase.Total = total
		return tx.Create(&purchase).Error
	})
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) {
			httpx.JSONError(w, ae.status, ae.code, nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "purchase_create_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, purchase)
}

func (h *PurchaseHandler) Count(w http.ResponseWriter, r *http.Request) {
	var count int64
	if err := h.DB.Model(&models.Purchase{}).Count(&count).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "count_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int64{"count": count})
}

// Revenue reports the total amount across all registered purchases.
func (h *PurchaseHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	var revenue float64
	if err := h.DB.Model(&models.Purchase{}).Select("COALESCE(SUM(total), 0)").Scan(&revenue).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "revenue_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]float64{"revenue": revenue})
}
