package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/httpx"
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/models"
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/validation"

	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler { return &ProductHandler{DB: db} }

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if err := h.DB.Order("id asc").Find(&products).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_products", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// Get serves single-product reads, used by purchase pages for stock lookups.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var p models.Product
	if err := h.DB.First(&p, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name          string  `json:"name"`
		UnitPrice     float64 `json:"unitPrice"`
		StockQuantity int     `json:"stockQuantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("name", input.Name, v)
	validation.NonNegativeFloat("unitPrice", input.UnitPrice, v)
	validation.NonNegativeInt("stockQuantity", input.StockQuantity, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	p := models.Product{Name: strings.TrimSpace(input.Name), UnitPrice: input.UnitPrice, StockQuantity: input.StockQuantity}
	if err := h.DB.Create(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "product_create_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var p models.Product
	if err := h.DB.First(&p, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var body struct {
		Name          *string  `json:"name"`
		UnitPrice     *float64 `json:"unitPrice"`
		StockQuantity *int     `json:"stockQuantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if body.Name != nil {
		p.Name = strings.TrimSpace(*body.Name)
	}
	if body.UnitPrice != nil {
		p.UnitPrice = *body.UnitPrice
	}
	if body.StockQuantity != nil {
		p.StockQuantity = *body.StockQuantity
	}
	v := validation.Violations{}
	validation.Required("name", p.Name, v)
	validation.NonNegativeFloat("unitPrice", p.UnitPrice, v)
	validation.NonNegativeInt("stockQuantity", p.StockQuantity, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Save(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "product_update_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var p models.Product
	if err := h.DB.First(&p, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err := h.DB.Delete(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "product_delete_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// AdjustStock decrements stock by the posted quantity (negative values
// restock). Purchases never go through here: the purchase handler
// decrements stock inside its own transaction.
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	var p models.Product
	if err := h.DB.First(&p, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if p.StockQuantity-body.Quantity < 0 {
		httpx.JSONError(w, http.StatusBadRequest, "insufficient_stock", nil)
		return
	}
	p.StockQuantity -= body.Quantity
	if err := h.DB.Save(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "stock_update_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Count(w http.ResponseWriter, r *http.Request) {
	var count int64
	if err := h.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "count_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int64{"count": count})
}
