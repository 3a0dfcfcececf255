package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/httpx"
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/models"

	"gorm.io/gorm"
)

type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler { return &ReportHandler{DB: db} }

type productSalesRow struct {
	Product      string `json:"product"`
	QuantitySold int    `json:"quantitySold"`
}

// SalesByProduct aggregates units sold per product across all purchases.
func (h *ReportHandler) SalesByProduct(w http.ResponseWriter, r *http.Request) {
	var rows []productSalesRow
	err := h.DB.Table("purchase_items").
		Select("products.name AS product, COALESCE(SUM(purchase_items.quantity), 0) AS quantity_sold").
		Joins("JOIN products ON products.id = purchase_items.product_id").
		Group("products.id, products.name").
		Order("products.name asc").
		Scan(&rows).Error
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "report_failed", nil)
		return
	}
	if rows == nil {
		rows = []productSalesRow{}
	}
	httpx.JSON(w, http.StatusOK, rows)
}

type clientSalesRow struct {
	Client     string  `json:"client"`
	TotalSpent float64 `json:"totalSpent"`
}

// SalesByClient aggregates purchase revenue per client.
func (h *ReportHandler) SalesByClient(w http.ResponseWriter, r *http.Request) {
	var rows []clientSalesRow
	err := h.DB.Table("purchases").
		Select("clients.name AS client, COALESCE(SUM(purchases.total), 0) AS total_spent").
		Joins("JOIN clients ON clients.id = purchases.client_id").
		Group("clients.id, clients.name").
		Order("clients.name asc").
		Scan(&rows).Error
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "report_failed", nil)
		return
	}
	if rows == nil {
		rows = []clientSalesRow{}
	}
	httpx.JSON(w, http.StatusOK, rows)
}

// ExportPurchasesCSV streams the purchase history as CSV, one row per line
// item.
func (h *ReportHandler) ExportPurchasesCSV(w http.ResponseWriter, r *http.Request) {
	var purchases []models.Purchase
	err := h.DB.Preload("Client").Preload("Items").Preload("Items.Product").
		Order("id asc").Find(&purchases).Error
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "export_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="purchases.csv"`)
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Client", "Product", "Quantity", "Total", "Date"})
	for _, purchase := range purchases {
		for _, item := range purchase.Items {
			_ = cw.Write([]string{
				purchase.Client.Name,
				item.Product.Name,
				fmt.Sprintf("%d", item.Quantity),
				fmt.Sprintf("%.2f", item.Total),
				purchase.CreatedAt.Format("02/01/2006"),
			})
		}
	}
	cw.Flush()
}
