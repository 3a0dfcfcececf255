package server

import (
	"net/http"

	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/handlers"
	"github.com/TaynaMariana/Sistema-Gerenciamento-Comercial/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares
// applied.
func New(db *gorm.DB) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ch := handlers.NewClientHandler(db)
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", ch.List)
		r.Post("/", ch.Create)
		r.Get("/count", ch.Count)
		r.Put("/{id}", ch.Update)
		r.Delete("/{id}", ch.Delete)
	})

	ph := handlers.NewProductHandler(db)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", ph.List)
		r.Post("/", ph.Create)
		r.Get("/count", ph.Count)
		r.Get("/{id}", ph.Get)
		r.Put("/{id}", ph.Update)
		r.Delete("/{id}", ph.Delete)
		r.Put("/{id}/stock", ph.AdjustStock)
	})

	buy := handlers.NewPurchaseHandler(db)
	r.Route("/purchases", func(r chi.Router) {
		r.Get("/", buy.List)
		r.Post("/", buy.Create)
		r.Get("/count", buy.Count)
		r.Get("/revenue", buy.Revenue)
	})

	rh := handlers.NewReportHandler(db)
	r.Get("/reports/sales-by-product", rh.SalesByProduct)
	r.Get("/reports/sales-by-client", rh.SalesByClient)
	r.Get("/exports/purchases.csv", rh.ExportPurchasesCSV)

	return r
}
