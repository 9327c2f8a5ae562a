package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *ReportHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/revenue/daily", h.GetDailyRevenue)
		r.Get("/customers/rfm", h.GetCustomerRFM)
		r.Get("/categories", h.GetCategorySummaries)
		r.Get("/products", h.GetProductSummaries)
		r.Get("/quality/latest", h.GetLatestQualityReport)
	})

	return r
}
