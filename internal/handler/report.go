package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/gold"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/quality"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/warehouse"
)

// GoldStore is the warehouse surface the report API reads.
type GoldStore interface {
	DailyRevenue(ctx context.Context) ([]gold.DailyRevenueFact, error)
	CustomerRFM(ctx context.Context) ([]gold.CustomerRFMRecord, error)
	CategorySummaries(ctx context.Context) ([]gold.CategorySummary, error)
	ProductSummaries(ctx context.Context) ([]gold.ProductSummary, error)
	LatestQualityReport(ctx context.Context) (*quality.Report, error)
}

// ReportHandler serves the gold tables and the latest quality report to the
// dashboard collaborator.
type ReportHandler struct {
	store GoldStore
}

func NewReportHandler(store GoldStore) *ReportHandler {
	return &ReportHandler{store: store}
}

func (h *ReportHandler) GetDailyRevenue(w http.ResponseWriter, r *http.Request) {
	facts, err := h.store.DailyRevenue(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to fetch daily revenue")
		respondWithError(w, http.StatusInternalServerError, "failed to fetch daily revenue")
		return
	}

	respondWithJSON(w, http.StatusOK, facts)
}

func (h *ReportHandler) GetCustomerRFM(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.CustomerRFM(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to fetch customer rfm")
		respondWithError(w, http.StatusInternalServerError, "failed to fetch customer rfm")
		return
	}

	respondWithJSON(w, http.StatusOK, records)
}

func (h *ReportHandler) GetCategorySummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.CategorySummaries(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to fetch category summaries")
		respondWithError(w, http.StatusInternalServerError, "failed to fetch category summaries")
		return
	}

	respondWithJSON(w, http.StatusOK, summaries)
}

func (h *ReportHandler) GetProductSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.ProductSummaries(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to fetch product summaries")
		respondWithError(w, http.StatusInternalServerError, "failed to fetch product summaries")
		return
	}

	respondWithJSON(w, http.StatusOK, summaries)
}

func (h *ReportHandler) GetLatestQualityReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.store.LatestQualityReport(r.Context())
	if err != nil {
		if errors.Is(err, warehouse.ErrNoReports) {
			respondWithError(w, http.StatusNotFound, "no quality reports yet")
			return
		}
		log.Error().Err(err).Msg("handler: failed to fetch quality report")
		respondWithError(w, http.StatusInternalServerError, "failed to fetch quality report")
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("handler: failed to write JSON response")
	}
}
