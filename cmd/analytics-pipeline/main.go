package main

import (
	"context"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/bronze"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/config"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/db"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/pipeline"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/quality"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/warehouse"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	opts, err := config.LoadOptions(getenv("PIPELINE_OPTIONS_PATH", "pipeline.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load pipeline options")
	}
	referenceDate, err := opts.ParsedReferenceDate()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse reference date")
	}

	ctx := context.Background()

	source, err := sqlx.ConnectContext(ctx, "postgres", cfg.Source.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to source database")
	}
	defer source.Close()

	wh, err := db.New(ctx, cfg.Warehouse)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to warehouse database")
	}
	defer wh.Close()

	if err := wh.ApplyMigrations(cfg.Warehouse, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	raw, err := loadRawSets(ctx, bronze.NewExtractReader(source))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load raw extracts")
	}
	log.Info().
		Int("customers", len(raw.Customers)).
		Int("orders", len(raw.Orders)).
		Int("order_items", len(raw.OrderItems)).
		Int("products", len(raw.Products)).
		Msg("raw extracts loaded")

	result, err := pipeline.Run(pipeline.Options{
		Now:              time.Now().UTC(),
		ReferenceDate:    referenceDate,
		ExcludeZeroValue: opts.ExcludeZeroValue,
		QualityPolicy:    quality.AggregationPolicy(opts.QualityPolicy),
	}, raw)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline run failed")
	}

	for component, stats := range result.Rejections {
		if stats.Total() == 0 {
			continue
		}
		event := log.Warn().Str("component", component).Int("rejected", stats.Total())
		for reason, count := range stats.Reasons {
			event = event.Int(string(reason), count)
		}
		event.Msg("records rejected during validation")
	}

	if err := persist(ctx, warehouse.NewRepository(wh.Pool), result); err != nil {
		log.Fatal().Err(err).Msg("failed to persist pipeline output")
	}

	logSummary(result)
}

func loadRawSets(ctx context.Context, reader *bronze.ExtractReader) (pipeline.RawSets, error) {
	var (
		raw pipeline.RawSets
		err error
	)

	if raw.Customers, err = reader.Customers(ctx); err != nil {
		return pipeline.RawSets{}, err
	}
	if raw.Orders, err = reader.Orders(ctx); err != nil {
		return pipeline.RawSets{}, err
	}
	if raw.OrderItems, err = reader.OrderItems(ctx); err != nil {
		return pipeline.RawSets{}, err
	}
	if raw.Products, err = reader.Products(ctx); err != nil {
		return pipeline.RawSets{}, err
	}

	return raw, nil
}

func persist(ctx context.Context, repo *warehouse.Repository, result *pipeline.Result) error {
	if err := repo.SaveCleanCustomers(ctx, result.Customers); err != nil {
		return err
	}
	if err := repo.SaveCleanOrders(ctx, result.Orders); err != nil {
		return err
	}
	if err := repo.SaveCleanOrderItems(ctx, result.OrderItems); err != nil {
		return err
	}
	if err := repo.SaveCleanProducts(ctx, result.Products); err != nil {
		return err
	}
	if err := repo.SaveDailyRevenue(ctx, result.DailyRevenue); err != nil {
		return err
	}
	if err := repo.SaveCustomerRFM(ctx, result.RFM); err != nil {
		return err
	}
	if err := repo.SaveCategorySummaries(ctx, result.Categories); err != nil {
		return err
	}
	if err := repo.SaveProductSummaries(ctx, result.ProductSummaries); err != nil {
		return err
	}

	return repo.SaveQualityReport(ctx, result.Quality)
}

func logSummary(result *pipeline.Result) {
	for _, table := range result.Quality.Tables {
		log.Info().
			Str("table", table.TableName).
			Float64("success_rate", table.SuccessRate).
			Str("status", string(table.Status)).
			Int("rows", table.RowCount).
			Int("failed_expectations", len(table.FailedExpectations)).
			Msg("quality gate table result")
	}

	segments := log.Info()
	for segment, count := range result.SegmentCounts() {
		segments = segments.Int(string(segment), count)
	}
	segments.Msg("customer segment distribution")

	regions := log.Info()
	for region, count := range result.RegionCounts() {
		regions = regions.Int(string(region), count)
	}
	regions.Msg("customer region distribution")

	log.Info().
		Str("run_id", result.RunID.String()).
		Time("reference_date", result.ReferenceDate).
		Float64("overall_rate", result.Quality.OverallRate).
		Str("overall_status", string(result.Quality.OverallStatus)).
		Msg("pipeline run completed")
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
