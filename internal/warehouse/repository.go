package warehouse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vasiliy-maslov/ecommerce-analytics/internal/gold"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/quality"
	"github.com/vasiliy-maslov/ecommerce-analytics/internal/silver"
)

var ErrNoReports = errors.New("warehouse: no quality reports stored")

// DB is the slice of pgxpool.Pool the repository needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository owns the clean and gold tables of the warehouse. Every Save
// replaces the table contents inside one transaction, so a failed run never
// leaves a mixture of old and new rows.
type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// replace deletes the table contents and queues fresh inserts in a single
// transaction.
func (r *Repository) replace(ctx context.Context, table string, enqueue func(b *pgx.Batch)) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("warehouse: failed to begin transaction for %s: %w", table, err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	batch.Queue("DELETE FROM " + table)
	enqueue(batch)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("warehouse: failed to write %s: %w", table, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("warehouse: failed to commit %s: %w", table, err)
	}

	return nil
}

func (r *Repository) SaveCleanCustomers(ctx context.Context, customers []silver.CleanCustomer) error {
	return r.replace(ctx, "clean_customers", func(b *pgx.Batch) {
		for _, c := range customers {
			b.Queue(`INSERT INTO clean_customers (customer_id, customer_unique_id, customer_zip_code_prefix, customer_city, customer_state, customer_region, processed_at)
                     VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				c.CustomerID, c.CustomerUniqueID, c.ZipPrefix, c.City, c.State, string(c.Region), c.ProcessedAt)
		}
	})
}

func (r *Repository) SaveCleanOrders(ctx context.Context, orders []silver.CleanOrder) error {
	return r.replace(ctx, "clean_orders", func(b *pgx.Batch) {
		for _, o := range orders {
			b.Queue(`INSERT INTO clean_orders (order_id, customer_id, order_status, order_purchase_timestamp, order_approved_at, order_delivered_carrier_date, order_delivered_customer_date, processed_at)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				o.OrderID, o.CustomerID, o.OrderStatus, o.PurchaseTS, o.ApprovedTS, o.CarrierTS, o.DeliveredTS, o.ProcessedAt)
		}
	})
}

func (r *Repository) SaveCleanOrderItems(ctx context.Context, items []silver.CleanOrderItem) error {
	return r.replace(ctx, "clean_order_items", func(b *pgx.Batch) {
		for _, it := range items {
			b.Queue(`INSERT INTO clean_order_items (order_id, product_id, seller_id, price, freight_value, shipping_limit_date, processed_at)
                     VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				it.OrderID, it.ProductID, it.SellerID, it.Price, it.FreightValue, it.ShippingLimitDate, it.ProcessedAt)
		}
	})
}

func (r *Repository) SaveCleanProducts(ctx context.Context, products []silver.CleanProduct) error {
	return r.replace(ctx, "clean_products", func(b *pgx.Batch) {
		for _, p := range products {
			b.Queue(`INSERT INTO clean_products (product_id, product_category_name, product_name_length, product_description_length, product_photos_qty, processed_at)
                     VALUES ($1, $2, $3, $4, $5, $6)`,
				p.ProductID, p.CategoryName, p.NameLength, p.DescriptionLength, p.PhotosQty, p.ProcessedAt)
		}
	})
}

func (r *Repository) SaveDailyRevenue(ctx context.Context, facts []gold.DailyRevenueFact) error {
	return r.replace(ctx, "daily_revenue", func(b *pgx.Batch) {
		for _, f := range facts {
			b.Queue(`INSERT INTO daily_revenue (purchase_date, total_revenue, total_orders, total_unique_orders)
                     VALUES ($1, $2, $3, $4)`,
				f.PurchaseDate, f.TotalRevenue, f.TotalOrders, f.TotalUniqueOrders)
		}
	})
}

func (r *Repository) SaveCustomerRFM(ctx context.Context, records []gold.CustomerRFMRecord) error {
	return r.replace(ctx, "customer_rfm", func(b *pgx.Batch) {
		for _, rec := range records {
			b.Queue(`INSERT INTO customer_rfm (customer_id, customer_state, customer_city, customer_region, days_since_last_order, total_orders, total_spent, recency_score, frequency_score, monetary_score, segment)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
				rec.CustomerID, rec.CustomerState, rec.CustomerCity, string(rec.Region), rec.DaysSinceLastOrder,
				rec.TotalOrders, rec.TotalSpent, rec.RecencyScore, rec.FrequencyScore, rec.MonetaryScore, string(rec.Segment))
		}
	})
}

func (r *Repository) SaveCategorySummaries(ctx context.Context, summaries []gold.CategorySummary) error {
	return r.replace(ctx, "category_summary", func(b *pgx.Batch) {
		for _, s := range summaries {
			b.Queue(`INSERT INTO category_summary (category_name, category_total_revenue, category_total_orders, products_in_category, revenue_rank)
                     VALUES ($1, $2, $3, $4, $5)`,
				s.CategoryName, s.CategoryTotalRevenue, s.CategoryTotalOrders, s.ProductsInCategory, s.RevenueRank)
		}
	})
}

func (r *Repository) SaveProductSummaries(ctx context.Context, summaries []gold.ProductSummary) error {
	return r.replace(ctx, "product_summary", func(b *pgx.Batch) {
		for _, s := range summaries {
			b.Queue(`INSERT INTO product_summary (product_id, item_revenue, total_orders, avg_order_value)
                     VALUES ($1, $2, $3, $4)`,
				s.ProductID, s.ItemRevenue, s.TotalOrders, s.AvgOrderValue)
		}
	})
}

// SaveQualityReport appends the report of one run. Reports are kept per run,
// not replaced.
func (r *Repository) SaveQualityReport(ctx context.Context, report quality.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("warehouse: failed to marshal quality report: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("warehouse: failed to begin transaction for quality_reports: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO quality_reports (run_id, generated_at, overall_rate, overall_status, report)
                           VALUES ($1, $2, $3, $4, $5)`,
		report.RunID, report.GeneratedAt, report.OverallRate, string(report.OverallStatus), payload)
	if err != nil {
		return fmt.Errorf("warehouse: failed to insert quality report: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repository) DailyRevenue(ctx context.Context) ([]gold.DailyRevenueFact, error) {
	rows, err := r.db.Query(ctx, `SELECT purchase_date, total_revenue, total_orders, total_unique_orders
                                  FROM daily_revenue ORDER BY purchase_date`)
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to query daily revenue: %w", err)
	}
	defer rows.Close()

	var facts []gold.DailyRevenueFact
	for rows.Next() {
		var f gold.DailyRevenueFact
		if err := rows.Scan(&f.PurchaseDate, &f.TotalRevenue, &f.TotalOrders, &f.TotalUniqueOrders); err != nil {
			return nil, fmt.Errorf("warehouse: failed to scan daily revenue row: %w", err)
		}
		facts = append(facts, f)
	}

	return facts, rows.Err()
}

func (r *Repository) CustomerRFM(ctx context.Context) ([]gold.CustomerRFMRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT customer_id, customer_state, customer_city, customer_region, days_since_last_order, total_orders, total_spent, recency_score, frequency_score, monetary_score, segment
                                  FROM customer_rfm ORDER BY customer_id`)
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to query customer rfm: %w", err)
	}
	defer rows.Close()

	var records []gold.CustomerRFMRecord
	for rows.Next() {
		var rec gold.CustomerRFMRecord
		var region, segment string
		if err := rows.Scan(&rec.CustomerID, &rec.CustomerState, &rec.CustomerCity, &region, &rec.DaysSinceLastOrder,
			&rec.TotalOrders, &rec.TotalSpent, &rec.RecencyScore, &rec.FrequencyScore, &rec.MonetaryScore, &segment); err != nil {
			return nil, fmt.Errorf("warehouse: failed to scan customer rfm row: %w", err)
		}
		rec.Region = silver.Region(region)
		rec.Segment = gold.Segment(segment)
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *Repository) CategorySummaries(ctx context.Context) ([]gold.CategorySummary, error) {
	rows, err := r.db.Query(ctx, `SELECT category_name, category_total_revenue, category_total_orders, products_in_category, revenue_rank
                                  FROM category_summary ORDER BY revenue_rank, category_name`)
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to query category summaries: %w", err)
	}
	defer rows.Close()

	var summaries []gold.CategorySummary
	for rows.Next() {
		var s gold.CategorySummary
		if err := rows.Scan(&s.CategoryName, &s.CategoryTotalRevenue, &s.CategoryTotalOrders, &s.ProductsInCategory, &s.RevenueRank); err != nil {
			return nil, fmt.Errorf("warehouse: failed to scan category summary row: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (r *Repository) ProductSummaries(ctx context.Context) ([]gold.ProductSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT product_id, item_revenue, total_orders, avg_order_value
                                  FROM product_summary ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to query product summaries: %w", err)
	}
	defer rows.Close()

	var summaries []gold.ProductSummary
	for rows.Next() {
		var s gold.ProductSummary
		if err := rows.Scan(&s.ProductID, &s.ItemRevenue, &s.TotalOrders, &s.AvgOrderValue); err != nil {
			return nil, fmt.Errorf("warehouse: failed to scan product summary row: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// LatestQualityReport returns the most recent report, or ErrNoReports.
func (r *Repository) LatestQualityReport(ctx context.Context) (*quality.Report, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT report FROM quality_reports ORDER BY generated_at DESC LIMIT 1`).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoReports
	}
	if err != nil {
		return nil, fmt.Errorf("warehouse: failed to query latest quality report: %w", err)
	}

	var report quality.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("warehouse: failed to unmarshal quality report: %w", err)
	}

	return &report, nil
}
