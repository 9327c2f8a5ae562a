package bronze

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ExtractReader loads the raw extract tables owned by the ingestion layer.
// It never writes: the raw tables are read-only inputs to the pipeline.
type ExtractReader struct {
	db *sqlx.DB
}

func NewExtractReader(db *sqlx.DB) *ExtractReader {
	return &ExtractReader{db: db}
}

func (r *ExtractReader) Customers(ctx context.Context) ([]RawCustomer, error) {
	var customers []RawCustomer
	query := `SELECT customer_id, customer_unique_id, customer_zip_code_prefix, customer_city, customer_state
              FROM raw_customers`
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("bronze: failed to load raw customers: %w", err)
	}

	return customers, nil
}

func (r *ExtractReader) Orders(ctx context.Context) ([]RawOrder, error) {
	var orders []RawOrder
	query := `SELECT order_id, customer_id, order_status, order_purchase_timestamp,
                     order_approved_at, order_delivered_carrier_date, order_delivered_customer_date
              FROM raw_orders`
	if err := r.db.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("bronze: failed to load raw orders: %w", err)
	}

	return orders, nil
}

func (r *ExtractReader) OrderItems(ctx context.Context) ([]RawOrderItem, error) {
	var items []RawOrderItem
	query := `SELECT order_id, product_id, seller_id, price, freight_value, shipping_limit_date
              FROM raw_order_items`
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("bronze: failed to load raw order items: %w", err)
	}

	return items, nil
}

func (r *ExtractReader) Products(ctx context.Context) ([]RawProduct, error) {
	var products []RawProduct
	query := `SELECT product_id, product_category_name, product_name_lenght, product_description_lenght, product_photos_qty
              FROM raw_products`
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("bronze: failed to load raw products: %w", err)
	}

	return products, nil
}
