package silver

import "time"

// CleanCustomer is a customer record that survived sanitization. State and
// city are trimmed and uppercased, region is derived from state.
type CleanCustomer struct {
	CustomerID       string    `json:"customer_id" db:"customer_id"`
	CustomerUniqueID string    `json:"customer_unique_id" db:"customer_unique_id"`
	ZipPrefix        string    `json:"customer_zip_code_prefix" db:"customer_zip_code_prefix"`
	City             string    `json:"customer_city" db:"customer_city"`
	State            string    `json:"customer_state" db:"customer_state"`
	Region           Region    `json:"customer_region" db:"customer_region"`
	ProcessedAt      time.Time `json:"processed_at" db:"processed_at"`
}

// CleanOrder is an order whose required fields are present and whose
// timestamp chain purchase ≤ approved ≤ carrier ≤ delivered holds over every
// pair where both sides are present.
type CleanOrder struct {
	OrderID     string     `json:"order_id" db:"order_id"`
	CustomerID  string     `json:"customer_id" db:"customer_id"`
	OrderStatus string     `json:"order_status" db:"order_status"`
	PurchaseTS  time.Time  `json:"order_purchase_timestamp" db:"order_purchase_timestamp"`
	ApprovedTS  *time.Time `json:"order_approved_at" db:"order_approved_at"`
	CarrierTS   *time.Time `json:"order_delivered_carrier_date" db:"order_delivered_carrier_date"`
	DeliveredTS *time.Time `json:"order_delivered_customer_date" db:"order_delivered_customer_date"`
	ProcessedAt time.Time  `json:"processed_at" db:"processed_at"`
}

// CleanOrderItem is a line item with all required fields materialized.
type CleanOrderItem struct {
	OrderID           string    `json:"order_id" db:"order_id"`
	ProductID         string    `json:"product_id" db:"product_id"`
	SellerID          string    `json:"seller_id" db:"seller_id"`
	Price             float64   `json:"price" db:"price"`
	FreightValue      float64   `json:"freight_value" db:"freight_value"`
	ShippingLimitDate time.Time `json:"shipping_limit_date" db:"shipping_limit_date"`
	ProcessedAt       time.Time `json:"processed_at" db:"processed_at"`
}

// CleanProduct is a catalog row with positive attribute counts and a
// trimmed, uppercased category name.
type CleanProduct struct {
	ProductID         string    `json:"product_id" db:"product_id"`
	CategoryName      string    `json:"product_category_name" db:"product_category_name"`
	NameLength        int       `json:"product_name_length" db:"product_name_length"`
	DescriptionLength int       `json:"product_description_length" db:"product_description_length"`
	PhotosQty         int       `json:"product_photos_qty" db:"product_photos_qty"`
	ProcessedAt       time.Time `json:"processed_at" db:"processed_at"`
}
