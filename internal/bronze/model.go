package bronze

import "time"

// RawCustomer is a customer row as delivered by the ingestion extract.
// Fields arrive untrimmed and in whatever casing the source used.
type RawCustomer struct {
	CustomerID       string `json:"customer_id" db:"customer_id"`
	CustomerUniqueID string `json:"customer_unique_id" db:"customer_unique_id"`
	ZipPrefix        string `json:"customer_zip_code_prefix" db:"customer_zip_code_prefix"`
	City             string `json:"customer_city" db:"customer_city"`
	State            string `json:"customer_state" db:"customer_state"`
}

// RawOrder is an order row from the extract. Timestamps after purchase are
// nullable in the source, so they come through as pointers.
type RawOrder struct {
	OrderID     string     `json:"order_id" db:"order_id"`
	CustomerID  string     `json:"customer_id" db:"customer_id"`
	OrderStatus string     `json:"order_status" db:"order_status"`
	PurchaseTS  *time.Time `json:"order_purchase_timestamp" db:"order_purchase_timestamp"`
	ApprovedTS  *time.Time `json:"order_approved_at" db:"order_approved_at"`
	CarrierTS   *time.Time `json:"order_delivered_carrier_date" db:"order_delivered_carrier_date"`
	DeliveredTS *time.Time `json:"order_delivered_customer_date" db:"order_delivered_customer_date"`
}

// RawOrderItem is an order line-item row. Every field except order_id is
// nullable in the source extract.
type RawOrderItem struct {
	OrderID           string     `json:"order_id" db:"order_id"`
	ProductID         *string    `json:"product_id" db:"product_id"`
	SellerID          *string    `json:"seller_id" db:"seller_id"`
	Price             *float64   `json:"price" db:"price"`
	FreightValue      *float64   `json:"freight_value" db:"freight_value"`
	ShippingLimitDate *time.Time `json:"shipping_limit_date" db:"shipping_limit_date"`
}

// RawProduct is a product catalog row from the extract.
type RawProduct struct {
	ProductID         string  `json:"product_id" db:"product_id"`
	CategoryName      *string `json:"product_category_name" db:"product_category_name"`
	NameLength        *int    `json:"product_name_lenght" db:"product_name_lenght"`
	DescriptionLength *int    `json:"product_description_lenght" db:"product_description_lenght"`
	PhotosQty         *int    `json:"product_photos_qty" db:"product_photos_qty"`
}
