package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a completed sale row joined with the customer's cross-store
// contact reference. The Customer*/Channel* display fields are filled in
// by enrichment, not by the store.
type Order struct {
	OrderNumber       string          `db:"order_number" json:"order_number"`
	OrderId           string          `db:"order_id" json:"order_id"`
	CustomerId        *string         `db:"customer_id" json:"customer_id"`
	ChatwootContactId *string         `db:"chatwoot_contact_id" json:"chatwoot_contact_id"`
	TotalOrderValue   decimal.Decimal `db:"total_order_value" json:"total_order_value"`
	NumberOfItems     int             `db:"number_of_items" json:"number_of_items"`
	Status            string          `db:"status" json:"status"`
	PaymentStatus     *string         `db:"payment_status" json:"payment_status"`
	DeliveryType      *string         `db:"delivery_type" json:"delivery_type"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	ChannelTypeId     *string         `db:"channel_type_id" json:"channel_type_id"`
	OrderTax          decimal.Decimal `db:"order_tax" json:"order_tax"`
	OrderSubTotal     decimal.Decimal `db:"order_value_sub_total" json:"order_value_sub_total"`

	CustomerName         string  `db:"-" json:"customer_name"`
	CustomerPhone        string  `db:"-" json:"customer_phone"`
	CustomerEmail        *string `db:"-" json:"customer_email"`
	CustomerPhoneDisplay string  `db:"-" json:"customer_phone_display"`
	ChannelName          string  `db:"-" json:"channel_name"`
}

// ChannelUsage is one distinct channel id with its order count,
// used by the channel-mapping diagnostic endpoint.
type ChannelUsage struct {
	ChannelTypeId *string `db:"channel_type_id" json:"channel_type_id"`
	OrderCount    int     `db:"order_count" json:"order_count"`
}
