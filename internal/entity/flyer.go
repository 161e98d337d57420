package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlyerTemplate is one promotional period ("Weekly Flyer") for a business.
type FlyerTemplate struct {
	Id                string    `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	StartDate         time.Time `db:"start_date" json:"start_date"`
	EndDate           time.Time `db:"end_date" json:"end_date"`
	Status            string    `db:"status" json:"status"`
	BusinessAccountId *string   `db:"business_account_id" json:"business_account_id"`
}

// TemplateSummary is the debug listing row for all templates.
type TemplateSummary struct {
	Id                string     `db:"id" json:"id"`
	Name              *string    `db:"name" json:"name"`
	Status            *string    `db:"status" json:"status"`
	StartDate         *time.Time `db:"start_date" json:"start_date"`
	EndDate           *time.Time `db:"end_date" json:"end_date"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	BusinessAccountId *string    `db:"business_account_id" json:"business_account_id"`
}

// TemplateDiagnostics carries the counts returned when no active
// weekly-flyer template matches.
type TemplateDiagnostics struct {
	TotalTemplates             int `db:"count" json:"total_templates"`
	ActiveTemplates            int `db:"active_count" json:"active_templates"`
	WeeklyFlyerTemplates       int `db:"weekly_flyer_count" json:"weekly_flyer_templates"`
	ActiveWeeklyFlyerTemplates int `db:"active_weekly_flyer_count" json:"active_weekly_flyer_templates"`
}

// FlyerSection groups products within a template. Ordering by
// SerialNumber is significant only for display.
type FlyerSection struct {
	Id           string  `db:"id" json:"id"`
	Title        *string `db:"title" json:"title"`
	SerialNumber int     `db:"serial_number" json:"serial_number"`
}

// FlyerProduct is a catalog entry referenced by a template section.
type FlyerProduct struct {
	RetailerId string `db:"product_retailer_id" json:"product_retailer_id"`
	Name       string `db:"name" json:"name"`
}

// FlyerSalesRow is one (product, EST calendar day) sales aggregate.
type FlyerSalesRow struct {
	ProductRetailerId string          `db:"product_retailer_id"`
	ProductName       string          `db:"product_name"`
	SaleDate          time.Time       `db:"sale_date"`
	Quantity          int64           `db:"total_quantity"`
	Revenue           decimal.Decimal `db:"total_revenue"`
}

// FlyerNoData names the expected empty outcomes of flyer aggregation.
// These are normal results the caller branches on, not errors.
type FlyerNoData string

const (
	FlyerNoTemplate FlyerNoData = "no_template"
	FlyerNoSections FlyerNoData = "no_sections"
	FlyerNoProducts FlyerNoData = "no_products"
)

// ProductPerformance is one product's day-indexed quantity matrix row.
// DailyQuantities has one slot per calendar day of the template range.
type ProductPerformance struct {
	ProductRetailerId string
	ProductName       string
	DailyQuantities   []int64
	TotalQuantity     int64
	TotalRevenue      decimal.Decimal
}

// FlyerPerformance is the aggregate result: the resolved template, the
// full day range and each product's matrix row sorted by total quantity
// descending. When NoData is set the rest is empty except Diagnostics
// (populated for the no-template case only).
type FlyerPerformance struct {
	Template    *FlyerTemplate
	Dates       []time.Time
	NumDays     int
	Products    []ProductPerformance
	NoData      FlyerNoData
	Diagnostics *TemplateDiagnostics
}
