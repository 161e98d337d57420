package entity

import "github.com/shopspring/decimal"

// DailyMetrics is the per-business per-day rollup of completed orders.
// Sums are zero-valued for dates with no rows, never absent.
type DailyMetrics struct {
	TotalRevenue      decimal.Decimal `db:"total_revenue" json:"total_revenue"`
	TotalTransactions int             `db:"total_transactions" json:"total_transactions"`
	ItemsSold         int64           `db:"items_sold" json:"items_sold"`
	NewCustomers      int             `db:"new_customers" json:"new_customers"`
}
