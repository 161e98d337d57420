package store

import (
	"context"
	"fmt"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// GetDailyMetrics aggregates completed-order revenue, transaction and
// item counts plus the day's new customers. Filtering is conjunctive;
// a nil businessAccountId means all businesses. Empty result sets
// produce zeros, not NULLs.
func (ps *PGStore) GetDailyMetrics(ctx context.Context, reportDate string, businessAccountId *string) (*entity.DailyMetrics, error) {
	type orderRow struct {
		TotalRevenue      decimal.Decimal `db:"total_revenue"`
		TotalTransactions int             `db:"total_transactions"`
		ItemsSold         int64           `db:"items_sold"`
	}

	query := `
		SELECT
			COALESCE(SUM(total_order_value), 0) AS total_revenue,
			COUNT(*) AS total_transactions,
			COALESCE(SUM(number_of_items), 0) AS items_sold
		FROM order_transactions
		WHERE status = 'completed'
			AND DATE(created_at AT TIME ZONE 'EST') = CAST(:report_date AS DATE)
	`
	params := map[string]any{"report_date": reportDate}
	if businessAccountId != nil {
		query += " AND business_account_id = :business_account_id"
		params["business_account_id"] = *businessAccountId
	}

	orders, err := QueryNamedOne[orderRow](ctx, ps.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("order metrics: %w", err)
	}

	customerQuery := `
		SELECT COUNT(*) AS new_customers
		FROM customers
		WHERE DATE(created_at AT TIME ZONE 'EST') = CAST(:report_date AS DATE)
	`
	if businessAccountId != nil {
		customerQuery += " AND business_account_id = :business_account_id"
	}

	newCustomers, err := QueryCountNamed(ctx, ps.db, customerQuery, params)
	if err != nil {
		return nil, fmt.Errorf("new customers: %w", err)
	}

	return &entity.DailyMetrics{
		TotalRevenue:      orders.TotalRevenue,
		TotalTransactions: orders.TotalTransactions,
		ItemsSold:         orders.ItemsSold,
		NewCustomers:      int(newCustomers),
	}, nil
}
