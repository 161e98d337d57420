package store

import (
	"context"
	"fmt"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

// GetDailyOrders returns completed orders for one EST calendar day,
// LEFT JOINed with customers for the cross-store contact id, newest
// first and capped at limit.
func (ps *PGStore) GetDailyOrders(ctx context.Context, reportDate string, businessAccountId *string, limit int) ([]entity.Order, error) {
	query := `
		SELECT
			ot.order_number,
			ot.id AS order_id,
			ot.customer_id,
			c.chatwoot_contact_id,
			ot.total_order_value,
			ot.number_of_items,
			ot.status,
			ot.payment_status,
			ot.delivery_type,
			ot.created_at,
			ot.channel_type_id,
			COALESCE(ot.order_tax, 0) AS order_tax,
			COALESCE(ot.order_value_sub_total, 0) AS order_value_sub_total
		FROM order_transactions ot
		LEFT JOIN customers c ON ot.customer_id = c.id
		WHERE ot.status = 'completed'
			AND DATE(ot.created_at AT TIME ZONE 'EST') = CAST(:report_date AS DATE)
	`
	params := map[string]any{
		"report_date": reportDate,
		"limit":       limit,
	}
	if businessAccountId != nil {
		query += " AND ot.business_account_id = :business_account_id"
		params["business_account_id"] = *businessAccountId
	}
	query += " ORDER BY ot.created_at DESC LIMIT :limit"

	orders, err := QueryListNamed[entity.Order](ctx, ps.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get daily orders: %w", err)
	}
	return orders, nil
}

// GetChannelUsage lists distinct channel ids with their order counts.
func (ps *PGStore) GetChannelUsage(ctx context.Context) ([]entity.ChannelUsage, error) {
	query := `
		SELECT channel_type_id, COUNT(*) AS order_count
		FROM order_transactions
		GROUP BY channel_type_id
	`
	usage, err := QueryListNamed[entity.ChannelUsage](ctx, ps.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get channel usage: %w", err)
	}
	return usage, nil
}
