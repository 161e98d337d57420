package store

import (
	"context"
	"fmt"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

// GetBusinessAccounts returns every account that can receive a report,
// ordered by name.
func (ps *PGStore) GetBusinessAccounts(ctx context.Context) ([]entity.BusinessAccount, error) {
	query := `
		SELECT
			id,
			name AS business_name,
			email AS business_email
		FROM business_accounts
		WHERE email IS NOT NULL
		ORDER BY name
	`
	accounts, err := QueryListNamed[entity.BusinessAccount](ctx, ps.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get business accounts: %w", err)
	}
	return accounts, nil
}
