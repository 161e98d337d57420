package store

import (
	"context"
	"fmt"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

// GetContactsByIds batch-fetches contacts by id-set membership. The
// ids come from customers.chatwoot_contact_id and carry no referential
// guarantee, so missing rows are expected and not an error.
func (cs *ContactsStore) GetContactsByIds(ctx context.Context, ids []string) ([]entity.Contact, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, phone_number, email
		FROM contacts
		WHERE id IN (:ids)
	`
	contacts, err := QueryListNamed[entity.Contact](ctx, cs.db, query, map[string]any{
		"ids": ids,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get contacts: %w", err)
	}
	return contacts, nil
}
