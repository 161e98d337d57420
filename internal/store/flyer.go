package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

// GetActiveFlyerTemplate resolves the most recently created active
// template named "Weekly Flyer" (exact or case-insensitive substring
// match). When a business id is supplied the lookup is always scoped
// to it; a template belonging to another business is never returned.
// A nil template without error means nothing matched.
func (ps *PGStore) GetActiveFlyerTemplate(ctx context.Context, businessAccountId *string) (*entity.FlyerTemplate, error) {
	query := `
		SELECT id, name, start_date, end_date, status, business_account_id
		FROM product_templates
		WHERE (name = 'Weekly Flyer' OR name ILIKE '%weekly%flyer%')
			AND status = 'active'
	`
	params := map[string]any{}
	if businessAccountId != nil {
		query += " AND business_account_id = :business_account_id"
		params["business_account_id"] = *businessAccountId
	}
	query += " ORDER BY created_at DESC LIMIT 1"

	tmpl, err := QueryNamedOne[entity.FlyerTemplate](ctx, ps.db, query, params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("can't get flyer template: %w", err)
	}
	return &tmpl, nil
}

// GetTemplateDiagnostics counts templates by match criteria, reported
// back when no active weekly-flyer template is found.
func (ps *PGStore) GetTemplateDiagnostics(ctx context.Context) (*entity.TemplateDiagnostics, error) {
	query := `
		SELECT
			COUNT(*) AS count,
			COUNT(*) FILTER (WHERE status = 'active') AS active_count,
			COUNT(*) FILTER (WHERE name ILIKE '%weekly%flyer%') AS weekly_flyer_count,
			COUNT(*) FILTER (WHERE name ILIKE '%weekly%flyer%' AND status = 'active') AS active_weekly_flyer_count
		FROM product_templates
	`
	d, err := QueryNamedOne[entity.TemplateDiagnostics](ctx, ps.db, query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get template diagnostics: %w", err)
	}
	return &d, nil
}

// GetTemplateSections returns a template's sections in display order.
func (ps *PGStore) GetTemplateSections(ctx context.Context, templateId string) ([]entity.FlyerSection, error) {
	query := `
		SELECT id, title, serial_number
		FROM product_template_sections
		WHERE template_id = :template_id
		ORDER BY serial_number
	`
	sections, err := QueryListNamed[entity.FlyerSection](ctx, ps.db, query, map[string]any{
		"template_id": templateId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get template sections: %w", err)
	}
	return sections, nil
}

// GetSectionProducts returns the distinct catalog products referenced
// by any of the given sections, ordered by name.
func (ps *PGStore) GetSectionProducts(ctx context.Context, sectionIds []string) ([]entity.FlyerProduct, error) {
	if len(sectionIds) == 0 {
		return nil, nil
	}
	query := `
		SELECT DISTINCT pti.product_retailer_id, p.name
		FROM product_template_items pti
		JOIN products p ON pti.product_retailer_id = p.retailer_id
		WHERE pti.section_id IN (:section_ids)
		ORDER BY p.name
	`
	products, err := QueryListNamed[entity.FlyerProduct](ctx, ps.db, query, map[string]any{
		"section_ids": sectionIds,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get section products: %w", err)
	}
	return products, nil
}

// GetFlyerDailySales sums quantity and revenue per product per EST
// calendar day for completed orders within [startDate, endDate].
func (ps *PGStore) GetFlyerDailySales(ctx context.Context, productIds []string, startDate, endDate time.Time) ([]entity.FlyerSalesRow, error) {
	if len(productIds) == 0 {
		return nil, nil
	}
	query := `
		SELECT
			oi.product_retailer_id,
			p.name AS product_name,
			DATE(ot.created_at AT TIME ZONE 'EST') AS sale_date,
			SUM(oi.quantity) AS total_quantity,
			SUM(oi.quantity * oi.unit_price) AS total_revenue
		FROM order_items oi
		JOIN order_transactions ot ON oi.order_id = ot.id
		JOIN products p ON oi.product_retailer_id = p.retailer_id
		WHERE oi.product_retailer_id IN (:product_ids)
			AND ot.status = 'completed'
			AND DATE(ot.created_at AT TIME ZONE 'EST') >= CAST(:start_date AS DATE)
			AND DATE(ot.created_at AT TIME ZONE 'EST') <= CAST(:end_date AS DATE)
		GROUP BY oi.product_retailer_id, p.name, DATE(ot.created_at AT TIME ZONE 'EST')
		ORDER BY p.name, sale_date
	`
	sales, err := QueryListNamed[entity.FlyerSalesRow](ctx, ps.db, query, map[string]any{
		"product_ids": productIds,
		"start_date":  startDate.Format(entity.ReportDateLayout),
		"end_date":    endDate.Format(entity.ReportDateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("can't get flyer daily sales: %w", err)
	}
	return sales, nil
}

// ListTemplates returns every template newest first, optionally scoped
// to a business. Diagnostic listing only.
func (ps *PGStore) ListTemplates(ctx context.Context, businessAccountId *string) ([]entity.TemplateSummary, error) {
	query := `
		SELECT id, name, status, start_date, end_date, created_at, business_account_id
		FROM product_templates
	`
	params := map[string]any{}
	if businessAccountId != nil {
		query += " WHERE business_account_id = :business_account_id"
		params["business_account_id"] = *businessAccountId
	}
	query += " ORDER BY created_at DESC"

	templates, err := QueryListNamed[entity.TemplateSummary](ctx, ps.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("can't list templates: %w", err)
	}
	return templates, nil
}
