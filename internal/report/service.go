package report

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/Vaishnavi639/DailyDashboard/internal/dependency"
	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

// DefaultOrderLimit caps the API order listing; ReportOrderLimit caps
// the emailed report.
const (
	DefaultOrderLimit = 100
	ReportOrderLimit  = 50
)

// Service is the single authoritative aggregation component: metrics,
// order enrichment and flyer performance all go through here.
type Service struct {
	repo     dependency.Repository
	contacts dependency.Contacts
}

func New(repo dependency.Repository, contacts dependency.Contacts) *Service {
	return &Service{repo: repo, contacts: contacts}
}

// DailyMetrics returns the day's rollup for one business, or for all
// businesses when businessAccountId is nil.
func (s *Service) DailyMetrics(ctx context.Context, reportDate string, businessAccountId *string) (*entity.DailyMetrics, error) {
	m, err := s.repo.GetDailyMetrics(ctx, reportDate, businessAccountId)
	if err != nil {
		return nil, fmt.Errorf("daily metrics: %w", err)
	}
	return m, nil
}

// DailyOrders returns the day's completed orders with contact display
// fields merged in. A contacts-store failure does not fail the call:
// the orders come back with their fallback display values and the
// failure is logged.
func (s *Service) DailyOrders(ctx context.Context, reportDate string, businessAccountId *string, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = DefaultOrderLimit
	}
	orders, err := s.repo.GetDailyOrders(ctx, reportDate, businessAccountId, limit)
	if err != nil {
		return nil, fmt.Errorf("daily orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := contactIds(orders)
	var contacts map[string]entity.Contact
	if len(ids) > 0 {
		rows, err := s.contacts.GetContactsByIds(ctx, ids)
		if err != nil {
			slog.Default().ErrorContext(ctx, "contacts lookup failed, orders fall back to guest display",
				slog.String("err", err.Error()),
			)
		} else {
			contacts = contactsById(rows)
		}
	}

	EnrichOrders(orders, contacts)
	return orders, nil
}

// FlyerPerformance resolves the active weekly-flyer template, its
// product set and day-bucketed sales, and reshapes them into the
// product x day matrix. The empty outcomes (no template, no sections,
// no products) are structured results, not errors.
func (s *Service) FlyerPerformance(ctx context.Context, businessAccountId *string) (*entity.FlyerPerformance, error) {
	tmpl, err := s.repo.GetActiveFlyerTemplate(ctx, businessAccountId)
	if err != nil {
		return nil, fmt.Errorf("flyer template: %w", err)
	}
	if tmpl == nil {
		diag, err := s.repo.GetTemplateDiagnostics(ctx)
		if err != nil {
			return nil, fmt.Errorf("template diagnostics: %w", err)
		}
		return &entity.FlyerPerformance{NoData: entity.FlyerNoTemplate, Diagnostics: diag}, nil
	}

	sections, err := s.repo.GetTemplateSections(ctx, tmpl.Id)
	if err != nil {
		return nil, fmt.Errorf("flyer sections: %w", err)
	}
	if len(sections) == 0 {
		return &entity.FlyerPerformance{Template: tmpl, NoData: entity.FlyerNoSections}, nil
	}

	sectionIds := make([]string, len(sections))
	for i, sec := range sections {
		sectionIds[i] = sec.Id
	}
	products, err := s.repo.GetSectionProducts(ctx, sectionIds)
	if err != nil {
		return nil, fmt.Errorf("flyer products: %w", err)
	}
	if len(products) == 0 {
		return &entity.FlyerPerformance{Template: tmpl, NoData: entity.FlyerNoProducts}, nil
	}

	productIds := make([]string, len(products))
	for i, p := range products {
		productIds[i] = p.RetailerId
	}
	sales, err := s.repo.GetFlyerDailySales(ctx, productIds, tmpl.StartDate, tmpl.EndDate)
	if err != nil {
		return nil, fmt.Errorf("flyer sales: %w", err)
	}

	return BuildFlyerPerformance(tmpl, products, sales), nil
}

// BusinessAccounts lists the accounts eligible for an emailed report.
func (s *Service) BusinessAccounts(ctx context.Context) ([]entity.BusinessAccount, error) {
	accounts, err := s.repo.GetBusinessAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("business accounts: %w", err)
	}
	return accounts, nil
}

// BuildDailyReport is the per-business unit of work: metrics, enriched
// orders and flyer performance for one account on one date, bundled
// for the report template.
func (s *Service) BuildDailyReport(ctx context.Context, account entity.BusinessAccount, reportDate string) (*entity.DailyReport, error) {
	metrics, err := s.DailyMetrics(ctx, reportDate, &account.Id)
	if err != nil {
		return nil, fmt.Errorf("report metrics for %s: %w", account.Id, err)
	}

	orders, err := s.DailyOrders(ctx, reportDate, &account.Id, ReportOrderLimit)
	if err != nil {
		return nil, fmt.Errorf("report orders for %s: %w", account.Id, err)
	}

	flyer, err := s.FlyerPerformance(ctx, &account.Id)
	if err != nil {
		return nil, fmt.Errorf("report flyer for %s: %w", account.Id, err)
	}

	return &entity.DailyReport{
		BusinessName: account.Name,
		ReportDate:   reportDate,
		Metrics:      *metrics,
		Orders:       orders,
		Flyer:        flyer,
	}, nil
}

func contactIds(orders []entity.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.ChatwootContactId == nil || *o.ChatwootContactId == "" {
			continue
		}
		if _, ok := seen[*o.ChatwootContactId]; ok {
			continue
		}
		seen[*o.ChatwootContactId] = struct{}{}
		ids = append(ids, *o.ChatwootContactId)
	}
	return ids
}

func contactsById(contacts []entity.Contact) map[string]entity.Contact {
	m := make(map[string]entity.Contact, len(contacts))
	for _, c := range contacts {
		m[c.Id] = c
	}
	return m
}
