package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	template    *entity.FlyerTemplate
	templateErr error
	diagnostics *entity.TemplateDiagnostics
	sections    []entity.FlyerSection
	products    []entity.FlyerProduct
	sales       []entity.FlyerSalesRow
	orders      []entity.Order
	metrics     *entity.DailyMetrics
}

func (r *stubRepo) GetBusinessAccounts(context.Context) ([]entity.BusinessAccount, error) {
	return nil, nil
}

func (r *stubRepo) GetDailyMetrics(context.Context, string, *string) (*entity.DailyMetrics, error) {
	return r.metrics, nil
}

func (r *stubRepo) GetDailyOrders(context.Context, string, *string, int) ([]entity.Order, error) {
	return r.orders, nil
}

func (r *stubRepo) GetActiveFlyerTemplate(context.Context, *string) (*entity.FlyerTemplate, error) {
	return r.template, r.templateErr
}

func (r *stubRepo) GetTemplateDiagnostics(context.Context) (*entity.TemplateDiagnostics, error) {
	return r.diagnostics, nil
}

func (r *stubRepo) GetTemplateSections(context.Context, string) ([]entity.FlyerSection, error) {
	return r.sections, nil
}

func (r *stubRepo) GetSectionProducts(context.Context, []string) ([]entity.FlyerProduct, error) {
	return r.products, nil
}

func (r *stubRepo) GetFlyerDailySales(context.Context, []string, time.Time, time.Time) ([]entity.FlyerSalesRow, error) {
	return r.sales, nil
}

func (r *stubRepo) ListTemplates(context.Context, *string) ([]entity.TemplateSummary, error) {
	return nil, nil
}

func (r *stubRepo) GetChannelUsage(context.Context) ([]entity.ChannelUsage, error) {
	return nil, nil
}

func (r *stubRepo) Ping(context.Context) error { return nil }
func (r *stubRepo) Close()                     {}

type stubContacts struct {
	contacts []entity.Contact
	err      error
	calls    int
}

func (c *stubContacts) GetContactsByIds(_ context.Context, ids []string) ([]entity.Contact, error) {
	c.calls++
	return c.contacts, c.err
}

func (c *stubContacts) Ping(context.Context) error { return nil }
func (c *stubContacts) Close()                     {}

func TestFlyerPerformanceNoTemplate(t *testing.T) {
	repo := &stubRepo{
		diagnostics: &entity.TemplateDiagnostics{TotalTemplates: 12, ActiveTemplates: 3},
	}
	svc := New(repo, &stubContacts{})

	fp, err := svc.FlyerPerformance(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, entity.FlyerNoTemplate, fp.NoData)
	require.NotNil(t, fp.Diagnostics)
	assert.Equal(t, 12, fp.Diagnostics.TotalTemplates)
	assert.Empty(t, fp.Products)
}

func TestFlyerPerformanceNoSections(t *testing.T) {
	repo := &stubRepo{
		template: &entity.FlyerTemplate{Id: "t1", Name: "Weekly Flyer"},
	}
	svc := New(repo, &stubContacts{})

	fp, err := svc.FlyerPerformance(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, entity.FlyerNoSections, fp.NoData)
	assert.Equal(t, "t1", fp.Template.Id)
}

func TestFlyerPerformanceNoProducts(t *testing.T) {
	repo := &stubRepo{
		template: &entity.FlyerTemplate{Id: "t1"},
		sections: []entity.FlyerSection{{Id: "s1"}},
	}
	svc := New(repo, &stubContacts{})

	fp, err := svc.FlyerPerformance(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, entity.FlyerNoProducts, fp.NoData)
}

func TestFlyerPerformanceFull(t *testing.T) {
	repo := &stubRepo{
		template: &entity.FlyerTemplate{
			Id:        "t1",
			StartDate: day(2025, 1, 1),
			EndDate:   day(2025, 1, 3),
		},
		sections: []entity.FlyerSection{{Id: "s1"}},
		products: []entity.FlyerProduct{{RetailerId: "p1", Name: "Apples"}},
		sales: []entity.FlyerSalesRow{
			{ProductRetailerId: "p1", SaleDate: day(2025, 1, 2), Quantity: 5, Revenue: decimal.NewFromInt(25)},
		},
	}
	svc := New(repo, &stubContacts{})

	fp, err := svc.FlyerPerformance(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, fp.NoData)
	require.Len(t, fp.Products, 1)
	assert.Equal(t, []int64{0, 5, 0}, fp.Products[0].DailyQuantities)
}

func TestFlyerPerformanceStoreError(t *testing.T) {
	repo := &stubRepo{templateErr: errors.New("connection refused")}
	svc := New(repo, &stubContacts{})

	fp, err := svc.FlyerPerformance(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, fp)
}

func TestDailyOrdersContactsFailureIsNonFatal(t *testing.T) {
	repo := &stubRepo{
		orders: []entity.Order{{OrderNumber: "A-1", ChatwootContactId: strptr("42")}},
	}
	contacts := &stubContacts{err: errors.New("contacts store down")}
	svc := New(repo, contacts)

	orders, err := svc.DailyOrders(context.Background(), "2025-01-02", nil, 100)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Guest", orders[0].CustomerName)
	assert.Equal(t, "N/A", orders[0].CustomerPhoneDisplay)
	assert.Equal(t, 1, contacts.calls)
}

func TestDailyOrdersSkipsContactsForEmptyIdSet(t *testing.T) {
	repo := &stubRepo{
		orders: []entity.Order{{OrderNumber: "A-1"}, {OrderNumber: "A-2"}},
	}
	contacts := &stubContacts{}
	svc := New(repo, contacts)

	orders, err := svc.DailyOrders(context.Background(), "2025-01-02", nil, 100)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, 0, contacts.calls)
}

func TestContactIdsDeduplicates(t *testing.T) {
	orders := []entity.Order{
		{ChatwootContactId: strptr("a")},
		{ChatwootContactId: strptr("a")},
		{ChatwootContactId: strptr("b")},
		{ChatwootContactId: strptr("")},
		{ChatwootContactId: nil},
	}
	assert.Equal(t, []string{"a", "b"}, contactIds(orders))
}
