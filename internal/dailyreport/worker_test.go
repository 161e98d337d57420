package dailyreport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
	"github.com/Vaishnavi639/DailyDashboard/internal/report"
)

type stubRepo struct {
	accounts    []entity.BusinessAccount
	accountsErr error
	// metricsFailFor makes GetDailyMetrics fail for one business id.
	metricsFailFor string
}

func (r *stubRepo) GetBusinessAccounts(context.Context) ([]entity.BusinessAccount, error) {
	return r.accounts, r.accountsErr
}

func (r *stubRepo) GetDailyMetrics(_ context.Context, _ string, businessAccountId *string) (*entity.DailyMetrics, error) {
	if businessAccountId != nil && *businessAccountId == r.metricsFailFor {
		return nil, errors.New("connection reset")
	}
	return &entity.DailyMetrics{TotalRevenue: decimal.NewFromInt(100)}, nil
}

func (r *stubRepo) GetDailyOrders(context.Context, string, *string, int) ([]entity.Order, error) {
	return nil, nil
}

func (r *stubRepo) GetActiveFlyerTemplate(context.Context, *string) (*entity.FlyerTemplate, error) {
	return nil, nil
}

func (r *stubRepo) GetTemplateDiagnostics(context.Context) (*entity.TemplateDiagnostics, error) {
	return &entity.TemplateDiagnostics{}, nil
}

func (r *stubRepo) GetTemplateSections(context.Context, string) ([]entity.FlyerSection, error) {
	return nil, nil
}

func (r *stubRepo) GetSectionProducts(context.Context, []string) ([]entity.FlyerProduct, error) {
	return nil, nil
}

func (r *stubRepo) GetFlyerDailySales(context.Context, []string, time.Time, time.Time) ([]entity.FlyerSalesRow, error) {
	return nil, nil
}

func (r *stubRepo) ListTemplates(context.Context, *string) ([]entity.TemplateSummary, error) {
	return nil, nil
}

func (r *stubRepo) GetChannelUsage(context.Context) ([]entity.ChannelUsage, error) {
	return nil, nil
}

func (r *stubRepo) Ping(context.Context) error { return nil }
func (r *stubRepo) Close()                     {}

type stubContacts struct{}

func (stubContacts) GetContactsByIds(context.Context, []string) ([]entity.Contact, error) {
	return nil, nil
}
func (stubContacts) Ping(context.Context) error { return nil }
func (stubContacts) Close()                     {}

type stubMailer struct {
	sentTo  []string
	reports []*entity.DailyReport
	failFor string
}

func (m *stubMailer) SendDailyReport(_ context.Context, to string, rep *entity.DailyReport) error {
	if to == m.failFor {
		return errors.New("sendgrid 500")
	}
	m.sentTo = append(m.sentTo, to)
	m.reports = append(m.reports, rep)
	return nil
}

func TestSendDailyReports(t *testing.T) {
	repo := &stubRepo{accounts: []entity.BusinessAccount{
		{Id: "b1", Name: "Corner Shop", Email: "corner@example.com"},
		{Id: "b2", Name: "Bakery", Email: "bakery@example.com"},
	}}
	mailer := &stubMailer{}
	w := New(nil, report.New(repo, stubContacts{}), mailer)

	err := w.sendDailyReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"corner@example.com", "bakery@example.com"}, mailer.sentTo)
	require.Len(t, mailer.reports, 2)
	assert.Equal(t, "Corner Shop", mailer.reports[0].BusinessName)
	assert.Equal(t, "100", mailer.reports[0].Metrics.TotalRevenue.String())
}

func TestSendDailyReportsSkipsFailedBusiness(t *testing.T) {
	repo := &stubRepo{
		accounts: []entity.BusinessAccount{
			{Id: "b1", Name: "Corner Shop", Email: "corner@example.com"},
			{Id: "b2", Name: "Bakery", Email: "bakery@example.com"},
		},
		metricsFailFor: "b1",
	}
	mailer := &stubMailer{}
	w := New(nil, report.New(repo, stubContacts{}), mailer)

	err := w.sendDailyReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bakery@example.com"}, mailer.sentTo)
}

func TestSendDailyReportsMailerFailureIsNonFatal(t *testing.T) {
	repo := &stubRepo{accounts: []entity.BusinessAccount{
		{Id: "b1", Name: "Corner Shop", Email: "corner@example.com"},
		{Id: "b2", Name: "Bakery", Email: "bakery@example.com"},
	}}
	mailer := &stubMailer{failFor: "corner@example.com"}
	w := New(nil, report.New(repo, stubContacts{}), mailer)

	err := w.sendDailyReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bakery@example.com"}, mailer.sentTo)
}

func TestSendDailyReportsAccountsErrorAborts(t *testing.T) {
	repo := &stubRepo{accountsErr: errors.New("connection refused")}
	mailer := &stubMailer{}
	w := New(nil, report.New(repo, stubContacts{}), mailer)

	err := w.sendDailyReports(context.Background())
	assert.Error(t, err)
	assert.Empty(t, mailer.sentTo)
}

func TestReportDateIsYesterdayInReportingZone(t *testing.T) {
	// 03:00 UTC is still the previous evening in EST, so the report
	// covers the day before that.
	now := time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-12-31", reportDateFor(now))

	noon := time.Date(2025, 1, 2, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-01", reportDateFor(noon))
}

func TestWorkerStartStop(t *testing.T) {
	w := New(&Config{WorkerInterval: time.Hour}, report.New(&stubRepo{}, stubContacts{}), &stubMailer{})

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}
