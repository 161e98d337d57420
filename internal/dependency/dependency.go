package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
	"github.com/jmoiron/sqlx"
)

type (
	// Repository is the read-only surface over the primary
	// transactional store.
	Repository interface {
		// GetBusinessAccounts returns accounts with a non-null email,
		// ordered by name.
		GetBusinessAccounts(ctx context.Context) ([]entity.BusinessAccount, error)
		// GetDailyMetrics aggregates completed-order metrics for one
		// EST calendar day, optionally filtered by business.
		GetDailyMetrics(ctx context.Context, reportDate string, businessAccountId *string) (*entity.DailyMetrics, error)
		// GetDailyOrders returns completed orders for the day joined
		// with their cross-store contact reference, newest first.
		GetDailyOrders(ctx context.Context, reportDate string, businessAccountId *string, limit int) ([]entity.Order, error)

		// GetActiveFlyerTemplate resolves the most recent active
		// weekly-flyer template. A nil result without error means no
		// template matched.
		GetActiveFlyerTemplate(ctx context.Context, businessAccountId *string) (*entity.FlyerTemplate, error)
		GetTemplateDiagnostics(ctx context.Context) (*entity.TemplateDiagnostics, error)
		GetTemplateSections(ctx context.Context, templateId string) ([]entity.FlyerSection, error)
		GetSectionProducts(ctx context.Context, sectionIds []string) ([]entity.FlyerProduct, error)
		GetFlyerDailySales(ctx context.Context, productIds []string, startDate, endDate time.Time) ([]entity.FlyerSalesRow, error)

		ListTemplates(ctx context.Context, businessAccountId *string) ([]entity.TemplateSummary, error)
		GetChannelUsage(ctx context.Context) ([]entity.ChannelUsage, error)

		Ping(ctx context.Context) error
		Close()
	}

	// Contacts is the read-only surface over the contacts store.
	Contacts interface {
		// GetContactsByIds batch-fetches contacts by id-set membership.
		GetContactsByIds(ctx context.Context, ids []string) ([]entity.Contact, error)
		Ping(ctx context.Context) error
		Close()
	}

	// Mailer dispatches rendered daily reports.
	Mailer interface {
		SendDailyReport(ctx context.Context, to string, report *entity.DailyReport) error
	}

	// DB represents database interface.
	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
