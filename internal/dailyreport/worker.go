package dailyreport

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/Vaishnavi639/DailyDashboard/internal/entity"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.sendDailyReports(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't send daily reports",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// reportDateFor returns the reporting-zone calendar day before now.
// The nightly run reports on the day that just closed.
func reportDateFor(now time.Time) string {
	return now.In(entity.ReportingZone).AddDate(0, 0, -1).Format(entity.ReportDateLayout)
}

// sendDailyReports builds and emails one report per business account.
// A failure for one business is logged and skipped; it never aborts
// the remaining accounts.
func (w *Worker) sendDailyReports(ctx context.Context) error {
	reportDate := reportDateFor(time.Now())

	accounts, err := w.svc.BusinessAccounts(ctx)
	if err != nil {
		return fmt.Errorf("can't get business accounts: %w", err)
	}
	slog.Default().InfoContext(ctx, "daily report run started",
		slog.String("report_date", reportDate),
		slog.Int("businesses", len(accounts)),
	)

	sent := 0
	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return err
		}

		rep, err := w.svc.BuildDailyReport(ctx, account, reportDate)
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't build daily report",
				slog.String("err", err.Error()),
				slog.String("business_account_id", account.Id),
				slog.String("business_name", account.Name),
			)
			continue
		}

		if err := w.mailer.SendDailyReport(ctx, account.Email, rep); err != nil {
			slog.Default().ErrorContext(ctx, "can't send daily report",
				slog.String("err", err.Error()),
				slog.String("business_account_id", account.Id),
				slog.String("business_name", account.Name),
			)
			continue
		}
		sent++
	}

	slog.Default().InfoContext(ctx, "daily report run finished",
		slog.String("report_date", reportDate),
		slog.Int("sent", sent),
		slog.Int("failed", len(accounts)-sent),
	)
	return nil
}
