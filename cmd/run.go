package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Vaishnavi639/DailyDashboard/config"
	httpapi "github.com/Vaishnavi639/DailyDashboard/internal/api/http"
	"github.com/Vaishnavi639/DailyDashboard/internal/cache"
	"github.com/Vaishnavi639/DailyDashboard/internal/dailyreport"
	"github.com/Vaishnavi639/DailyDashboard/internal/mail"
	"github.com/Vaishnavi639/DailyDashboard/internal/report"
	"github.com/Vaishnavi639/DailyDashboard/internal/store"
	applog "github.com/Vaishnavi639/DailyDashboard/log"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := applog.New(cfg.Logger)
	slog.SetDefault(logger)

	// Money fields serialize as JSON numbers, matching the dashboard
	// contract.
	decimal.MarshalJSONWithoutQuotes = true

	cache.InitChannels(cfg.Channels)

	repo, err := store.New(ctx, cfg.PrimaryDB)
	if err != nil {
		return fmt.Errorf("cannot connect to the primary store %v", err.Error())
	}
	defer repo.Close()

	contacts, err := store.NewContacts(ctx, cfg.ContactsDB)
	if err != nil {
		return fmt.Errorf("cannot connect to the contacts store %v", err.Error())
	}
	defer contacts.Close()

	svc := report.New(repo, contacts)

	mailer, err := mail.New(&cfg.Mailer)
	if err != nil {
		logger.Warn("mailer not configured, daily report emails disabled",
			slog.String("err", err.Error()),
		)
	} else {
		worker := dailyreport.New(&cfg.ReportWorker, svc, mailer)
		if err := worker.Start(ctx); err != nil {
			return fmt.Errorf("cannot start the report worker %v", err.Error())
		}
		defer worker.Stop()
	}

	server := httpapi.New(&cfg.HTTP, svc, repo, contacts)
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the http server %v", err.Error())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		server.Stop(ctx)
		logger.Info("application exited")
	case <-server.Done():
		logger.Error("application exited")
	}

	return nil
}
