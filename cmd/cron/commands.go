package main

import (
	"context"
	"fmt"

	"crm-service/config"
	"crm-service/internal/client"
	"crm-service/internal/jobs"
	"crm-service/internal/notify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	apiURL string
	logDir string
}

func newRootCommand(log *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "crm-cron",
		Short: "Run CRM background jobs once against the HTTP API",
		Long: `Run a single CRM background job against a running CRM API.

Available jobs:
  heartbeat  - append "CRM is alive" to the heartbeat log
  restock    - restock products with stock below 10
  report     - append customers / orders / revenue summary to the report log
  reminders  - log and email reminders for orders from the last 7 days
  all        - run every job in order`,
		SilenceUsage: true,
	}
	opts := &rootOptions{}
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "CRM API base URL (overrides API_BASE_URL)")
	root.PersistentFlags().StringVar(&opts.logDir, "log-dir", "", "Directory for job log files (overrides JOB_LOG_DIR)")

	jobsList := []struct {
		use   string
		short string
		run   func(r *jobs.Runner, ctx context.Context) error
	}{
		{"heartbeat", "Log CRM heartbeat", func(r *jobs.Runner, ctx context.Context) error { return r.Heartbeat(ctx) }},
		{"restock", "Restock low-stock products", func(r *jobs.Runner, ctx context.Context) error { return r.Restock(ctx) }},
		{"report", "Generate CRM report", func(r *jobs.Runner, ctx context.Context) error { return r.Report(ctx) }},
		{"reminders", "Process order reminders", func(r *jobs.Runner, ctx context.Context) error {
			if err := r.Reminders(ctx); err != nil {
				return err
			}
			fmt.Println("Order reminders processed!")
			return nil
		}},
		{"all", "Run every job once", func(r *jobs.Runner, ctx context.Context) error { return r.RunAll(ctx) }},
	}

	for _, j := range jobsList {
		root.AddCommand(&cobra.Command{
			Use:   j.use,
			Short: j.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				runner, closeFn := newRunner(opts, log)
				defer closeFn()

				log.Info("running job", zap.String("job", j.use))
				if err := j.run(runner, cmd.Context()); err != nil {
					log.Error("job failed", zap.String("job", j.use), zap.Error(err))
					return err
				}
				log.Info("job completed", zap.String("job", j.use))
				return nil
			},
		})
	}
	return root
}

func newRunner(opts *rootOptions, log *zap.Logger) (*jobs.Runner, func()) {
	cfg := config.LoadClient(log)
	if opts.apiURL != "" {
		cfg.API.BaseURL = opts.apiURL
	}
	if opts.logDir != "" {
		cfg.Jobs.LogDir = opts.logDir
	}

	api := client.New(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.GRPCHealthAddr, log)
	notifier := notify.New(cfg.Notify, log)
	return jobs.NewRunner(api, notifier, cfg.Jobs.LogDir, log), func() { _ = notifier.Close() }
}
