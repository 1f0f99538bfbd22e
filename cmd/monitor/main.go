package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"servicemonitor/internal/config"
	"servicemonitor/internal/logging"
	"servicemonitor/internal/notify"
	"servicemonitor/internal/probe"
	"servicemonitor/internal/runner"
)

func main() {
	configPath := flag.String("config", "./config.json", "path to the config file")
	flag.Parse()

	// .env is optional; real environment variables win when both exist.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	secrets := config.FromEnv()
	ctx := context.Background()

	r := runner.New(logger, probe.NewHTTPExecutor(cfg.HTTPTimeout))
	summary := r.Run(ctx, cfg.Tests)

	down := summary.Down()
	errored := summary.Errors()
	logger.Info("run_complete",
		zap.Int("tests", len(summary.Results)),
		zap.Int("up", len(summary.Results)-len(down)-len(errored)),
		zap.Int("down", len(down)),
		zap.Int("error", len(errored)),
	)

	notifications := runner.BuildNotifications(summary, cfg.Contacts.Recipients, cfg.Contacts.ScriptRecipients)
	if len(notifications) == 0 {
		logger.Info("run_clean")
		return
	}

	composer := notify.NewComposer(cfg.Email.Subject, cfg.Tests)
	notifier := notify.Multi{
		notify.NewMailer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Contacts.Source.Address(),
			cfg.Contacts.Source.Account,
			secrets.EmailAppPassword,
		),
	}
	if s := notify.NewSlack(secrets.SlackWebhook); s != nil {
		notifier = append(notifier, s)
	}

	for _, n := range notifications {
		subject, body := composer.Compose(n)
		logger.Warn("sending_alert",
			zap.String("category", string(n.Category)),
			zap.Int("entries", len(n.Entries)),
			zap.Strings("recipients", n.Recipients),
		)
		if err := notifier.Send(ctx, n.Recipients, subject, body); err != nil {
			// No fallback delivery channel exists, so an undeliverable alert
			// fails the whole run.
			logger.Error("alert_send_failed",
				zap.String("category", string(n.Category)),
				zap.Error(err),
			)
			_ = logger.Sync()
			os.Exit(1)
		}
		logger.Info("alert_sent", zap.String("category", string(n.Category)))
	}
}
