// Command server serves the site over HTTP until it receives SIGINT or
// SIGTERM.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	site "github.com/vibecoders/site"
	"github.com/vibecoders/site/pkg/config"
	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/pkg/logger"
	"github.com/vibecoders/site/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg site.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	app, err := site.New(ctx, cfg, site.WithLogger(log))
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
