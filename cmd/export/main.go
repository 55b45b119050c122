// Command export renders every page of the site and writes it to a local
// directory or an S3 bucket for static hosting.
//
// Settings come from the same environment as cmd/server plus:
//
//	EXPORT_TARGET   local (default) or s3
//	EXPORT_DIR      output directory for the local target (default "out")
//	EXPORT_WORKERS  pages rendered in parallel (default 8)
//	EXPORT_CLEAN    remove previous output first (default true)
//	S3_*            bucket settings for the s3 target
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	site "github.com/vibecoders/site"
	"github.com/vibecoders/site/pkg/config"
	"github.com/vibecoders/site/pkg/file"
	"github.com/vibecoders/site/pkg/logger"
	"github.com/vibecoders/site/svc/export"
)

const (
	targetLocal = "local"
	targetS3    = "s3"
)

var errUnknownTarget = errors.New("export: unknown target")

type exportConfig struct {
	Target  string `env:"EXPORT_TARGET" envDefault:"local"`
	Dir     string `env:"EXPORT_DIR" envDefault:"out"`
	Workers int    `env:"EXPORT_WORKERS" envDefault:"8"`
	Clean   bool   `env:"EXPORT_CLEAN" envDefault:"true"`

	S3 file.S3Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("export failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		cfg    site.Config
		expCfg exportConfig
	)
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if err := config.Load(&expCfg); err != nil {
		return err
	}

	log := logger.New(logger.WithEnvironment(cfg.AppEnv, cfg.AppName+"-export"))
	logger.SetAsDefault(log)

	// Pages are rendered once and written as files; caching and
	// compression only matter to a live server.
	cfg.PageCacheSize = 0
	cfg.CompressionEnabled = false

	app, err := site.New(ctx, cfg, site.WithLogger(log))
	if err != nil {
		return err
	}

	store, err := newStorage(ctx, cfg, expCfg)
	if err != nil {
		return err
	}

	opts := []export.Option{
		export.WithWorkers(expCfg.Workers),
		export.WithLogger(log),
	}
	if expCfg.Clean {
		opts = append(opts, export.WithClean(""))
	}

	exp, err := export.New(app.Handler(), store, opts...)
	if err != nil {
		return err
	}

	res, err := exp.Export(ctx, app.StaticRoutes())
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "site exported",
		slog.String("target", expCfg.Target),
		slog.String("url", store.URL("index.html")),
		logger.Count(len(res.Pages)),
		logger.Duration(res.Duration),
	)
	return nil
}

func newStorage(ctx context.Context, cfg site.Config, expCfg exportConfig) (file.Storage, error) {
	switch expCfg.Target {
	case targetLocal:
		return file.NewLocalStorage(expCfg.Dir, cfg.BaseURL)
	case targetS3:
		return file.NewS3Storage(ctx, expCfg.S3, file.WithS3CacheControl("public, max-age=300"))
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownTarget, expCfg.Target)
	}
}
