// Package logger builds *slog.Logger instances for the site.
//
// New applies functional options for format, level, output and static
// attributes. Context extractors add request-scoped values, such as the
// request id or the resolved locale, to every record logged with a context.
//
// Environment presets pick sensible defaults: text at debug level for
// development, JSON at info level for staging and production.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "page rendered",
//		logger.Locale("ko"),
//		logger.Route("/{locale}/courses/{slug}"),
//		logger.Duration(elapsed),
//	)
//
// The attribute helpers in attr.go keep key names consistent across packages.
package logger
