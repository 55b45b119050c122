// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener, runs start hooks and serves until the context is
// cancelled, SIGINT or SIGTERM arrives, or Shutdown is called. Shutdown waits
// up to the configured timeout for in-flight requests. Errors are wrapped with
// ErrStart and ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, app.Handler()); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves the /healthz probe.
package httpserver
