// Package site assembles the VibeCoders website: the course catalog, the
// roadmaps and the Vibe Coding guide, served in English and Korean.
//
// New builds every content service once and wires them behind a single
// http.Handler:
//
//	cfg, err := config.Parse[site.Config]()
//	if err != nil {
//		return err
//	}
//	app, err := site.New(ctx, cfg, site.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	return app.Run(ctx)
//
// Paths without a locale prefix are redirected to one chosen from the
// locale cookie, the Accept-Language header or the default locale. The
// /api, /static, /_locale, /healthz and /metrics prefixes are served as
// is.
//
// StaticRoutes lists every page and asset, which cmd/export renders into a
// directory or an S3 bucket.
package site
