// Package export renders the site to static files.
//
// An Exporter requests every route through the application handler, the
// same one that serves live traffic, and writes each response body to a
// file.Storage at the route's page path ("/en/courses" becomes
// "en/courses/index.html"). Routes are rendered by a bounded pool of
// workers; the first failed route cancels the rest.
//
//	exp, err := export.New(app.Handler(), storage, export.WithWorkers(8))
//	res, err := exp.Export(ctx, app.StaticRoutes())
package export
