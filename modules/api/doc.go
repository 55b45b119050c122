// Package api serves the catalog, the guide and the dictionaries as
// read-only JSON under /api.
//
// Every response uses the handler.JSONResponse envelope. Unknown slugs and
// levels answer 404 with error code "not_found"; malformed path values
// answer 400. Unsupported locales are not errors: they get the default
// locale's content, as the page layer does.
package api
