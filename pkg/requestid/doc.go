// Package requestid tags every request with a correlation id.
//
// Middleware reuses a client-supplied X-Request-ID header when it is made of
// letters, digits, '-' and '_' and is at most 128 characters long; otherwise
// it generates a UUIDv7. The id is stored in the context, echoed in the
// response header and added to log records by LoggerExtractor:
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
