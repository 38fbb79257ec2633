// Package requestid tags every request with a correlation ID.
//
// Middleware reuses a client-supplied X-Request-ID when it is short and made
// of letters, digits, '-' and '_'; otherwise it generates a UUID. The ID is
// stored in the request context, echoed in the response header and, through
// LoggerExtractor, added to every log line written with that context.
package requestid
