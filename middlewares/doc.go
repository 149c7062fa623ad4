// Package middlewares provides net/http middleware for form handlers.
//
// Both middlewares have the standard func(http.Handler) http.Handler shape
// and plug into chi or any other router.
//
// # Request ID
//
// RequestID assigns an ID to each request for tracing. Existing IDs from
// upstream headers are kept; new ones are UUIDs. The ID is added to log
// records through logger.AttrsExtractor:
//
//	log := logger.New(logger.AttrsExtractor("request"))
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//
// # Locale
//
// Locale negotiates the language once per request from the "lang" query
// parameter, the "lang" cookie and Accept-Language. Definition.BindRequest
// uses the stored language for error messages:
//
//	r.Use(middlewares.Locale(i18n.Default()))
package middlewares
