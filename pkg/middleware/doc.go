// Package middleware provides net/http middleware for instrumenting the
// preview server.
//
//   - Prometheus records request counts, durations and in-flight requests,
//     labelled by chi route pattern.
//   - OpenTelemetry starts a server span per request and stores it in the
//     request context.
//
// Both are plain func(http.Handler) http.Handler values and work with any
// router; route labels are only available under chi.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry())
//	r.Use(middleware.Prometheus(middleware.WithRegistry(reg)))
package middleware
