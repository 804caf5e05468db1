// Package middleware provides HTTP middleware for velum page servers.
//
// Both middlewares wrap standard http.Handler values and compose with any
// router, including chi:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus())
//	r.Use(middleware.OpenTelemetry())
package middleware
