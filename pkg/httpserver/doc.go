// Package httpserver runs the site's HTTP server.
//
// A Server listens on Config.Addr, or on a listener passed with
// WithListener, and serves until the Run context ends or the process gets
// SIGINT or SIGTERM. In-flight requests then get ShutdownTimeout to finish.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler answers the liveness and readiness routes and AccessLog
// writes one record per request.
package httpserver
