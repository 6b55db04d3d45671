// Package dev provides the development server and live reload.
//
// This package implements:
//   - Polling of the route descriptor file's directory
//   - Regeneration of both manifests in development mode on change
//   - WebSocket-based browser refresh
//   - Error overlay in browser
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{Config: cfg})
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
//	/_routegen/reload    WebSocket used by the reload client
//	/reload-client.js    the reload client module (exports connect(port))
//	/manifest/{name}     last generated client.js or server.js
//	/metrics             Prometheus metrics
//	/healthz             status and pending error
//
// # Reload Protocol
//
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
package dev
