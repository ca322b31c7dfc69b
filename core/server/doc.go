// Package server builds the HTTP surface of the host.
//
// New returns a Fiber app carrying the common middleware stack: ray ids,
// request logging, public Swagger documentation and API key protection for
// every route registered afterwards. Feature handlers attach their routes to
// the returned app.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the graceful
// shutdown bound.
package server
