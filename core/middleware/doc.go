// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation protecting the integration endpoints.
//   - RayID: tags every request with a ray id, stored in the context locals
//     and echoed in the X-Ray-ID response header for tracing.
package middleware
