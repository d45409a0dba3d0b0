// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the trigger endpoints.
//   - rayid: a unique request id (RayID) for every incoming request, stored in
//     the fiber locals under "ray_id" and echoed in the X-Ray-ID header.
//
// Both are registered globally in the start command; rayid goes first so every
// log line of a request carries its id.
package middleware
