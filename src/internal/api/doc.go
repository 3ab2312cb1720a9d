// Package api provides the REST API for field-by-field disk2iso configuration.
//
// # Endpoints
//
//	GET  /api/config            list the known keys and their restart targets
//	GET  /api/config/all        read every known key
//	GET  /api/config/{key}      read one key
//	PUT  /api/config/{key}      write one key, body {"value": "..."}
//	GET  /health                liveness and build version
//	GET  /metrics               Prometheus metrics
//
// # Response Format
//
// Every API response is a JSON object with a "success" field. Successful
// reads carry "value":
//
//	{"success": true, "value": "/media/iso"}
//
// Successful writes report what happened to the dependent service:
//
//	{"success": true, "restart_required": true, "restart_service": "disk2iso"}
//
// A write whose value was stored but whose restart was not accepted still
// succeeds and carries "restart_failed": true.
//
// Errors carry a human-readable message:
//
//	{"success": false, "message": "Unknown config key: FOO"}
//
// # Status Codes
//
//   - 200 OK: request handled, including writes with a failed restart
//   - 400 Bad Request: unknown key, malformed body or missing value
//   - 403 Forbidden: client outside private networks (api.private_only)
//   - 404 Not Found: unknown route
//   - 405 Method Not Allowed: known route, unsupported method
//   - 500 Internal Server Error: config store failure or timeout
package api
