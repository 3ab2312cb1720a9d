// Package service provides the request orchestration layer for disk2iso-web.
//
// ConfigService sits between the transports (HTTP API and CLI) and the
// config backend. Every request goes through the same stages:
//
//  1. Validate: the key must be in the registry, otherwise the request is
//     rejected without touching the backend.
//  2. Execute: a single read or write through the backend adapter.
//  3. Restart: after a successful write of a key that requires it, the
//     dependent service is restarted. A refused restart never turns a
//     successful write into a failure.
//
// # Example Usage
//
//	svc := service.NewConfigService(registry.Default(), adapter, trigger)
//
//	out := svc.Set(ctx, "DEFAULT_OUTPUT_DIR", "/srv/iso")
//	if out.Success && out.RestartFailed {
//	    log.Warnf("Value saved, but disk2iso was not restarted")
//	}
package service
