package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/disk2iso/disk2iso-web/src/internal/domain"
	"github.com/disk2iso/disk2iso-web/src/internal/registry"
)

// ValueResponse returns the value of a single key.
type ValueResponse struct {
	Success bool   `json:"success"`
	Value   string `json:"value"`
}

// WriteResponse reports a successful write.
type WriteResponse struct {
	Success         bool   `json:"success"`
	RestartRequired bool   `json:"restart_required"`
	RestartService  string `json:"restart_service,omitempty"`
	RestartFailed   bool   `json:"restart_failed,omitempty"`
}

// SetValueRequest is the body of PUT /api/config/{key}.
// Value is kept raw so that numbers and booleans can be accepted verbatim.
type SetValueRequest struct {
	Value json.RawMessage `json:"value"`
}

// KeyInfo describes one registry entry.
type KeyInfo struct {
	Key             string `json:"key"`
	RestartRequired bool   `json:"restart_required"`
	RestartService  string `json:"restart_service,omitempty"`
}

// KeysResponse lists the registry.
type KeysResponse struct {
	Success bool      `json:"success"`
	Keys    []KeyInfo `json:"keys"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// AllValuesResponse is a flat object of every key next to "success".
// Keys are written in registry order; unreadable keys are null.
type AllValuesResponse struct {
	Keys   []string
	Values map[string]*string
}

// MarshalJSON writes {"success":true,"<key>":"<value>"|null,...}.
func (a AllValuesResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"success":true`)
	for _, k := range a.Keys {
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(a.Values[k])
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ReadBody converts a read outcome into its status code and response body.
func ReadBody(out domain.Outcome) (int, interface{}) {
	if !out.Success {
		return StatusForCode(out.Code), ErrorResponse{Success: false, Message: out.Message}
	}
	value := ""
	if out.Value != nil {
		value = *out.Value
	}
	return http.StatusOK, ValueResponse{Success: true, Value: value}
}

// WriteBody converts a write outcome into its status code and response body.
func WriteBody(out domain.Outcome) (int, interface{}) {
	if !out.Success {
		return StatusForCode(out.Code), ErrorResponse{Success: false, Message: out.Message}
	}
	resp := WriteResponse{
		Success:        true,
		RestartService: out.RestartService,
		RestartFailed:  out.RestartFailed,
	}
	if out.RestartRequired != nil {
		resp.RestartRequired = *out.RestartRequired
	}
	return http.StatusOK, resp
}

// KeysBody lists keys in registry order.
func KeysBody(keys []registry.Key) KeysResponse {
	resp := KeysResponse{Success: true, Keys: make([]KeyInfo, 0, len(keys))}
	for _, k := range keys {
		resp.Keys = append(resp.Keys, KeyInfo{
			Key:             k.Name,
			RestartRequired: k.RequiresRestart(),
			RestartService:  k.RestartService,
		})
	}
	return resp
}
