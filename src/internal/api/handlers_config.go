package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxRequestBody bounds PUT bodies; config values are short.
const maxRequestBody = 64 << 10

// GetConfigValue returns the current value of one key.
// GET /api/config/{key}
func (h *Handler) GetConfigValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	status, body := ReadBody(h.service.Get(r.Context(), key))
	writeJSON(w, status, body)
}

// SetConfigValue stores a new value for one key.
// PUT /api/config/{key}
func (h *Handler) SetConfigValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req SetValueRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON in request body")
		return
	}

	value, ok, err := parseValue(req.Value)
	if err != nil {
		WriteInvalidRequest(w, `Invalid "value" in request body: must be a string, number or boolean`)
		return
	}
	if !ok {
		WriteInvalidRequest(w, `Missing "value" in request body`)
		return
	}

	status, body := WriteBody(h.service.Set(r.Context(), key, value))
	writeJSON(w, status, body)
}

// GetAllConfigValues reads every known key.
// GET /api/config/all
func (h *Handler) GetAllConfigValues(w http.ResponseWriter, r *http.Request) {
	batch := h.service.GetAll(r.Context())
	writeJSONData(w, AllValuesResponse{Keys: batch.Keys, Values: batch.Values})
}

// ListConfigKeys returns the registry.
// GET /api/config
func (h *Handler) ListConfigKeys(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, KeysBody(h.service.ListKeys()))
}

// parseValue turns the raw "value" member into the stored text. Strings are
// unquoted, numbers and booleans keep their literal JSON text. Absent and
// null values report ok=false.
func parseValue(raw json.RawMessage) (value string, ok bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false, nil
	}

	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &value); err != nil {
			return "", false, err
		}
		return value, true, nil
	case '{', '[':
		return "", false, errUnsupportedValue
	}
	return string(raw), true, nil
}
