package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
)

// envelope is the body of every API response.
type envelope struct {
	Success bool            `json:"success"`
	Data    any             `json:"data,omitempty"`
	Count   *int            `json:"count,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []fieldErrorDTO `json:"errors,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

const msgInvalidBody = "Invalid request body"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeList[T any](w http.ResponseWriter, items []T) {
	n := len(items)
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &n, Data: items})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// decodeJSON strictly decodes a single JSON object from the request body.
// Unknown fields, trailing data and oversized bodies are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// writeBodyError reports a decodeJSON failure. A value of the wrong JSON
// type for a known field is reported per field, shaped like a validation
// error; anything else gets the generic message.
func writeBodyError(w http.ResponseWriter, err error) {
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) || ute.Field == "" {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	msg := ute.Field + " " + expectedKind(ute.Type)
	writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Message: msg,
		Errors:  []fieldErrorDTO{{Field: ute.Field, Message: msg}},
	})
}

func expectedKind(t reflect.Type) string {
	if t == nil {
		return "has an invalid type"
	}
	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "must be a number"
	default:
		return "has an invalid type"
	}
}
