package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnreachable means no HTTP response came back at all.
	ErrUnreachable  = errors.New("server unreachable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// APIError carries the server's error envelope for statuses that do not map
// to a sentinel, and wraps the sentinel when one applies.
type APIError struct {
	Status  int
	Code    string
	Message string
	// Details is the envelope's details object verbatim; its shape varies
	// by error code, so it stays raw and FieldErrors decodes the common case.
	Details json.RawMessage
}

// FieldError is one entry of a validation envelope's details.fields list.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param"`
	Message string `json:"message"`
}

// FieldErrors decodes per-field validation messages out of Details.
// It returns nil when the details carry none.
func (e *APIError) FieldErrors() map[string]string {
	if len(e.Details) == 0 {
		return nil
	}
	var details struct {
		Fields []FieldError `json:"fields"`
	}
	if err := json.Unmarshal(e.Details, &details); err != nil || len(details.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(details.Fields))
	for _, fe := range details.Fields {
		out[fe.Field] = fe.Message
	}
	return out
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	}
	return nil
}

type errorEnvelope struct {
	Error struct {
		Code      string          `json:"code"`
		Message   string          `json:"message"`
		RequestID string          `json:"requestId"`
		Details   json.RawMessage `json:"details"`
	} `json:"error"`
}
