package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response. Message is the best human-readable text
// the backend offered.
type APIError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// TransportError is a request that never produced a response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.StatusCode == http.StatusNotFound
}

// ErrorMessage returns the text to show for err, or fallback when err carries
// nothing useful.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}

func errorMessage(resp *http.Response, data []byte, readErr error) string {
	status := statusLine(resp.StatusCode)
	if readErr != nil {
		return status
	}
	if strings.Contains(resp.Header.Get("Content-Type"), contentTypeJSON) {
		value, err := decodeJSON(data)
		if err != nil {
			return status
		}
		return messageFromJSON(value, status)
	}
	if len(data) == 0 {
		return status
	}
	return string(data)
}

func messageFromJSON(value any, status string) string {
	if s, ok := value.(string); ok {
		return s
	}
	if obj, ok := value.(map[string]any); ok {
		if detail := obj["detail"]; truthy(detail) {
			return stringify(detail)
		}
		if message := obj["message"]; truthy(message) {
			return stringify(message)
		}
	}
	encoded, err := encodeJSON(value)
	if err != nil {
		return status
	}
	return encoded
}

func statusLine(code int) string {
	return strings.TrimSpace(fmt.Sprintf("%d %s", code, http.StatusText(code)))
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	}
	encoded, err := encodeJSON(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return encoded
}

func encodeJSON(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
