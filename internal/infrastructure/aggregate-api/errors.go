package aggregateapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
)

// TransportError is a failed submission. Message is what the caller shows;
// StatusCode is zero when no response arrived.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return errs.ErrTransportFailure
}

func (e *TransportError) HTTPStatus() int {
	return e.StatusCode
}

// ExtractErrorMessage turns a failed response into a message. A JSON object
// yields its "message" or, failing that, its "error" member when set to a
// non-empty value. Any other JSON document yields its compact encoding. A
// body that is not JSON is used as raw text, and an empty body yields
// "HTTP <status>".
func ExtractErrorMessage(status int, body []byte) string {
	trimmed := bytes.TrimSpace(body)

	var doc any
	if len(trimmed) == 0 || json.Unmarshal(trimmed, &doc) != nil || doc == nil {
		if len(body) > 0 {
			return string(body)
		}

		return fmt.Sprintf("HTTP %d", status)
	}

	if trimmed[0] == '{' {
		var members map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &members); err == nil {
			for _, key := range []string{"message", "error"} {
				if msg, ok := truthyText(members[key]); ok {
					return msg
				}
			}
		}
	}

	return compact(trimmed)
}

// truthyText renders a member that is set to something other than null,
// false, zero or the empty string.
func truthyText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}

	switch t := v.(type) {
	case nil:
		return "", false
	case bool:
		if !t {
			return "", false
		}
	case float64:
		if t == 0 {
			return "", false
		}
	case string:
		return t, t != ""
	}

	return compact(raw), true
}

func compact(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}

	return buf.String()
}
