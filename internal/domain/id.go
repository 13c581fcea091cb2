package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
)

// ID is an identifier assigned by the aggregate service. The zero value is
// unset and marshals to null. Assigned values are kept as opaque JSON so the
// client never has to know whether the backend uses numbers or strings.
type ID struct {
	raw json.RawMessage
}

// AssignedID wraps a value received from the backend. A null or empty raw
// value yields an unset ID.
func AssignedID(raw json.RawMessage) (ID, error) {
	var id ID
	if err := id.UnmarshalJSON(raw); err != nil {
		return ID{}, err
	}

	return id, nil
}

func (id ID) IsSet() bool {
	return len(id.raw) > 0
}

// Raw returns a copy of the assigned JSON value, nil when unset.
func (id ID) Raw() json.RawMessage {
	if !id.IsSet() {
		return nil
	}

	return append(json.RawMessage(nil), id.raw...)
}

func (id ID) String() string {
	if !id.IsSet() {
		return "<unset>"
	}

	return string(id.raw)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if !id.IsSet() {
		return []byte("null"), nil
	}

	return id.Raw(), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ID{}
		return nil
	}

	if !json.Valid(trimmed) {
		return fmt.Errorf("%w: identifier %q is not valid JSON", errs.ErrInvalidFieldValue, trimmed)
	}

	id.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}
