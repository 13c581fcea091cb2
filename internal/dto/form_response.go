package dto

import (
	"encoding/json"
	"time"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/store"
)

type FormResponse struct {
	ID         string          `json:"id"`
	Version    uint64          `json:"version"`
	Form       *store.Tree     `json:"form"`
	Submission SubmissionState `json:"submission"`
	CreatedAt  time.Time       `json:"createdAt"`
	LastSeenAt time.Time       `json:"lastSeenAt"`
}

type SubmissionState struct {
	Submitting bool            `json:"submitting"`
	LastResult json.RawMessage `json:"lastResult"`
	LastError  string          `json:"lastError,omitempty"`
}

// EditResponse carries the index of the element created by an add op.
type EditResponse struct {
	FormResponse
	Index *int `json:"index,omitempty"`
}

type SubmitResponse struct {
	Result json.RawMessage `json:"result"`
}
