package service

import (
	"context"
	"encoding/json"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/dto"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/payload"
	"github.com/segmentio/kafka-go"
)

type FormService interface {
	CreateForm(ctx context.Context, req dto.CreateFormRequest) (dto.FormResponse, error)
	GetForm(ctx context.Context, id string) (dto.FormResponse, error)
	DeleteForm(ctx context.Context, id string) error
	ApplyEdit(ctx context.Context, id string, req dto.EditRequest) (dto.EditResponse, error)
	PreviewPayload(ctx context.Context, id string) (payload.SubmissionPayload, error)
	SubmitForm(ctx context.Context, id string) (dto.SubmitResponse, error)
	ExpireIdleForms()
}

// AggregateSubmitter sends an assembled product to the backend and returns
// its response body verbatim.
type AggregateSubmitter interface {
	SubmitAggregate(ctx context.Context, sp payload.SubmissionPayload) (json.RawMessage, error)
}

type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}
