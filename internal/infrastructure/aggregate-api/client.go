// Package aggregateapi submits assembled products to the aggregate creation
// endpoint of the product service.
package aggregateapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/payload"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const aggregatePath = "/aggregate"

type Sender interface {
	SendRequest(ctx context.Context, req httpclient.HttpRequest) (int, []byte, error)
}

type Client struct {
	baseURL string
	sender  Sender
	cb      *gobreaker.CircuitBreaker[[]byte]
}

func CreateClient(baseURL string, sender Sender, cb *gobreaker.CircuitBreaker[[]byte]) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		sender:  sender,
		cb:      cb,
	}
}

// SubmitAggregate posts sp once and returns the response body verbatim. Every
// failure is a *TransportError.
func (c *Client) SubmitAggregate(ctx context.Context, sp payload.SubmissionPayload) (json.RawMessage, error) {
	body, err := json.Marshal(sp)
	if err != nil {
		return nil, fmt.Errorf("error marshalling submission payload: %w", err)
	}

	req := httpclient.HttpRequest{
		URL:    c.baseURL + aggregatePath,
		Method: http.MethodPost,
		Body:   body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}

	send := func() ([]byte, error) {
		return c.send(ctx, req)
	}

	var result []byte
	if c.cb != nil {
		result, err = c.cb.Execute(send)
	} else {
		result, err = send()
	}

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &TransportError{Message: "aggregate service unavailable: " + err.Error()}
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "SubmitAggregate").Msg("")
		return nil, err
	}

	return json.RawMessage(result), nil
}

func (c *Client) send(ctx context.Context, req httpclient.HttpRequest) ([]byte, error) {
	status, body, err := c.sender.SendRequest(ctx, req)
	if err != nil {
		return nil, &TransportError{StatusCode: status, Message: err.Error()}
	}

	if status < 200 || status > 299 {
		return nil, &TransportError{StatusCode: status, Message: ExtractErrorMessage(status, body)}
	}

	if !json.Valid(body) {
		return nil, &TransportError{StatusCode: status, Message: fmt.Sprintf("HTTP %d: response is not valid JSON", status)}
	}

	return body, nil
}
