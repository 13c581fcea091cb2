package aggregateapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	circuitbreaker "github.com/alimikegami/point-of-sales/product-form-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/payload"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return CreateClient(srv.URL+"/api/v1/products/", httpclient.New(time.Second), circuitbreaker.CreateCircuitBreaker("test"))
}

func TestSubmitAggregateSendsPayload(t *testing.T) {
	received := make(chan map[string]any, 1)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/products/aggregate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var got map[string]any
		assert.NoError(t, json.Unmarshal(body, &got))
		received <- got

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"productId": 7, "status": "created"}`))
	})

	result, err := client.SubmitAggregate(context.Background(), payload.Example())
	require.NoError(t, err)
	assert.Equal(t, `{"productId": 7, "status": "created"}`, string(result))

	got := <-received
	require.Contains(t, got, "product")
	require.Contains(t, got, "productPacks")
	assert.Nil(t, got["product"].(map[string]any)["productId"])
}

func TestSubmitAggregateErrorMessages(t *testing.T) {
	testCases := []struct {
		Name     string
		Status   int
		Body     string
		Expected string
	}{
		{Name: "error member", Status: http.StatusBadRequest, Body: `{"error":"duplicate product"}`, Expected: "duplicate product"},
		{Name: "message wins over error", Status: http.StatusBadRequest, Body: `{"message":"name taken","error":"Bad Request"}`, Expected: "name taken"},
		{Name: "empty message falls through", Status: http.StatusUnprocessableEntity, Body: `{"message":"","error":"invalid pack"}`, Expected: "invalid pack"},
		{Name: "no known member", Status: http.StatusInternalServerError, Body: `{ "code": 17 }`, Expected: `{"code":17}`},
		{Name: "structured error member", Status: http.StatusBadRequest, Body: `{"error":{"field":"packSize"}}`, Expected: `{"field":"packSize"}`},
		{Name: "raw text", Status: http.StatusBadGateway, Body: "upstream down", Expected: "upstream down"},
		{Name: "empty body", Status: http.StatusBadGateway, Body: "", Expected: "HTTP 502"},
		{Name: "null body", Status: http.StatusInternalServerError, Body: "null", Expected: "null"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.Status)
				_, _ = w.Write([]byte(tc.Body))
			})

			result, err := client.SubmitAggregate(context.Background(), payload.Example())
			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, tc.Expected, err.Error())
			assert.ErrorIs(t, err, errs.ErrTransportFailure)

			var terr *TransportError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tc.Status, terr.StatusCode)
		})
	}
}

func TestSubmitAggregateRejectsInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("created"))
	})

	_, err := client.SubmitAggregate(context.Background(), payload.Example())
	assert.ErrorIs(t, err, errs.ErrTransportFailure)
}

func TestSubmitAggregateDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.SubmitAggregate(context.Background(), payload.Example())
	require.Error(t, err)
	assert.Equal(t, "HTTP 503", err.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestSubmitAggregateOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 3; i++ {
		_, _ = client.SubmitAggregate(context.Background(), payload.Example())
	}

	_, err := client.SubmitAggregate(context.Background(), payload.Example())
	assert.ErrorIs(t, err, errs.ErrTransportFailure)
	assert.Contains(t, err.Error(), "unavailable")
	assert.Equal(t, int32(3), calls.Load())
}

func TestSubmitAggregateUnreachable(t *testing.T) {
	client := CreateClient("http://127.0.0.1:1", httpclient.New(time.Second), nil)

	_, err := client.SubmitAggregate(context.Background(), payload.Example())
	assert.ErrorIs(t, err, errs.ErrTransportFailure)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 0, terr.StatusCode)
}

func TestExtractErrorMessage(t *testing.T) {
	assert.Equal(t, "HTTP 404", ExtractErrorMessage(404, nil))
	assert.Equal(t, "  ", ExtractErrorMessage(500, []byte("  ")))
	assert.Equal(t, `"oops"`, ExtractErrorMessage(500, []byte(`"oops"`)))
	assert.Equal(t, `[1,2]`, ExtractErrorMessage(500, []byte(`[1, 2]`)))
	assert.Equal(t, `{"error":false}`, ExtractErrorMessage(500, []byte(`{"error":false}`)))
	assert.Equal(t, "42", ExtractErrorMessage(500, []byte(`{"message":42}`)))
}
