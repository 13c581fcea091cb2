package dto

import "encoding/json"

const EventProductAggregateSubmitted = "product_aggregate_submitted"

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type AggregateSubmitted struct {
	FormID      string          `json:"form_id"`
	ProductName string          `json:"product_name"`
	PackCount   int             `json:"pack_count"`
	Result      json.RawMessage `json:"result"`
	SubmittedAt int64           `json:"submitted_at"`
}
