package kafka

import (
	"time"

	"github.com/alimikegami/point-of-sales/product-form-service/config"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaWriter returns a writer for the configured topic, or nil when no
// broker is configured. The writer connects lazily on the first message.
func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	if config.KafkaConfig.BrokerAddress == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:        config.KafkaConfig.BrokerTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  1,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
	}
}
