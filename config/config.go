package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName        string
	ServicePort        string
	MetricsPort        string
	AggregateAPIConfig AggregateAPIConfig
	SessionConfig      SessionConfig
	KafkaConfig        KafkaConfig
	TracingConfig      TracingConfig
}

type AggregateAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServiceName: getEnv("SERVICE_NAME", "product-form-service"),
		ServicePort: getEnv("SERVICE_PORT", "8081"),
		MetricsPort: getEnv("METRICS_PORT", "9091"),
		AggregateAPIConfig: AggregateAPIConfig{
			BaseURL: getEnv("AGGREGATE_API_BASE", "http://localhost:8080/api/v1/products"),
			Timeout: getDuration("AGGREGATE_API_TIMEOUT", 10*time.Second),
		},
		SessionConfig: SessionConfig{
			TTL:           getDuration("SESSION_TTL", 30*time.Minute),
			SweepInterval: getDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   getEnv("BROKER_TOPIC", "product-forms"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// getDuration accepts Go duration strings ("45s") or a plain number of
// seconds. Invalid or non-positive values fall back.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	if secs, err := cast.ToInt64E(v); err == nil {
		v = cast.ToString(secs) + "s"
	}

	d, err := cast.ToDurationE(v)
	if err != nil || d <= 0 {
		log.Warn().Str("component", "CreateNewConfig").Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return fallback
	}

	return d
}
