package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// OrderConfirmedEvent is the message published after a successful checkout.
// Downstream consumers (receipts, analytics) key on the order reference.
type OrderConfirmedEvent struct {
	OrderRef        string    `json:"order_ref"`
	SessionID       string    `json:"session_id"`
	ShowtimeID      string    `json:"showtime_id"`
	SeatIDs         []string  `json:"seat_ids"`
	TotalMinorUnits int64     `json:"total_minor_units"`
	Currency        string    `json:"currency"`
	ProviderRef     string    `json:"provider_ref,omitempty"`
	ConfirmedAt     time.Time `json:"confirmed_at"`
}

// OrderProducer publishes order confirmations. Publishing is best-effort from
// the checkout path; a broker outage never fails a paid order.
type OrderProducer interface {
	PublishOrderConfirmed(ctx context.Context, event *OrderConfirmedEvent) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka order producer
type KafkaProducerConfig struct {
	Brokers     []string
	OrdersTopic string
	RetryMax    int
	TimeoutMs   int
}

func DefaultKafkaProducerConfig(brokers []string, topic string) *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:     brokers,
		OrdersTopic: topic,
		RetryMax:    3,
		TimeoutMs:   10000,
	}
}

// KafkaOrderProducer publishes order confirmations to Kafka
type KafkaOrderProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
}

func NewKafkaOrderProducer(config *KafkaProducerConfig) (OrderProducer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash on order ref so retries of one order land on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaOrderProducer{producer: producer, config: config}, nil
}

func (p *KafkaOrderProducer) PublishOrderConfirmed(ctx context.Context, event *OrderConfirmedEvent) error {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.OrdersTopic,
		Key:   sarama.StringEncoder(event.OrderRef),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("order_ref"), Value: []byte(event.OrderRef)},
			{Key: []byte("showtime_id"), Value: []byte(event.ShowtimeID)},
			{Key: []byte("confirmed_at"), Value: []byte(event.ConfirmedAt.Format(time.RFC3339))},
		},
		Timestamp: event.ConfirmedAt,
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to send order event to Kafka: %w", err)
	}

	return nil
}

func (p *KafkaOrderProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}
