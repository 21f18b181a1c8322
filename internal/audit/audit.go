package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AlexanderBarlow/catering-any/internal/models"
	"github.com/IBM/sarama"
)

// Event is one successful mutation, published to the audit topic.
type Event struct {
	Timestamp int64  `json:"timestamp"`
	Action    string `json:"action"` // e.g. "item.create", "user.delete"
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId"`
	Actor     string `json:"actor,omitempty"`
}

// Publisher writes audit events to Kafka. Publishing is best-effort:
// a failed send is logged, never surfaced to the mutation that caused
// it. It implements store.Recorder.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	actor    string
}

// NewPublisher connects a sync producer to the configured brokers. It
// returns nil (and no error) when auditing is disabled.
func NewPublisher(cfg *models.Config, actor string) (*Publisher, error) {
	if !cfg.KafkaEnabled {
		return nil, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")
	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit producer: %w", err)
	}

	return &Publisher{producer: producer, topic: cfg.AuditTopic, actor: actor}, nil
}

// Record publishes one event. Safe to call on a nil publisher.
func (p *Publisher) Record(ctx context.Context, action, entity, id string) {
	if p == nil {
		return
	}
	msg, err := json.Marshal(Event{
		Timestamp: time.Now().UnixMilli(),
		Action:    action,
		Entity:    entity,
		EntityID:  id,
		Actor:     p.actor,
	})
	if err != nil {
		log.Printf("audit: encoding event: %v", err)
		return
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("audit: sending event to topic %s: %v", p.topic, err)
	}
}

// Close flushes and shuts down the producer. Safe on nil.
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
