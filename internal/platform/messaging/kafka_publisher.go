package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	"github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer the publisher uses.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaAuditPublisher streams audit records as JSON, keyed by tenant so that a
// tenant's decisions stay ordered within one partition.
type KafkaAuditPublisher struct {
	writer Writer
}

// NewKafkaAuditPublisher creates a publisher writing to topic on brokers.
func NewKafkaAuditPublisher(brokers []string, topic string) *KafkaAuditPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
	return NewKafkaAuditPublisherWithWriter(w)
}

// NewKafkaAuditPublisherWithWriter allows injecting a test writer.
func NewKafkaAuditPublisherWithWriter(w Writer) *KafkaAuditPublisher {
	return &KafkaAuditPublisher{writer: w}
}

var _ portsrepo.AuditPublisher = (*KafkaAuditPublisher)(nil)

// Publish implements portsrepo.AuditPublisher
func (p *KafkaAuditPublisher) Publish(ctx context.Context, record domain.AuditRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record %s: %w", record.RecordID, err)
	}
	msg := kafka.Message{
		Key:   []byte(record.TenantID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(record.Kind)},
			{Key: "outcome", Value: []byte(record.Outcome)},
			{Key: "correlation_id", Value: []byte(record.CorrelationID)},
		},
		Time: record.CreatedAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish audit record %s: %w", record.RecordID, err)
	}
	return nil
}

// Close implements portsrepo.AuditPublisher
func (p *KafkaAuditPublisher) Close() error {
	return p.writer.Close()
}
