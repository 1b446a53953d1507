package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records the messages written to it.
type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaAuditPublisher_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := NewKafkaAuditPublisherWithWriter(fw)

	record := domain.AuditRecord{
		RecordID:      "r1",
		TenantID:      "t1",
		CorrelationID: "c1",
		Kind:          domain.AuditPeriod,
		Outcome:       domain.OutcomeDenied,
		Action:        domain.ActionPost,
		DocumentID:    "doc-1",
		ActorID:       "u1",
		CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Publish(context.Background(), record))
	require.Len(t, fw.msgs, 1)

	msg := fw.msgs[0]
	assert.Equal(t, "t1", string(msg.Key))

	var decoded domain.AuditRecord
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, record.CorrelationID, decoded.CorrelationID)
	assert.Equal(t, domain.AuditPeriod, decoded.Kind)
	assert.Contains(t, msg.Headers, kafka.Header{Key: "outcome", Value: []byte("DENIED")})
}

func TestKafkaAuditPublisher_PublishError(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker down")}
	p := NewKafkaAuditPublisherWithWriter(fw)

	err := p.Publish(context.Background(), domain.AuditRecord{RecordID: "r1"})
	assert.ErrorContains(t, err, "broker down")
	assert.NoError(t, p.Close())
	assert.True(t, fw.closed)
}
