// Package events publishes trip-planning lifecycle events to Kafka so a
// dispatch board or driver-facing app can react without re-running the
// simulation. The engine never imports this package — only the service
// layer that wraps a Plan call does.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/draymaster/hos-planner/internal/logger"
)

// Event is one domain event published about a planning run.
type Event struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Source        string            `json:"source"`
	Time          time.Time         `json:"time"`
	Data          interface{}       `json:"data"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CorrelationID string            `json:"correlation_id,omitempty"`
}

// NewEvent builds an Event, stamping it with a fresh correlation-friendly
// ID and the current time.
func NewEvent(eventType, source string, data interface{}) *Event {
	return &Event{
		ID:     uuid.New().String(),
		Type:   eventType,
		Source: source,
		Time:   time.Now().UTC(),
		Data:   data,
	}
}

// WithCorrelationID tags the event with the plan's correlation ID.
func (e *Event) WithCorrelationID(id string) *Event {
	e.CorrelationID = id
	return e
}

// Topics is the single registry of event topics this service publishes.
// It replaces the two conflicting Topics declarations the wider codebase
// carries (one in the kafka package, one in a separate topics file) with
// one coherent set scoped to trip planning.
var Topics = struct {
	TripPlanned    string
	RestScheduled  string
	FuelScheduled  string
	CycleRestarted string
}{
	TripPlanned:    "planning.trip.planned",
	RestScheduled:  "planning.rest.scheduled",
	FuelScheduled:  "planning.fuel.scheduled",
	CycleRestarted: "planning.cycle.restarted",
}

// Producer publishes events to Kafka.
type Producer struct {
	writer *kafkago.Writer
	logger *logger.Logger
}

// NewProducer builds a Producer writing to the given brokers.
func NewProducer(brokers []string, log *logger.Logger) *Producer {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Balancer:     &kafkago.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafkago.RequireAll,
		Async:        false,
	}
	return &Producer{writer: writer, logger: log}
}

// Publish writes event to topic, logging and wrapping any failure.
func (p *Producer) Publish(ctx context.Context, topic string, event *Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(event.ID),
		Value: data,
		Time:  event.Time,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "source", Value: []byte(event.Source)},
		},
	}
	if event.CorrelationID != "" {
		msg.Headers = append(msg.Headers, kafkago.Header{
			Key: "correlation_id", Value: []byte(event.CorrelationID),
		})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Errorw("failed to publish event", "topic", topic, "event_type", event.Type, "error", err)
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.Debugw("event published", "topic", topic, "event_id", event.ID, "event_type", event.Type)
	return nil
}

// Close shuts down the underlying Kafka writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
