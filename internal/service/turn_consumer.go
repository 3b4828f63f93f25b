package service

import (
	"context"
	"encoding/json"
	"time"

	"research-agent-be/internal/metrics"
	"research-agent-be/internal/pkg/logger"
	"research-agent-be/pkg/agent/intent"
	"research-agent-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventForwarder ships events to an external bus (NATS in production).
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type turnConsumer struct {
	subscriber message.Subscriber
	topicName  string
	metrics    *metrics.Metrics
	forwarder  EventForwarder
	logger     logger.ILogger
}

// NewTurnConsumer records metrics for each turn event and forwards it when
// forwarder is non-nil.
func NewTurnConsumer(
	subscriber message.Subscriber,
	topicName string,
	m *metrics.Metrics,
	forwarder EventForwarder,
	log logger.ILogger,
) IConsumerService {
	return &turnConsumer{
		subscriber: subscriber,
		topicName:  topicName,
		metrics:    m,
		forwarder:  forwarder,
		logger:     log,
	}
}

func (tc *turnConsumer) Consume(ctx context.Context) error {
	messages, err := tc.subscriber.Subscribe(ctx, tc.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			tc.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (tc *turnConsumer) processMessage(ctx context.Context, msg *message.Message) {
	var event events.TurnCompleted
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		tc.logger.Error("TurnConsumer", "Failed to unmarshal turn event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // will never parse, do not redeliver
		return
	}

	if tc.metrics != nil {
		tc.metrics.ObserveTurn(event.Intent, event.Intent == string(intent.IntentInitial), event.CompanyFound,
			time.Duration(event.DurationMs)*time.Millisecond)
	}

	tc.logger.Info("TurnConsumer", "Turn completed", map[string]interface{}{
		"session_id":    event.SessionID,
		"turn":          event.Turn,
		"intent":        event.Intent,
		"detail_level":  event.DetailLevel,
		"company_found": event.CompanyFound,
	})

	if tc.forwarder != nil {
		if err := tc.forwarder.Publish(ctx, event); err != nil {
			// Metrics are already recorded; forwarding is best effort
			tc.logger.Warn("TurnConsumer", "Failed to forward turn event", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}
