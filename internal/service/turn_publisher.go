package service

import (
	"context"
	"encoding/json"
	"fmt"

	"research-agent-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// ITurnPublisher hands processed turns to the event bus.
type ITurnPublisher interface {
	PublishTurn(ctx context.Context, event events.TurnCompleted) error
}

type turnPublisher struct {
	publisher message.Publisher
	topicName string
}

func NewTurnPublisher(topicName string, publisher message.Publisher) ITurnPublisher {
	return &turnPublisher{publisher: publisher, topicName: topicName}
}

func (p *turnPublisher) PublishTurn(ctx context.Context, event events.TurnCompleted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal turn event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", event.EventType())
	msg.Metadata.Set("session_id", event.SessionID)

	if err := p.publisher.Publish(p.topicName, msg); err != nil {
		return fmt.Errorf("publish turn event: %w", err)
	}
	return nil
}

// NopTurnPublisher drops events. The terminal client uses it.
type NopTurnPublisher struct{}

func (NopTurnPublisher) PublishTurn(context.Context, events.TurnCompleted) error { return nil }
