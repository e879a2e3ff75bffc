package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Envelope is the wire form of an event on the bus.
type Envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt string                 `json:"occurred_at"`
}

// Bus is a thin wrapper over watermill's in-process pub/sub carrying
// triage events. Handlers run on their own goroutines; a slow handler
// never blocks the turn pipeline.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NewStdLogger(false, false),
		),
	}
}

// Publish puts one event on the bus.
func (b *Bus) Publish(event Event) error {
	payload, err := json.Marshal(Envelope{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(uuid.NewString(), payload)
	if err := b.pubSub.Publish(Topic, msg); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Subscribe registers a handler for every event of the given type.
// Events of other types on the topic are acked and skipped.
func (b *Bus) Subscribe(eventType string, handler func(Envelope)) error {
	messages, err := b.pubSub.Subscribe(context.Background(), Topic)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	go func() {
		for msg := range messages {
			var env Envelope
			if err := json.Unmarshal(msg.Payload, &env); err != nil {
				msg.Ack()
				continue
			}
			if env.Type == eventType {
				handler(env)
			}
			msg.Ack()
		}
	}()
	return nil
}

// Close shuts the bus down and drains subscribers.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}
