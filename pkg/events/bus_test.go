package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversByType(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	emergencies := make(chan Envelope, 1)
	require.NoError(t, bus.Subscribe(TypeEmergencyDetected, func(env Envelope) {
		emergencies <- env
	}))

	require.NoError(t, bus.Publish(NewTurnCompleted("s-1", "medium", "fever", "pattern")))
	require.NoError(t, bus.Publish(NewEmergency("s-1", "chest pain", "en", "chest pain (chest)")))

	select {
	case env := <-emergencies:
		assert.Equal(t, TypeEmergencyDetected, env.Type)
		assert.Equal(t, "s-1", env.Data["session_id"])
		assert.Equal(t, "chest pain", env.Data["text"])
		assert.NotEmpty(t, env.OccurredAt)
	case <-time.After(2 * time.Second):
		t.Fatal("emergency event not delivered")
	}

	// the turn event must not have leaked into the emergency handler
	select {
	case env := <-emergencies:
		t.Fatalf("unexpected extra event: %v", env)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBusFanOut(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	first := make(chan Envelope, 1)
	second := make(chan Envelope, 1)
	require.NoError(t, bus.Subscribe(TypeTurnCompleted, func(env Envelope) { first <- env }))
	require.NoError(t, bus.Subscribe(TypeTurnCompleted, func(env Envelope) { second <- env }))

	require.NoError(t, bus.Publish(NewTurnCompleted("s-2", "low", "cold", "pattern")))

	for _, ch := range []chan Envelope{first, second} {
		select {
		case env := <-ch:
			assert.Equal(t, "s-2", env.Data["session_id"])
		case <-time.After(2 * time.Second):
			t.Fatal("turn event not delivered to all subscribers")
		}
	}
}
