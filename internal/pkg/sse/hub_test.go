package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_SubscribePublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	assert.Equal(t, 1, hub.SubscriberCount("user-1"))

	hub.Publish("user-1", Event{Event: EventChatUnread, Data: true})

	select {
	case ev := <-ch:
		assert.Equal(t, EventChatUnread, ev.Event)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHub_PublishToOtherUserNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{Event: EventChatUnread})

	select {
	case <-ch:
		t.Fatal("event for user-2 must not reach user-1")
	default:
	}
}

func TestHub_PublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.PublishToMany([]string{"user-1", "user-2"}, Event{Event: EventChatUnread})

	ev1 := <-ch1
	assert.Equal(t, "user-1", ev1.UserID)
	ev2 := <-ch2
	assert.Equal(t, "user-2", ev2.UserID)
}

func TestHub_CleanupRemovesSubscription(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	cleanup()

	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	// Channel buffer is 10; publishing more must not block.
	for i := 0; i < 25; i++ {
		hub.Publish("user-1", Event{Event: EventChatUnread})
	}
}
