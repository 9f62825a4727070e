package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastIsScopedToClient(t *testing.T) {
	hub := NewHub(nil)

	subA := hub.Subscribe("client-a")
	defer subA.Close()
	subB := hub.Subscribe("client-b")
	defer subB.Close()

	hub.NotifyBlessing("client-a", map[string]string{"name": "Ama"})

	select {
	case ev := <-subA.C:
		assert.Equal(t, EventBlessing, ev.Type)
	default:
		t.Fatal("expected subscriber of client-a to receive the event")
	}

	select {
	case ev := <-subB.C:
		t.Fatalf("subscriber of client-b received unexpected event %q", ev.Type)
	default:
	}
}

func TestCloseRemovesSubscriber(t *testing.T) {
	hub := NewHub(nil)

	sub := hub.Subscribe("client-a")
	require.Equal(t, 1, hub.Subscribers("client-a"))

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, hub.Subscribers("client-a"))

	_, open := <-sub.C
	assert.False(t, open)
}

func TestBroadcastSkipsFullSubscriber(t *testing.T) {
	hub := NewHub(nil)

	sub := hub.Subscribe("client-a")
	defer sub.Close()

	for i := 0; i < 40; i++ {
		hub.Broadcast("client-a", Event{Type: EventBlessing, Payload: i})
	}

	drained := 0
	for {
		select {
		case <-sub.C:
			drained++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 16, drained)
}
