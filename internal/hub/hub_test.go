package hub

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	h := New()
	a := h.Subscribe()
	b := h.Subscribe()
	require.Equal(t, 2, h.Len())

	h.Publish(context.Background(), "game.deleted", 7)

	for _, c := range []Client{a, b} {
		var ev Event
		require.NoError(t, json.Unmarshal(<-c, &ev))
		assert.Equal(t, "game.deleted", ev.Type)
		assert.EqualValues(t, 7, ev.GameID)
	}
}

func TestUnsubscribeClosesClient(t *testing.T) {
	h := New()
	c := h.Subscribe()
	h.Unsubscribe(c)
	h.Unsubscribe(c)

	_, open := <-c
	assert.False(t, open)
	assert.Zero(t, h.Len())
}

func TestPublishDropsForFullClient(t *testing.T) {
	h := New()
	c := h.Subscribe()
	for i := 0; i < clientBuffer+5; i++ {
		h.Publish(context.Background(), "game.updated", uint(i))
	}
	assert.Len(t, c, clientBuffer)
}
