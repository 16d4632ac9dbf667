package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startManager(t *testing.T) *Manager {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := NewManager()
	m.Start(ctx)
	return m
}

func TestSendToClientDelivers(t *testing.T) {
	m := startManager(t)

	client := &Client{ID: "c1", Send: make(chan []byte, 4)}
	m.Register <- client

	m.SendToClient("c1", []byte("hello"))

	select {
	case got := <-client.Send:
		assert.Equal(t, []byte("hello"), got)
	case <-time.After(time.Second):
		t.Fatal("message never reached the client queue")
	}
}

func TestSendToClientUnknownIDIsNoOp(t *testing.T) {
	m := startManager(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		m.SendToClient("nobody", []byte("hello"))
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SendToClient blocked on an unknown client id")
	}
}

func TestStalledClientIsDroppedWithoutPanic(t *testing.T) {
	m := startManager(t)

	// A client whose queue is already full: nothing drains Send.
	client := &Client{ID: "stalled", Send: make(chan []byte, 1)}
	m.Register <- client
	client.Send <- []byte("occupies the only slot")

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Delivery must drop the client instead of blocking; the follow-up
		// unregister then races a closed Send channel if any send happens
		// outside the manager loop.
		m.SendToClient("stalled", []byte("undeliverable"))
		m.Unregister <- client
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("delivery to a stalled client blocked")
	}

	// The client's channel was closed exactly once, on the drop path.
	_, ok := <-client.Send
	require.True(t, ok, "queued message should survive the drop")
	_, ok = <-client.Send
	assert.False(t, ok, "Send should be closed after the drop")
}

func TestBroadcastSkipsStalledClients(t *testing.T) {
	m := startManager(t)

	healthy := &Client{ID: "healthy", Send: make(chan []byte, 4)}
	stalled := &Client{ID: "stalled", Send: make(chan []byte, 1)}
	m.Register <- healthy
	m.Register <- stalled
	stalled.Send <- []byte("full")

	m.Broadcast([]byte("feed update"))

	select {
	case got := <-healthy.Send:
		assert.Equal(t, []byte("feed update"), got)
	case <-time.After(time.Second):
		t.Fatal("healthy client never received the broadcast")
	}
}
