package engine

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/minaorangina/aton/protocol"
)

// FakeConn records everything sent to it
type FakeConn struct {
	mu   sync.Mutex
	sent [][]byte
}

func (c *FakeConn) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sent = append(c.sent, data)
	return nil
}

func (c *FakeConn) messages(t *testing.T) []protocol.OutboundMessage {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	msgs := []protocol.OutboundMessage{}
	for _, data := range c.sent {
		var msg protocol.OutboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("could not decode %s: %s", data, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

func (c *FakeConn) find(t *testing.T, cmd protocol.Cmd) (protocol.OutboundMessage, bool) {
	t.Helper()

	for _, msg := range c.messages(t) {
		if msg.Command == cmd {
			return msg, true
		}
	}
	return protocol.OutboundMessage{}, false
}

var errBrokenConn = errors.New("connection closed")

// BrokenConn fails every send
type BrokenConn struct{}

func (BrokenConn) Send([]byte) error {
	return errBrokenConn
}

func allocateHand(t *testing.T, colour protocol.Colour, conn *FakeConn) []byte {
	t.Helper()

	drawn, ok := conn.find(t, protocol.CardsDrawn)
	if !ok {
		t.Fatalf("%s was never dealt a hand", colour)
	}

	data, err := json.Marshal(protocol.InboundMessage{
		Player:  colour,
		Command: protocol.AllocateCards,
		Cards:   drawn.Cards,
	})
	if err != nil {
		t.Fatal(err)
	}
	return data
}
