package game

import (
	"encoding/json"
	"testing"

	"github.com/minaorangina/aton/deck"
	"github.com/minaorangina/aton/protocol"
)

// spyNotifier records every message sent to one player
type spyNotifier struct {
	t        *testing.T
	received []protocol.OutboundMessage
}

func newSpyNotifier(t *testing.T) *spyNotifier {
	return &spyNotifier{t: t}
}

func (s *spyNotifier) notify(data []byte) {
	s.t.Helper()

	var msg protocol.OutboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.t.Fatalf("could not decode outbound message %s: %s", data, err)
	}
	s.received = append(s.received, msg)
}

func (s *spyNotifier) last() protocol.OutboundMessage {
	s.t.Helper()

	if len(s.received) == 0 {
		s.t.Fatal("no messages received")
	}
	return s.received[len(s.received)-1]
}

func (s *spyNotifier) find(cmd protocol.Cmd) (protocol.OutboundMessage, bool) {
	for _, m := range s.received {
		if m.Command == cmd {
			return m, true
		}
	}
	return protocol.OutboundMessage{}, false
}

func (s *spyNotifier) count(cmd protocol.Cmd) int {
	n := 0
	for _, m := range s.received {
		if m.Command == cmd {
			n++
		}
	}
	return n
}

func (s *spyNotifier) reset() {
	s.received = nil
}

// newTestAton builds an unshuffled match with spies on both seats
func newTestAton(t *testing.T) (*Aton, *spyNotifier, *spyNotifier) {
	t.Helper()

	red, blue := newSpyNotifier(t), newSpyNotifier(t)
	a, err := NewAton(AtonOpts{
		Notifiers: [2]Notifier{red.notify, blue.notify},
		Shuffler:  deck.NoShuffle,
	})
	if err != nil {
		t.Fatalf("could not create match: %s", err)
	}
	return a, red, blue
}

func exchangeCmd(colour string) []byte {
	return []byte(`{"player": "` + colour + `", "message": "exchange_cards"}`)
}

func allocateCmd(t *testing.T, colour protocol.Colour, cards ...deck.Card) []byte {
	t.Helper()

	data, err := json.Marshal(protocol.InboundMessage{
		Player:  colour,
		Command: protocol.AllocateCards,
		Cards:   cards,
	})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func removeTokensCmd(t *testing.T, colour protocol.Colour, tokens [][]int) []byte {
	t.Helper()

	data, err := json.Marshal(protocol.InboundMessage{
		Player:  colour,
		Command: protocol.RemoveTokens,
		Tokens:  tokens,
	})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func cards(values ...int) []deck.Card {
	cs := []deck.Card{}
	for _, v := range values {
		cs = append(cs, deck.Card(v))
	}
	return cs
}

// allCards gathers every card a player holds anywhere
func allCards(p *Player) map[deck.Card]int {
	return deck.Counts(p.Deck, p.Hand, p.Discard, p.Cartouches)
}
