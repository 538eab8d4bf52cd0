package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/aton/deck"
	"github.com/minaorangina/aton/protocol"
)

// ErrCardsExhausted means a player's deck and discard pile ran dry while
// drawing. A valid card pool makes this impossible, so it is raised as a panic.
var ErrCardsExhausted = errors.New("deck and discard pile are exhausted")

// Notifier receives serialised outbound messages for one player
type Notifier func(data []byte)

// Player holds one participant's cards, score and privileges
type Player struct {
	Colour           protocol.Colour
	Deck             deck.Deck
	Hand             []deck.Card
	Discard          []deck.Card
	Cartouches       []deck.Card
	CanExchangeCards bool
	TokensLeft       int
	Points           int

	notifier Notifier
	shuffler deck.Shuffler
}

// NewPlayer builds a player whose deck is a shuffled copy of pool
func NewPlayer(colour protocol.Colour, pool deck.Deck, tokens int, shuffler deck.Shuffler, notifier Notifier) *Player {
	if shuffler == nil {
		shuffler = deck.NewRandomShuffler(0)
	}

	d := make(deck.Deck, len(pool))
	copy(d, pool)
	shuffler.Shuffle(d)

	return &Player{
		Colour:           colour,
		Deck:             d,
		Hand:             []deck.Card{},
		Discard:          []deck.Card{},
		Cartouches:       []deck.Card{},
		CanExchangeCards: true,
		TokensLeft:       tokens,
		notifier:         notifier,
		shuffler:         shuffler,
	}
}

// DrawHand discards the current hand and draws a fresh one, then tells the
// player what they drew.
func (p *Player) DrawHand() {
	p.Discard = append(p.Discard, p.Hand...)
	p.Hand = []deck.Card{}

	for len(p.Hand) < HandSize {
		p.Hand = append(p.Hand, p.draw())
	}

	p.send(buildCardsDrawnMessage(p.Hand))
}

// DrawOneAndDiscard draws a single card straight onto the discard pile and
// returns its value.
func (p *Player) DrawOneAndDiscard() deck.Card {
	card := p.draw()
	p.Discard = append(p.Discard, card)
	return card
}

// ExchangeCards redraws the hand if the player still has the privilege.
// It reports whether the exchange happened.
func (p *Player) ExchangeCards() bool {
	if !p.CanExchangeCards {
		return false
	}
	p.CanExchangeCards = false
	p.DrawHand()
	return true
}

// AllocateCards moves the hand into the cartouches in the given order.
// cards must be a reordering of the hand and nothing may be allocated yet.
func (p *Player) AllocateCards(cards []deck.Card) bool {
	if p.HasAllocated() {
		return false
	}
	if len(cards) != HandSize || !deck.SameCards(cards, p.Hand) {
		return false
	}

	p.Cartouches = append([]deck.Card{}, cards...)
	p.Hand = []deck.Card{}
	return true
}

// HasAllocated reports whether the cartouches are filled
func (p *Player) HasAllocated() bool {
	return len(p.Cartouches) > 0
}

func (p *Player) draw() deck.Card {
	if len(p.Deck) == 0 {
		p.replenish()
	}
	card, _ := p.Deck.Draw()
	return card
}

// replenish turns the discard pile into a freshly shuffled deck
func (p *Player) replenish() {
	if len(p.Discard) == 0 {
		panic(fmt.Errorf("%w: %s player", ErrCardsExhausted, p.Colour))
	}

	p.Deck = append(deck.Deck{}, p.Discard...)
	p.Discard = []deck.Card{}
	p.shuffler.Shuffle(p.Deck)
}

func (p *Player) send(msg protocol.OutboundMessage) {
	if p.notifier == nil {
		return
	}

	data, err := msg.Encode()
	if err != nil {
		panic(fmt.Sprintf("could not encode %s message: %s", msg.Command, err))
	}
	p.notifier(data)
}
