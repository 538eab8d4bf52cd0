package protocol

import (
	"encoding/json"

	"github.com/minaorangina/aton/deck"
)

// InboundMessage is a message from a player to the game. Tokens answers a
// RemoveTokens prompt with the chosen slots, one list per temple.
type InboundMessage struct {
	Player  Colour      `json:"player"`
	Command Cmd         `json:"message"`
	Cards   []deck.Card `json:"cards,omitempty"`
	Tokens  [][]int     `json:"tokens,omitempty"`
}

// OutboundMessage is a message from the game to a player. Payload keys are
// camelCase (cardsUsed, tokenOwner, ...), so clients expecting snake_case
// keys such as cards_used or token_owner will not find them.
type OutboundMessage struct {
	Command            Cmd         `json:"message"`
	Cards              []deck.Card `json:"cards,omitempty"`
	Player             Colour      `json:"player,omitempty"`
	Points             int         `json:"points,omitempty"`
	CardsUsed          *CardsUsed  `json:"cardsUsed,omitempty"`
	TokenOwner         Colour      `json:"tokenOwner,omitempty"`
	NumberOfTokens     int         `json:"numberOfTokens,omitempty"`
	MaxAvailableTemple int         `json:"maxAvailableTemple,omitempty"`
	RemovingPlayer     Colour      `json:"removingPlayer,omitempty"`
	RemovedTokens      [][]int     `json:"removedTokens,omitempty"`
}

// CardsUsed lists the cards each player drew to break a turn order tie
type CardsUsed struct {
	Red  []deck.Card `json:"red"`
	Blue []deck.Card `json:"blue"`
}

// DecodeInbound parses a serialised command
func DecodeInbound(data []byte) (InboundMessage, error) {
	var msg InboundMessage
	err := json.Unmarshal(data, &msg)
	return msg, err
}

// Encode serialises an outbound message
func (m OutboundMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}
