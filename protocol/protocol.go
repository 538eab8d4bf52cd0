package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCmd    = errors.New("unknown command")
	ErrUnknownColour = errors.New("unknown player colour")
)

// Colour identifies one of the two players in a match
type Colour int

const (
	NoColour Colour = iota
	Red
	Blue
)

// Colours lists both players in seating order
var Colours = [2]Colour{Red, Blue}

var colourNames = map[Colour]string{
	NoColour: "",
	Red:      "red",
	Blue:     "blue",
}

var nameToColour = map[string]Colour{
	"red":  Red,
	"blue": Blue,
}

// Valid reports whether c is one of the two player colours
func (c Colour) Valid() bool {
	return c == Red || c == Blue
}

// Opponent returns the other player's colour
func (c Colour) Opponent() Colour {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoColour
}

// Index returns the seat of the colour, 0 for red and 1 for blue.
// It panics for NoColour.
func (c Colour) Index() int {
	if !c.Valid() {
		panic(fmt.Sprintf("no seat for colour %d", int(c)))
	}
	return int(c) - 1
}

func (c Colour) String() string {
	return colourNames[c]
}

func (c Colour) MarshalText() ([]byte, error) {
	name, ok := colourNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColour, int(c))
	}
	return []byte(name), nil
}

func (c *Colour) UnmarshalText(text []byte) error {
	colour, ok := nameToColour[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColour, text)
	}
	*c = colour
	return nil
}

// Cmd represents a message type on the wire, in either direction
type Cmd int

const (
	Null Cmd = iota
	// player to game
	ExchangeCards
	AllocateCards
	// game to player. RemoveTokens is also the player's reply to the prompt.
	CardsDrawn
	OpponentExchangedCards
	OpponentAllocatedCards
	PointsScored
	StartingPlayerSelected
	RemoveTokens
	TokensRemoved
)

var CmdNames = map[Cmd]string{
	Null:                   "",
	ExchangeCards:          "exchange_cards",
	AllocateCards:          "allocate_cards",
	CardsDrawn:             "cards_drawn",
	OpponentExchangedCards: "opponent_exchanged_cards",
	OpponentAllocatedCards: "opponent_allocated_cards",
	PointsScored:           "points_scored",
	StartingPlayerSelected: "starting_player_selected",
	RemoveTokens:           "remove_tokens",
	TokensRemoved:          "tokens_removed",
}

var NameToCmd = map[string]Cmd{
	"exchange_cards":           ExchangeCards,
	"allocate_cards":           AllocateCards,
	"cards_drawn":              CardsDrawn,
	"opponent_exchanged_cards": OpponentExchangedCards,
	"opponent_allocated_cards": OpponentAllocatedCards,
	"points_scored":            PointsScored,
	"starting_player_selected": StartingPlayerSelected,
	"remove_tokens":            RemoveTokens,
	"tokens_removed":           TokensRemoved,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

func (c Cmd) MarshalText() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCmd, int(c))
	}
	return []byte(name), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCmd, text)
	}
	*c = cmd
	return nil
}
