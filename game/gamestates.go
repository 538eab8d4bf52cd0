package game

import "github.com/minaorangina/aton/protocol"

// Stage represents the main stages in a match
type Stage int

const (
	PreGame Stage = iota
	Allocating
	Scoring
	OrderOfPlay
	RemovingTokens
	Finished
)

var stageNames = map[Stage]string{
	PreGame:        "PreGame",
	Allocating:     "Allocating",
	Scoring:        "Scoring",
	OrderOfPlay:    "OrderOfPlay",
	RemovingTokens: "RemovingTokens",
	Finished:       "Finished",
}

func (s Stage) String() string {
	return stageNames[s]
}

// phase is the active state of a match. Data that only means something in
// one stage lives on that stage's phase value.
type phase interface {
	stage() Stage
}

type preGamePhase struct{}

type allocatingPhase struct{}

type scoringPhase struct{}

type orderOfPlayPhase struct{}

// removingTokensPhase carries a prompt once the current player has been asked
// to choose tokens
type removingTokensPhase struct {
	currentPlayer protocol.Colour
	prompt        *removalPrompt
}

type finishedPhase struct{}

func (preGamePhase) stage() Stage        { return PreGame }
func (allocatingPhase) stage() Stage     { return Allocating }
func (scoringPhase) stage() Stage        { return Scoring }
func (orderOfPlayPhase) stage() Stage    { return OrderOfPlay }
func (removingTokensPhase) stage() Stage { return RemovingTokens }
func (finishedPhase) stage() Stage       { return Finished }

// removalPrompt is an outstanding request for a player to pick tokens
type removalPrompt struct {
	player     protocol.Colour
	tokenOwner protocol.Colour
	count      int
	maxTemple  int
}
