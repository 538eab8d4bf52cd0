package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/aton/deck"
	"github.com/minaorangina/aton/protocol"
	"go.uber.org/zap"
)

var (
	ErrPoolTooSmall   = fmt.Errorf("card pool must hold more than %d cards", HandSize)
	ErrDominantValue  = fmt.Errorf("every card value must leave more than %d other cards in the pool", 2*HandSize)
	ErrNegativeTokens = errors.New("tokens per player cannot be negative")
)

const (
	HandSize        = 4
	TokensPerPlayer = 29
)

// Rules holds the configurable constants of a match
type Rules struct {
	Composition     deck.Composition
	TokensPerPlayer int
}

// DefaultRules returns a 36 card pool with nine of each value and 29 tokens
func DefaultRules() Rules {
	return Rules{
		Composition:     deck.DefaultComposition,
		TokensPerPlayer: TokensPerPlayer,
	}
}

func (r Rules) validate() error {
	if err := r.Composition.Validate(); err != nil {
		return err
	}
	if r.Composition.Size() <= HandSize {
		return ErrPoolTooSmall
	}
	// A player can hold back up to two hands (cartouches plus an exchanged
	// hand) from the tie-break draw, which must still see two values.
	for _, n := range r.Composition {
		if n >= r.Composition.Size()-2*HandSize {
			return ErrDominantValue
		}
	}
	if r.TokensPerPlayer < 0 {
		return ErrNegativeTokens
	}
	return nil
}

// AtonOpts configures a new match. Every field is optional.
type AtonOpts struct {
	// Notifiers are indexed by seat: red first, blue second
	Notifiers [2]Notifier
	Shuffler  deck.Shuffler
	Rules     *Rules
	Logger    *zap.Logger
}

// Aton is the rules engine for one match. It is not safe for concurrent use.
type Aton struct {
	Temples [NumTemples]*Temple

	players [2]*Player
	phase   phase
	logger  *zap.Logger
}

// NewAton constructs a match that has not started yet
func NewAton(opts AtonOpts) (*Aton, error) {
	rules := DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}

	pool, err := deck.New(rules.Composition)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	shuffler := opts.Shuffler
	if shuffler == nil {
		shuffler = deck.NewRandomShuffler(0)
	}

	a := &Aton{
		phase:  preGamePhase{},
		logger: logger,
	}

	for i, colour := range protocol.Colours {
		a.players[i] = NewPlayer(colour, pool, rules.TokensPerPlayer, shuffler, opts.Notifiers[i])
	}
	for i := range a.Temples {
		a.Temples[i] = &Temple{}
	}

	return a, nil
}

// Player returns the player with the given colour
func (a *Aton) Player(colour protocol.Colour) *Player {
	return a.players[colour.Index()]
}

// Red returns the red player
func (a *Aton) Red() *Player {
	return a.Player(protocol.Red)
}

// Blue returns the blue player
func (a *Aton) Blue() *Player {
	return a.Player(protocol.Blue)
}

// Stage returns the current stage of the match
func (a *Aton) Stage() Stage {
	return a.phase.stage()
}

// CurrentPlayer returns the player removing tokens. ok is false outside the
// RemovingTokens stage.
func (a *Aton) CurrentPlayer() (colour protocol.Colour, ok bool) {
	p, ok := a.phase.(removingTokensPhase)
	if !ok {
		return protocol.NoColour, false
	}
	return p.currentPlayer, true
}

// AwaitingRemoval reports whether the current player has been asked to pick
// tokens and has not answered yet
func (a *Aton) AwaitingRemoval() bool {
	p, ok := a.phase.(removingTokensPhase)
	return ok && p.prompt != nil
}

// Finished reports whether the match has run to completion
func (a *Aton) Finished() bool {
	return a.Stage() == Finished
}

// Start deals both opening hands. Starting more than once is a no-op.
func (a *Aton) Start() {
	if _, ok := a.phase.(preGamePhase); !ok {
		a.logger.Debug("match already started", zap.Stringer("stage", a.Stage()))
		return
	}
	a.enter(allocatingPhase{})
}

// Execute applies a serialised command. Commands that cannot be decoded, or
// that are not valid right now, are dropped without any reply.
func (a *Aton) Execute(data []byte) {
	msg, err := protocol.DecodeInbound(data)
	if err != nil {
		a.logger.Debug("dropping undecodable command", zap.Error(err))
		return
	}
	a.Receive(msg)
}

// Receive applies a decoded command. Invalid commands are dropped.
func (a *Aton) Receive(msg protocol.InboundMessage) {
	if !msg.Player.Valid() {
		a.drop(msg, "unknown player")
		return
	}

	switch p := a.phase.(type) {
	case allocatingPhase:
		switch msg.Command {
		case protocol.ExchangeCards:
			a.exchangeCards(msg)
		case protocol.AllocateCards:
			a.allocateCards(msg)
		default:
			a.drop(msg, "unexpected command")
		}

	case removingTokensPhase:
		if p.prompt == nil || msg.Command != protocol.RemoveTokens {
			a.drop(msg, "unexpected command")
			return
		}
		a.removeChosenTokens(*p.prompt, msg)

	default:
		a.drop(msg, "no commands accepted")
	}
}

func (a *Aton) exchangeCards(msg protocol.InboundMessage) {
	if !a.Player(msg.Player).ExchangeCards() {
		a.drop(msg, "cards already exchanged")
		return
	}
	a.sendToOpponent(msg.Player, buildOpponentMessage(protocol.OpponentExchangedCards))
}

func (a *Aton) allocateCards(msg protocol.InboundMessage) {
	if !a.Player(msg.Player).AllocateCards(msg.Cards) {
		a.drop(msg, "cards do not match hand or already allocated")
		return
	}
	a.sendToOpponent(msg.Player, buildOpponentMessage(protocol.OpponentAllocatedCards))

	if a.Red().HasAllocated() && a.Blue().HasAllocated() {
		a.enter(scoringPhase{})
	}
}

func (a *Aton) removeChosenTokens(prompt removalPrompt, msg protocol.InboundMessage) {
	chosen, ok := a.validateRemoval(prompt, msg)
	if !ok {
		a.drop(msg, "invalid token choice")
		return
	}

	removed := a.clearTokens(chosen)
	a.broadcast(buildTokensRemovedMessage(prompt.player, prompt.tokenOwner, removed))
	a.enter(finishedPhase{})
}

// enter switches to p and runs any work that happens on arrival. Stages that
// need no player input move straight on to the next one.
func (a *Aton) enter(p phase) {
	a.logger.Debug("entering stage", zap.Stringer("stage", p.stage()))
	a.phase = p

	switch p := p.(type) {
	case allocatingPhase:
		for _, player := range a.players {
			player.DrawHand()
		}

	case scoringPhase:
		a.scoreCartouches()
		a.enter(orderOfPlayPhase{})

	case orderOfPlayPhase:
		winner, cardsUsed := a.selectStartingPlayer()
		a.broadcast(buildStartingPlayerMessage(winner, cardsUsed))
		a.enter(removingTokensPhase{currentPlayer: winner})

	case removingTokensPhase:
		if p.prompt == nil {
			a.resolveTokenRemoval(p.currentPlayer)
		}
	}
}

func (a *Aton) sendTo(colour protocol.Colour, msg protocol.OutboundMessage) {
	a.Player(colour).send(msg)
}

func (a *Aton) sendToOpponent(colour protocol.Colour, msg protocol.OutboundMessage) {
	a.sendTo(colour.Opponent(), msg)
}

func (a *Aton) broadcast(msg protocol.OutboundMessage) {
	for _, p := range a.players {
		p.send(msg)
	}
}

func (a *Aton) drop(msg protocol.InboundMessage, reason string) {
	a.logger.Debug("dropping command",
		zap.String("reason", reason),
		zap.Stringer("player", msg.Player),
		zap.Stringer("command", msg.Command),
		zap.Stringer("stage", a.Stage()))
}
