package engine

import (
	"sync"

	"github.com/minaorangina/aton/deck"
	"github.com/minaorangina/aton/game"
	"github.com/minaorangina/aton/protocol"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

// PlayState represents the state of the current match
// Idle -> not started
// InProgress -> started and accepting commands
// Over -> the rules engine has finished
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Over
)

var playStateNames = map[PlayState]string{
	Idle:       "Idle",
	InProgress: "InProgress",
	Over:       "Over",
}

func (s PlayState) String() string {
	return playStateNames[s]
}

// Conn delivers serialised messages to one player
type Conn interface {
	Send(data []byte) error
}

// MatchEngine owns one match and serialises every call into it, so commands
// from both players can arrive on separate goroutines.
type MatchEngine struct {
	id     string
	conns  [2]Conn
	logger *zap.Logger

	mu        sync.Mutex
	game      *game.Aton
	playState PlayState
}

// MatchEngineOpts configures a MatchEngine. Conns are indexed red first.
type MatchEngineOpts struct {
	MatchID  string
	Conns    [2]Conn
	Rules    *game.Rules
	Shuffler deck.Shuffler
	Logger   *zap.Logger
}

// NewID returns a fresh match ID
func NewID() string {
	return uuid.NewV4().String()
}

// NewMatchEngine constructs a MatchEngine
func NewMatchEngine(opts MatchEngineOpts) (*MatchEngine, error) {
	id := opts.MatchID
	if id == "" {
		id = NewID()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("match_id", id))

	e := &MatchEngine{
		id:     id,
		conns:  opts.Conns,
		logger: logger,
	}

	g, err := game.NewAton(game.AtonOpts{
		Notifiers: [2]game.Notifier{e.notifier(protocol.Red), e.notifier(protocol.Blue)},
		Shuffler:  opts.Shuffler,
		Rules:     opts.Rules,
		Logger:    logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create match")
	}
	e.game = g

	return e, nil
}

// ID returns the match ID
func (e *MatchEngine) ID() string {
	return e.id
}

// PlayState returns the state of the match
func (e *MatchEngine) PlayState() PlayState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.playState
}

// Stage returns the rules engine's current stage
func (e *MatchEngine) Stage() game.Stage {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.game.Stage()
}

// Start deals the opening hands. Starting more than once is a no-op.
func (e *MatchEngine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.playState != Idle {
		return
	}

	e.logger.Info("starting match")
	e.game.Start()
	e.playState = InProgress
}

// Receive hands a serialised command to the match. All resulting messages
// are sent before it returns.
func (e *MatchEngine) Receive(data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.playState != InProgress {
		e.logger.Debug("ignoring command", zap.Stringer("play_state", e.playState))
		return
	}

	e.game.Execute(data)

	if e.game.Finished() {
		e.playState = Over
		e.logger.Info("match over",
			zap.Int("red_points", e.game.Red().Points),
			zap.Int("blue_points", e.game.Blue().Points))
	}
}

// Points returns both players' scores
func (e *MatchEngine) Points() (red, blue int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.game.Red().Points, e.game.Blue().Points
}

func (e *MatchEngine) notifier(colour protocol.Colour) game.Notifier {
	return func(data []byte) {
		conn := e.conns[colour.Index()]
		if conn == nil {
			return
		}
		if err := conn.Send(data); err != nil {
			e.logger.Warn("could not send message",
				zap.Stringer("player", colour),
				zap.Error(err))
		}
	}
}
