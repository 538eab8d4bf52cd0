package config

import (
	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/aton/deck"
	"github.com/minaorangina/aton/game"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings read from the environment
type Config struct {
	// CardCounts is how many of each card value, lowest first, are in a pool
	CardCounts      []int  `env:"ATON_CARD_COUNTS,default=9;9;9;9"`
	TokensPerPlayer int    `env:"ATON_TOKENS_PER_PLAYER,default=29"`
	Seed            int64  `env:"ATON_SEED,default=0"`
	LogLevel        string `env:"ATON_LOG_LEVEL,default=info"`
	LogDevelopment  bool   `env:"ATON_LOG_DEVELOPMENT,default=false"`
}

// Load reads the configuration from the environment
func Load() (Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	if err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, errors.Wrap(err, "could not decode environment")
	}

	if err := cfg.Rules().Composition.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid ATON_CARD_COUNTS")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, errors.Wrap(err, "invalid ATON_LOG_LEVEL")
	}

	return cfg, nil
}

// Rules returns the match rules described by the config
func (c Config) Rules() game.Rules {
	return game.Rules{
		Composition:     deck.Composition(c.CardCounts),
		TokensPerPlayer: c.TokensPerPlayer,
	}
}

// Shuffler returns a shuffler seeded from the config. A zero seed is random.
func (c Config) Shuffler() deck.Shuffler {
	return deck.NewRandomShuffler(c.Seed)
}

// Logger builds a zap logger at the configured level
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	zc := zap.NewProductionConfig()
	if c.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
