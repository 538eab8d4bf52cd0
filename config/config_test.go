package config

import (
	"testing"

	"github.com/minaorangina/aton/deck"
	"github.com/minaorangina/aton/engine"
	utils "github.com/minaorangina/aton/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, []int{9, 9, 9, 9}, cfg.CardCounts)
		utils.AssertEqual(t, cfg.TokensPerPlayer, 29)
		utils.AssertEqual(t, cfg.Seed, int64(0))
		utils.AssertEqual(t, cfg.LogLevel, "info")

		rules := cfg.Rules()
		utils.AssertEqual(t, rules.Composition.Size(), 36)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("ATON_CARD_COUNTS", "3;3;2;2")
		t.Setenv("ATON_TOKENS_PER_PLAYER", "12")
		t.Setenv("ATON_SEED", "77")
		t.Setenv("ATON_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, deck.Composition{3, 3, 2, 2}, cfg.Rules().Composition)
		utils.AssertEqual(t, cfg.Rules().TokensPerPlayer, 12)
		utils.AssertEqual(t, cfg.Seed, int64(77))

		logger, err := cfg.Logger()
		require.NoError(t, err)
		utils.AssertTrue(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("rejects a malformed pool", func(t *testing.T) {
		t.Setenv("ATON_CARD_COUNTS", "9;9")

		_, err := Load()
		utils.AssertErrored(t, err)
	})

	t.Run("rejects an unknown log level", func(t *testing.T) {
		t.Setenv("ATON_LOG_LEVEL", "chatty")

		_, err := Load()
		utils.AssertErrored(t, err)
	})

	t.Run("rejects a non-numeric seed", func(t *testing.T) {
		t.Setenv("ATON_SEED", "abc")

		_, err := Load()
		utils.AssertErrored(t, err)
	})
}

func TestConfigBuildsAMatch(t *testing.T) {
	t.Setenv("ATON_SEED", "3")

	cfg, err := Load()
	require.NoError(t, err)

	logger, err := cfg.Logger()
	require.NoError(t, err)

	rules := cfg.Rules()
	e, err := engine.NewMatchEngine(engine.MatchEngineOpts{
		Rules:    &rules,
		Shuffler: cfg.Shuffler(),
		Logger:   logger,
	})
	require.NoError(t, err)

	e.Start()
	utils.AssertEqual(t, e.PlayState(), engine.InProgress)
}
