package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wfstgo/wfst/config"
)

func TestNewAppliesDefaults(t *testing.T) {
	c := config.New()
	assert.False(t, c.CacheGC())
	assert.True(t, c.CompatSymbols())
	assert.False(t, c.VerifyProperties())
}

func TestOptionsOverrideDefaults(t *testing.T) {
	c := config.New(
		config.WithCacheGC(true),
		config.WithCacheGCLimit(1024),
		config.WithCompatSymbols(false),
		config.WithVerifyProperties(true),
	)
	assert.True(t, c.CacheGC())
	assert.EqualValues(t, 1024, c.CacheGCLimit())
	assert.False(t, c.CompatSymbols())
	assert.True(t, c.VerifyProperties())
}

func TestWithCacheGCLimitPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { config.WithCacheGCLimit(0) })
}

func TestWithFieldSeparatorPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { config.WithFieldSeparator("") })
}

func TestBridgesProduceOptions(t *testing.T) {
	c := config.New(config.WithCacheGC(true), config.WithCacheGCLimit(512))
	assert.Len(t, c.CacheOptions(), 1)
	assert.Len(t, c.ComposeOptions(), 1)
	assert.Len(t, c.AlgorithmsOptions(), 1)
}
