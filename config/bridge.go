package config

import (
	"github.com/wfstgo/wfst/algorithms"
	"github.com/wfstgo/wfst/cache"
	"github.com/wfstgo/wfst/compose"
)

// CacheOptions translates the relevant knobs of c into cache.Options, so a
// caller holding one Config can configure every cache.Store in a pipeline
// from it directly: cache.New(c.CacheOptions()...).
func (c Config) CacheOptions() []cache.Option {
	if !c.cacheGC {
		return []cache.Option{cache.WithNoGC()}
	}
	return []cache.Option{cache.WithGC(c.cacheGCLimit)}
}

// ComposeOptions translates the relevant knobs of c into compose.Options.
func (c Config) ComposeOptions() []compose.Option {
	return []compose.Option{compose.WithCompatSymbols(c.compatSymbols)}
}

// AlgorithmsOptions translates the relevant knobs of c into
// algorithms.Option, for algorithms.ShortestDistance (the only entry point
// that takes one; ShortestPath and Push take no options).
func (c Config) AlgorithmsOptions() []algorithms.Option {
	return []algorithms.Option{algorithms.WithVerifyProperties(c.verifyProperties)}
}
