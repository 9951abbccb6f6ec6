package cache

import (
	"context"

	"go.uber.org/fx"

	"github.com/shopworks/storefront/internal/config"
)

// Module exposes the cache store implementation to the fx graph.
var Module = fx.Options(
	fx.Provide(newStore),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Lc     fx.Lifecycle
}

func newStore(p storeParams) (Store, error) {
	if p.Config.RedisAddr == "" {
		return NoopStore{}, nil
	}
	store, err := NewRedisStore(p.Ctx, p.Config.RedisAddr, p.Config.CacheTTL)
	if err != nil {
		return nil, err
	}
	p.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}
