package di

import (
	"go.uber.org/fx"

	"github.com/shopworks/storefront/internal/adapter/blob"
	"github.com/shopworks/storefront/internal/adapter/mail"
	"github.com/shopworks/storefront/internal/app"
	"github.com/shopworks/storefront/internal/cache"
	"github.com/shopworks/storefront/internal/config"
	"github.com/shopworks/storefront/internal/logger"
	"github.com/shopworks/storefront/internal/metrics"
	"github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/server/http/handlers"
	"github.com/shopworks/storefront/internal/server/http/router"
	"github.com/shopworks/storefront/internal/storage/postgres"
	"github.com/shopworks/storefront/internal/usecase"
	"github.com/shopworks/storefront/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		metrics.Module,
		mail.Module,
		blob.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.CommerceFacade) handlers.CommerceFacade { return f },
			func(f *app.CommerceFacade) worker.CommerceFacade { return f },
			func(s *postgres.Storage) app.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
