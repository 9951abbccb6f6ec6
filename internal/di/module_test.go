package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/shopworks/storefront/internal/app"
	"github.com/shopworks/storefront/internal/config"
	"github.com/shopworks/storefront/internal/domain/repository"
	"github.com/shopworks/storefront/internal/storage/postgres"
	"github.com/shopworks/storefront/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:         ":0",
		DatabaseURI:        "postgres://stub",
		JWTSecret:          "secret",
		AccessTokenTTL:     time.Minute,
		RefreshTokenTTL:    time.Hour,
		CacheTTL:           time.Minute,
		ReportPollInterval: time.Millisecond,
		ReportBatchSize:    1,
		WorkerPoolSize:     1,
		ShutdownTimeout:    time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	clientRepo := test.NewClientRepositoryStub()
	productRepo := test.NewProductRepositoryStub()
	cartRepo := &test.CartRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}
	reportRepo := &test.ReportRepositoryStub{}

	var facade *app.CommerceFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ClientRepository(clientRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.CartRepository(cartRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.ReportRepository(reportRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected commerce facade instance")
	}
}
