package blob

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/shopworks/storefront/internal/config"
)

// Module exposes the blob uploader implementation to the fx graph.
var Module = fx.Provide(newUploader)

type uploaderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newUploader(p uploaderParams) (Uploader, error) {
	if p.Config.BlobEndpoint == "" {
		return NewNoopUploader(p.Logger), nil
	}
	return NewMinioUploader(p.Ctx, p.Config.BlobEndpoint, p.Config.BlobAccessKey, p.Config.BlobSecretKey,
		p.Config.BlobBucket, p.Config.BlobUseSSL, p.Logger)
}
