package usecase

import (
	"go.uber.org/fx"
)

// Module wires the business use cases.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewUserUseCase,
		NewClientUseCase,
		NewProductUseCase,
		NewCartUseCase,
		NewOrderUseCase,
		NewReportUseCase,
	),
)
