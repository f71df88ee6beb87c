//go:build wireinject
// +build wireinject

package wire

import (
	"form-server/internal/forms/httpapi"
	"form-server/internal/forms/persistence"
	"form-server/internal/forms/usecases"
	"form-server/internal/infra/httpserver"
	"form-server/internal/infra/sql"

	"github.com/google/wire"
)

var FormServiceSet = wire.NewSet(
	provideDatabase,
	wire.Bind(new(sql.ORM), new(*sql.DB)),
	providePubSubFactory,
	providePublisherFactory,
	persistence.NewFormRepository,
	wire.Bind(new(usecases.FormRepository), new(*persistence.SimpleFormRepository)),
	usecases.NewFormService,
	wire.Bind(new(usecases.FormService), new(*usecases.SimpleFormService)),
)

func InitializeServer() (*httpserver.StandardServer, error) {
	wire.Build(
		provideAppConfig,
		provideServerConfig,
		provideRateLimiter,
		provideReadinessCheckers,
		FormServiceSet,
		httpapi.NewFormController,
		provideControllers,
		httpserver.NewServer,
	)
	return nil, nil
}

func InitializeFormEventWorker() (*usecases.FormEventWorker, error) {
	wire.Build(
		provideAppConfig,
		providePubSubFactory,
		provideConsumerFactory,
		usecases.NewFormEventWorker,
	)
	return nil, nil
}
