package reading

import (
	"github.com/gridbill/gridbill/internal/reading/repository"
	"github.com/gridbill/gridbill/internal/reading/service"
	"go.uber.org/fx"
)

var Module = fx.Module("reading.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
