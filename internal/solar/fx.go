package solar

import (
	"github.com/gridbill/gridbill/internal/solar/repository"
	"github.com/gridbill/gridbill/internal/solar/service"
	"go.uber.org/fx"
)

var Module = fx.Module("solar.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
