package tariff

import (
	"github.com/gridbill/gridbill/internal/tariff/repository"
	"github.com/gridbill/gridbill/internal/tariff/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tariff.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
