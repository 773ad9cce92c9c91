package cost

import (
	"github.com/gridbill/gridbill/internal/cost/repository"
	"github.com/gridbill/gridbill/internal/cost/service"
	"go.uber.org/fx"
)

var Module = fx.Module("cost.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
