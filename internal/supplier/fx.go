package supplier

import (
	"github.com/gridbill/gridbill/internal/supplier/repository"
	"github.com/gridbill/gridbill/internal/supplier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
