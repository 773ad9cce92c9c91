package contract

import (
	"github.com/gridbill/gridbill/internal/contract/repository"
	"github.com/gridbill/gridbill/internal/contract/service"
	"go.uber.org/fx"
)

var Module = fx.Module("contract.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
