package utility

import (
	"github.com/gridbill/gridbill/internal/utility/repository"
	"github.com/gridbill/gridbill/internal/utility/service"
	"go.uber.org/fx"
)

var Module = fx.Module("utility.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
