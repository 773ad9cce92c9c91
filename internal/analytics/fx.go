package analytics

import (
	"github.com/gridbill/gridbill/internal/analytics/repository"
	"github.com/gridbill/gridbill/internal/analytics/service"
	"go.uber.org/fx"
)

var Module = fx.Module("analytics.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
