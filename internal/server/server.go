// Package server exposes the HTTP API over gin.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/gridbill/gridbill/internal/analytics"
	analyticsdomain "github.com/gridbill/gridbill/internal/analytics/domain"
	"github.com/gridbill/gridbill/internal/config"
	"github.com/gridbill/gridbill/internal/contract"
	contractdomain "github.com/gridbill/gridbill/internal/contract/domain"
	"github.com/gridbill/gridbill/internal/cost"
	costdomain "github.com/gridbill/gridbill/internal/cost/domain"
	"github.com/gridbill/gridbill/internal/observability/metrics"
	"github.com/gridbill/gridbill/internal/reading"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
	"github.com/gridbill/gridbill/internal/solar"
	solardomain "github.com/gridbill/gridbill/internal/solar/domain"
	"github.com/gridbill/gridbill/internal/supplier"
	supplierdomain "github.com/gridbill/gridbill/internal/supplier/domain"
	"github.com/gridbill/gridbill/internal/tariff"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
	"github.com/gridbill/gridbill/internal/utility"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	supplier.Module,
	contract.Module,
	utility.Module,
	tariff.Module,
	reading.Module,
	solar.Module,
	cost.Module,
	analytics.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	metrics.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(MetricsMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin() *gin.Engine {
	return NewEngine()
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	supplierSvc  supplierdomain.Service
	contractSvc  contractdomain.Service
	utilitySvc   utilitydomain.Service
	tariffSvc    tariffdomain.Service
	readingSvc   readingdomain.Service
	solarSvc     solardomain.Service
	costSvc      costdomain.Service
	analyticsSvc analyticsdomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	SupplierSvc  supplierdomain.Service
	ContractSvc  contractdomain.Service
	UtilitySvc   utilitydomain.Service
	TariffSvc    tariffdomain.Service
	ReadingSvc   readingdomain.Service
	SolarSvc     solardomain.Service
	CostSvc      costdomain.Service
	AnalyticsSvc analyticsdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		supplierSvc:  p.SupplierSvc,
		contractSvc:  p.ContractSvc,
		utilitySvc:   p.UtilitySvc,
		tariffSvc:    p.TariffSvc,
		readingSvc:   p.ReadingSvc,
		solarSvc:     p.SolarSvc,
		costSvc:      p.CostSvc,
		analyticsSvc: p.AnalyticsSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	r := s.engine

	// -------- Suppliers --------
	r.GET("/suppliers", s.ListSuppliers)
	r.POST("/suppliers", s.CreateSupplier)
	r.GET("/suppliers/:id", s.GetSupplierByID)

	// -------- Contracts --------
	r.GET("/contracts", s.ListContracts)
	r.POST("/contracts", s.CreateContract)
	r.GET("/contracts/:id", s.GetContractByID)
	r.PUT("/contracts/:id", s.UpdateContract)
	r.GET("/contracts/:id/utilities", s.ListContractUtilities)
	r.GET("/contracts/:id/tariffs", s.ListContractTariffs)
	r.POST("/contracts/:id/tariffs", s.CreateContractTariff)

	// -------- Utilities --------
	r.GET("/utilities", s.ListUtilities)
	r.POST("/utilities", s.CreateUtility)
	r.GET("/utilities/:id", s.GetUtilityByID)
	r.GET("/utilities/:id/cost", s.GetUtilityCost)

	// -------- Tariffs --------
	r.GET("/tariffs", s.ListTariffs)
	r.POST("/tariffs", s.CreateTariff)
	r.GET("/tariffs/:id", s.GetTariffByID)
	r.PUT("/tariffs/:id", s.UpdateTariff)
	r.DELETE("/tariffs/:id", s.DeleteTariff)
	r.GET("/tariffs/by-contract/:id", s.ListTariffsByContract)
	r.GET("/tariffs/by-utility/:id", s.ListTariffsByUtility)

	// -------- Readings --------
	r.GET("/readings", s.ListReadings)
	r.POST("/readings", s.CreateReading)
	r.GET("/readings/utility/:id", s.ListReadingsByUtility)

	// -------- Imports --------
	r.POST("/import/meter-readings", s.ImportMeterReadings)
	r.POST("/import/solar-readings", s.ImportSolarReadings)

	// -------- Solar --------
	r.GET("/solar-readings", s.ListSolarReadings)

	// -------- Analytics --------
	r.GET("/analytics/monthly-usage", s.GetMonthlyUsage)
}
