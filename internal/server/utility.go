package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gridbill/gridbill/internal/observability/metrics"
	utilitydomain "github.com/gridbill/gridbill/internal/utility/domain"
)

func (s *Server) CreateUtility(c *gin.Context) {
	var req utilitydomain.CreateUtilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	created, err := s.utilitySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, created)
}

func (s *Server) GetUtilityByID(c *gin.Context) {
	found, err := s.utilitySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, found)
}

func (s *Server) ListUtilities(c *gin.Context) {
	utilities, err := s.utilitySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, utilities)
}

// GetUtilityCost bills the utility over [start, end). Contract-scoped
// tariffs are included unless include_contract_tariffs=false.
func (s *Server) GetUtilityCost(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		AbortWithError(c, newValidationError("start", "invalid_date", "start must be YYYY-MM-DD"))
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		AbortWithError(c, newValidationError("end", "invalid_date", "end must be YYYY-MM-DD"))
		return
	}

	includeContractTariffs := true
	if raw := c.Query("include_contract_tariffs"); raw != "" {
		includeContractTariffs, err = strconv.ParseBool(raw)
		if err != nil {
			AbortWithError(c, newValidationError("include_contract_tariffs", "invalid_bool", "must be true or false"))
			return
		}
	}

	began := time.Now()
	computed, err := s.costSvc.Compute(c.Request.Context(), c.Param("id"), start, end, includeContractTariffs)
	if err != nil {
		metrics.ObserveCostCompute(metrics.ResultError, time.Since(began))
		AbortWithError(c, err)
		return
	}
	metrics.ObserveCostCompute(metrics.ResultSuccess, time.Since(began))

	respondData(c, newCostResponse(computed))
}
