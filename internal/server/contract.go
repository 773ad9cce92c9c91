package server

import (
	"github.com/gin-gonic/gin"

	contractdomain "github.com/gridbill/gridbill/internal/contract/domain"
	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
)

func (s *Server) CreateContract(c *gin.Context) {
	var req contractdomain.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	created, err := s.contractSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, created)
}

func (s *Server) UpdateContract(c *gin.Context) {
	var req contractdomain.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}
	req.ID = c.Param("id")

	updated, err := s.contractSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, updated)
}

func (s *Server) GetContractByID(c *gin.Context) {
	found, err := s.contractSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, found)
}

func (s *Server) ListContracts(c *gin.Context) {
	contracts, err := s.contractSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, contracts)
}

func (s *Server) ListContractUtilities(c *gin.Context) {
	utilities, err := s.utilitySvc.ListByContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, utilities)
}

func (s *Server) ListContractTariffs(c *gin.Context) {
	tariffs, err := s.tariffSvc.ListByContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, tariffs)
}

// CreateContractTariff creates a tariff scoped to the contract in the path.
// A utility scope in the body would break scope exclusivity and is rejected
// by the service.
func (s *Server) CreateContractTariff(c *gin.Context) {
	var req tariffdomain.CreateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}
	req.ContractID = c.Param("id")

	created, err := s.tariffSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, created)
}
