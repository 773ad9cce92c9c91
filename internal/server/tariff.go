package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tariffdomain "github.com/gridbill/gridbill/internal/tariff/domain"
)

func (s *Server) CreateTariff(c *gin.Context) {
	var req tariffdomain.CreateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	created, err := s.tariffSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, created)
}

func (s *Server) UpdateTariff(c *gin.Context) {
	var req tariffdomain.UpdateTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}
	req.ID = c.Param("id")

	updated, err := s.tariffSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, updated)
}

func (s *Server) DeleteTariff(c *gin.Context) {
	if err := s.tariffSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) GetTariffByID(c *gin.Context) {
	found, err := s.tariffSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, found)
}

func (s *Server) ListTariffs(c *gin.Context) {
	tariffs, err := s.tariffSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, tariffs)
}

func (s *Server) ListTariffsByContract(c *gin.Context) {
	tariffs, err := s.tariffSvc.ListByContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, tariffs)
}

func (s *Server) ListTariffsByUtility(c *gin.Context) {
	tariffs, err := s.tariffSvc.ListByUtility(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, tariffs)
}
