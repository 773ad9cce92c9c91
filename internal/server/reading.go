package server

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/gridbill/gridbill/internal/observability/metrics"
	readingdomain "github.com/gridbill/gridbill/internal/reading/domain"
)

func (s *Server) CreateReading(c *gin.Context) {
	var req readingdomain.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request body"))
		return
	}

	created, err := s.readingSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, created)
}

func (s *Server) ListReadings(c *gin.Context) {
	readings, err := s.readingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, readings)
}

func (s *Server) ListReadingsByUtility(c *gin.Context) {
	readings, err := s.readingSvc.ListByUtility(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, readings)
}

// csvUpload returns the uploaded CSV stream: the "file" form field when the
// request is multipart, otherwise the raw body.
func csvUpload(c *gin.Context) (io.ReadCloser, error) {
	if file, err := c.FormFile("file"); err == nil {
		return file.Open()
	}
	return c.Request.Body, nil
}

func (s *Server) ImportMeterReadings(c *gin.Context) {
	body, err := csvUpload(c)
	if err != nil {
		AbortWithError(c, newValidationError("file", "invalid_upload", "could not read upload"))
		return
	}
	defer body.Close()

	result, err := s.readingSvc.ImportCSV(c.Request.Context(), body)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	metrics.AddImportRows(metrics.ImportKindMeter, metrics.ImportOutcomeImported, result.Imported)
	metrics.AddImportRows(metrics.ImportKindMeter, metrics.ImportOutcomeSkipped, result.Skipped)

	respondData(c, result)
}

func (s *Server) ImportSolarReadings(c *gin.Context) {
	body, err := csvUpload(c)
	if err != nil {
		AbortWithError(c, newValidationError("file", "invalid_upload", "could not read upload"))
		return
	}
	defer body.Close()

	result, err := s.solarSvc.ImportCSV(c.Request.Context(), body)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	metrics.AddImportRows(metrics.ImportKindSolar, metrics.ImportOutcomeImported, result.Imported)
	metrics.AddImportRows(metrics.ImportKindSolar, metrics.ImportOutcomeSkipped, result.Skipped)

	respondData(c, result)
}

func (s *Server) ListSolarReadings(c *gin.Context) {
	readings, err := s.solarSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, readings)
}
