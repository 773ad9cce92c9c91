package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetMonthlyUsage(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		AbortWithError(c, newValidationError("year", "invalid_year", "year must be a number"))
		return
	}

	usage, err := s.analyticsSvc.MonthlyUsage(c.Request.Context(), year)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, usage)
}
