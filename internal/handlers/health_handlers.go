package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ustaxcalc/ustax-api/internal/constants"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	TaxYear int    `json:"tax_year"`
}

// Health returns a simple "ok" status plus the tax year this deployment
// computes.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		TaxYear: constants.TaxYear,
	})
}
