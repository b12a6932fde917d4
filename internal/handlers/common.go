package handlers

import (
	"github.com/ustaxcalc/ustax-api/internal/logger"
	"github.com/ustaxcalc/ustax-api/internal/services"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// CalculationHandler serves the calculation endpoints.
type CalculationHandler struct {
	service *services.CalculationService
	logger  *zap.Logger
}

// NewCalculationHandler creates a new calculation handler
func NewCalculationHandler(service *services.CalculationService) *CalculationHandler {
	return &CalculationHandler{
		service: service,
		logger:  logger.Log,
	}
}
