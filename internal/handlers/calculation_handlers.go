package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/ustaxcalc/ustax-api/internal/middleware"
	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/services"
	"github.com/ustaxcalc/ustax-api/internal/types"
	"go.uber.org/zap"
)

// Summary is the human-readable dollar view of a computed return; the full
// cents-denominated result rides alongside it.
type Summary struct {
	AGI           string `json:"agi"`
	TaxableIncome string `json:"taxable_income"`
	TotalTax      string `json:"total_tax"`
	RefundOrOwe   string `json:"refund_or_owe"`
}

// FederalCalculationResponse is the body returned by the federal endpoint.
type FederalCalculationResponse struct {
	Result        *types.FederalResult `json:"result"`
	Summary       Summary              `json:"summary"`
	InputWarnings []string             `json:"input_warnings,omitempty"`
}

// StateCalculationResponse carries both halves: the state calculators consume
// the federal result, so it is computed here either way and returned so the
// client does not need a second call.
type StateCalculationResponse struct {
	Federal       *types.FederalResult `json:"federal"`
	State         *types.StateResult   `json:"state"`
	Summary       Summary              `json:"summary"`
	InputWarnings []string             `json:"input_warnings,omitempty"`
}

func federalSummary(res *types.FederalResult) Summary {
	return Summary{
		AGI:           money.FormatDollars(res.AGI),
		TaxableIncome: money.FormatDollars(res.TaxableIncome),
		TotalTax:      money.FormatDollars(res.TotalTax),
		RefundOrOwe:   money.FormatDollars(res.RefundOrOwe),
	}
}

func stateSummary(res *types.StateResult) Summary {
	return Summary{
		AGI:           money.FormatDollars(res.StateAGI),
		TaxableIncome: money.FormatDollars(res.StateTaxableIncome),
		TotalTax:      money.FormatDollars(res.TotalLiability),
		RefundOrOwe:   money.FormatDollars(res.RefundOrOwe),
	}
}

// CalculateFederal handles POST /api/v1/calculations/federal.
func (h *CalculationHandler) CalculateFederal(c *gin.Context) {
	var req TaxReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	input, warnings := req.ToEngineInput()
	result := h.service.CalculateFederal(c.Request.Context(), input)

	if len(warnings) > 0 {
		h.logger.Warn("Request amounts degraded during parsing",
			zap.String("correlation_id", middleware.GetCorrelationID(c)),
			zap.Int("fields", len(warnings)))
	}

	c.JSON(http.StatusOK, FederalCalculationResponse{
		Result:        result,
		Summary:       federalSummary(result),
		InputWarnings: warnings,
	})
}

// CalculateState handles POST /api/v1/calculations/state/:code. The federal
// return is computed first and fed to the state calculator.
func (h *CalculationHandler) CalculateState(c *gin.Context) {
	code := c.Param("code")

	var req StateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	input, warnings := req.ToEngineInput()
	federalResult := h.service.CalculateFederal(c.Request.Context(), input)
	stateInput, warnings := req.ToStateInput(code, federalResult, input, warnings)

	stateResult, err := h.service.CalculateState(c.Request.Context(), code, stateInput)
	if err != nil {
		if errors.Is(err, services.ErrStateNotSupported) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unsupported state code: " + code})
			return
		}
		h.logger.Error("State calculation failed",
			zap.String("correlation_id", middleware.GetCorrelationID(c)),
			zap.String("state_code", code),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to calculate state return"})
		return
	}

	c.JSON(http.StatusOK, StateCalculationResponse{
		Federal:       federalResult,
		State:         stateResult,
		Summary:       stateSummary(stateResult),
		InputWarnings: warnings,
	})
}

// ListStates handles GET /api/v1/states.
func (h *CalculationHandler) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": h.service.SupportedStates()})
}
