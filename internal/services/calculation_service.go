package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/ustaxcalc/ustax-api/internal/constants"
	"github.com/ustaxcalc/ustax-api/internal/diag"
	"github.com/ustaxcalc/ustax-api/internal/federal"
	"github.com/ustaxcalc/ustax-api/internal/logger"
	"github.com/ustaxcalc/ustax-api/internal/states"
	"github.com/ustaxcalc/ustax-api/internal/types"
	"go.uber.org/zap"
)

var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ustax_calculations_total",
		Help: "Completed tax calculations by jurisdiction and status.",
	}, []string{"jurisdiction", "status"})

	calculationDiagnostics = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ustax_calculation_diagnostics_total",
		Help: "Diagnostics attached to calculation results, by severity.",
	}, []string{"jurisdiction", "severity"})
)

// ErrStateNotSupported reports a state code with no registry entry. Callers
// must distinguish it from a no-tax state, which returns a normal result.
var ErrStateNotSupported = errors.New("state not supported")

// CalculationService is the audit boundary around the pure calculators: it
// assigns each invocation a calculation ID, logs structured outcomes, and
// counts results for metrics. The calculators themselves stay side-effect
// free.
type CalculationService struct {
	logger *zap.Logger
}

// NewCalculationService creates a new calculation service.
func NewCalculationService() *CalculationService {
	return &CalculationService{logger: logger.Log}
}

// CalculateFederal runs the federal pipeline for one taxpayer record.
func (s *CalculationService) CalculateFederal(ctx context.Context, input *types.TaxpayerInput) *types.FederalResult {
	calculationID := uuid.New().String()
	result := federal.ComputeFederal(input)

	s.logger.Info("Federal calculation completed",
		zap.String("calculation_id", calculationID),
		zap.String("filing_status", string(result.FilingStatus)),
		zap.Int("tax_year", result.TaxYear),
		zap.Int64("agi_cents", result.AGI),
		zap.Int64("total_tax_cents", result.TotalTax),
		zap.Int64("refund_or_owe_cents", result.RefundOrOwe),
		zap.Int("warnings", len(result.Diagnostics.Warnings)),
		zap.Int("errors", len(result.Diagnostics.Errors)))

	recordDiagnostics(constants.FederalJurisdiction, &result.Diagnostics)
	calculationsTotal.WithLabelValues(constants.FederalJurisdiction, "ok").Inc()
	return result
}

// CalculateState runs one state's calculator against an already computed
// federal result. ErrStateNotSupported signals an unknown jurisdiction.
func (s *CalculationService) CalculateState(ctx context.Context, code string, input *types.StateTaxInput) (*types.StateResult, error) {
	calculationID := uuid.New().String()

	entry := states.Lookup(code)
	if entry == nil {
		s.logger.Warn("State calculation rejected",
			zap.String("calculation_id", calculationID),
			zap.String("state_code", code))
		calculationsTotal.WithLabelValues(code, "unsupported").Inc()
		return nil, errors.Wrap(ErrStateNotSupported, code)
	}

	result := entry.Calculate(input)

	s.logger.Info("State calculation completed",
		zap.String("calculation_id", calculationID),
		zap.String("state_code", result.StateCode),
		zap.Int64("state_tax_cents", result.StateTax),
		zap.Int64("local_tax_cents", result.LocalTax),
		zap.Int64("refund_or_owe_cents", result.RefundOrOwe))

	recordDiagnostics(result.StateCode, &result.Diagnostics)
	calculationsTotal.WithLabelValues(result.StateCode, "ok").Inc()
	return result, nil
}

// SupportedStates returns the registry's configs for discovery endpoints.
func (s *CalculationService) SupportedStates() []states.Config {
	return states.Configs()
}

func recordDiagnostics(jurisdiction string, d *diag.Diagnostics) {
	if n := len(d.Warnings); n > 0 {
		calculationDiagnostics.WithLabelValues(jurisdiction, "warning").Add(float64(n))
	}
	if n := len(d.Errors); n > 0 {
		calculationDiagnostics.WithLabelValues(jurisdiction, "error").Add(float64(n))
	}
}
