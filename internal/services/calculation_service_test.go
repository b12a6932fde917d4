package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ustaxcalc/ustax-api/internal/constants"
	"github.com/ustaxcalc/ustax-api/internal/logger"
	"github.com/ustaxcalc/ustax-api/internal/services"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

func newService(t *testing.T) *services.CalculationService {
	t.Helper()
	logger.InitLogger(constants.StageLocal)
	return services.NewCalculationService()
}

func sampleInput() *types.TaxpayerInput {
	return &types.TaxpayerInput{
		FilingStatus: types.Single,
		Primary: types.PersonFacts{
			BirthDate: time.Date(1985, time.March, 15, 0, 0, 0, 0, time.UTC),
			HasSSN:    true,
		},
		Income: types.Income{Wages: 10_000_000},
	}
}

func TestCalculateFederal(t *testing.T) {
	svc := newService(t)

	result := svc.CalculateFederal(context.Background(), sampleInput())

	require.NotNil(t, result)
	assert.Equal(t, int64(10_000_000), result.AGI)
	assert.Positive(t, result.TotalTax)
}

func TestCalculateState(t *testing.T) {
	svc := newService(t)
	fed := svc.CalculateFederal(context.Background(), sampleInput())

	result, err := svc.CalculateState(context.Background(), "va", &types.StateTaxInput{
		Federal:  fed,
		Taxpayer: sampleInput(),
	})

	require.NoError(t, err)
	assert.Equal(t, "VA", result.StateCode)
	assert.Positive(t, result.StateTax)
}

func TestCalculateStateUnknownCode(t *testing.T) {
	svc := newService(t)
	fed := svc.CalculateFederal(context.Background(), sampleInput())

	result, err := svc.CalculateState(context.Background(), "ZZ", &types.StateTaxInput{
		Federal:  fed,
		Taxpayer: sampleInput(),
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrStateNotSupported)
}

func TestSupportedStates(t *testing.T) {
	svc := newService(t)

	configs := svc.SupportedStates()
	assert.Len(t, configs, 51)
}
