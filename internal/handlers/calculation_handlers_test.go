package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ustaxcalc/ustax-api/internal/constants"
	"github.com/ustaxcalc/ustax-api/internal/logger"
	"github.com/ustaxcalc/ustax-api/internal/services"
	"github.com/ustaxcalc/ustax-api/internal/states"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitLogger(constants.StageLocal)

	handler := NewCalculationHandler(services.NewCalculationService())

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/calculations/federal", handler.CalculateFederal)
	v1.POST("/calculations/state/:code", handler.CalculateState)
	v1.GET("/states", handler.ListStates)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func wageEarnerBody(wages string) map[string]any {
	return map[string]any{
		"filing_status": "single",
		"primary":       map[string]any{"birth_date": "1985-06-15", "has_ssn": true},
		"income":        map[string]any{"wages": wages},
		"payments":      map[string]any{"federal_withholding": "4000.00"},
	}
}

func TestCalculateFederalEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/calculations/federal", wageEarnerBody("52000.00"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp FederalCalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)

	assert.Equal(t, int64(5_200_000), resp.Result.AGI)
	assert.Equal(t, "52000.00", resp.Summary.AGI)
	assert.Positive(t, resp.Result.TotalTax)
	assert.Equal(t, resp.Result.TotalPayments-resp.Result.TotalTax, resp.Result.RefundOrOwe)
	assert.Empty(t, resp.InputWarnings)
}

func TestCalculateFederalLenientAmounts(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/calculations/federal", wageEarnerBody("not a number"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp FederalCalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.InputWarnings, 1)
	assert.Contains(t, resp.InputWarnings[0], "income.wages")
	assert.Zero(t, resp.Result.AGI)
}

func TestCalculateFederalRejectsMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculations/federal", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Invalid request body")
}

func TestCalculateStateNoTaxJurisdiction(t *testing.T) {
	router := newTestRouter(t)

	body := wageEarnerBody("50000.00")
	body["state_withholding"] = "1000.00"

	w := postJSON(t, router, "/api/v1/calculations/state/TX", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp StateCalculationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.State)
	require.NotNil(t, resp.Federal)

	assert.Equal(t, "TX", resp.State.StateCode)
	assert.Zero(t, resp.State.TotalLiability)
	assert.Equal(t, int64(100_000), resp.State.RefundOrOwe)
	assert.Equal(t, "1000.00", resp.Summary.RefundOrOwe)
}

func TestCalculateStateUnknownCode(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/calculations/state/ZZ", wageEarnerBody("50000.00"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "ZZ")
}

func TestListStates(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/states", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		States []states.Config `json:"states"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.States, 51)
}
