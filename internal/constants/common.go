package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Jurisdictions
	FederalJurisdiction = "US"

	// The tax year this engine models. Rule tables in internal/federal and
	// internal/states are all keyed to this year.
	TaxYear = 2025
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}
