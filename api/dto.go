/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the computation packages from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

KNOWN-INPUT SELECTION:
  Conversion requests carry optional fields; exactly one growth input must
  be present (interest, a realized value, or rate+periods). The handlers
  reject ambiguous or empty combinations before touching the computation
  packages.

MONEY FORMATTING:
  Monetary response fields carry the raw float64 plus a cent-rounded
  display string produced with shopspring/decimal. Rounding happens only
  here, at the boundary; the computation core stays floating-point.

SEE ALSO:
  - handlers.go: uses these types
  - scenarios.go: canned example calculations
*/
package api

import "github.com/shopspring/decimal"

// =============================================================================
// CONVERSION TYPES
// =============================================================================

// ConversionRequest asks for one money quantity under a regime. Which
// principal field is required depends on the route: future-value and
// interest read present_value, present-value reads future_value.
type ConversionRequest struct {
	Regime       string   `json:"regime"`
	PresentValue *float64 `json:"present_value,omitempty"`
	FutureValue  *float64 `json:"future_value,omitempty"`
	Interest     *float64 `json:"interest,omitempty"`
	Rate         *float64 `json:"rate,omitempty"`
	Periods      *float64 `json:"periods,omitempty"`
}

// ConversionDTO is the computed quantity.
type ConversionDTO struct {
	Regime   string  `json:"regime"`
	Quantity string  `json:"quantity"`
	Value    float64 `json:"value"`
	Display  string  `json:"display"`
}

// NetPresentValueRequest is a cash-flow schedule. Shorter lists repeat
// their final element until the longest list is exhausted.
type NetPresentValueRequest struct {
	Regime       string    `json:"regime"`
	FutureValues []float64 `json:"future_values"`
	Rates        []float64 `json:"rates"`
	Periods      []float64 `json:"periods"`
}

// RealRateRequest asks for the inflation-adjusted rate. The nominal rate is
// resolved with priority rate > future_value > interest.
type RealRateRequest struct {
	Regime        string   `json:"regime"`
	PresentValue  float64  `json:"present_value"`
	InflationRate float64  `json:"inflation_rate"`
	Rate          *float64 `json:"rate,omitempty"`
	FutureValue   *float64 `json:"future_value,omitempty"`
	Interest      *float64 `json:"interest,omitempty"`
}

// RealRateDTO carries the Fisher-adjusted rate and interest amount.
type RealRateDTO struct {
	Regime          string  `json:"regime"`
	RealRate        float64 `json:"real_rate"`
	RealInterest    float64 `json:"real_interest"`
	InterestDisplay string  `json:"interest_display"`
}

// =============================================================================
// ANNUITY TYPES
// =============================================================================

// AnnuitySolveRequest fixes a series configuration and exactly one of
// payment, present_value, or future_value.
type AnnuitySolveRequest struct {
	Rate         float64  `json:"rate"`
	Periods      int      `json:"periods"`
	Timing       string   `json:"timing"`
	Payment      *float64 `json:"payment,omitempty"`
	PresentValue *float64 `json:"present_value,omitempty"`
	FutureValue  *float64 `json:"future_value,omitempty"`
}

// AnnuitySolveDTO returns the full mutually consistent triple plus the
// named factors for the configuration.
type AnnuitySolveDTO struct {
	Rate                float64    `json:"rate"`
	Periods             int        `json:"periods"`
	Timing              string     `json:"timing"`
	Payment             float64    `json:"payment"`
	PaymentDisplay      string     `json:"payment_display"`
	PresentValue        float64    `json:"present_value"`
	PresentValueDisplay string     `json:"present_value_display"`
	FutureValue         float64    `json:"future_value"`
	FutureValueDisplay  string     `json:"future_value_display"`
	Factors             FactorsDTO `json:"factors"`
}

// FactorsDTO lists the named annuity multipliers.
type FactorsDTO struct {
	Accumulation    float64 `json:"accumulation"`
	SinkingFund     float64 `json:"sinking_fund"`
	PresentWorth    float64 `json:"present_worth"`
	CapitalRecovery float64 `json:"capital_recovery"`
}

// =============================================================================
// PROGRESSION TYPES
// =============================================================================

// ProgressionRequest evaluates the first count terms of a progression.
type ProgressionRequest struct {
	Type        string  `json:"type"`
	InitialTerm float64 `json:"initial_term"`
	Ratio       float64 `json:"ratio"`
	Count       int     `json:"count"`
}

// ProgressionDTO carries the evaluated prefix and its partial sum.
type ProgressionDTO struct {
	Type  string    `json:"type"`
	Terms []float64 `json:"terms"`
	Sum   float64   `json:"sum"`
}

// =============================================================================
// SCENARIO TYPES
// =============================================================================

// ScenarioDTO describes one canned example calculation.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EvaluateScenarioRequest selects a scenario by ID.
type EvaluateScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// HELPERS
// =============================================================================

// displayMoney renders a monetary float rounded to cents.
func displayMoney(value float64) string {
	return decimal.NewFromFloat(value).Round(2).StringFixed(2)
}
