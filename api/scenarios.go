/*
scenarios.go - Canned example calculations

PURPOSE:
  Pre-built calculations that exercise the computation packages with
  realistic numbers, for demos and as living documentation of the API.
  Unlike the calculator endpoints, scenarios carry their inputs baked in;
  clients only pick one by ID.

AVAILABLE SCENARIOS:
  financed-car:    payment on a 70%-financed car purchase
  savings-plan:    accumulated value of a 15-year monthly savings plan
  loan-recovery:   capital recovery factor for a short business loan
  inflation-check: real rate and real-vs-effective choice under inflation

ADDING NEW SCENARIOS:
 1. Add to the 'scenarios' slice with ID, name, description
 2. Add a case to EvaluateScenario returning the computed values

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
  - server.go: route wiring
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/warp/finmath-engine/annuity"
	"github.com/warp/finmath-engine/interest"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "financed-car",
		Name:        "Financed Car Purchase",
		Description: "Monthly payment on 70% of a 20,000 car at 4.5% per month over 12 months",
	},
	{
		ID:          "savings-plan",
		Name:        "Savings Plan",
		Description: "Future value of 500 saved monthly for 15 years at 1% per month",
	},
	{
		ID:          "loan-recovery",
		Name:        "Loan Recovery Factor",
		Description: "Capital recovery factor for a 2,000 loan at 4% over 5 periods",
	},
	{
		ID:          "inflation-check",
		Name:        "Inflation Check",
		Description: "Real rate on a 10% nominal investment under 4% inflation",
	},
}

// =============================================================================
// HANDLERS
// =============================================================================

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

func (h *Handler) EvaluateScenario(w http.ResponseWriter, r *http.Request) {
	var req EvaluateScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := evaluateScenario(req.ScenarioID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "unknown scenario: "+req.ScenarioID, nil)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func evaluateScenario(id string) (map[string]any, error) {
	switch id {
	case "financed-car":
		solver, err := annuity.NewSolver(0.045, 12, annuity.Ordinary)
		if err != nil {
			return nil, err
		}
		financed := 0.7 * 20000
		payment, err := solver.PaymentFromPresentValue(financed)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"financed_amount": financed,
			"payment":         payment,
			"payment_display": displayMoney(payment),
		}, nil

	case "savings-plan":
		solver, err := annuity.NewSolver(0.01, 180, annuity.Ordinary)
		if err != nil {
			return nil, err
		}
		futureValue, err := solver.FutureValueOfPayment(500)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"monthly_payment":      500.0,
			"future_value":         futureValue,
			"future_value_display": displayMoney(futureValue),
		}, nil

	case "loan-recovery":
		solver, err := annuity.NewSolver(0.04, 5, annuity.Ordinary)
		if err != nil {
			return nil, err
		}
		payment, err := solver.PaymentFromPresentValue(2000)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"capital_recovery_factor": solver.CapitalRecoveryFactor(),
			"payment":                 payment,
			"payment_display":         displayMoney(payment),
		}, nil

	case "inflation-check":
		realRate, err := interest.Compound.RealRatePerPeriod(1000, 0.04, interest.FromRate(0.10, 1))
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"nominal_rate": 0.10,
			"inflation":    0.04,
			"real_rate":    realRate,
			"chosen_rate":  interest.RealOrEffectiveRate(realRate, 0.10, 0.04),
		}, nil

	default:
		return nil, nil
	}
}
