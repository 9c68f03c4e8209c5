/*
handlers.go - HTTP handlers for the calculator API

PURPOSE:
  Decodes requests, maps them onto the computation packages (interest,
  annuity, progression), and encodes the results. Handlers hold no
  computation state; every request is answered from scratch.

ERROR MAPPING:
  - malformed JSON, unknown regime/timing/type, missing or ambiguous
    known inputs        -> 400
  - domain errors from the computation packages (degenerate rates,
    vanishing factors)  -> 422
  - unknown scenario    -> 404

SEE ALSO:
  - dto.go: request/response types
  - server.go: route wiring
  - scenarios.go: canned example calculations
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/warp/finmath-engine/annuity"
	"github.com/warp/finmath-engine/interest"
	"github.com/warp/finmath-engine/progression"
)

// Handler answers calculator requests. Safe for concurrent use: it owns no
// mutable state, and each request builds its own solver.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a handler logging through the given logger.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// =============================================================================
// INTEREST CONVERSIONS
// =============================================================================

func (h *Handler) FutureValue(w http.ResponseWriter, r *http.Request) {
	var req ConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	model, ok := modelFor(req.Regime)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown regime: "+req.Regime, nil)
		return
	}
	if req.PresentValue == nil {
		writeError(w, http.StatusBadRequest, "present_value is required", nil)
		return
	}
	growth, err := growthFrom(req.Interest, nil, req.Rate, req.Periods)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid growth inputs", err)
		return
	}

	value, err := model.FutureValue(*req.PresentValue, growth)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversion(req.Regime, "future_value", value))
}

func (h *Handler) PresentValue(w http.ResponseWriter, r *http.Request) {
	var req ConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	model, ok := modelFor(req.Regime)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown regime: "+req.Regime, nil)
		return
	}
	if req.FutureValue == nil {
		writeError(w, http.StatusBadRequest, "future_value is required", nil)
		return
	}
	growth, err := growthFrom(req.Interest, nil, req.Rate, req.Periods)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid growth inputs", err)
		return
	}

	value, err := model.PresentValue(*req.FutureValue, growth)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversion(req.Regime, "present_value", value))
}

func (h *Handler) Interest(w http.ResponseWriter, r *http.Request) {
	var req ConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	model, ok := modelFor(req.Regime)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown regime: "+req.Regime, nil)
		return
	}
	if req.PresentValue == nil {
		writeError(w, http.StatusBadRequest, "present_value is required", nil)
		return
	}
	growth, err := growthFrom(nil, req.FutureValue, req.Rate, req.Periods)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid growth inputs", err)
		return
	}

	value, err := model.Interest(*req.PresentValue, growth)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversion(req.Regime, "interest", value))
}

func (h *Handler) NetPresentValue(w http.ResponseWriter, r *http.Request) {
	var req NetPresentValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	model, ok := modelFor(req.Regime)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown regime: "+req.Regime, nil)
		return
	}

	value, err := model.NetPresentValue(req.FutureValues, req.Rates, req.Periods)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversion(req.Regime, "net_present_value", value))
}

func (h *Handler) RealRate(w http.ResponseWriter, r *http.Request) {
	var req RealRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	model, ok := modelFor(req.Regime)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown regime: "+req.Regime, nil)
		return
	}

	// Resolution priority: explicit rate > realized future value > interest.
	var growth interest.Growth
	switch {
	case req.Rate != nil:
		growth = interest.FromRate(*req.Rate, 1)
	case req.FutureValue != nil:
		growth = interest.FromFutureValue(*req.FutureValue)
	case req.Interest != nil:
		growth = interest.FromInterest(*req.Interest)
	default:
		writeError(w, http.StatusBadRequest, "one of rate, future_value, interest is required", nil)
		return
	}

	realRate, err := model.RealRatePerPeriod(req.PresentValue, req.InflationRate, growth)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	realInterest, err := model.RealInterestPerPeriod(req.PresentValue, req.InflationRate, growth)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RealRateDTO{
		Regime:          req.Regime,
		RealRate:        realRate,
		RealInterest:    realInterest,
		InterestDisplay: displayMoney(realInterest),
	})
}

// =============================================================================
// ANNUITY
// =============================================================================

func (h *Handler) SolveAnnuity(w http.ResponseWriter, r *http.Request) {
	var req AnnuitySolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	timing, ok := timingFor(req.Timing)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown timing: "+req.Timing, nil)
		return
	}

	solver, err := annuity.NewSolver(req.Rate, req.Periods, timing)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var payment float64
	switch {
	case req.Payment != nil:
		payment = *req.Payment
	case req.PresentValue != nil:
		payment, err = solver.PaymentFromPresentValue(*req.PresentValue)
	case req.FutureValue != nil:
		payment, err = solver.PaymentFromFutureValue(*req.FutureValue)
	default:
		writeError(w, http.StatusBadRequest, "one of payment, present_value, future_value is required", nil)
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	presentValue, err := solver.PresentValueOfPayment(payment)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	futureValue, err := solver.FutureValueOfPayment(payment)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.logger.Debug("annuity solved",
		zap.Float64("rate", req.Rate),
		zap.Int("periods", req.Periods),
		zap.String("timing", timing.String()),
		zap.Float64("payment", payment),
	)

	writeJSON(w, http.StatusOK, AnnuitySolveDTO{
		Rate:                req.Rate,
		Periods:             req.Periods,
		Timing:              timing.String(),
		Payment:             payment,
		PaymentDisplay:      displayMoney(payment),
		PresentValue:        presentValue,
		PresentValueDisplay: displayMoney(presentValue),
		FutureValue:         futureValue,
		FutureValueDisplay:  displayMoney(futureValue),
		Factors:             factorsDTO(solver),
	})
}

func (h *Handler) AnnuityFactors(w http.ResponseWriter, r *http.Request) {
	rate, err := queryFloat(r, "rate")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate", err)
		return
	}
	periods, err := queryInt(r, "periods")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid periods", err)
		return
	}
	timing, ok := timingFor(r.URL.Query().Get("timing"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown timing: "+r.URL.Query().Get("timing"), nil)
		return
	}

	solver, err := annuity.NewSolver(rate, periods, timing)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, factorsDTO(solver))
}

// =============================================================================
// PROGRESSIONS
// =============================================================================

func (h *Handler) EvaluateProgression(w http.ResponseWriter, r *http.Request) {
	var req ProgressionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	var seq progression.Sequence
	switch req.Type {
	case "arithmetic":
		seq = progression.NewArithmetic(req.InitialTerm, req.Ratio)
	case "geometric":
		seq = progression.NewGeometric(req.InitialTerm, req.Ratio)
	default:
		writeError(w, http.StatusBadRequest, "unknown progression type: "+req.Type, nil)
		return
	}

	terms, err := seq.FirstTerms(req.Count)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	sum, err := seq.SumFirstTerms(req.Count)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProgressionDTO{Type: req.Type, Terms: terms, Sum: sum})
}

// =============================================================================
// HELPERS
// =============================================================================

func modelFor(regime string) (interest.Model, bool) {
	switch regime {
	case "simple":
		return interest.Simple, true
	case "compound":
		return interest.Compound, true
	default:
		return interest.Model{}, false
	}
}

func timingFor(timing string) (annuity.Timing, bool) {
	switch timing {
	case "ordinary", "":
		return annuity.Ordinary, true
	case "due":
		return annuity.Due, true
	default:
		return 0, false
	}
}

// growthFrom builds the known-input union from the optional request fields.
// Exactly one input must be present.
func growthFrom(interestAmount, futureValue, rate, periods *float64) (interest.Growth, error) {
	supplied := 0
	if interestAmount != nil {
		supplied++
	}
	if futureValue != nil {
		supplied++
	}
	if rate != nil {
		supplied++
	}
	if supplied != 1 {
		return interest.Growth{}, errors.New("supply exactly one of interest, a realized value, or rate+periods")
	}

	switch {
	case interestAmount != nil:
		return interest.FromInterest(*interestAmount), nil
	case futureValue != nil:
		return interest.FromFutureValue(*futureValue), nil
	default:
		if periods == nil {
			return interest.Growth{}, errors.New("periods is required alongside rate")
		}
		return interest.FromRate(*rate, *periods), nil
	}
}

func conversion(regime, quantity string, value float64) ConversionDTO {
	return ConversionDTO{
		Regime:   regime,
		Quantity: quantity,
		Value:    value,
		Display:  displayMoney(value),
	}
}

func factorsDTO(s *annuity.Solver) FactorsDTO {
	return FactorsDTO{
		Accumulation:    s.AccumulationFactor(),
		SinkingFund:     s.SinkingFundFactor(),
		PresentWorth:    s.PresentWorthFactor(),
		CapitalRecovery: s.CapitalRecoveryFactor(),
	}
}

func queryFloat(r *http.Request, name string) (float64, error) {
	return strconv.ParseFloat(r.URL.Query().Get(name), 64)
}

func queryInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.URL.Query().Get(name))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps computation-package errors onto statuses: input
// shape problems are 400, arithmetic degeneracies 422.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, interest.ErrUnderdetermined),
		errors.Is(err, progression.ErrIndexOutOfRange),
		errors.Is(err, progression.ErrSequenceTooShort),
		errors.Is(err, annuity.ErrInvalidTiming),
		errors.Is(err, annuity.ErrInvalidPeriods):
		writeError(w, http.StatusBadRequest, "invalid input", err)
	default:
		writeError(w, http.StatusUnprocessableEntity, "calculation failed", err)
	}
}
