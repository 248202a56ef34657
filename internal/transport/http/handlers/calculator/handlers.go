package calculatorhandler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"woonlasten/internal/domain/auth"
	"woonlasten/internal/domain/housing"
	"woonlasten/internal/domain/mortgage"
	"woonlasten/internal/domain/tax"
	"woonlasten/internal/platform/metrics"
	"woonlasten/internal/transport/http/api"
	"woonlasten/internal/transport/http/middleware"
	"woonlasten/internal/transport/http/shared"
)

const (
	KindTax                = "tax"
	KindHousing            = "housing"
	KindDeductibleInterest = "deductible_interest"
	KindMortgage           = "mortgage"
	KindStatement          = "statement"
)

type Handler struct {
	Metrics      *metrics.Collector
	EnforceScope bool
}

func NewHandler(collector *metrics.Collector, enforceScope bool) *Handler {
	return &Handler{Metrics: collector, EnforceScope: enforceScope}
}

type personPayload struct {
	GrossAnnualSalary float64 `json:"grossAnnualSalary"`
	Deduction         float64 `json:"deduction"`
}

type deductibleInterestPayload struct {
	AnnualInterest float64 `json:"annualInterest"`
	WOZValue       float64 `json:"wozValue"`
}

type deductibleInterestResult struct {
	AnnualInterest     float64 `json:"annualInterest"`
	WOZValue           float64 `json:"wozValue"`
	ImputedRentalValue float64 `json:"imputedRentalValue"`
	DeductibleInterest float64 `json:"deductibleInterest"`
}

// Optional rates are pointers so an omitted field falls back to the mortgage defaults
// while an explicit zero is kept.
type mortgagePayload struct {
	Principal            float64  `json:"principal"`
	InterestRate         *float64 `json:"interestRate"`
	InterestFreeFraction *float64 `json:"interestFreeFraction"`
	MaintenanceRate      *float64 `json:"maintenanceRate"`
	PropertyValue        float64  `json:"propertyValue"`
	GrossAnnualSalary    *float64 `json:"grossAnnualSalary"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireScope(auth.ScopeTaxCalculate, h.EnforceScope)).Post("/tax/person", h.handlePerson)
	r.Route("/housing", func(r chi.Router) {
		r.Use(middleware.RequireScope(auth.ScopeHousingCalculate, h.EnforceScope))
		r.Get("/values", h.handleHousingValues)
		r.Post("/deductible-interest", h.handleDeductibleInterest)
	})
	r.Route("/mortgage", func(r chi.Router) {
		r.With(middleware.RequireScope(auth.ScopeMortgageCalculate, h.EnforceScope)).Post("/monthly-cost", h.handleMonthlyCost)
		r.With(middleware.RequireScope(auth.ScopeMortgageStatement, h.EnforceScope)).Post("/statement", h.handleStatement)
	})
}

func (h *Handler) handlePerson(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload personPayload
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	v := shared.NewValidator()
	v.NonNegative("grossAnnualSalary", payload.GrossAnnualSalary)
	v.NonNegative("deduction", payload.Deduction)
	if v.Reject(w, requestID) {
		return
	}

	person := tax.NewPerson(payload.GrossAnnualSalary).WithDeduction(payload.Deduction)
	h.Metrics.RecordCalculation(KindTax)
	api.Success(w, person.Summary(), requestID)
}

func (h *Handler) handleHousingValues(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	raw := strings.TrimSpace(r.URL.Query().Get("woz"))

	v := shared.NewValidator()
	woz, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v.Add("woz", "must be a number")
	} else {
		v.NonNegative("woz", woz)
	}
	if v.Reject(w, requestID) {
		return
	}

	h.Metrics.RecordCalculation(KindHousing)
	api.Success(w, housing.Values(woz), requestID)
}

func (h *Handler) handleDeductibleInterest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload deductibleInterestPayload
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return
	}

	v := shared.NewValidator()
	v.NonNegative("annualInterest", payload.AnnualInterest)
	v.NonNegative("wozValue", payload.WOZValue)
	if v.Reject(w, requestID) {
		return
	}

	h.Metrics.RecordCalculation(KindDeductibleInterest)
	api.Success(w, deductibleInterestResult{
		AnnualInterest:     payload.AnnualInterest,
		WOZValue:           payload.WOZValue,
		ImputedRentalValue: housing.ImputedRentalValue(payload.WOZValue),
		DeductibleInterest: housing.DeductibleMortgageInterest(payload.AnnualInterest, payload.WOZValue),
	}, requestID)
}

func (h *Handler) handleMonthlyCost(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	breakdown, ok := h.decodeMortgage(w, r, requestID)
	if !ok {
		return
	}
	h.Metrics.RecordCalculation(KindMortgage)
	api.Success(w, breakdown, requestID)
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	breakdown, ok := h.decodeMortgage(w, r, requestID)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := mortgage.WriteStatement(&buf, breakdown); err != nil {
		slog.Error("statement render failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "statement_failed", "failed to render statement", requestID)
		return
	}

	h.Metrics.RecordCalculation(KindStatement)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="housing-costs.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("statement write failed", "err", err, "requestId", requestID)
	}
}

func (h *Handler) decodeMortgage(w http.ResponseWriter, r *http.Request, requestID string) (mortgage.Breakdown, bool) {
	var payload mortgagePayload
	if !shared.DecodeJSON(w, r, &payload, requestID) {
		return mortgage.Breakdown{}, false
	}

	v := shared.NewValidator()
	v.Positive("principal", payload.Principal)
	v.Fraction("interestRate", payload.InterestRate)
	v.Fraction("interestFreeFraction", payload.InterestFreeFraction)
	v.Fraction("maintenanceRate", payload.MaintenanceRate)
	v.NonNegative("propertyValue", payload.PropertyValue)
	if payload.GrossAnnualSalary != nil {
		v.NonNegative("grossAnnualSalary", *payload.GrossAnnualSalary)
	}
	if v.Reject(w, requestID) {
		return mortgage.Breakdown{}, false
	}

	return mortgage.Calculate(payload.Principal, payload.options()...), true
}

func (p mortgagePayload) options() []mortgage.Option {
	opts := make([]mortgage.Option, 0, 5)
	if p.InterestRate != nil {
		opts = append(opts, mortgage.WithInterestRate(*p.InterestRate))
	}
	if p.InterestFreeFraction != nil {
		opts = append(opts, mortgage.WithInterestFreeFraction(*p.InterestFreeFraction))
	}
	if p.MaintenanceRate != nil {
		opts = append(opts, mortgage.WithMaintenanceRate(*p.MaintenanceRate))
	}
	if p.PropertyValue > 0 {
		opts = append(opts, mortgage.WithPropertyValue(p.PropertyValue))
	}
	if p.GrossAnnualSalary != nil {
		opts = append(opts, mortgage.WithPerson(tax.NewPerson(*p.GrossAnnualSalary)))
	}
	return opts
}
