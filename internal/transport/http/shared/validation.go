package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strings"

	"woonlasten/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  field,
		Reason: reason,
	})
}

// Finite reports whether value is a usable number and records an issue when it is not.
func (v *Validator) Finite(field string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.Add(field, "must be a finite number")
		return false
	}
	return true
}

func (v *Validator) NonNegative(field string, value float64) {
	if v.Finite(field, value) && value < 0 {
		v.Add(field, "must not be negative")
	}
}

func (v *Validator) Positive(field string, value float64) {
	if v.Finite(field, value) && value <= 0 {
		v.Add(field, "must be greater than zero")
	}
}

// Fraction checks an optional rate or share; nil means the caller left it out.
func (v *Validator) Fraction(field string, value *float64) {
	if value == nil {
		return
	}
	if v.Finite(field, *value) && (*value < 0 || *value > 1) {
		v.Add(field, "must be between 0 and 1")
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, requestID, v.Issues())
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}

// DecodeJSON decodes a single JSON object and rejects unknown fields.
// It writes the error response itself and reports whether decoding succeeded.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any, requestID string) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", fmt.Sprintf("payload exceeds %d bytes", tooLarge.Limit), requestID)
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid json payload", requestID)
		return false
	}
	return true
}
