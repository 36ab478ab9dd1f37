package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"crane_fmv/internal/domain/entities"
)

var (
	ErrValidation             = errors.New("validation error")
	ErrInvalidState           = errors.New("invalid state")
	ErrPaymentRejected        = errors.New("payment rejected")
	ErrPaymentGateUnavailable = errors.New("payment gate unavailable")
	ErrValuation              = errors.New("valuation failed")
	ErrGeneration             = errors.New("artifact generation failed")
	ErrNotFound               = errors.New("report not found")
	ErrForbidden              = errors.New("forbidden")
)

// FieldIssue describes one invalid field. Position is the 1-based index of the
// asset inside the report, or 0 when the issue is not tied to an asset.
type FieldIssue struct {
	Position int    `json:"position,omitempty"`
	Field    string `json:"field"`
	Reason   string `json:"reason"`
}

// ValidationError aggregates every input problem found in one pass.
type ValidationError struct {
	Issues []FieldIssue
}

func NewValidationError(issues ...FieldIssue) *ValidationError {
	return &ValidationError{Issues: issues}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Position > 0 {
			parts = append(parts, fmt.Sprintf("asset #%d %s: %s", is.Position, is.Field, is.Reason))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", is.Field, is.Reason))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Positions returns the distinct asset positions that carry at least one issue.
func (e *ValidationError) Positions() []int {
	seen := map[int]struct{}{}
	out := []int{}
	for _, is := range e.Issues {
		if is.Position == 0 {
			continue
		}
		if _, ok := seen[is.Position]; ok {
			continue
		}
		seen[is.Position] = struct{}{}
		out = append(out, is.Position)
	}
	sort.Ints(out)
	return out
}

// InvalidStateError is returned when a transition is attempted from a status
// other than its required source status.
type InvalidStateError struct {
	ReportID  string
	Operation string
	Expected  []entities.ReportStatus
	Actual    entities.ReportStatus
}

func (e *InvalidStateError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, s := range e.Expected {
		expected[i] = string(s)
	}
	return fmt.Sprintf("%s: %s on report %s expects status %s, got %s",
		ErrInvalidState, e.Operation, e.ReportID, strings.Join(expected, "|"), e.Actual)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

type PaymentRejectedError struct {
	ReportID string
	Reason   string
}

func (e *PaymentRejectedError) Error() string {
	return fmt.Sprintf("%s: report %s: %s", ErrPaymentRejected, e.ReportID, e.Reason)
}

func (e *PaymentRejectedError) Is(target error) bool { return target == ErrPaymentRejected }

// AssetFailure is an evaluator failure for a single asset.
type AssetFailure struct {
	Position int
	Err      error
}

// ValuationError carries every per-asset failure of one evaluation run.
type ValuationError struct {
	ReportID string
	Failures []AssetFailure
}

func (e *ValuationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		if f.Position > 0 {
			parts = append(parts, fmt.Sprintf("asset #%d: %v", f.Position, f.Err))
			continue
		}
		parts = append(parts, f.Err.Error())
	}
	return fmt.Sprintf("%s: report %s: %s", ErrValuation, e.ReportID, strings.Join(parts, "; "))
}

func (e *ValuationError) Is(target error) bool { return target == ErrValuation }

func (e *ValuationError) Unwrap() []error {
	out := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		out = append(out, f.Err)
	}
	return out
}

type GenerationError struct {
	ReportID string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: report %s: %v", ErrGeneration, e.ReportID, e.Err)
}

func (e *GenerationError) Is(target error) bool { return target == ErrGeneration }
func (e *GenerationError) Unwrap() error        { return e.Err }

type NotFoundError struct {
	ReportID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.ReportID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
