package valuation

import (
	"fmt"
	"reflect"
	"strings"

	"crane_fmv/internal/domain"
	"crane_fmv/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

const MinModelYear = 1950

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateAsset returns every issue found on a single, already normalized asset.
func (e *Evaluator) validateAsset(position int, asset entities.AssetDescriptor, tier entities.ReportType) []domain.FieldIssue {
	var issues []domain.FieldIssue

	if err := e.validate.Struct(asset); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				issues = append(issues, domain.FieldIssue{Position: position, Field: fe.Field(), Reason: describeTag(fe)})
			}
		} else {
			issues = append(issues, domain.FieldIssue{Position: position, Field: "asset", Reason: err.Error()})
		}
	}

	if asset.Year != 0 {
		maxYear := e.now().Year() + 1
		if asset.Year < MinModelYear || asset.Year > maxYear {
			issues = append(issues, domain.FieldIssue{
				Position: position,
				Field:    "year",
				Reason:   fmt.Sprintf("must be between %d and %d", MinModelYear, maxYear),
			})
		}
	}

	if tier.RequiresSerialNumber() && asset.SerialNumber == "" {
		issues = append(issues, domain.FieldIssue{
			Position: position,
			Field:    "serial_number",
			Reason:   fmt.Sprintf("required for %s reports", tier),
		})
	}
	return issues
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

// ValidateAll checks every asset against the tier rules and reports all
// invalid assets at once. Assets are normalized in place on success.
func (e *Evaluator) ValidateAll(assets []entities.AssetDescriptor, tier entities.ReportType) error {
	var issues []domain.FieldIssue
	for i := range assets {
		assets[i] = assets[i].Normalize()
		issues = append(issues, e.validateAsset(i+1, assets[i], tier)...)
	}
	if len(issues) > 0 {
		return domain.NewValidationError(issues...)
	}
	return nil
}
