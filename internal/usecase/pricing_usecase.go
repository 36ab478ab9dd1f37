package usecase

import (
	"context"
	"errors"
	"fmt"

	"crane_fmv/internal/domain"
	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IPricingUseCase exposes the tier price list. Changing a price only affects
// reports created afterwards.
type IPricingUseCase interface {
	Prices(ctx context.Context) map[entities.ReportType]decimal.Decimal
	UpdatePrice(ctx context.Context, actor Actor, reportType entities.ReportType, price decimal.Decimal) (map[entities.ReportType]decimal.Decimal, error)
}

type PricingUseCase struct {
	table *pricing.Table
	log   *zap.Logger
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(table *pricing.Table) *PricingUseCase {
	return &PricingUseCase{table: table, log: zap.L().Named("pricing.usecase")}
}

func (u *PricingUseCase) Prices(context.Context) map[entities.ReportType]decimal.Decimal {
	return u.table.Snapshot()
}

func (u *PricingUseCase) UpdatePrice(_ context.Context, actor Actor, reportType entities.ReportType, price decimal.Decimal) (map[entities.ReportType]decimal.Decimal, error) {
	if !actor.Admin {
		return nil, fmt.Errorf("%w: pricing changes require an administrator", domain.ErrForbidden)
	}

	previous, _ := u.table.Lookup(reportType)
	if err := u.table.Update(reportType, price); err != nil {
		field := "price"
		if errors.Is(err, pricing.ErrUnknownReportType) {
			field = "type"
		}
		return nil, domain.NewValidationError(domain.FieldIssue{Field: field, Reason: err.Error()})
	}

	u.log.Info("price updated",
		zap.String("type", string(reportType)),
		zap.String("previous", previous.String()),
		zap.String("price", price.String()))
	return u.table.Snapshot(), nil
}
