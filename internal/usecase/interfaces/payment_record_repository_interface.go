package interfaces

import (
	"context"

	"crane_fmv/internal/domain/entities"
)

// IPaymentRecordRepository stores payment gate outcomes per report.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	ListByReportID(ctx context.Context, reportID string) ([]entities.PaymentRecord, error)
}
