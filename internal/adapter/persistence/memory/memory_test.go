package memory

import (
	"context"
	"testing"
	"time"

	"crane_fmv/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestReportMemoryRepository_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	repo := NewReportMemoryRepository()

	rep := entities.Report{ID: "rep-1", Status: entities.ReportStatusDraft, Assets: []entities.AssetDescriptor{{Model: "LTM"}}}
	_, err := repo.Create(ctx, rep)
	require.NoError(t, err)

	_, err = repo.Create(ctx, rep)
	require.ErrorIs(t, err, ErrReportAlreadyExists)

	rep.Status = entities.ReportStatusPaymentPending
	saved, err := repo.Save(ctx, rep, entities.ReportStatusDraft)
	require.NoError(t, err)
	require.Equal(t, "rep-1", saved.ID)

	rep.Status = entities.ReportStatusPaid
	stale, err := repo.Save(ctx, rep, entities.ReportStatusDraft)
	require.NoError(t, err)
	require.Empty(t, stale.ID)

	missing, err := repo.Save(ctx, entities.Report{ID: "nope"}, entities.ReportStatusDraft)
	require.NoError(t, err)
	require.Empty(t, missing.ID)

	got, err := repo.GetByID(ctx, "rep-1")
	require.NoError(t, err)
	require.Equal(t, entities.ReportStatusPaymentPending, got.Status)

	got.Assets[0].Model = "mutated"
	again, err := repo.GetByID(ctx, "rep-1")
	require.NoError(t, err)
	require.Equal(t, "LTM", again.Assets[0].Model)

	none, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	require.Empty(t, none.ID)
}

func TestValuationMemoryRepository_AppendOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewValuationMemoryRepository()

	require.NoError(t, repo.Append(ctx, []entities.ValuationResult{
		{ID: "v2", ReportID: "rep-1", Revision: 2, AssetPosition: 1},
		{ID: "v1b", ReportID: "rep-1", Revision: 1, AssetPosition: 2},
	}))
	require.NoError(t, repo.Append(ctx, []entities.ValuationResult{
		{ID: "v1a", ReportID: "rep-1", Revision: 1, AssetPosition: 1},
		{ID: "x", ReportID: "rep-2", Revision: 1, AssetPosition: 1},
	}))

	list, err := repo.ListByReportID(ctx, "rep-1")
	require.NoError(t, err)
	ids := []string{}
	for _, v := range list {
		ids = append(ids, v.ID)
	}
	require.Equal(t, []string{"v1a", "v1b", "v2"}, ids)

	empty, err := repo.ListByReportID(ctx, "rep-3")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestPaymentRecordMemoryRepository_ListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRecordMemoryRepository()
	now := time.Now().UTC()

	_, err := repo.Create(ctx, entities.PaymentRecord{ID: "p2", ReportID: "rep-1", Date: now.Add(time.Minute)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.PaymentRecord{ID: "p1", ReportID: "rep-1", Date: now})
	require.NoError(t, err)

	list, err := repo.ListByReportID(ctx, "rep-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "p1", list[0].ID)
	require.Equal(t, "p2", list[1].ID)
}
