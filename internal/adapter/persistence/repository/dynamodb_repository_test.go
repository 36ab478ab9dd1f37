package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"crane_fmv/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items per table keyed by id and understands the handful of
// condition expressions the repositories use. Query returns pages of pageSize.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	queries  int
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := f.table(aws.ToString(in.TableName))
	id := stringAttr(in.Item, "id")
	existing, exists := t[id]

	cond := aws.ToString(in.ConditionExpression)
	failed := false
	switch {
	case cond == "":
	case cond == "attribute_not_exists(#id)":
		failed = exists
	case strings.HasPrefix(cond, "attribute_exists(#id) AND #status = :expected"):
		expected := stringAttr(in.ExpressionAttributeValues, ":expected")
		failed = !exists || stringAttr(existing, "status") != expected
	default:
		return nil, fmt.Errorf("unsupported condition %q", cond)
	}
	if failed {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.table(aws.ToString(in.TableName))[stringAttr(in.Key, "id")]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries++

	rid := stringAttr(in.ExpressionAttributeValues, ":rid")
	var ids []string
	for id, item := range f.table(aws.ToString(in.TableName)) {
		if stringAttr(item, "report_id") == rid {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := stringAttr(in.ExclusiveStartKey, "id")
		start = sort.SearchStrings(ids, after) + 1
	}
	end := start + f.pageSize
	if end > len(ids) {
		end = len(ids)
	}

	out := &dynamodb.QueryOutput{}
	t := f.table(aws.ToString(in.TableName))
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, t[id])
	}
	if end < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: ids[end-1]},
		}
	}
	return out, nil
}

func sampleAsset() entities.AssetDescriptor {
	return entities.AssetDescriptor{
		Manufacturer: "Liebherr",
		Model:        "LTM 1100-4.2",
		Year:         2015,
		CapacityTons: 100,
		Hours:        12000,
		Condition:    entities.ConditionGood,
		Location:     "US-TX",
		SerialNumber: "SN-0001",
	}
}

func sampleResult(reportID string, revision, position int) entities.ValuationResult {
	return entities.ValuationResult{
		ID:               fmt.Sprintf("val-r%d-p%d", revision, position),
		ReportID:         reportID,
		AssetPosition:    position,
		AssetFingerprint: sampleAsset().Fingerprint(),
		Asset:            sampleAsset(),
		Tier:             entities.ReportTypeProfessional,
		Revision:         revision,
		EstimatedValue:   decimal.RequireFromString("412345.67"),
		Band: entities.ConfidenceBand{
			Low:  decimal.RequireFromString("379357.01"),
			High: decimal.RequireFromString("445333.33"),
		},
		MarketSnapshot: "mkt-2026-10",
		ComputedAt:     time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReportDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewReportDynamoRepository(newFakeDynamo(), "reports")

	created := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	paid := created.Add(time.Hour)
	rep := entities.Report{
		ID:                   "rep-1",
		Type:                 entities.ReportTypeProfessional,
		Price:                decimal.RequireFromString("995.00"),
		Status:               entities.ReportStatusPaid,
		Owner:                "acct-1",
		Assets:               []entities.AssetDescriptor{sampleAsset()},
		Results:              []entities.ValuationResult{sampleResult("rep-1", 1, 1)},
		ValuationRevision:    1,
		PaymentReceipt:       "rcpt-1",
		PaymentTransactionID: "tx-1",
		Artifact: &entities.ArtifactHandle{
			Key:         "reports/rep-1/abc.html",
			ContentType: "text/html; charset=utf-8",
			SHA256:      "abc",
			Size:        1024,
		},
		CreatedAt: created,
		UpdatedAt: paid,
		PaidAt:    &paid,
	}

	_, err := repo.Create(ctx, rep)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "rep-1")
	require.NoError(t, err)
	require.Equal(t, rep.ID, got.ID)
	require.Equal(t, rep.Type, got.Type)
	require.True(t, rep.Price.Equal(got.Price))
	require.Equal(t, rep.Status, got.Status)
	require.Equal(t, rep.Assets, got.Assets)
	require.Len(t, got.Results, 1)
	require.True(t, rep.Results[0].EstimatedValue.Equal(got.Results[0].EstimatedValue))
	require.True(t, rep.Results[0].Band.Low.Equal(got.Results[0].Band.Low))
	require.Equal(t, rep.Results[0].ComputedAt, got.Results[0].ComputedAt)
	require.Equal(t, rep.Artifact, got.Artifact)
	require.Equal(t, "tx-1", got.PaymentTransactionID)
	require.NotNil(t, got.PaidAt)
	require.True(t, paid.Equal(*got.PaidAt))
	require.Nil(t, got.DeletedAt)
	require.True(t, created.Equal(got.CreatedAt))
}

func TestReportDynamoRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewReportDynamoRepository(newFakeDynamo(), "reports")
	rep := entities.Report{ID: "rep-1", Status: entities.ReportStatusDraft, Price: decimal.NewFromInt(250)}

	_, err := repo.Create(ctx, rep)
	require.NoError(t, err)
	_, err = repo.Create(ctx, rep)
	require.ErrorIs(t, err, ErrReportAlreadyExists)
}

func TestReportDynamoRepository_GetMissing(t *testing.T) {
	repo := NewReportDynamoRepository(newFakeDynamo(), "reports")
	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	require.Empty(t, got.ID)
}

func TestReportDynamoRepository_SaveIsCompareAndSet(t *testing.T) {
	ctx := context.Background()
	repo := NewReportDynamoRepository(newFakeDynamo(), "reports")
	rep := entities.Report{ID: "rep-1", Status: entities.ReportStatusGenerated, Price: decimal.NewFromInt(250)}
	_, err := repo.Create(ctx, rep)
	require.NoError(t, err)

	delivered := rep
	delivered.Status = entities.ReportStatusDelivered
	saved, err := repo.Save(ctx, delivered, entities.ReportStatusGenerated)
	require.NoError(t, err)
	require.Equal(t, "rep-1", saved.ID)

	deleted := rep
	deleted.Status = entities.ReportStatusDeleted
	saved, err = repo.Save(ctx, deleted, entities.ReportStatusGenerated)
	require.NoError(t, err)
	require.Empty(t, saved.ID, "stale expected status must not overwrite")

	got, err := repo.GetByID(ctx, "rep-1")
	require.NoError(t, err)
	require.Equal(t, entities.ReportStatusDelivered, got.Status)

	saved, err = repo.Save(ctx, entities.Report{ID: "ghost", Status: entities.ReportStatusPaid}, entities.ReportStatusDraft)
	require.NoError(t, err)
	require.Empty(t, saved.ID)
}

func TestValuationDynamoRepository_AppendAndList(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewValuationDynamoRepository(ddb, "valuations")

	require.NoError(t, repo.Append(ctx, []entities.ValuationResult{
		sampleResult("rep-1", 2, 2),
		sampleResult("rep-1", 2, 1),
		sampleResult("rep-1", 1, 2),
		sampleResult("rep-1", 1, 1),
		sampleResult("rep-2", 1, 1),
	}))
	// Replays do not fail and do not duplicate.
	require.NoError(t, repo.Append(ctx, []entities.ValuationResult{sampleResult("rep-1", 1, 1)}))

	got, err := repo.ListByReportID(ctx, "rep-1")
	require.NoError(t, err)
	require.Len(t, got, 4)
	order := make([]string, 0, len(got))
	for _, v := range got {
		order = append(order, v.ID)
	}
	require.Equal(t, []string{"val-r1-p1", "val-r1-p2", "val-r2-p1", "val-r2-p2"}, order)
	require.Greater(t, ddb.queries, 1, "expected a paginated query")

	none, err := repo.ListByReportID(ctx, "rep-3")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPaymentRecordDynamoRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewPaymentRecordDynamoRepository(newFakeDynamo(), "payments")
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	rejected := entities.PaymentRecord{
		ID:       "pay-b",
		ReportID: "rep-1",
		Receipt:  "reject-1",
		Outcome:  entities.PaymentOutcomeRejected,
		Reason:   "insufficient funds",
		Amount:   decimal.NewFromInt(250),
		Date:     base,
	}
	approved := entities.PaymentRecord{
		ID:                 "pay-a",
		ReportID:           "rep-1",
		Receipt:            "rcpt-1",
		TransactionID:      "tx-1",
		Outcome:            entities.PaymentOutcomeApproved,
		Amount:             decimal.NewFromInt(250),
		Date:               base.Add(time.Minute),
		ProviderPayloadRaw: json.RawMessage(`{"id":123,"status":"approved"}`),
	}
	for _, p := range []entities.PaymentRecord{approved, rejected} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	got, err := repo.ListByReportID(ctx, "rep-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "pay-b", got[0].ID)
	require.Equal(t, "pay-a", got[1].ID)
	require.Equal(t, entities.PaymentOutcomeApproved, got[1].Outcome)
	require.JSONEq(t, `{"id":123,"status":"approved"}`, string(got[1].ProviderPayloadRaw))
	require.Nil(t, got[0].ProviderPayloadRaw)
	require.True(t, got[1].Amount.Equal(decimal.NewFromInt(250)))
}
