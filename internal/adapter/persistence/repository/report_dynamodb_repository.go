package repository

import (
	"context"

	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type reportItem struct {
	ID                string          `dynamodbav:"id"`
	Type              string          `dynamodbav:"type"`
	Price             string          `dynamodbav:"price"`
	Status            string          `dynamodbav:"status"`
	Owner             string          `dynamodbav:"owner"`
	Assets            []assetItem     `dynamodbav:"assets,omitempty"`
	Results           []valuationItem `dynamodbav:"results,omitempty"`
	ValuationRevision int             `dynamodbav:"valuation_revision"`

	PaymentReceipt       string `dynamodbav:"payment_receipt,omitempty"`
	PaymentTransactionID string `dynamodbav:"payment_transaction_id,omitempty"`
	RefundRequested      bool   `dynamodbav:"refund_requested"`

	Artifact *artifactItem `dynamodbav:"artifact,omitempty"`

	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	PaymentRequestedAt string `dynamodbav:"payment_requested_at,omitempty"`
	PaidAt             string `dynamodbav:"paid_at,omitempty"`
	GeneratedAt        string `dynamodbav:"generated_at,omitempty"`
	DeliveredAt        string `dynamodbav:"delivered_at,omitempty"`
	DeletedAt          string `dynamodbav:"deleted_at,omitempty"`
}

// ReportDynamoRepository persists Report entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Save writes the whole item conditioned on the stored status, which keeps
// two processes from both performing the same transition.
type ReportDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IReportRepository = (*ReportDynamoRepository)(nil)

func NewReportDynamoRepository(ddb DynamoAPI, tableName string) *ReportDynamoRepository {
	return &ReportDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReportDynamoRepository) Create(ctx context.Context, rep entities.Report) (entities.Report, error) {
	av, err := attributevalue.MarshalMap(toReportItem(rep))
	if err != nil {
		return entities.Report{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Report{}, ErrReportAlreadyExists
		}
		return entities.Report{}, err
	}
	return rep, nil
}

func (r *ReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Report{}, err
	}
	if len(out.Item) == 0 {
		return entities.Report{}, nil
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Report{}, err
	}
	return fromReportItem(it), nil
}

func (r *ReportDynamoRepository) Save(ctx context.Context, rep entities.Report, expected entities.ReportStatus) (entities.Report, error) {
	av, err := attributevalue.MarshalMap(toReportItem(rep))
	if err != nil {
		return entities.Report{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Report{}, nil
		}
		return entities.Report{}, err
	}
	return rep, nil
}

func toReportItem(r entities.Report) reportItem {
	it := reportItem{
		ID:                   r.ID,
		Type:                 string(r.Type),
		Price:                r.Price.String(),
		Status:               string(r.Status),
		Owner:                r.Owner,
		ValuationRevision:    r.ValuationRevision,
		PaymentReceipt:       r.PaymentReceipt,
		PaymentTransactionID: r.PaymentTransactionID,
		RefundRequested:      r.RefundRequested,
		CreatedAt:            formatTime(r.CreatedAt),
		UpdatedAt:            formatTime(r.UpdatedAt),
		PaymentRequestedAt:   formatOptionalTime(r.PaymentRequestedAt),
		PaidAt:               formatOptionalTime(r.PaidAt),
		GeneratedAt:          formatOptionalTime(r.GeneratedAt),
		DeliveredAt:          formatOptionalTime(r.DeliveredAt),
		DeletedAt:            formatOptionalTime(r.DeletedAt),
	}
	for _, a := range r.Assets {
		it.Assets = append(it.Assets, toAssetItem(a))
	}
	for _, v := range r.Results {
		it.Results = append(it.Results, toValuationItem(v))
	}
	if r.Artifact != nil {
		it.Artifact = &artifactItem{
			Key:         r.Artifact.Key,
			ContentType: r.Artifact.ContentType,
			SHA256:      r.Artifact.SHA256,
			Size:        r.Artifact.Size,
		}
	}
	return it
}

func fromReportItem(it reportItem) entities.Report {
	r := entities.Report{
		ID:                   it.ID,
		Type:                 entities.ReportType(it.Type),
		Price:                parseDecimal(it.Price),
		Status:               entities.ReportStatus(it.Status),
		Owner:                it.Owner,
		ValuationRevision:    it.ValuationRevision,
		PaymentReceipt:       it.PaymentReceipt,
		PaymentTransactionID: it.PaymentTransactionID,
		RefundRequested:      it.RefundRequested,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
		PaymentRequestedAt:   parseOptionalTime(it.PaymentRequestedAt),
		PaidAt:               parseOptionalTime(it.PaidAt),
		GeneratedAt:          parseOptionalTime(it.GeneratedAt),
		DeliveredAt:          parseOptionalTime(it.DeliveredAt),
		DeletedAt:            parseOptionalTime(it.DeletedAt),
	}
	for _, a := range it.Assets {
		r.Assets = append(r.Assets, fromAssetItem(a))
	}
	for _, v := range it.Results {
		r.Results = append(r.Results, fromValuationItem(v))
	}
	if it.Artifact != nil {
		r.Artifact = &entities.ArtifactHandle{
			Key:         it.Artifact.Key,
			ContentType: it.Artifact.ContentType,
			SHA256:      it.Artifact.SHA256,
			Size:        it.Artifact.Size,
		}
	}
	return r
}
