package repository

import (
	"context"
	"encoding/json"
	"sort"

	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentRecordItem struct {
	ID                 string `dynamodbav:"id"`
	ReportID           string `dynamodbav:"report_id"`
	Receipt            string `dynamodbav:"receipt"`
	TransactionID      string `dynamodbav:"transaction_id,omitempty"`
	Outcome            string `dynamodbav:"outcome"`
	Reason             string `dynamodbav:"reason,omitempty"`
	Amount             string `dynamodbav:"amount"`
	Date               string `dynamodbav:"date"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentRecordDynamoRepository persists payment gate outcomes.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: report_id-index (PK: report_id)
type PaymentRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoAPI, tableName string) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
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
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) ListByReportID(ctx context.Context, reportID string) ([]entities.PaymentRecord, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(reportIDIndex),
		KeyConditionExpression: aws.String("report_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: reportID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.PaymentRecord, 0, len(raw))
	for _, item := range raw {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromPaymentRecordItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                 p.ID,
		ReportID:           p.ReportID,
		Receipt:            p.Receipt,
		TransactionID:      p.TransactionID,
		Outcome:            string(p.Outcome),
		Reason:             p.Reason,
		Amount:             p.Amount.String(),
		Date:               formatTime(p.Date),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	p := entities.PaymentRecord{
		ID:            it.ID,
		ReportID:      it.ReportID,
		Receipt:       it.Receipt,
		TransactionID: it.TransactionID,
		Outcome:       entities.PaymentOutcome(it.Outcome),
		Reason:        it.Reason,
		Amount:        parseDecimal(it.Amount),
		Date:          parseTime(it.Date),
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}
