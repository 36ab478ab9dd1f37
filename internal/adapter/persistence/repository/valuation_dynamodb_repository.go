package repository

import (
	"context"
	"sort"

	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ValuationDynamoRepository keeps the valuation history.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: report_id-index (PK: report_id)
type ValuationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IValuationRepository = (*ValuationDynamoRepository)(nil)

func NewValuationDynamoRepository(ddb DynamoAPI, tableName string) *ValuationDynamoRepository {
	return &ValuationDynamoRepository{ddb: ddb, tableName: tableName}
}

// Append writes each result once; an id already present is left untouched.
func (r *ValuationDynamoRepository) Append(ctx context.Context, results []entities.ValuationResult) error {
	for _, res := range results {
		av, err := attributevalue.MarshalMap(toValuationItem(res))
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil && !isConditionalCheckFailed(err) {
			return err
		}
	}
	return nil
}

func (r *ValuationDynamoRepository) ListByReportID(ctx context.Context, reportID string) ([]entities.ValuationResult, error) {
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

	out := make([]entities.ValuationResult, 0, len(raw))
	for _, item := range raw {
		var it valuationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromValuationItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Revision != out[j].Revision {
			return out[i].Revision < out[j].Revision
		}
		return out[i].AssetPosition < out[j].AssetPosition
	})
	return out, nil
}
