package database

import (
	"context"
	"errors"
	"fmt"

	appconfig "crane_fmv/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const reportIDIndex = "report_id-index"

// ConnectDynamoDB creates a DynamoDB client from the storage settings.
//
// DynamoDBEndpoint is optional; set it (e.g. http://dynamodb:8000) to talk to
// DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.Storage) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}

	var opts []func(*dynamodb.Options)
	if cfg.DynamoDBEndpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		})
	}
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg appconfig.Storage) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(creds),
	)
}

// TableCreator is the subset of *dynamodb.Client needed by EnsureTables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates the reports, valuations and payments tables when they
// are missing. It is meant for DynamoDB Local; production tables are
// provisioned out of band.
func EnsureTables(ctx context.Context, ddb TableCreator, cfg appconfig.Storage) error {
	if err := createTable(ctx, ddb, cfg.ReportsTable, false); err != nil {
		return err
	}
	if err := createTable(ctx, ddb, cfg.ValuationsTable, true); err != nil {
		return err
	}
	return createTable(ctx, ddb, cfg.PaymentsTable, true)
}

func createTable(ctx context.Context, ddb TableCreator, name string, byReport bool) error {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	if byReport {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String("report_id"), AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName: aws.String(reportIDIndex),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("report_id"), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}

	_, err := ddb.CreateTable(ctx, in)
	var inUse *types.ResourceInUseException
	if err != nil && !errors.As(err, &inUse) {
		return fmt.Errorf("create table %s: %w", name, err)
	}
	return nil
}
