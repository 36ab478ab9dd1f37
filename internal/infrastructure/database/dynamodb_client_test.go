package database

import (
	"context"
	"errors"
	"testing"

	appconfig "crane_fmv/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

type fakeTableCreator struct {
	created map[string]*dynamodb.CreateTableInput
	err     error
}

func (f *fakeTableCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	name := aws.ToString(in.TableName)
	if _, ok := f.created[name]; ok {
		return nil, &types.ResourceInUseException{Message: aws.String("table exists")}
	}
	if f.err != nil {
		return nil, f.err
	}
	f.created[name] = in
	return &dynamodb.CreateTableOutput{}, nil
}

func storageConfig() appconfig.Storage {
	return appconfig.Storage{
		AWSRegion:          "us-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		ReportsTable:       "reports",
		ValuationsTable:    "valuations",
		PaymentsTable:      "payments",
	}
}

func TestEnsureTables(t *testing.T) {
	ctx := context.Background()
	fake := &fakeTableCreator{created: map[string]*dynamodb.CreateTableInput{}}

	require.NoError(t, EnsureTables(ctx, fake, storageConfig()))
	require.Len(t, fake.created, 3)
	require.Empty(t, fake.created["reports"].GlobalSecondaryIndexes)
	require.Equal(t, reportIDIndex, aws.ToString(fake.created["valuations"].GlobalSecondaryIndexes[0].IndexName))
	require.Equal(t, reportIDIndex, aws.ToString(fake.created["payments"].GlobalSecondaryIndexes[0].IndexName))

	// Existing tables are left alone.
	require.NoError(t, EnsureTables(ctx, fake, storageConfig()))
}

func TestEnsureTables_Error(t *testing.T) {
	fake := &fakeTableCreator{created: map[string]*dynamodb.CreateTableInput{}, err: errors.New("boom")}
	err := EnsureTables(context.Background(), fake, storageConfig())
	require.ErrorContains(t, err, "create table reports")
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg := storageConfig()
	cfg.AWSRegion = "sa-east-1"
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	require.NoError(t, err)
	require.Equal(t, "sa-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "local", creds.AccessKeyID)
}
