package config

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local" json:"-"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local" json:"-"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	ReportsTable    string `env:"REPORTS_TABLE" envDefault:"reports"`
	ValuationsTable string `env:"VALUATIONS_TABLE" envDefault:"valuations"`
	PaymentsTable   string `env:"PAYMENTS_TABLE" envDefault:"payments"`
}
