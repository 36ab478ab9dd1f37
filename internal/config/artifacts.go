package config

import "time"

const (
	ArtifactStoreMinio  = "minio"
	ArtifactStoreMemory = "memory"
)

type Artifacts struct {
	Store  string        `env:"ARTIFACT_STORE" envDefault:"minio"`
	URLTTL time.Duration `env:"ARTIFACT_URL_TTL" envDefault:"15m"`

	MinioEndpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY" json:"-"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY" json:"-"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioRegion    string `env:"MINIO_REGION"`
	MinioBucket    string `env:"MINIO_BUCKET_ARTIFACTS" envDefault:"crane-fmv-artifacts"`
}
