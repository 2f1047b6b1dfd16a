// Package constants contains values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Persistence drivers
const (
	PersistenceDriverPostgres = "postgres"
	PersistenceDriverMongo    = "mongo"
	PersistenceDriverMemory   = "memory"
)

// Storage drivers
const (
	StorageDriverFile = "file"
	StorageDriverMem  = "mem"
	StorageDriverS3   = "s3"
)

// Request headers
const (
	HeaderXToken = "X-Token"
)
