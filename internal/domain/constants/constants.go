// Package constants collects string values shared between config and infrastructure.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used for production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal pushes events to a local HTTP endpoint in the Pub/Sub push format.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderKafka publishes events to a Kafka topic.
	PubSubProviderKafka = "kafka"
)

const (
	// PersistenceMemory keeps every aggregate in process memory.
	PersistenceMemory = "memory"
	// PersistencePostgres stores aggregates in PostgreSQL through GORM.
	PersistencePostgres = "postgres"
)

const (
	// IDModeDerived computes ids from the natural key (uuid v5).
	IDModeDerived = "derived"
	// IDModeRandom generates random surrogate ids (uuid v4).
	IDModeRandom = "random"
)
