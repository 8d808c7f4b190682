// Package constants holds configuration values shared across layers.
package constants

// EnvProduction is the env.env value of production deployments.
const EnvProduction = "production"

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
