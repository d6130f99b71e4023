// Package constants holds values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for session events
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// HTTP headers
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)
