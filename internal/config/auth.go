package config

// Auth holds the shared secret gating the /api subtree. An empty APIKey means
// the service is misconfigured: every authenticated request is rejected.
type Auth struct {
	APIKey string `env:"API_KEY"`
}
