package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the request-scoped identity resolved by the host
// application. Authorization decisions belong to the host; this service
// only attributes records to the user.
type Scope struct {
	UserID      string
	DisplayName string
}
