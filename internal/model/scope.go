package model

// Scope identifies who issued a request. The planner has a single owner, so the
// scope only labels the channel for logs.
type Scope struct {
	UserID   string
	Username string
	Source   Source
}

// Source is the channel a request arrived through.
type Source string

const (
	SourceWeb       Source = "web"
	SourceTelegram  Source = "telegram"
	SourceRecurring Source = "recurring"
)

// Environment names used by config.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
