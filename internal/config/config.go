package config

import (
	"time"

	"github.com/padsala/padsala-api/internal/domain"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Planner  PlannerConfig  `mapstructure:"planner"  validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gtfield=TokenLifetimeMinutes"`
	BCryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"required,min=4,max=31"`
}

// PlannerConfig holds the scheduler's operating zone, limits and the knobs
// applied when a request leaves them out.
type PlannerConfig struct {
	UTCOffsetMinutes   int    `mapstructure:"utc_offset_minutes"   validate:"min=-720,max=840"`
	MaxHorizonDays     int    `mapstructure:"max_horizon_days"     validate:"required,gt=0"`
	DefaultDailyHours  int    `mapstructure:"default_daily_hours"  validate:"min=0,max=24"`
	DefaultSessionMins int    `mapstructure:"default_session_mins" validate:"required,gt=0"`
	DefaultBreakMins   int    `mapstructure:"default_break_mins"   validate:"min=0"`
	DefaultStartTime   string `mapstructure:"default_start_time"   validate:"required,datetime=15:04"`
}

// Location returns the fixed zone "today" is computed in.
func (c PlannerConfig) Location() *time.Location {
	return time.FixedZone("planner", c.UTCOffsetMinutes*60)
}

// DefaultOptions returns the configured scheduling knobs.
func (c PlannerConfig) DefaultOptions() domain.PlanOptions {
	return domain.PlanOptions{
		DailyHours:  c.DefaultDailyHours,
		SessionMins: c.DefaultSessionMins,
		BreakMins:   c.DefaultBreakMins,
		StartTime:   c.DefaultStartTime,
	}
}

// Supported LLMConfig.Provider values.
const (
	LLMProviderNone      = "none"
	LLMProviderGemini    = "gemini"
	LLMProviderOpenAI    = "openai"
	LLMProviderAnthropic = "anthropic"
)

// LLMConfig selects the optional topic generator. A provider without an API
// key leaves generation disabled and the keyword fallback is used.
type LLMConfig struct {
	Provider        string `mapstructure:"provider"          validate:"oneof=none gemini openai anthropic"`
	GeminiAPIKey    string `mapstructure:"gemini_api_key"`
	OpenAIAPIKey    string `mapstructure:"openai_api_key"`
	OpenAIBaseURL   string `mapstructure:"openai_base_url"   validate:"omitempty,url"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	ModelName       string `mapstructure:"model_name"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"   validate:"gt=0"`
	MaxAttempts     int    `mapstructure:"max_attempts"      validate:"min=1,max=10"`
}

// APIKey returns the key of the selected provider.
func (c LLMConfig) APIKey() string {
	switch c.Provider {
	case LLMProviderGemini:
		return c.GeminiAPIKey
	case LLMProviderOpenAI:
		return c.OpenAIAPIKey
	case LLMProviderAnthropic:
		return c.AnthropicAPIKey
	default:
		return ""
	}
}

// Enabled reports whether the selected provider has an API key.
func (c LLMConfig) Enabled() bool {
	return c.APIKey() != ""
}

// Timeout returns the per-request timeout.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
