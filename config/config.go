package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// AI Health Assistant specifics
	OpenAI  OpenAIConfig
	Google  GoogleConfig
	Session SessionConfig
	Chat    ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenAIConfig configures the completion relay's upstream client.
// APIKey absence is not fatal at startup: the relay reports it per
// request instead.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type SessionConfig struct {
	TTL          time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
	Redirect     string
}

type ChatConfig struct {
	ConversationTTL time.Duration
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI relay
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Timeout = viper.GetDuration("openai.timeout")
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}

	// Google sign-in
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieDomain = viper.GetString("session.cookie_domain")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")
	cfg.Session.Redirect = viper.GetString("session.redirect")

	// Chat
	cfg.Chat.ConversationTTL = viper.GetDuration("chat.conversation_ttl")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("openai.model", "gpt-3.5-turbo")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.timeout", "30s")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.cookie_name", "aha_session")
	viper.SetDefault("session.cookie_secure", false)
	viper.SetDefault("session.redirect", "/")
	viper.SetDefault("chat.conversation_ttl", "1h")
	viper.SetDefault("chat.rate_limit_per_min", 20)
}
