package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"

	defaultStravaAPIBaseURL     = "https://www.strava.com/api/v3"
	defaultStravaAuthURL        = "https://www.strava.com/oauth/authorize"
	defaultStravaTokenURL       = "https://www.strava.com/api/v3/oauth/token"
	defaultStravaScope          = "read,activity:read_all"
	defaultStravaRequestTimeout = 10 * time.Second
	defaultStravaMaxAttempts    = 3
	defaultStravaRetryBackoff   = 250 * time.Millisecond
	defaultOAuthStateTTL        = 10 * time.Minute
	defaultSessionTTL           = 7 * 24 * time.Hour
	defaultMetricsPath          = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Session    string        `json:"session" yaml:"session"`
		SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
	} `json:"secretKey" yaml:"secretKey"`

	// Strava API application and client settings
	Strava *StravaConfig `json:"strava" yaml:"strava"`

	// PubSub configuration for activity events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StravaConfig defines the Strava application credentials and outbound call limits
type StravaConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURL  string `json:"redirectUrl" yaml:"redirectUrl"`

	// Optional JSON file holding client_id and client_secret, used when the values above are empty
	KeyFile string `json:"keyFile" yaml:"keyFile"`

	BaseURL  string `json:"baseUrl" yaml:"baseUrl"`
	AuthURL  string `json:"authUrl" yaml:"authUrl"`
	TokenURL string `json:"tokenUrl" yaml:"tokenUrl"`
	Scope    string `json:"scope" yaml:"scope"`

	// Deadline applied to every outbound request
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Attempts for transient failures (timeouts, 429, 5xx), including the first one
	MaxAttempts  int           `json:"maxAttempts" yaml:"maxAttempts"`
	RetryBackoff time.Duration `json:"retryBackoff" yaml:"retryBackoff"`

	// Lifetime of the OAuth state issued by the connect endpoint
	StateTTL time.Duration `json:"stateTTL" yaml:"stateTTL"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig controls the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.SecretKey.SessionTTL <= 0 {
		cfg.SecretKey.SessionTTL = defaultSessionTTL
	}

	if cfg.Strava == nil {
		cfg.Strava = &StravaConfig{}
	}
	if err := cfg.Strava.applyDefaults(); err != nil {
		return err
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	return nil
}

func (s *StravaConfig) applyDefaults() error {
	if s.BaseURL == "" {
		s.BaseURL = defaultStravaAPIBaseURL
	}
	if s.AuthURL == "" {
		s.AuthURL = defaultStravaAuthURL
	}
	if s.TokenURL == "" {
		s.TokenURL = defaultStravaTokenURL
	}
	if s.Scope == "" {
		s.Scope = defaultStravaScope
	}
	if s.RequestTimeout <= 0 {
		s.RequestTimeout = defaultStravaRequestTimeout
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = defaultStravaMaxAttempts
	}
	if s.RetryBackoff <= 0 {
		s.RetryBackoff = defaultStravaRetryBackoff
	}
	if s.StateTTL <= 0 {
		s.StateTTL = defaultOAuthStateTTL
	}

	if s.KeyFile != "" && (s.ClientID == "" || s.ClientSecret == "") {
		if err := s.loadKeyFile(); err != nil {
			return err
		}
	}

	return nil
}

// loadKeyFile reads {"client_id": ..., "client_secret": ...}. JSON is a subset of YAML,
// so the yaml parser handles it.
func (s *StravaConfig) loadKeyFile() error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(s.KeyFile), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "read strava key file %s failed", s.KeyFile)
	}

	if s.ClientID == "" {
		s.ClientID = k.String("client_id")
	}
	if s.ClientSecret == "" {
		s.ClientSecret = k.String("client_secret")
	}

	if s.ClientID == "" || s.ClientSecret == "" {
		return errors.Errorf("strava key file %s must contain client_id and client_secret", s.KeyFile)
	}

	return nil
}
