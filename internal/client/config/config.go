package config

import "time"

// Transfer modes accepted in Config.TransferMode.
const (
	TransferModeHTTP = "http"
	TransferModeS3   = "s3"
)

// Config holds runtime settings for the uploader CLI.
//
// TransferTimeout bounds a single transfer request; zero leaves requests
// unbounded and relies on the backend to answer.
type Config struct {
	BackendURL   string
	CallbackAddr string
	DatabasePath string

	AppID          string
	IdentityToken  string
	IdentitySecret string

	TransferMode    string
	TransferTimeout time.Duration

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with the values used when nothing else is given.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://localhost:5000"
	c.CallbackAddr = "127.0.0.1:3000"
	c.DatabasePath = "session.db"
	c.AppID = "default-app-id"
	c.TransferMode = TransferModeHTTP
	c.TransferTimeout = 0
	c.S3Region = "us-east-1"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
