package config

import (
	"encoding/json"
	"os"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/flagx"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/timex"
)

// JsonConfig is a DTO used only for unmarshalling. TransferTimeout relies on
// timex.Duration so it may be written as "30s" or as integer nanoseconds.
type JsonConfig struct {
	BackendURL      string         `json:"backend_url"`
	CallbackAddr    string         `json:"callback_addr"`
	DatabasePath    string         `json:"database_path"`
	AppID           string         `json:"app_id"`
	IdentityToken   string         `json:"identity_token"`
	IdentitySecret  string         `json:"identity_secret"`
	TransferMode    string         `json:"transfer_mode"`
	TransferTimeout timex.Duration `json:"transfer_timeout"`
	S3              struct {
		Bucket       string `json:"bucket"`
		Region       string `json:"region"`
		BaseEndpoint string `json:"base_endpoint"`
		AccessKey    string `json:"access_key"`
		SecretKey    string `json:"secret_key"`
	} `json:"s3"`
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. Keys that are
// absent or empty leave the current value in place. Read and decode errors
// panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.BackendURL, jc.BackendURL)
	setString(&cfg.CallbackAddr, jc.CallbackAddr)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.AppID, jc.AppID)
	setString(&cfg.IdentityToken, jc.IdentityToken)
	setString(&cfg.IdentitySecret, jc.IdentitySecret)
	setString(&cfg.TransferMode, jc.TransferMode)
	if jc.TransferTimeout.Duration > 0 {
		cfg.TransferTimeout = jc.TransferTimeout.Duration
	}
	setString(&cfg.S3Bucket, jc.S3.Bucket)
	setString(&cfg.S3Region, jc.S3.Region)
	setString(&cfg.S3BaseEndpoint, jc.S3.BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3.AccessKey)
	setString(&cfg.S3SecretKey, jc.S3.SecretKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
