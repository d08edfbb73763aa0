// Package config loads runtime configuration for the uploader CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b string   backend base URL (default http://localhost:5000)
//	-l string   listen address of the authorization callback (default 127.0.0.1:3000)
//	-d string   local session database path (default session.db)
//	-n string   application id (default default-app-id)
//	-k string   custom identity token
//	-m string   transfer mode: http | s3
//	-t int      transfer timeout in seconds, 0 disables it
//	-v string   log level
//
// # JSON schema
//
//	{
//	  "backend_url": "http://localhost:5000",
//	  "callback_addr": "127.0.0.1:3000",
//	  "database_path": "session.db",
//	  "app_id": "default-app-id",
//	  "identity_token": "",
//	  "identity_secret": "",
//	  "transfer_mode": "http",
//	  "transfer_timeout": "30s",
//	  "s3": {"bucket": "", "region": "us-east-1", "base_endpoint": "", "access_key": "", "secret_key": ""},
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// The identity secret and the S3 settings are only read from the JSON file.
package config
