package config

import (
	"encoding/json"
	"os"

	"github.com/burgerlab/backend/internal/flagx"
	"github.com/burgerlab/backend/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. It uses timex.Duration
// for lifetime fields, which parses both string values such as "24h" and
// integer nanoseconds. After unmarshalling, its fields are copied into the
// runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP     string         `json:"endpoint_addr_http"`
	DatabaseDSN          string         `json:"database_dsn"`
	SecretKey            string         `json:"secret_key"`
	SessionTokenValidity timex.Duration `json:"session_token_validity"`
	ResetTokenValidity   timex.Duration `json:"reset_token_validity"`
	PasswordMinLength    int            `json:"password_min_length"`
	SMTPHost             string         `json:"smtp_host"`
	SMTPPort             int            `json:"smtp_port"`
	SMTPUser             string         `json:"smtp_user"`
	SMTPPassword         string         `json:"smtp_password"`
	SMTPFrom             string         `json:"smtp_from"`
	AuthRatePerMinute    int            `json:"auth_rate_per_minute"`
}

// parseJson loads configuration values from the JSON file given via the
// -c/-config flags into the provided Config. When no file is given, the
// Config is left untouched. An unreadable or invalid file panics: the server
// must not start on a half-applied configuration.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.SessionTokenValidity = c.SessionTokenValidity.Duration
	config.ResetTokenValidity = c.ResetTokenValidity.Duration
	config.PasswordMinLength = c.PasswordMinLength
	config.SMTPHost = c.SMTPHost
	config.SMTPPort = c.SMTPPort
	config.SMTPUser = c.SMTPUser
	config.SMTPPassword = c.SMTPPassword
	config.SMTPFrom = c.SMTPFrom
	config.AuthRatePerMinute = c.AuthRatePerMinute
}
