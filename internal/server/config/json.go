package config

import (
	"encoding/json"
	"os"

	"github.com/gamezone/gamezone/internal/flagx"
	"github.com/gamezone/gamezone/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields mark
// optional values: only keys present in the file override the current Config.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	RedisURL                    *string         `json:"redis_url"`
	SessionTTL                  *timex.Duration `json:"session_ttl"`
	MetricsAddr                 *string         `json:"metrics_addr"`
	PageSize                    *int            `json:"page_size"`
	BcryptCost                  *int            `json:"bcrypt_cost"`
	SingleSession               *bool           `json:"single_session"`
	LogFormat                   *string         `json:"log_format"`
}

// parseJson overlays values from the JSON file named by -c/-config.
// Without the flag nothing is loaded; an unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.RedisURL, c.RedisURL)
	setIf(&config.MetricsAddr, c.MetricsAddr)
	setIf(&config.PageSize, c.PageSize)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.SingleSession, c.SingleSession)
	setIf(&config.LogFormat, c.LogFormat)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
