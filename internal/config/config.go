package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	TLSCertFile     string
	TLSKeyFile      string
	CORSOrigins     []string
	KiwiURL         string
	KiwiAPIKey      string
	ProviderTimeout time.Duration
	StreamInterval  time.Duration
	CatalogFile     string
	CatalogDSN      string
}

// Load reads defaults, an optional config file and the environment, in that
// order of increasing precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":3001")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("kiwi_url", "https://api.tequila.kiwi.com")
	v.SetDefault("provider_timeout", "10s")
	v.SetDefault("stream_interval", "30s")

	if path := os.Getenv("HUBFARE_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/hubfare")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	to, err := time.ParseDuration(v.GetString("provider_timeout"))
	if err != nil {
		return nil, fmt.Errorf("bad provider_timeout: %w", err)
	}
	si, err := time.ParseDuration(v.GetString("stream_interval"))
	if err != nil {
		return nil, fmt.Errorf("bad stream_interval: %w", err)
	}

	return &Config{
		Addr:            v.GetString("addr"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		TLSCertFile:     os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:      os.Getenv("TLS_KEY_FILE"),
		CORSOrigins:     splitOrigins(v.GetString("cors_origins")),
		KiwiURL:         v.GetString("kiwi_url"),
		KiwiAPIKey:      v.GetString("kiwi_api_key"),
		ProviderTimeout: to,
		StreamInterval:  si,
		CatalogFile:     v.GetString("catalog_file"),
		CatalogDSN:      v.GetString("catalog_dsn"),
	}, nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
