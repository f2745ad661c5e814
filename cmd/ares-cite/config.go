package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/ares-cite/pkg/types"
)

// Configuration keys. Environment variables use the ARES_CITE_ prefix,
// e.g. ARES_CITE_BASE_URL.
const (
	keyBaseURL   = "base_url"
	keyTimeout   = "timeout"
	keyUserAgent = "user_agent"
	keyPad       = "pad"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "ares-cite/0.1"
)

func defaultBaseURL() string {
	return types.DefaultRegistryURL
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBaseURL, defaultBaseURL())
	v.SetDefault(keyTimeout, defaultTimeout)
	v.SetDefault(keyUserAgent, defaultUserAgent)
	v.SetDefault(keyPad, false)
}

// registryConfig resolves the client settings from flags, environment,
// config file and defaults, in viper's precedence order.
func registryConfig(v *viper.Viper) types.RegistryConfig {
	cfg := types.RegistryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration(keyTimeout),
			UserAgent: v.GetString(keyUserAgent),
		},
		BaseURL: v.GetString(keyBaseURL),
		Pad:     v.GetBool(keyPad),
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL()
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return cfg
}
