// Package config provides layered configuration loading for the key
// generator service: struct defaults overlaid with environment variables
// (prefix APIKEYGEN_), decoded and validated in one pass.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	vmapstructure "github.com/go-viper/mapstructure/v2"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/124-hue/APIkeygenerator/internal/domain"
	"github.com/124-hue/APIkeygenerator/internal/history"
)

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "APIKEYGEN_"

// Config holds the merged runtime configuration for the service.
// Precedence (lowest to highest): defaults, environment.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required,ip_port"`
	// HistoryCap bounds the recent-keys record.
	HistoryCap int `koanf:"history_cap" validate:"gte=1,lte=50"`
	// DefaultTier is the tier used when a request does not select one.
	DefaultTier domain.Tier `koanf:"default_tier" validate:"tier"`
}

// DefaultAppConfig is the baseline configuration before any overrides.
var DefaultAppConfig = Config{
	Addr:        ":8080",
	HistoryCap:  history.DefaultCap,
	DefaultTier: domain.TierStandard,
}

// Load merges defaults with APIKEYGEN_* environment variables, decodes
// the result, and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultAppConfig, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Config{}
	dc := &vmapstructure.DecoderConfig{
		DecodeHook:       StringToTier(),
		Result:           &cfg,
		WeaklyTypedInput: true,
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", DecoderConfig: dc}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate wires the custom rules and runs struct validation.
func validate(cfg *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("ip_port", validIPPort); err != nil {
		return fmt.Errorf("register ip_port validation: %w", err)
	}
	if err := v.RegisterValidation("tier", validTier); err != nil {
		return fmt.Errorf("register tier validation: %w", err)
	}
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// validIPPort accepts "host:port" where host is empty or a literal IP
// address and port is 1-65535. Hostnames are rejected to keep the listen
// address unambiguous.
func validIPPort(fl validator.FieldLevel) bool {
	host, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}
	if host != "" && net.ParseIP(host) == nil {
		return false
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return false
	}
	return true
}

// validTier accepts only the known tier selectors.
func validTier(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(domain.Tier)
	return ok && t.Valid()
}
