// Package config loads the application configuration from YAML with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	// Canteen holds the domain knobs: opening hours, pricing, and the
	// order lifecycle timings.
	Canteen *CanteenConfig `json:"canteen" yaml:"canteen"`

	// Storage selects and configures the key-value store backing the
	// profile, order and inquiry collections.
	Storage *StorageConfig `json:"storage" yaml:"storage"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CanteenConfig defines the canteen's operating window and pricing.
type CanteenConfig struct {
	// OpensAt and ClosesAt bound the daily operating window, "HH:MM" local time.
	OpensAt  string `json:"opensAt" yaml:"opensAt"`
	ClosesAt string `json:"closesAt" yaml:"closesAt"`

	// StatusPollInterval is how often the open/closed gate is re-evaluated.
	StatusPollInterval time.Duration `json:"statusPollInterval" yaml:"statusPollInterval"`

	// DiscountRate is the membership discount fraction applied while a
	// profile is present, e.g. 0.10.
	DiscountRate float64 `json:"discountRate" yaml:"discountRate"`

	// DeliveryFee is the flat surcharge for delivery orders.
	DeliveryFee float64 `json:"deliveryFee" yaml:"deliveryFee"`

	// AutoAdvanceDelay is how long after placement an order left in
	// "received" automatically moves to "preparing".
	AutoAdvanceDelay time.Duration `json:"autoAdvanceDelay" yaml:"autoAdvanceDelay"`

	// Preparation estimate: base minutes, plus PerLineMinutes for each
	// distinct cart line, plus DeliveryExtraMinutes for delivery orders.
	BasePrepMinutes      int `json:"basePrepMinutes" yaml:"basePrepMinutes"`
	PerLineMinutes       int `json:"perLineMinutes" yaml:"perLineMinutes"`
	DeliveryExtraMinutes int `json:"deliveryExtraMinutes" yaml:"deliveryExtraMinutes"`
}

// StorageConfig selects the key-value store provider.
type StorageConfig struct {
	// Provider is "file", "memory" or "redis".
	Provider string `json:"provider" yaml:"provider"`

	// Path is the directory backing the file provider.
	Path string `json:"path" yaml:"path"`

	// Redis configures the redis provider.
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the redis connection settings.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: CANTEEN_OPENSAT -> canteen.opensAt (not canteen.opensat)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Canteen == nil {
		cfg.Canteen = &CanteenConfig{}
	}

	canteen := cfg.Canteen
	if canteen.OpensAt == "" {
		canteen.OpensAt = "08:30"
	}
	if canteen.ClosesAt == "" {
		canteen.ClosesAt = "19:30"
	}
	if canteen.StatusPollInterval <= 0 {
		canteen.StatusPollInterval = time.Minute
	}
	if canteen.DiscountRate <= 0 {
		canteen.DiscountRate = 0.10
	}
	if canteen.DeliveryFee <= 0 {
		canteen.DeliveryFee = 20
	}
	if canteen.AutoAdvanceDelay <= 0 {
		canteen.AutoAdvanceDelay = 3 * time.Second
	}
	if canteen.BasePrepMinutes <= 0 {
		canteen.BasePrepMinutes = 5
	}
	if canteen.PerLineMinutes <= 0 {
		canteen.PerLineMinutes = 2
	}
	if canteen.DeliveryExtraMinutes <= 0 {
		canteen.DeliveryExtraMinutes = 10
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = "file"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "data"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
