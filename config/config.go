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

	API struct {
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
		Timeouts struct {
			// Default applies to every endpoint except the auth ones.
			Default time.Duration `json:"default" yaml:"default"`
			// Auth applies to login and register, which sit behind the
			// gateway's slower fraud checks.
			Auth time.Duration `json:"auth" yaml:"auth"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"api" yaml:"api"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// QRCode configuration for PIX charge rendering
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Delivery configuration for the client-side ETA fallback
	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CheckoutConfig defines checkout-related configuration
type CheckoutConfig struct {
	// Fixed delivery fee in centavos, added to every non-empty cart.
	DeliveryFeeCents int64 `json:"deliveryFeeCents" yaml:"deliveryFeeCents"`
}

// StorageConfig defines local device storage configuration
type StorageConfig struct {
	// Directory holding the encrypted token store.
	Path string `json:"path" yaml:"path"`
	// DeviceSecret keys the at-rest encryption of stored tokens.
	DeviceSecret string `json:"deviceSecret" yaml:"deviceSecret"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// DeliveryConfig defines the client-side delivery estimate fallback,
// used when the delivery-time endpoint is unreachable.
type DeliveryConfig struct {
	// Average courier speed in km/h for the haversine fallback.
	FallbackSpeedKmh float64 `json:"fallbackSpeedKmh" yaml:"fallbackSpeedKmh"`
	// Fixed preparation time added on top of travel time.
	PreparationTime time.Duration `json:"preparationTime" yaml:"preparationTime"`
	// Store coordinates, the origin for the fallback distance.
	StoreLat float64 `json:"storeLat" yaml:"storeLat"`
	StoreLon float64 `json:"storeLon" yaml:"storeLon"`
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
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
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
	cfg.applyDefaults()

	if cfg.API.BaseURL == "" {
		return nil, errors.New("api.baseUrl must be configured")
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.API.Timeouts.Default <= 0 {
		cfg.API.Timeouts.Default = 10 * time.Second
	}
	if cfg.API.Timeouts.Auth <= 0 {
		cfg.API.Timeouts.Auth = 30 * time.Second
	}
	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{DeliveryFeeCents: 900}
	}
	if cfg.Delivery == nil {
		cfg.Delivery = &DeliveryConfig{
			FallbackSpeedKmh: 25,
			PreparationTime:  20 * time.Minute,
		}
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
