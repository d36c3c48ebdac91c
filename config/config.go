package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	DefaultStorageKey    = "coffee-shop-storage"
	DefaultStorageDriver = "file"
	DefaultStoragePath   = ".coffissimo"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Catalog overrides the embedded reference data when a path is set
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// QRCode configuration for pickup QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig selects where the persisted store record lives.
type StorageConfig struct {
	// Driver is one of "memory", "file" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// Path is a directory for the file driver and a database file for sqlite
	Path string `json:"path" yaml:"path"`

	// Key names the persisted record
	Key string `json:"key" yaml:"key"`
}

type CatalogConfig struct {
	Path string `json:"path" yaml:"path"`
}

// CheckoutConfig holds the presentation-level checkout rules.
type CheckoutConfig struct {
	PaymentDelay   time.Duration `json:"paymentDelay" yaml:"paymentDelay"`
	TaxRate        float64       `json:"taxRate" yaml:"taxRate"`
	MinNameLength  int           `json:"minNameLength" yaml:"minNameLength"`
	MinPhoneLength int           `json:"minPhoneLength" yaml:"minPhoneLength"`

	// Pickup slots are generated from SlotStart to SlotEnd inclusive, formatted HH:MM
	SlotStart    string        `json:"slotStart" yaml:"slotStart"`
	SlotEnd      string        `json:"slotEnd" yaml:"slotEnd"`
	SlotInterval time.Duration `json:"slotInterval" yaml:"slotInterval"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// .env is optional; values already in the environment win over it
	_ = godotenv.Load()

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// STORAGE_DRIVER -> storage.driver, CHECKOUT_PAYMENTDELAY -> checkout.paymentDelay
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every unset section so callers never deal with nil sections.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.Env.Log.Level) == "" {
		cfg.Env.Log.Level = "info"
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(cfg.Storage.Driver) == "" {
		cfg.Storage.Driver = DefaultStorageDriver
	}
	if strings.TrimSpace(cfg.Storage.Path) == "" {
		cfg.Storage.Path = DefaultStoragePath
	}
	if strings.TrimSpace(cfg.Storage.Key) == "" {
		cfg.Storage.Key = DefaultStorageKey
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	co := cfg.Checkout
	if co.PaymentDelay <= 0 {
		co.PaymentDelay = 2 * time.Second
	}
	if co.TaxRate <= 0 {
		co.TaxRate = 0.2
	}
	if co.MinNameLength <= 0 {
		co.MinNameLength = 2
	}
	if co.MinPhoneLength <= 0 {
		co.MinPhoneLength = 10
	}
	if co.SlotStart == "" {
		co.SlotStart = "07:00"
	}
	if co.SlotEnd == "" {
		co.SlotEnd = "19:30"
	}
	if co.SlotInterval <= 0 {
		co.SlotInterval = 30 * time.Minute
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
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
