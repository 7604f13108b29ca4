// FILE: lixenwraith/devlog/config.go
package devlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/lixenwraith/config"
	"gopkg.in/yaml.v3"
)

// Config holds all logger configuration values
type Config struct {
	// Switches
	Enabled        bool `toml:"enabled" yaml:"enabled"`                 // Master switch, off silences every entry point
	FileEnabled    bool `toml:"file_enabled" yaml:"file_enabled"`       // Mirror severity calls to the day file
	EncryptEnabled bool `toml:"encrypt_enabled" yaml:"encrypt_enabled"` // Encrypt file entries

	// Filtering and tags
	Level     Severity `toml:"level" yaml:"level" validate:"min=0,max=5"` // Minimum severity for console output
	GlobalTag string   `toml:"global_tag" yaml:"global_tag"`               // Overrides every per-call tag when non-blank
	CallerTag bool     `toml:"caller_tag" yaml:"caller_tag"`               // Render tags as "[tag at fn(file:line)]"

	// Decoration
	HeadEnabled      bool  `toml:"head_enabled" yaml:"head_enabled"`                                 // Thread/caller header line
	BorderEnabled    bool  `toml:"border_enabled" yaml:"border_enabled"`                             // Box drawing border
	MaxSegmentLength int64 `toml:"max_segment_length" yaml:"max_segment_length" validate:"min=64"` // Console line cap in bytes

	// Console
	ConsoleTarget  string `toml:"console_target" yaml:"console_target" validate:"oneof=stdout stderr"`
	ConsoleNoColor bool   `toml:"console_no_color" yaml:"console_no_color"`

	// Files
	Directory          string  `toml:"directory" yaml:"directory" validate:"required"`
	Extension          string  `toml:"extension" yaml:"extension" validate:"required,startsnotwith=."`
	TimestampFormat    string  `toml:"timestamp_format" yaml:"timestamp_format" validate:"required"`
	BufferSize         int64   `toml:"buffer_size" yaml:"buffer_size" validate:"min=1"`                   // File queue capacity
	MaxFileSizeMB      int64   `toml:"max_file_size_mb" yaml:"max_file_size_mb" validate:"min=0"`         // Size cap of one day file
	MaxBackups         int64   `toml:"max_backups" yaml:"max_backups" validate:"min=0"`                   // Size-rolled parts kept per day
	RetentionDays      int64   `toml:"retention_days" yaml:"retention_days" validate:"min=0"`             // Day files kept, 0 keeps all
	RetentionCheckMins float64 `toml:"retention_check_mins" yaml:"retention_check_mins" validate:"gte=0"` // How often to check retention

	// Encryption
	EncryptionKey string `toml:"encryption_key" yaml:"encryption_key" validate:"omitempty,len=16|len=24|len=32"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	// Switches
	Enabled:        true,
	FileEnabled:    false,
	EncryptEnabled: false,

	// Filtering and tags
	Level:     SeverityVerbose,
	GlobalTag: "",
	CallerTag: false,

	// Decoration
	HeadEnabled:      true,
	BorderEnabled:    true,
	MaxSegmentLength: 4000,

	// Console
	ConsoleTarget:  "stderr",
	ConsoleNoColor: false,

	// Files
	Directory:          defaultDirectory(),
	Extension:          "txt",
	TimestampFormat:    "2006-01-02 15:04:05.000",
	BufferSize:         1024,
	MaxFileSizeMB:      10,
	MaxBackups:         0,
	RetentionDays:      0,
	RetentionCheckMins: 60.0,

	// Encryption
	EncryptionKey: defaultEncryptionKey,
}

// defaultDirectory returns the per-user cache directory with a "log" leaf
func defaultDirectory() string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "devlog", "log")
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	// Create a copy to prevent modifications to the original
	copiedConfig := defaultConfig
	return &copiedConfig
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmtErrorf("invalid %s: '%v' fails '%s'", tomlKey(fe.StructField()), fe.Value(), fe.Tag())
		}
		return fmtErrorf("invalid configuration: %w", err)
	}

	// Cross-field validations
	if c.RetentionDays > 0 && c.RetentionCheckMins <= 0 {
		return fmtErrorf("retention_check_mins must be positive when retention is enabled: %v", c.RetentionCheckMins)
	}

	return nil
}

// Save writes the configuration as TOML under a [log] table, readable by NewConfigFromFile
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmtErrorf("failed to create config directory '%s': %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmtErrorf("failed to create config file '%s': %w", path, err)
	}

	encodeErr := toml.NewEncoder(f).Encode(map[string]any{"log": c})
	closeErr := f.Close()
	if encodeErr != nil {
		return fmtErrorf("failed to encode config: %w", encodeErr)
	}
	if closeErr != nil {
		return fmtErrorf("failed to close config file '%s': %w", path, closeErr)
	}
	return nil
}

// SaveConfig writes the logger's current configuration to path
func (l *Logger) SaveConfig(path string) error {
	return l.GetConfig().Save(path)
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML or YAML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	default:
		if err := loadTOML(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadTOML reads the "log." table through lixenwraith/config
func loadTOML(path string, cfg *Config) error {
	loader := config.New()

	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return fmtErrorf("failed to register config struct: %w", err)
	}

	// Missing file keeps defaults
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "log.", cfg); err != nil {
		return fmtErrorf("failed to extract config values: %w", err)
	}
	return nil
}

// loadYAML reads either a top-level "log" mapping or a flat mapping
func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmtErrorf("failed to read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmtErrorf("failed to parse yaml config %s: %w", path, err)
	}
	if nested, ok := raw["log"].(map[string]any); ok {
		raw = nested
	}

	if err := applyOverrides(cfg, raw); err != nil {
		return fmtErrorf("failed to apply yaml config %s: %w", path, err)
	}
	return nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides keyed by toml name to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

var severityType = reflect.TypeOf(Severity(0))

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	// Severity accepts names as well as numbers
	if field.Type() == severityType {
		if s, ok := value.(string); ok {
			sev, err := ParseSeverity(s)
			if err != nil {
				return err
			}
			field.SetInt(int64(sev))
			return nil
		}
	}

	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			// Named integer types such as Severity
			rv := reflect.ValueOf(value)
			if !rv.IsValid() || !rv.CanInt() {
				return fmt.Errorf("expected int64, got %T", value)
			}
			field.SetInt(rv.Int())
		}

	case reflect.Float64:
		switch v := value.(type) {
		case float64:
			field.SetFloat(v)
		case int64:
			field.SetFloat(float64(v))
		case int:
			field.SetFloat(float64(v))
		default:
			return fmt.Errorf("expected float64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// tomlKey maps a struct field name to its toml key for error messages
func tomlKey(fieldName string) string {
	if f, ok := reflect.TypeOf(Config{}).FieldByName(fieldName); ok {
		if tag := f.Tag.Get("toml"); tag != "" {
			return tag
		}
	}
	return fieldName
}
