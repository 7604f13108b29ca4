// FILE: lixenwraith/devlog/override.go
package devlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	logger := devlog.NewLogger()
//	err := logger.ApplyOverride(
//	    "directory=/var/log/app",
//	    "level=warn",
//	    "file_enabled=true",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.getConfig().Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("devlog: multiple configuration errors:")
	for i, err := range errors {
		// Remove "devlog: " prefix from individual errors to avoid duplication
		errMsg := strings.TrimPrefix(err.Error(), "devlog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Switches
	case "enabled":
		return parseBoolField(key, value, &cfg.Enabled)
	case "file_enabled":
		return parseBoolField(key, value, &cfg.FileEnabled)
	case "encrypt_enabled":
		return parseBoolField(key, value, &cfg.EncryptEnabled)

	// Filtering and tags
	case "level":
		// Special handling: accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = Severity(numVal)
			return nil
		}
		sev, err := ParseSeverity(value)
		if err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.Level = sev
	case "global_tag":
		cfg.GlobalTag = value
	case "caller_tag":
		return parseBoolField(key, value, &cfg.CallerTag)

	// Decoration
	case "head_enabled":
		return parseBoolField(key, value, &cfg.HeadEnabled)
	case "border_enabled":
		return parseBoolField(key, value, &cfg.BorderEnabled)
	case "max_segment_length":
		return parseIntField(key, value, &cfg.MaxSegmentLength)

	// Console
	case "console_target":
		cfg.ConsoleTarget = value
	case "console_no_color":
		return parseBoolField(key, value, &cfg.ConsoleNoColor)

	// Files
	case "directory":
		cfg.Directory = value
	case "extension":
		cfg.Extension = value
	case "timestamp_format":
		cfg.TimestampFormat = value
	case "buffer_size":
		return parseIntField(key, value, &cfg.BufferSize)
	case "max_file_size_mb":
		return parseIntField(key, value, &cfg.MaxFileSizeMB)
	case "max_backups":
		return parseIntField(key, value, &cfg.MaxBackups)
	case "retention_days":
		return parseIntField(key, value, &cfg.RetentionDays)
	case "retention_check_mins":
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmtErrorf("invalid float value for retention_check_mins '%s': %w", value, err)
		}
		cfg.RetentionCheckMins = floatVal

	// Encryption
	case "encryption_key":
		cfg.EncryptionKey = value

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}

func parseBoolField(key, value string, dst *bool) error {
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
	}
	*dst = boolVal
	return nil
}

func parseIntField(key, value string, dst *int64) error {
	intVal, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmtErrorf("invalid integer value for %s '%s': %w", key, value, err)
	}
	*dst = intVal
	return nil
}
