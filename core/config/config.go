// File: config.go
// Title: Configuration Management
// Description: Loads TOML and YAML configuration files into a dotted-key
//              store with environment overrides and typed getters. Config
//              embeds observable.Object: Set and Reload notify subscribers
//              with the keys whose values actually changed.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Change notification through observable.Object

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	nxerror "github.com/msto63/netext/core/error"
	nxerrors "github.com/msto63/netext/core/errors"
	"github.com/msto63/netext/core/log"
	"github.com/msto63/netext/core/observable"
	"github.com/msto63/netext/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config is a loaded configuration. Getters, Has, Set and Reload are safe
// for concurrent use. The embedded observable.Object is not: Subscribe and
// Unsubscribe must not run concurrently with Set, Reload or Watch, so
// register subscribers before starting Watch. Subscribers are called with
// the dotted key of every changed value on the goroutine that called Set or
// Reload, after the lock is released, so they may read the configuration.
type Config struct {
	observable.Object

	mu           sync.RWMutex
	data         map[string]interface{}
	filePath     string
	format       Format
	envPrefix    string
	lastModified time.Time
	logger       *log.Logger
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: from extension)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Values used when the file omits them
	Logger    *log.Logger            // Logger for reloads (default: discard)
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, nxerrors.InvalidInput(nxerrors.ModuleConfig, "load", filePath, "config file path")
	}

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, nxerrors.NotFound(nxerrors.ModuleConfig, "load", filePath).
			WithCode(nxerror.CodeMissingConfig)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := readFile(filePath, format)
	if err != nil {
		return nil, err
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	c := newConfig(data, format, options)
	c.filePath = filePath
	if info != nil {
		c.lastModified = info.ModTime()
	}
	return c, nil
}

// LoadFromString parses configuration content in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	return LoadFromStringWithOptions(content, LoadOptions{Format: format})
}

// LoadFromStringWithOptions parses configuration content with options.
// FormatAuto is treated as TOML.
func LoadFromStringWithOptions(content string, options LoadOptions) (*Config, error) {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}
	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}
	return newConfig(data, format, options), nil
}

// Empty returns a configuration holding only defaults
func Empty(defaults map[string]interface{}) *Config {
	return newConfig(mergeDefaults(nil, defaults), FormatTOML, LoadOptions{})
}

func newConfig(data map[string]interface{}, format Format, options LoadOptions) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}

	logger := options.Logger
	if logger == nil {
		logger = log.Discard()
	}

	c := &Config{
		data:      data,
		format:    format,
		envPrefix: options.EnvPrefix,
		logger:    logger.WithName("config"),
	}
	c.Bind(c)
	return c
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func readFile(filePath string, format Format) (map[string]interface{}, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nxerrors.NewErrorBuilder(nxerrors.ModuleConfig).
			Operation("read").
			Message("failed to read config file").
			Cause(err).
			Code(nxerror.CodeConfigError).
			Detail("filePath", filePath).
			Build()
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, nxerror.Wrap(err, "failed to parse config file").
			WithDetail("filePath", filePath)
	}
	return data, nil
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &data)
	case FormatYAML:
		err = yaml.Unmarshal(content, &data)
	default:
		return nil, nxerrors.InvalidInput(nxerrors.ModuleConfig, "parse", format.String(), "toml or yaml")
	}

	if err != nil {
		return nil, nxerrors.NewErrorBuilder(nxerrors.ModuleConfig).
			Operation("parse").
			Messagef("%s parse error", strings.ToUpper(format.String())).
			Cause(err).
			Code(nxerror.CodeInvalidConfig).
			Detail("format", format.String()).
			Build()
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults returns data layered over defaults; nested maps merge
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(defaults)+len(data))
	for k, v := range deepCopyMap(defaults) {
		result[k] = v
	}
	for k, v := range data {
		dataMap, ok1 := v.(map[string]interface{})
		defMap, ok2 := result[k].(map[string]interface{})
		if ok1 && ok2 {
			result[k] = mergeDefaults(dataMap, defMap)
			continue
		}
		result[k] = v
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	value := c.lookup(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	fallback := 0
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if envValue, ok := c.getEnvValue(key); ok {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.lookup(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return fallback
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	fallback := false
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if envValue, ok := c.getEnvValue(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.lookup(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}
	return fallback
}

// GetRune returns a single-character configuration value. Values that are
// not exactly one character yield the default.
func (c *Config) GetRune(key string, defaultValue rune) rune {
	s := c.GetString(key)
	if utf8.RuneCountInString(s) != 1 {
		return defaultValue
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Has checks if a configuration key exists in the loaded data
func (c *Config) Has(key string) bool {
	return c.lookup(key) != nil
}

// Set stores value under the dotted key and notifies subscribers with key
// when the stored value changed. Returns whether it changed.
func (c *Config) Set(key string, value interface{}) bool {
	c.mu.Lock()
	if reflect.DeepEqual(c.getValue(key), value) {
		c.mu.Unlock()
		return false
	}
	c.setValue(key, value)
	c.mu.Unlock()

	c.NotifyPropertyChanged(key)
	return true
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

func (c *Config) lookup(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getValue(key)
}

// getValue walks the dotted key; caller holds c.mu
func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// setValue creates intermediate maps as needed; caller holds c.mu
func (c *Config) setValue(key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// getEnvValue looks up the environment override for key
func (c *Config) getEnvValue(key string) (string, bool) {
	value, ok := os.LookupEnv(c.formatEnvKey(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// formatEnvKey converts log.level to LOG_LEVEL, or NETEXT_LOG_LEVEL with prefix
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(stringx.EnsureEndsWith(c.envPrefix, "_")) + envKey
	}
	return envKey
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// changedKeys lists the dotted keys whose leaf values differ, sorted
func changedKeys(prefix string, oldData, newData map[string]interface{}) []string {
	var keys []string
	seen := make(map[string]bool, len(oldData)+len(newData))

	visit := func(k string) {
		if seen[k] {
			return
		}
		seen[k] = true

		full := k
		if prefix != "" {
			full = prefix + "." + k
		}

		oldMap, ok1 := oldData[k].(map[string]interface{})
		newMap, ok2 := newData[k].(map[string]interface{})
		if ok1 && ok2 {
			keys = append(keys, changedKeys(full, oldMap, newMap)...)
			return
		}
		if !reflect.DeepEqual(oldData[k], newData[k]) {
			keys = append(keys, full)
		}
	}

	for k := range oldData {
		visit(k)
	}
	for k := range newData {
		visit(k)
	}

	sort.Strings(keys)
	return keys
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}
