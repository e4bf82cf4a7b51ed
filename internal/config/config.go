// Package config provides configuration management for aoc.
// Configuration is loaded from (highest to lowest priority):
// 1. Command-line flags
// 2. Environment variables (AOC_*)
// 3. Project config (.aoc/config.yaml in cwd, or $AOC_CONFIG)
// 4. Home config (~/.aoc/config.yaml)
// 5. Defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all aoc configuration.
type Config struct {
	// Output controls the result format (text, table, json, yaml).
	Output string `yaml:"output" json:"output"`

	// InputDir is where dayNN.txt puzzle inputs are looked up (default: input).
	InputDir string `yaml:"input_dir" json:"input_dir"`

	// Verbose enables debug logging on stderr.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Sonar settings
	Sonar SonarConfig `yaml:"sonar" json:"sonar"`

	// Batch settings for `aoc all`
	Batch BatchConfig `yaml:"batch" json:"batch"`
}

// SonarConfig holds sonar sweep settings.
type SonarConfig struct {
	// Window is the number of measurements per sliding sum.
	// Default: 3
	Window int `yaml:"window" json:"window"`
}

// BatchConfig holds settings for running every puzzle at once.
type BatchConfig struct {
	// Concurrency is the worker count (0 = one per CPU).
	Concurrency int `yaml:"concurrency" json:"concurrency"`
}

// Output formats.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Default config values (used in resolution and validation).
const (
	defaultOutput   = OutputText
	defaultInputDir = "input"
	defaultWindow   = 3
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output:   defaultOutput,
		InputDir: defaultInputDir,
		Verbose:  false,
		Sonar: SonarConfig{
			Window: defaultWindow,
		},
		Batch: BatchConfig{
			Concurrency: 0,
		},
	}
}

// Validate checks that resolved values are usable.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	if c.Sonar.Window < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, c.Sonar.Window)
	}
	return nil
}

// Load loads configuration with proper precedence.
// Priority: flags > env > project > home > defaults
func Load(flagOverrides *Config) (*Config, error) {
	cfg := Default()

	homeConfig, err := loadFromPath(homeConfigPath())
	if err != nil {
		return nil, err
	}
	if homeConfig != nil {
		cfg = merge(cfg, homeConfig)
	}

	projectPath, explicit := projectConfigPath()
	if explicit {
		// Only the implicit locations are optional.
		if _, err := os.Stat(projectPath); err != nil {
			return nil, fmt.Errorf("config %s: %w", projectPath, err)
		}
	}
	projectConfig, err := loadFromPath(projectPath)
	if err != nil {
		return nil, err
	}
	if projectConfig != nil {
		cfg = merge(cfg, projectConfig)
	}

	cfg = applyEnv(cfg)

	if flagOverrides != nil {
		cfg = merge(cfg, flagOverrides)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// homeConfigPath returns the home config path.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aoc", "config.yaml")
}

// projectConfigPath returns the project config path and whether it was named
// explicitly through AOC_CONFIG (or --config).
func projectConfigPath() (string, bool) {
	if override := strings.TrimSpace(os.Getenv("AOC_CONFIG")); override != "" {
		return override, true
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return filepath.Join(cwd, ".aoc", "config.yaml"), false
}

// loadFromPath loads config from a YAML file. A missing file is not an error.
func loadFromPath(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("AOC_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("AOC_INPUT_DIR"); v != "" {
		cfg.InputDir = v
	}
	if v, ok := getEnvBool("AOC_VERBOSE"); ok && v {
		cfg.Verbose = true
	}
	if v, ok := getEnvInt("AOC_SONAR_WINDOW"); ok {
		cfg.Sonar.Window = v
	}
	if v, ok := getEnvInt("AOC_BATCH_CONCURRENCY"); ok {
		cfg.Batch.Concurrency = v
	}
	return cfg
}

// mergeStr overwrites dst with src when src is non-empty.
func mergeStr(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// mergeInt overwrites dst with src when src is non-zero.
func mergeInt(dst *int, src int) {
	if src != 0 {
		*dst = src
	}
}

// merge merges src into dst, with src values taking precedence.
// Verbose can only be switched on by a later layer.
func merge(dst, src *Config) *Config {
	mergeStr(&dst.Output, src.Output)
	mergeStr(&dst.InputDir, src.InputDir)
	if src.Verbose {
		dst.Verbose = true
	}
	mergeInt(&dst.Sonar.Window, src.Sonar.Window)
	mergeInt(&dst.Batch.Concurrency, src.Batch.Concurrency)
	return dst
}

// Source represents where a config value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceHome    Source = "~/.aoc/config.yaml"
	SourceProject Source = ".aoc/config.yaml"
	SourceEnv     Source = "environment"
	SourceFlag    Source = "flag"
)

// getEnvBool returns the boolean value and whether it was set to a truthy value.
func getEnvBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "true" || v == "1" {
		return true, true
	}
	return false, false
}

// getEnvInt returns the integer value and whether it was set and parseable.
func getEnvInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// layer is one precedence level of a single field.
type layer struct {
	value  interface{}
	set    bool
	source Source
}

// resolveField walks layers lowest to highest and keeps the last one set.
func resolveField(def interface{}, layers ...layer) resolved {
	result := resolved{Value: def, Source: SourceDefault}
	for _, l := range layers {
		if l.set {
			result = resolved{Value: l.value, Source: l.source}
		}
	}
	return result
}

// ResolvedConfig shows config values with their sources.
type ResolvedConfig struct {
	Output           resolved `json:"output"`
	InputDir         resolved `json:"input_dir"`
	Verbose          resolved `json:"verbose"`
	SonarWindow      resolved `json:"sonar_window"`
	BatchConcurrency resolved `json:"batch_concurrency"`
}

type resolved struct {
	Value  interface{} `json:"value"`
	Source Source      `json:"source"`
}

// Resolve returns configuration with source tracking.
// Uses precedence chain: flags > env > project > home > defaults.
// Unreadable config files are treated as absent.
func Resolve(flags *Config) *ResolvedConfig {
	home, _ := loadFromPath(homeConfigPath())
	projectPath, _ := projectConfigPath()
	project, _ := loadFromPath(projectPath)
	if home == nil {
		home = &Config{}
	}
	if project == nil {
		project = &Config{}
	}
	if flags == nil {
		flags = &Config{}
	}

	envOutput := os.Getenv("AOC_OUTPUT")
	envInputDir := os.Getenv("AOC_INPUT_DIR")
	envVerbose, _ := getEnvBool("AOC_VERBOSE")
	envWindow, envWindowSet := getEnvInt("AOC_SONAR_WINDOW")
	envConcurrency, envConcurrencySet := getEnvInt("AOC_BATCH_CONCURRENCY")

	str := func(h, p, e, f string) []layer {
		return []layer{
			{h, h != "", SourceHome},
			{p, p != "", SourceProject},
			{e, e != "", SourceEnv},
			{f, f != "", SourceFlag},
		}
	}
	num := func(h, p, e int, eSet bool, f int) []layer {
		return []layer{
			{h, h != 0, SourceHome},
			{p, p != 0, SourceProject},
			{e, eSet, SourceEnv},
			{f, f != 0, SourceFlag},
		}
	}

	return &ResolvedConfig{
		Output:   resolveField(defaultOutput, str(home.Output, project.Output, envOutput, flags.Output)...),
		InputDir: resolveField(defaultInputDir, str(home.InputDir, project.InputDir, envInputDir, flags.InputDir)...),
		Verbose: resolveField(false,
			layer{true, home.Verbose, SourceHome},
			layer{true, project.Verbose, SourceProject},
			layer{true, envVerbose, SourceEnv},
			layer{true, flags.Verbose, SourceFlag},
		),
		SonarWindow: resolveField(defaultWindow,
			num(home.Sonar.Window, project.Sonar.Window, envWindow, envWindowSet, flags.Sonar.Window)...),
		BatchConcurrency: resolveField(0,
			num(home.Batch.Concurrency, project.Batch.Concurrency, envConcurrency, envConcurrencySet, flags.Batch.Concurrency)...),
	}
}
