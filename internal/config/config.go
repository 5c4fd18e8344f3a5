package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/RowanDark/culturecipher/internal/env"
)

// Config captures the culturecipher configuration resolved from defaults,
// optional files, and environment overrides.
type Config struct {
	// Token is used when a command is not given --token explicitly.
	Token       string `yaml:"token" toml:"token"`
	CatalogPath string `yaml:"catalog_path" toml:"catalog_path"`
	AuditLog    string `yaml:"audit_log" toml:"audit_log"`
	AuditStdout bool   `yaml:"audit_stdout" toml:"audit_stdout"`
}

const (
	homeDirName       = ".culturecipher"
	legacyHomeDirName = ".haimen"
	homeFileName      = "config.toml"
	localFileName     = "culturecipher.yml"
)

// Default returns the built-in configuration: no default token, the built-in
// catalog and no audit output.
func Default() Config {
	return Config{}
}

// Load resolves the configuration using defaults, configuration files, and
// environment overrides. The lookup order for configuration files is:
//  1. ~/.culturecipher/config.toml (TOML)
//  2. ~/.haimen/config.toml (TOML, legacy, only when 1 is absent)
//  3. ./culturecipher.yml (YAML)
//
// Environment variables prefixed with CULTURECIPHER_ have the highest
// precedence; the legacy HAIMEN_ prefix is still honoured.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("determine home directory: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("determine working directory: %w", err)
	}
	return loadFrom(home, wd)
}

func loadFrom(home, workDir string) (Config, error) {
	cfg := Default()

	if home != "" {
		if err := loadHomeConfig(&cfg, home); err != nil {
			return Config{}, err
		}
	}
	if err := loadLocalConfig(&cfg, workDir); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}

func loadHomeConfig(cfg *Config, home string) error {
	path := filepath.Join(home, homeDirName, homeFileName)
	applied, err := applyFile(cfg, path, "toml")
	if err != nil || applied {
		return err
	}

	legacyPath := filepath.Join(home, legacyHomeDirName, homeFileName)
	applied, err = applyFile(cfg, legacyPath, "toml")
	if applied {
		log.Println("Using legacy ~/.haimen config")
	}
	return err
}

func loadLocalConfig(cfg *Config, workDir string) error {
	_, err := applyFile(cfg, filepath.Join(workDir, localFileName), "yaml")
	return err
}

// applyFile reports whether path existed and was applied.
func applyFile(cfg *Config, path, format string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, data, format); err != nil {
		return false, fmt.Errorf("parse config %s: %w", path, err)
	}
	return true, nil
}

// fileConfig uses pointers so that keys absent from a file leave earlier
// values alone.
type fileConfig struct {
	Token       *string `yaml:"token" toml:"token"`
	CatalogPath *string `yaml:"catalog_path" toml:"catalog_path"`
	AuditLog    *string `yaml:"audit_log" toml:"audit_log"`
	AuditStdout *bool   `yaml:"audit_stdout" toml:"audit_stdout"`
}

func applyFileConfig(cfg *Config, data []byte, format string) error {
	var fc fileConfig
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return err
		}
	case "toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q", format)
	}

	if fc.Token != nil {
		cfg.Token = strings.TrimSpace(*fc.Token)
	}
	if fc.CatalogPath != nil {
		cfg.CatalogPath = strings.TrimSpace(*fc.CatalogPath)
	}
	if fc.AuditLog != nil {
		cfg.AuditLog = strings.TrimSpace(*fc.AuditLog)
	}
	if fc.AuditStdout != nil {
		cfg.AuditStdout = *fc.AuditStdout
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if val, ok := env.Lookup("CULTURECIPHER_TOKEN", "HAIMEN_TOKEN"); ok && strings.TrimSpace(val) != "" {
		cfg.Token = strings.TrimSpace(val)
	}
	if val, ok := env.Lookup("CULTURECIPHER_CATALOG", "HAIMEN_CATALOG"); ok && strings.TrimSpace(val) != "" {
		cfg.CatalogPath = strings.TrimSpace(val)
	}
	if val, ok := env.Lookup("CULTURECIPHER_AUDIT_LOG", "HAIMEN_AUDIT_LOG"); ok && strings.TrimSpace(val) != "" {
		cfg.AuditLog = strings.TrimSpace(val)
	}
	if val, ok := env.Lookup("CULTURECIPHER_AUDIT_STDOUT"); ok && strings.TrimSpace(val) != "" {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			cfg.AuditStdout = parsed
		}
	}
}
