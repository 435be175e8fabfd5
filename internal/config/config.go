// Package config provides configuration types, loading and validation for
// the awsrest CLI and stub endpoint.
//
// Configuration is read from an optional YAML file, then overridden from the
// environment, then normalized by Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/endpoints"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath      = "AWSREST_CONFIG"
	EnvRegion          = "AWSREST_REGION"
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
)

// Defaults applied by Validate.
const (
	DefaultRegion   = "us-east-1"
	DefaultTimeout  = 30 * time.Second
	DefaultStubHost = "127.0.0.1"
	DefaultStubPort = 4566
	DefaultStubDB   = "awsrest-stub.db"
)

// Service identifiers in the aws-sdk-go partition table.
const (
	apigatewayServiceID = "apigateway"
	route53ServiceID    = "route53"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ResolveConfigPath returns the flag value if set, otherwise AWSREST_CONFIG.
func ResolveConfigPath(flag string) string {
	if p := strings.TrimSpace(flag); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() {
	if v := os.Getenv(EnvRegion); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv(EnvAccessKeyID); v != "" {
		cfg.Credentials.AccessKeyID = v
	}
	if v := os.Getenv(EnvSecretAccessKey); v != "" {
		cfg.Credentials.SecretAccessKey = v
	}
	if v := os.Getenv(EnvSessionToken); v != "" {
		cfg.Credentials.SessionToken = v
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	cfg.Region = strings.TrimSpace(cfg.Region)
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	if (cfg.Credentials.AccessKeyID == "") != (cfg.Credentials.SecretAccessKey == "") {
		return fmt.Errorf("%w: credentials need both access_key_id and secret_access_key", ErrInvalidConfig)
	}

	var err error
	if cfg.Endpoints.APIGateway == "" {
		if cfg.Endpoints.APIGateway, err = resolveEndpoint(apigatewayServiceID, cfg.Region); err != nil {
			return err
		}
	}
	if cfg.Endpoints.Route53 == "" {
		// Route 53 is global; the partition table maps every commercial
		// region to the same endpoint.
		if cfg.Endpoints.Route53, err = resolveEndpoint(route53ServiceID, cfg.Region); err != nil {
			return err
		}
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// Normalize stub
	if cfg.Stub.Host == "" {
		cfg.Stub.Host = DefaultStubHost
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = DefaultStubPort
	}
	if cfg.Stub.Port < 0 || cfg.Stub.Port > 65535 {
		return fmt.Errorf("%w: stub.port must be 1..65535", ErrInvalidConfig)
	}
	if cfg.Stub.DBPath == "" {
		cfg.Stub.DBPath = DefaultStubDB
	}

	return nil
}

// StubAddr returns host:port for the stub listener.
func (cfg *Config) StubAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Stub.Host, cfg.Stub.Port)
}

func resolveEndpoint(service, region string) (string, error) {
	ep, err := endpoints.DefaultResolver().EndpointFor(service, region)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s endpoint for %s: %w", ErrInvalidConfig, service, region, err)
	}
	return ep.URL, nil
}
