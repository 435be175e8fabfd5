package config

import "time"

// EndpointsConfig overrides the service endpoints. Empty values are filled
// from the aws-sdk-go partition table for the configured region.
type EndpointsConfig struct {
	APIGateway string `yaml:"apigateway"`
	Route53    string `yaml:"route53"`
}

// CredentialsConfig holds static SigV4 credentials.
//
// Note: SecretAccessKey and SessionToken are secrets and must never be logged.
type CredentialsConfig struct {
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token,omitempty"`
}

// HasKeys reports whether both halves of the key pair are set.
func (c CredentialsConfig) HasKeys() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level"`
	Structured       bool              `yaml:"structured"`
	StructuredFormat string            `yaml:"structured_format"`
	IncludePID       bool              `yaml:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields,omitempty"`
}

// StubConfig controls the local fake endpoint.
type StubConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	DBPath string `yaml:"db_path"`
	APIKey string `yaml:"api_key,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Region      string            `yaml:"region"`
	Endpoints   EndpointsConfig   `yaml:"endpoints"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Timeout     time.Duration     `yaml:"timeout"`
	Logging     LoggingConfig     `yaml:"logging"`
	Stub        StubConfig        `yaml:"stub"`
}
