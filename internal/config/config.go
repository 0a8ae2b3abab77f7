// Package config loads service configuration.
//
// Sources, in priority order:
//  1. Environment variables (standard names like SERVER_PORT, AWS_REGION, OTDR_BUCKET)
//  2. config.yaml (optional, current dir or ./config)
//  3. Defaults
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Tables   TablesConfig   `mapstructure:"tables"`
	Evidence EvidenceConfig `mapstructure:"evidence"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Workflow WorkflowConfig `mapstructure:"workflow"`
}

type ServerConfig struct {
	Port               int           `mapstructure:"port"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// AWSConfig is shared by the DynamoDB and S3 clients. Local DynamoDB and
// MinIO do not validate credentials but the SDK requires them.
type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
	S3Endpoint       string `mapstructure:"s3_endpoint"`
}

type TablesConfig struct {
	Viabilities   string `mapstructure:"viabilities"`
	P2P           string `mapstructure:"p2p"`
	ServiceOrders string `mapstructure:"service_orders"`
	Enlaces       string `mapstructure:"enlaces"`
	Counters      string `mapstructure:"counters"`
	Empresas      string `mapstructure:"empresas"`
	TiposEnlace   string `mapstructure:"tipos_enlace"`
}

type EvidenceConfig struct {
	Bucket        string   `mapstructure:"bucket"`
	Prefix        string   `mapstructure:"prefix"`
	RequiredSides []string `mapstructure:"required_sides"`
	Mock          bool     `mapstructure:"mock"`
}

type CatalogConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

type WorkflowConfig struct {
	// NoChargeLinkTypes lists TipoEnlace ids exempt from the MRC guard on activation.
	NoChargeLinkTypes     []int64 `mapstructure:"-"`
	ViabilityValidityDays int     `mapstructure:"viability_validity_days"`
}

// envBindings maps nested keys to the flat environment names used by the
// deployment manifests.
var envBindings = map[string]string{
	"server.port":                      "SERVER_PORT",
	"server.cors_allowed_origins":      "CORS_ALLOWED_ORIGINS",
	"server.shutdown_timeout":          "SERVER_SHUTDOWN_TIMEOUT",
	"log.level":                        "LOG_LEVEL",
	"log.format":                       "LOG_FORMAT",
	"aws.region":                       "AWS_REGION",
	"aws.access_key_id":                "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":            "AWS_SECRET_ACCESS_KEY",
	"aws.dynamodb_endpoint":            "DYNAMODB_ENDPOINT",
	"aws.s3_endpoint":                  "S3_ENDPOINT",
	"tables.viabilities":               "VIABILITIES_TABLE",
	"tables.p2p":                       "P2P_TABLE",
	"tables.service_orders":            "SERVICE_ORDERS_TABLE",
	"tables.enlaces":                   "ENLACES_TABLE",
	"tables.counters":                  "COUNTERS_TABLE",
	"tables.empresas":                  "EMPRESAS_TABLE",
	"tables.tipos_enlace":              "TIPOS_ENLACE_TABLE",
	"evidence.bucket":                  "OTDR_BUCKET",
	"evidence.prefix":                  "OTDR_PREFIX",
	"evidence.required_sides":          "OTDR_REQUIRED_SIDES",
	"evidence.mock":                    "EVIDENCE_STORE_MOCK",
	"catalog.redis_addr":               "REDIS_ADDR",
	"catalog.cache_ttl":                "CATALOG_CACHE_TTL",
	"workflow.no_charge_link_types":    "NO_CHARGE_LINK_TYPES",
	"workflow.viability_validity_days": "VIABILITY_VALIDITY_DAYS",
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Comma-separated env values arrive as a single element.
	cfg.Server.CORSAllowedOrigins = splitList(cfg.Server.CORSAllowedOrigins)
	cfg.Evidence.RequiredSides = splitList(cfg.Evidence.RequiredSides)
	ids, err := toIDList(v.Get("workflow.no_charge_link_types"))
	if err != nil {
		return nil, fmt.Errorf("parse NO_CHARGE_LINK_TYPES: %w", err)
	}
	cfg.Workflow.NoChargeLinkTypes = ids

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if !c.Evidence.Mock && c.Evidence.Bucket == "" {
		return fmt.Errorf("evidence.bucket must be set unless evidence.mock is enabled")
	}
	if len(c.Evidence.RequiredSides) == 0 {
		return fmt.Errorf("evidence.required_sides must not be empty")
	}
	if c.Workflow.ViabilityValidityDays <= 0 {
		return fmt.Errorf("workflow.viability_validity_days must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("tables.viabilities", "viabilidades")
	v.SetDefault("tables.p2p", "p2p")
	v.SetDefault("tables.service_orders", "ordenes_servicio")
	v.SetDefault("tables.enlaces", "enlaces")
	v.SetDefault("tables.counters", "counters")
	v.SetDefault("tables.empresas", "empresas")
	v.SetDefault("tables.tipos_enlace", "tipos_enlace")

	v.SetDefault("evidence.prefix", "otdr")
	v.SetDefault("evidence.required_sides", []string{"A", "Z"})
	v.SetDefault("evidence.mock", false)

	v.SetDefault("catalog.cache_ttl", 5*time.Minute)

	v.SetDefault("workflow.no_charge_link_types", "3")
	v.SetDefault("workflow.viability_validity_days", 30)
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// toIDList accepts the env form ("3,7") as well as a YAML sequence.
func toIDList(raw any) ([]int64, error) {
	switch v := raw.(type) {
	case nil:
		return []int64{}, nil
	case string:
		return parseIDList(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return parseIDList(strings.Join(parts, ","))
	case []int64:
		return v, nil
	default:
		return parseIDList(fmt.Sprint(v))
	}
}

func parseIDList(raw string) ([]int64, error) {
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	if raw == "" {
		return []int64{}, nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' })
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
