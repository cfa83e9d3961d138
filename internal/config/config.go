package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	AWS     AWSConfig
	Tables  TablesConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// AppConfig holds process-wide settings.
type AppConfig struct {
	Env      string
	Timezone string
}

// HTTPConfig holds server settings.
type HTTPConfig struct {
	Port int
}

// AWSConfig holds SDK settings shared by DynamoDB and S3.
type AWSConfig struct {
	Region          string
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// TablesConfig holds DynamoDB table names and the local endpoint, if any.
type TablesConfig struct {
	Endpoint string
	Clients  string
	Orders   string
	Products string
	Services string
	Users    string
}

// StorageConfig holds S3 settings for uploaded photos and catalog images.
type StorageConfig struct {
	Endpoint      string
	Bucket        string
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`
}

// env var -> config key. Names match the ones used by the deployment files.
var envBindings = map[string]string{
	"app.env":                 "APP_ENV",
	"app.timezone":            "APP_TIMEZONE",
	"http.port":               "HTTP_PORT",
	"aws.region":              "AWS_REGION",
	"aws.access_key_id":       "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":   "AWS_SECRET_ACCESS_KEY",
	"tables.endpoint":         "DYNAMODB_ENDPOINT",
	"tables.clients":          "CLIENTS_TABLE",
	"tables.orders":           "ORDERS_TABLE",
	"tables.products":         "PRODUCTS_TABLE",
	"tables.services":         "SERVICES_TABLE",
	"tables.users":            "USERS_TABLE",
	"storage.endpoint":        "S3_ENDPOINT",
	"storage.bucket":          "S3_BUCKET",
	"storage.public_base_url": "S3_PUBLIC_BASE_URL",
	"auth.jwt_secret":         "JWT_SECRET",
	"auth.jwt_ttl":            "JWT_TTL",
}

// Load reads configuration from the environment (and .env, loaded by main).
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "production")
	v.SetDefault("app.timezone", "America/Sao_Paulo")
	v.SetDefault("http.port", 8080)
	v.SetDefault("aws.region", "us-east-1")
	// Local DynamoDB/MinIO do not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("tables.endpoint", "")
	v.SetDefault("tables.clients", "clients")
	v.SetDefault("tables.orders", "orders")
	v.SetDefault("tables.products", "products")
	v.SetDefault("tables.services", "services")
	v.SetDefault("tables.users", "users")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.public_base_url", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_ttl", "12h")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.App.Env = strings.ToLower(strings.TrimSpace(c.App.Env))
	c.Storage.PublicBaseURL = strings.TrimRight(c.Storage.PublicBaseURL, "/")
	return c, nil
}

// Location resolves App.Timezone; orders are filtered by calendar day in it.
func (c Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" || strings.EqualFold(c.App.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}

func (c Config) IsDevelopment() bool {
	return c.App.Env == "development" || c.App.Env == "dev"
}
