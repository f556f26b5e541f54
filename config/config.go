package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "CATALOG_CONFIG_FILE"
	envPrefix         = "CATALOG"

	// passwordPlaceholder in mongo.uri is replaced with mongo.password.
	passwordPlaceholder = "<db_password>"
)

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

func (t tlsFiles) Enabled() bool {
	return t.CA != ""
}

type mongo struct {
	URI            string        `mapstructure:"uri"`
	Password       string        `mapstructure:"password"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	TLS            tlsFiles      `mapstructure:"tls"`
}

type topics struct {
	CatalogEvents string `mapstructure:"catalog_events"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
}

// Enabled reports whether catalog events should be published.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) != 0
}

type Config struct {
	LogLevel        slog.Level `mapstructure:"log_level"`
	HTTPServerAddr  string     `mapstructure:"http_server_addr"`
	HTTPCORSOrigins []string   `mapstructure:"http_cors_origins"`
	Mongo           mongo      `mapstructure:"mongo"`
	Broker          broker     `mapstructure:"broker"`
}

var defaults = map[string]any{
	"log_level":                    "info",
	"http_server_addr":             ":8000",
	"http_cors_origins":            []string{"*"},
	"mongo.uri":                    "",
	"mongo.password":               "",
	"mongo.database":               "catalog",
	"mongo.connect_timeout":        "10s",
	"mongo.tls.ca":                 "",
	"mongo.tls.cert":               "",
	"mongo.tls.key":                "",
	"broker.seed_brokers":          []string{},
	"broker.schema_registry_urls":  []string{},
	"broker.topics.catalog_events": "catalog-events",
}

func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the YAML file at path, applies CATALOG_* environment
// overrides and validates the result. An empty path reads the
// environment only.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	cfg.Mongo.URI = strings.ReplaceAll(
		cfg.Mongo.URI, passwordPlaceholder, escapePassword(cfg.Mongo.Password),
	)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Mongo.URI == "" {
		errs = append(errs, errors.New("mongo.uri is required"))
	}
	if strings.Contains(c.Mongo.URI, passwordPlaceholder) {
		errs = append(errs, errors.New("mongo.password is required by mongo.uri"))
	}
	if c.Mongo.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("mongo.connect_timeout must be positive"))
	}
	if c.Broker.Enabled() {
		if len(c.Broker.SchemaRegistryURLs) == 0 {
			errs = append(errs, errors.New("broker.schema_registry_urls is required"))
		}
		if c.Broker.Topics.CatalogEvents == "" {
			errs = append(errs, errors.New("broker.topics.catalog_events is required"))
		}
	}
	return errors.Join(errs...)
}

func escapePassword(p string) string {
	return strings.TrimPrefix(url.UserPassword("", p).String(), ":")
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

// redactedURI hides the password part of a mongodb URI.
func redactedURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "<unparsable>"
	}
	return u.Redacted()
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	HTTPCORSOrigins=%q

	MongoConfig:
	URI=%q
	Database=%q
	ConnectTimeout=%q
	TLS=%t

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		CatalogEvents=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.HTTPCORSOrigins,
		redactedURI(c.Mongo.URI),
		c.Mongo.Database,
		c.Mongo.ConnectTimeout,
		c.Mongo.TLS.Enabled(),
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.CatalogEvents,
	)
}
