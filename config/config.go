package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath                = "."
	defaultUpstreamTimeout     = 15 * time.Second
	defaultSubscriptionTimeout = 5 * time.Second
	defaultStorageURL          = "mem://"
	defaultMaxRequestBodySize  = "1M"
	defaultAuditPrefix         = "audit"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		// Port the portal is served from; it also selects the portal (3002 seller, 3003 admin).
		Port int `json:"port" yaml:"port"`
		// Echo body limit, e.g. "1M"
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Upstream configuration for the marketplace REST API
	Upstream *UpstreamConfig `json:"upstream" yaml:"upstream"`

	// Storage configuration for persisted sessions
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// PubSub configuration for session event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Audit configuration for the session audit worker
	Audit *AuditConfig `json:"audit" yaml:"audit"`
}

// UpstreamConfig defines how the console reaches the marketplace API
type UpstreamConfig struct {
	BaseURL string        `json:"baseURL" yaml:"baseURL"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Upper bound for the subscription lookup made by the route gate
	SubscriptionTimeout time.Duration `json:"subscriptionTimeout" yaml:"subscriptionTimeout"`
}

// StorageConfig defines where sessions are persisted.
// URL is any gocloud.dev blob URL: mem://, file:///path, s3://bucket, gs://bucket.
type StorageConfig struct {
	URL    string `json:"url" yaml:"url"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

// MetricsConfig toggles the Prometheus collectors
type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// AuditConfig defines where the audit worker records session events.
// Records share the session storage bucket under Prefix.
type AuditConfig struct {
	Prefix string `json:"prefix" yaml:"prefix"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for session event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push tokens; defaults to the push URL as received
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: UPSTREAM_BASEURL -> upstream.baseURL (not upstream.baseurl)
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills the optional sections so that consumers never see nil.
func (c *Config) applyDefaults() {
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Upstream == nil {
		c.Upstream = &UpstreamConfig{}
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = defaultUpstreamTimeout
	}
	if c.Upstream.SubscriptionTimeout <= 0 {
		c.Upstream.SubscriptionTimeout = defaultSubscriptionTimeout
	}
	c.Upstream.BaseURL = strings.TrimRight(c.Upstream.BaseURL, "/")

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if strings.TrimSpace(c.Storage.URL) == "" {
		c.Storage.URL = defaultStorageURL
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}

	if c.Audit == nil {
		c.Audit = &AuditConfig{}
	}
	c.Audit.Prefix = strings.Trim(c.Audit.Prefix, "/")
	if c.Audit.Prefix == "" {
		c.Audit.Prefix = defaultAuditPrefix
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
