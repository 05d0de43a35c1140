// Package config resolves the site's runtime settings from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile        = ".env"
	defaultPort           = "8080"
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultRequestTimeout = 30 * time.Second
	defaultLogLevel       = "info"
	defaultServiceName    = "vocamate-site"
	defaultOTLPProtocol   = "grpc"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	Metrics MetricsConfig
	Log     LogConfig
	Tracing TracingConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Address        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// SiteConfig controls how pages are rendered.
type SiteConfig struct {
	// BaseURL prefixes canonical and Open Graph URLs. Empty keeps them relative.
	BaseURL string
	// Dev re-renders every request instead of serving the prebuilt site.
	Dev bool
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// LogConfig selects the zap level.
type LogConfig struct {
	Level string
}

// TracingConfig mirrors the standard OTEL_* variables the site honours.
type TracingConfig struct {
	Disabled    bool
	ServiceName string
	Protocol    string
	Sampler     string
	SamplerArg  string
}

// ValidationError is returned when configuration values are invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path skips the file.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over the process environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file, the process
// environment and explicit overrides, in increasing order of precedence.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	p := parser{lookup: lookup}
	port := p.string("PORT", defaultPort)
	cfg := Config{
		Server: ServerConfig{
			Address:        p.string("SITE_HTTP_ADDR", ":"+port),
			ReadTimeout:    p.duration("SITE_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:   p.duration("SITE_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:    p.duration("SITE_IDLE_TIMEOUT", defaultIdleTimeout),
			RequestTimeout: p.duration("SITE_REQUEST_TIMEOUT", defaultRequestTimeout),
		},
		Site: SiteConfig{
			BaseURL: p.baseURL("SITE_BASE_URL"),
			Dev:     p.bool("SITE_DEV", false),
		},
		Metrics: MetricsConfig{
			Enabled: p.bool("SITE_METRICS_ENABLED", true),
		},
		Log: LogConfig{
			Level: p.logLevel("LOG_LEVEL"),
		},
		Tracing: TracingConfig{
			Disabled:    p.bool("OTEL_SDK_DISABLED", false),
			ServiceName: p.string("OTEL_SERVICE_NAME", defaultServiceName),
			Protocol:    p.oneOf("OTEL_EXPORTER_OTLP_PROTOCOL", defaultOTLPProtocol, "grpc", "http/protobuf"),
			Sampler:     p.string("OTEL_TRACES_SAMPLER", ""),
			SamplerArg:  p.string("OTEL_TRACES_SAMPLER_ARG", ""),
		},
	}

	if len(p.invalid) > 0 {
		sort.Strings(p.invalid)
		return Config{}, &ValidationError{fields: p.invalid}
	}
	return cfg, nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	values, err := godotenv.Read(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	return values, nil
}

// parser reads typed values and records every key that fails to parse.
type parser struct {
	lookup  func(string) (string, bool)
	invalid []string
}

func (p *parser) raw(key string) (string, bool) {
	value, ok := p.lookup(key)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func (p *parser) string(key, fallback string) string {
	if value, ok := p.raw(key); ok {
		return value
	}
	return fallback
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	value, ok := p.raw(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		p.invalid = append(p.invalid, key)
		return fallback
	}
	return d
}

func (p *parser) bool(key string, fallback bool) bool {
	value, ok := p.raw(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	p.invalid = append(p.invalid, key)
	return fallback
}

func (p *parser) oneOf(key, fallback string, allowed ...string) string {
	value, ok := p.raw(key)
	if !ok {
		return fallback
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return a
		}
	}
	p.invalid = append(p.invalid, key)
	return fallback
}

func (p *parser) logLevel(key string) string {
	return p.oneOf(key, defaultLogLevel, "debug", "info", "warn", "error")
}

func (p *parser) baseURL(key string) string {
	value, ok := p.raw(key)
	if !ok {
		return ""
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		p.invalid = append(p.invalid, key)
		return ""
	}
	return strings.TrimRight(value, "/")
}
