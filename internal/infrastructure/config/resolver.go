package config

import (
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
)

// Environment variables read by the Resolver
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvServiceName = "SERVICE_NAME"
	EnvNodeEnv     = "NODE_ENV"
	EnvLogLang     = "LOG_LANG"
	EnvLogFormat   = "LOG_FORMAT"
)

var resolverEnvKeys = []string{EnvLogLevel, EnvServiceName, EnvNodeEnv, EnvLogLang, EnvLogFormat}

// EnvSource looks up raw environment values
type EnvSource interface {
	Lookup(key string) (string, bool)
}

// MapEnv is an EnvSource over a fixed map
type MapEnv map[string]string

// Lookup returns the value stored under key if it is non-empty
func (m MapEnv) Lookup(key string) (string, bool) {
	v := m[key]
	return v, v != ""
}

// ViperEnv reads the process environment through viper
type ViperEnv struct {
	v *viper.Viper
}

// NewViperEnv creates an EnvSource bound to the resolver's environment variables
func NewViperEnv() *ViperEnv {
	v := viper.New()
	for _, key := range resolverEnvKeys {
		_ = v.BindEnv(key)
	}
	return &ViperEnv{v: v}
}

// Lookup returns the current value of key if it is set and non-empty
func (e *ViperEnv) Lookup(key string) (string, bool) {
	if !e.v.IsSet(key) {
		return "", false
	}
	val := e.v.GetString(key)
	return val, val != ""
}

// Resolver produces EffectiveConfig values with the precedence
// explicit override > environment variable > built-in default
type Resolver struct {
	env EnvSource
}

// NewResolver creates a resolver reading from env. A nil env resolves
// every field from overrides and defaults only.
func NewResolver(env EnvSource) *Resolver {
	if env == nil {
		env = MapEnv{}
	}
	return &Resolver{env: env}
}

// Resolve builds the effective configuration. Unrecognised values, explicit
// or from the environment, fall through to the next source; nothing fails.
func (r *Resolver) Resolve(o entity.Overrides) entity.EffectiveConfig {
	cfg := entity.DefaultEffectiveConfig()

	if o.Level != nil {
		cfg.Level = *o.Level
	} else if raw, ok := r.env.Lookup(EnvLogLevel); ok {
		if level, ok := entity.ParseLogLevel(raw); ok {
			cfg.Level = level
		}
	}

	if o.Service != "" {
		cfg.Service = o.Service
	} else if raw, ok := r.env.Lookup(EnvServiceName); ok {
		cfg.Service = raw
	}

	if o.Environment.IsValid() {
		cfg.Environment = o.Environment
	} else if raw, ok := r.env.Lookup(EnvNodeEnv); ok {
		if env := entity.Environment(normalize(raw)); env.IsValid() {
			cfg.Environment = env
		}
	}

	if o.Language.IsValid() {
		cfg.Language = o.Language
	} else if raw, ok := r.env.Lookup(EnvLogLang); ok {
		if lang, ok := parseLanguage(raw); ok {
			cfg.Language = lang
		}
	}

	if o.OutputFormat.IsValid() {
		cfg.OutputFormat = o.OutputFormat
	} else if raw, ok := r.env.Lookup(EnvLogFormat); ok {
		if format := entity.OutputFormat(normalize(raw)); format.IsValid() {
			cfg.OutputFormat = format
		}
	}

	cfg.IsDevelopment = cfg.Environment != entity.EnvironmentProduction
	return cfg
}

// parseLanguage accepts any BCP 47 tag whose base language is supported,
// e.g. "es-MX" or "en_US"
func parseLanguage(raw string) (entity.Language, bool) {
	tag, err := language.Parse(strings.ReplaceAll(normalize(raw), "_", "-"))
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	lang := entity.Language(base.String())
	return lang, lang.IsValid()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
