package entity

// Environment tags the deployment a logger runs in
type Environment string

// Supported environments
const (
	EnvironmentLocal      Environment = "local"
	EnvironmentDevelop    Environment = "develop"
	EnvironmentTesting    Environment = "testing"
	EnvironmentProduction Environment = "production"
)

// Language selects the translation table
type Language string

// Supported languages
const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

// OutputFormat selects how structured payloads (XML) are attached to records
type OutputFormat string

// Supported output formats
const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatXML  OutputFormat = "xml"
)

// Built-in defaults used when neither an explicit value nor an environment
// variable is available
const (
	DefaultLevel        = LogLevelInfo
	DefaultService      = "unknown-service"
	DefaultEnvironment  = EnvironmentDevelop
	DefaultLanguage     = LanguageEN
	DefaultOutputFormat = OutputFormatJSON
)

var (
	environments = map[Environment]struct{}{
		EnvironmentLocal:      {},
		EnvironmentDevelop:    {},
		EnvironmentTesting:    {},
		EnvironmentProduction: {},
	}
	languages = map[Language]struct{}{
		LanguageEN: {},
		LanguageES: {},
	}
	outputFormats = map[OutputFormat]struct{}{
		OutputFormatJSON: {},
		OutputFormatXML:  {},
	}
)

// IsValid reports whether e is one of the supported environments
func (e Environment) IsValid() bool {
	_, ok := environments[e]
	return ok
}

// IsValid reports whether l is one of the supported languages
func (l Language) IsValid() bool {
	_, ok := languages[l]
	return ok
}

// IsValid reports whether f is one of the supported output formats
func (f OutputFormat) IsValid() bool {
	_, ok := outputFormats[f]
	return ok
}

// EffectiveConfig is the fully resolved configuration of one Logger.
// It is a value type; copies never alias the logger's own state.
type EffectiveConfig struct {
	Level         LogLevel
	Service       string
	Environment   Environment
	Language      Language
	OutputFormat  OutputFormat
	IsDevelopment bool
}

// DefaultEffectiveConfig returns the configuration produced when nothing is
// supplied explicitly or through the environment
func DefaultEffectiveConfig() EffectiveConfig {
	return EffectiveConfig{
		Level:         DefaultLevel,
		Service:       DefaultService,
		Environment:   DefaultEnvironment,
		Language:      DefaultLanguage,
		OutputFormat:  DefaultOutputFormat,
		IsDevelopment: true,
	}
}

// Overrides carries explicit configuration arguments. Zero values mean
// "not supplied"; Level is a pointer because LogLevelDebug is the zero value.
type Overrides struct {
	Level        *LogLevel
	Service      string
	Environment  Environment
	Language     Language
	OutputFormat OutputFormat
}

// LevelOverride is a helper for building Overrides literals
func LevelOverride(level LogLevel) *LogLevel {
	return &level
}
