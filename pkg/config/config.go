package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sdejongh/sizesweep/pkg/models"
)

// DefaultLimitMB is the scan threshold used when none is configured
const DefaultLimitMB = 100

// Config represents the application configuration
type Config struct {
	Scan    ScanConfig        `yaml:"scan"`
	Filter  models.FilterSpec `yaml:"filter"`
	Output  OutputConfig      `yaml:"output"`
	Logging LoggingConfig     `yaml:"logging"`

	// Preferences is an opaque key-value store for front-ends (theme etc.)
	Preferences map[string]string `yaml:"preferences,omitempty"`
}

// ScanConfig holds scan-related settings
type ScanConfig struct {
	LimitMB    float64  `yaml:"limit_mb" validate:"gt=0,lte=10000"`
	Exclude    []string `yaml:"exclude"`
	LastFolder string   `yaml:"last_folder,omitempty"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=human json"`
	Quiet  bool   `yaml:"quiet"` // Suppress non-error output
	Color  bool   `yaml:"color"` // Colour status markers on terminals
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format" validate:"oneof=json text"`
	Level   string `yaml:"level" validate:"oneof=debug info warn error"`
	File    string `yaml:"file"` // Log file path (empty = stderr)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			LimitMB: DefaultLimitMB,
			Exclude: []string{},
		},
		Output: OutputConfig{
			Format: "human",
			Quiet:  false,
			Color:  true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
		Preferences: map[string]string{},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML key
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks if the configuration is valid. The first violation is
// returned as a *models.ValidationError keyed on the dotted YAML path.
func (c *Config) Validate() error {
	return validateStruct(c)
}

// ValidateFilter checks a filter preset built outside a configuration file
func ValidateFilter(spec models.FilterSpec) error {
	return validateStruct(spec)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}
	return toValidationError(fieldErrs[0])
}

func toValidationError(fe validator.FieldError) *models.ValidationError {
	// Namespace is "Config.scan.limit_mb"; drop the root type name
	// (a bare FilterSpec yields "FilterSpec.days_old")
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	var message string
	switch fe.Tag() {
	case "oneof":
		message = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		message = "must be greater than " + fe.Param()
	case "gte":
		message = "must be at least " + fe.Param()
	case "lte":
		message = "must not exceed " + fe.Param()
	default:
		message = "failed '" + fe.Tag() + "' check"
	}

	return &models.ValidationError{Field: field, Message: message}
}
