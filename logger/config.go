package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config defines options for New and Init.
// If Levels is nil, LOGGER_LEVELS is used when set; otherwise all severities are enabled.
type Config struct {
	// Stream selects the initial sink.
	// Default: Console
	Stream SinkMode `toml:"stream" validate:"min=0,max=1"`
	// FilePath is the file appended to by the File sink.
	// Default: "" (DefaultFilePath)
	FilePath string `toml:"file,omitempty" validate:"omitempty,logpath"`
	// Colorize wraps console tags in ANSI color codes. File output is never colored.
	// Default: false
	Colorize bool `toml:"colorize"`
	// Levels limits which severities are written; nil falls back to LOGGER_LEVELS or all.
	// Default: nil
	Levels []Severity `toml:"levels,omitempty" validate:"omitempty,dive,min=0,max=3"`
}

// DefaultConfig returns console output to standard streams with every
// severity enabled.
func DefaultConfig() Config {
	return Config{
		Stream:   Console,
		FilePath: DefaultFilePath,
	}
}

// LoadConfig reads a TOML config file. A missing file yields DefaultConfig.
// LOGGER_STREAM and LOGGER_FILE override the file's values, and the result
// is validated before it is returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file: %w", err)
		default:
			dec := toml.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()
			if err := dec.Decode(&cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshaling config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if env := os.Getenv("LOGGER_STREAM"); env != "" {
		mode, err := ParseSinkMode(env)
		if err != nil {
			return fmt.Errorf("LOGGER_STREAM: %w", err)
		}
		c.Stream = mode
	}
	if env := os.Getenv("LOGGER_FILE"); env != "" {
		c.FilePath = env
	}
	return nil
}

// ValidationError describes one invalid config field.
type ValidationError struct {
	Field   string // TOML key, e.g. "levels[0]"
	Message string
}

// ValidationErrors is returned by Config.Validate.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid logger config: %d error(s)", len(ve))
	for _, e := range ve {
		fmt.Fprintf(&sb, "; %s: %s", e.Field, e.Message)
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("logpath", validateLogPath); err != nil {
		panic(err)
	}

	// Report fields by their TOML key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateLogPath rejects paths that can never name a regular file.
func validateLogPath(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if strings.ContainsRune(p, 0) {
		return false
	}
	return !strings.HasSuffix(p, "/") && !strings.HasSuffix(p, string(os.PathSeparator))
}

// Validate checks c and returns ValidationErrors describing every problem.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		out = append(out, ValidationError{Field: e.Field(), Message: validationMessage(e)})
	}
	return out
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "min", "max":
		switch e.Field() {
		case "stream":
			return "must be console or file"
		default:
			return "must be one of INFO, DEBUG, ERROR, SUCCESS"
		}
	case "logpath":
		return "must name a file, not a directory"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}
