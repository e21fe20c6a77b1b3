package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Log        LogConfig
	Output     OutputConfig
	Fertilizer FertilizerConfig
	TablesFile string
}

// LogConfig holds logger options.
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// OutputConfig controls how results are presented.
type OutputConfig struct {
	Format string `validate:"oneof=text yaml"`
	Charts bool
}

// FertilizerConfig holds fertilizer estimator settings.
type FertilizerConfig struct {
	SoilSize float64 `validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// envNames maps struct namespaces to the variables that set them.
var envNames = map[string]string{
	"Config.Log.Level":           "DAIRY_LOG_LEVEL",
	"Config.Log.Format":          "DAIRY_LOG_FORMAT",
	"Config.Output.Format":       "DAIRY_OUTPUT_FORMAT",
	"Config.Fertilizer.SoilSize": "DAIRY_SOIL_SIZE",
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance. An explicitly named env file must exist.
// Load does not validate; callers apply their overrides and then call Validate.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		// Missing .env files are fine; the environment may carry everything.
		_ = godotenv.Load()
	}

	charts, err := parseBool("DAIRY_CHARTS", false)
	if err != nil {
		return nil, err
	}
	soilSize, err := parseFloat("DAIRY_SOIL_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Log: LogConfig{
			Level:  getenvWithDefault("DAIRY_LOG_LEVEL", "info"),
			Format: getenvWithDefault("DAIRY_LOG_FORMAT", "console"),
		},
		Output: OutputConfig{
			Format: getenvWithDefault("DAIRY_OUTPUT_FORMAT", "text"),
			Charts: charts,
		},
		Fertilizer: FertilizerConfig{
			SoilSize: soilSize,
		},
		TablesFile: os.Getenv("DAIRY_TABLES_FILE"),
	}

	return cfg, nil
}

// Validate ensures that configuration values are usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fmt.Errorf("validate config: %w", err)
	}

	fe := ve[0]
	name, ok := envNames[fe.Namespace()]
	if !ok {
		name = fe.Namespace()
	}
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", name, fe.Param(), fmt.Sprint(fe.Value()))
	case "gt":
		return fmt.Errorf("%s must be greater than %s", name, fe.Param())
	default:
		return fmt.Errorf("%s failed %q validation", name, fe.Tag())
	}
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
