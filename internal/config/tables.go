package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

// LoadTables returns the default lookup tables overlaid by the tables present
// in the YAML file at path. A table in the file replaces the default table
// wholesale. An empty path returns the defaults.
func LoadTables(path string) (models.Tables, error) {
	tables := models.DefaultTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Tables{}, fmt.Errorf("read tables file %s: %w", path, err)
	}

	var overrides models.Tables
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return models.Tables{}, fmt.Errorf("decode tables file %s: %w", path, err)
	}

	if overrides.Emissions != nil {
		tables.Emissions = overrides.Emissions
	}
	if overrides.FeedCosts != nil {
		tables.FeedCosts = overrides.FeedCosts
	}
	if overrides.WeeklyCosts != nil {
		tables.WeeklyCosts = overrides.WeeklyCosts
	}

	if err := validateTables(tables); err != nil {
		return models.Tables{}, fmt.Errorf("tables file %s: %w", path, err)
	}

	return tables, nil
}

// validateTables reports the first failing table entry.
func validateTables(tables models.Tables) error {
	err := validate.Struct(tables)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fmt.Errorf("validate tables: %w", err)
	}

	fe := ve[0]
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("%s: unknown feed type %q, want one of [%s]: %w",
			fe.Namespace(), fmt.Sprint(fe.Value()), fe.Param(), models.ErrUnknownFeedType)
	case "gte":
		return fmt.Errorf("%s must be non-negative, got %v", fe.Namespace(), fe.Value())
	case "required":
		return fmt.Errorf("%s is required", fe.Namespace())
	default:
		return fmt.Errorf("%s failed %q validation", fe.Namespace(), fe.Tag())
	}
}
