// Package yamlutil decodes the YAML test fixtures under testdata/ and
// isolates the YAML dependency. Only _test.go files import it.
package yamlutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ReadFile strictly decodes the YAML file at path into v.
// A typo in a fixture key fails loudly instead of zeroing a field.
func ReadFile(path string, v any) error {
	data, err := os.ReadFile(path) // #nosec G304 -- fixture paths come from tests
	if err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	if err := UnmarshalStrict(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
