// Package yamlutil keeps the YAML library behind a small decode/encode API
// so the config package never imports it directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds decoded documents. Site configs are a few hundred bytes.
var MaxInputSize = 256 << 10

var (
	ErrEmptyInput     = errors.New("yamlutil: empty input")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Unmarshal decodes data into v, ignoring keys v does not declare.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict decodes data into v and fails on unknown keys,
// so a misspelled config option is reported instead of ignored.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v with two-space indentation.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
