// Package yamlutil parses nbexport YAML configuration.
//
// Config files are small, hand-written documents, so parsing is strict:
// an unknown key fails loudly instead of being dropped silently, and
// oversized input is rejected before it reaches the decoder.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxConfigSize caps a config document at 256KB. Real configs are a few
// hundred bytes; anything near the cap is not a config file.
var MaxConfigSize = 256 << 10

var (
	ErrEmptyDocument    = errors.New("yamlutil: empty YAML document")
	ErrNilTarget        = errors.New("yamlutil: nil decode target")
	ErrDocumentTooLarge = errors.New("yamlutil: document exceeds maximum size")
)

// ParseStrict decodes data into v, rejecting unknown fields.
func ParseStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyDocument
	}
	if len(data) > MaxConfigSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxConfigSize)
	}
	if v == nil {
		return ErrNilTarget
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
