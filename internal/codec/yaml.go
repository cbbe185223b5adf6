package codec

import (
	"fmt"
	"io"

	"harnesspair/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// ContentType returns the HTTP content type
func (c *YAMLCodec) ContentType() string {
	return "application/x-yaml"
}

// FileExtension returns the download file extension
func (c *YAMLCodec) FileExtension() string {
	return ".yaml"
}

// Export writes the run as YAML
func (c *YAMLCodec) Export(run *domain.PairRun, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(run); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}
