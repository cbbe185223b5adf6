package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"harnesspair/internal/domain"
)

// JSONCodec handles JSON export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// ContentType returns the HTTP content type
func (c *JSONCodec) ContentType() string {
	return "application/json"
}

// FileExtension returns the download file extension
func (c *JSONCodec) FileExtension() string {
	return ".json"
}

// Export writes the run as indented JSON
func (c *JSONCodec) Export(run *domain.PairRun, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(run); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
