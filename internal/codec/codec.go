// Package codec renders a generation run in the export formats offered by
// the HTTP API and the generate command.
package codec

import (
	"fmt"
	"io"
	"sort"

	"harnesspair/internal/domain"
)

// Exporter writes a run in a single format
type Exporter interface {
	Export(run *domain.PairRun, w io.Writer) error
	Format() string
	ContentType() string
	FileExtension() string
}

var exporters = map[string]Exporter{}

func register(e Exporter) {
	exporters[e.Format()] = e
}

func init() {
	register(NewJSONCodec())
	register(NewYAMLCodec())
	register(NewXLSXCodec())
}

// Lookup returns the exporter for format
func Lookup(format string) (Exporter, error) {
	e, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported export format %q (supported: %v)", domain.ErrInvalidArgument, format, Formats())
	}
	return e, nil
}

// Formats lists the registered export formats in sorted order
func Formats() []string {
	formats := make([]string, 0, len(exporters))
	for f := range exporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
