package codec

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"harnesspair/internal/domain"
)

const xlsxSheet = "Pairs"

// XLSXCodec exports the grid as a spreadsheet
type XLSXCodec struct{}

// NewXLSXCodec creates a new XLSX codec
func NewXLSXCodec() *XLSXCodec {
	return &XLSXCodec{}
}

// Format returns the codec format identifier
func (c *XLSXCodec) Format() string {
	return "xlsx"
}

// ContentType returns the HTTP content type
func (c *XLSXCodec) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension returns the download file extension
func (c *XLSXCodec) FileExtension() string {
	return ".xlsx"
}

// Export writes one header row followed by one row per pair
func (c *XLSXCodec) Export(run *domain.PairRun, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", xlsxSheet)

	header := make([]interface{}, len(domain.PairColumns))
	for i, col := range domain.PairColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write XLSX header: %w", err)
	}

	for i, p := range run.Pairs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address XLSX row: %w", err)
		}
		row := []interface{}{
			p.Harness1, p.Harness1Version, p.Drawing1, p.Drawing1Version,
			p.Harness2, p.Harness2Version, p.Drawing2, p.Drawing2Version,
			p.Duplicate,
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write XLSX row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}
