package adapters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"shipment-validator/internal/features/validation/domain"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding for reports.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for export formats other than json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ReportWriter exports reports as JSON or YAML.
type ReportWriter struct {
	FS afero.Fs
}

// NewReportWriter creates a new ReportWriter writing files on fs.
func NewReportWriter(fs afero.Fs) *ReportWriter {
	return &ReportWriter{FS: fs}
}

// Encode writes report to w in the given format.
func (rw *ReportWriter) Encode(w io.Writer, report *domain.Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report as json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml encoder: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

// WriteFile exports report to path, replacing any existing file.
func (rw *ReportWriter) WriteFile(path string, report *domain.Report, format Format) error {
	f, err := rw.FS.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := rw.Encode(f, report, format); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
