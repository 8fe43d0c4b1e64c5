package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"shipment-validator/internal/features/validation/domain"

	"github.com/spf13/afero"
)

// ErrNotAnArray is returned when an intake document is not a JSON array of shipments.
var ErrNotAnArray = errors.New("document must contain an array of shipments")

// FileShipmentReader reads shipment batches from JSON files.
type FileShipmentReader struct {
	FS afero.Fs
}

// NewFileShipmentReader creates a new FileShipmentReader on fs.
func NewFileShipmentReader(fs afero.Fs) *FileShipmentReader {
	return &FileShipmentReader{FS: fs}
}

// Read loads the shipments stored in the JSON array at path.
func (r *FileShipmentReader) Read(path string) ([]domain.Shipment, error) {
	data, err := afero.ReadFile(r.FS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	shipments, err := DecodeShipments(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return shipments, nil
}

// DecodeShipments parses a JSON array of shipment records.
func DecodeShipments(data []byte) ([]domain.Shipment, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotAnArray
	}

	shipments := make([]domain.Shipment, 0)
	if err := json.Unmarshal(trimmed, &shipments); err != nil {
		return nil, fmt.Errorf("invalid shipment JSON: %w", err)
	}

	return shipments, nil
}
