package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"sync"

	"github.com/domainscout/domainscout/pkg/domain/entity"
	"github.com/domainscout/domainscout/pkg/domain/repository"
)

// CSVWriter implements repository.ResultWriter as a CSV table with a
// stable header: domain, classification, price, then one column per
// configured registrar, in registrar order.
type CSVWriter struct {
	file       *os.File
	writer     *csv.Writer
	registrars []string
	mu         sync.Mutex
}

// NewCSVWriter creates a CSV writer and emits the header row.
func NewCSVWriter(filename string, registrars []string) (repository.ResultWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	w := &CSVWriter{
		file:       file,
		writer:     csv.NewWriter(file),
		registrars: registrars,
	}

	header := append([]string{"domain", "classification", "price"}, registrars...)
	if err := w.writer.Write(header); err != nil {
		file.Close()
		return nil, err
	}

	return w, nil
}

// Write writes a single record.
func (w *CSVWriter) Write(record *entity.ResultRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	row := []string{record.Domain, string(record.Classification), record.Price}

	links := make(map[string]string, len(record.Links))
	for _, link := range record.Links {
		links[link.Registrar] = link.URL
	}
	for _, registrar := range w.registrars {
		url, ok := links[registrar]
		if !ok {
			url = entity.Placeholder
		}
		row = append(row, url)
	}

	return w.writer.Write(row)
}

// Flush ensures all buffered data is written.
func (w *CSVWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close closes the writer.
func (w *CSVWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// JSONLWriter implements repository.ResultWriter as one JSON object
// per line.
type JSONLWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(filename string) (repository.ResultWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return &JSONLWriter{
		file:    file,
		encoder: json.NewEncoder(file),
	}, nil
}

// Write writes a single record.
func (w *JSONLWriter) Write(record *entity.ResultRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.encoder.Encode(record)
}

// Flush ensures all buffered data is written.
func (w *JSONLWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.Sync()
}

// Close closes the writer.
func (w *JSONLWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.Close()
}
