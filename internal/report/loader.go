// Package report loads k6 summary documents and extracts the metrics the
// chart renderer needs.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	// ErrFileNotFound is returned when the summary file is missing or unreadable.
	ErrFileNotFound = errors.New("summary file not found or unreadable")
	// ErrParse is returned when the summary contents are not a valid document.
	ErrParse = errors.New("failed to parse summary")
)

// MetricsKey is the root key holding every metric summary.
const MetricsKey = "metrics"

// Report is a parsed k6 summary document.
type Report struct {
	Path string
	root map[string]any
}

// Metrics returns the metrics sub-tree, keyed by metric name.
func (r *Report) Metrics() map[string]any {
	m, _ := r.root[MetricsKey].(map[string]any)
	return m
}

// Loader loads summary documents.
type Loader interface {
	Load(path string) (*Report, error)
}

type loader struct {
	log logrus.FieldLogger
}

// NewLoader creates a new summary loader.
func NewLoader(log logrus.FieldLogger) Loader {
	return &loader{
		log: log.WithField("component", "report.loader"),
	}
}

// Load reads and decodes the document at path.
func (l *loader) Load(path string) (*Report, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user supplied summary
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}

	l.log.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Debug("loaded summary file")

	root, err := decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	metrics, ok := root[MetricsKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, MetricsKey)
	}

	byName, ok := metrics.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, not a mapping", ErrInvalidField, MetricsKey, metrics)
	}

	l.log.WithField("metrics", len(byName)).Debug("parsed summary")

	return &Report{Path: path, root: root}, nil
}

// decode picks a decoder from the file extension, JSON being the k6 default.
func decode(path string, data []byte) (map[string]any, error) {
	var (
		doc any
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err = dec.Decode(&doc); err == nil {
			err = expectEOF(dec)
		}
	}

	if err != nil {
		return nil, err
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root is %T, not a mapping", doc)
	}

	return root, nil
}

// expectEOF rejects anything but whitespace after the top-level value,
// including stray closing brackets.
func expectEOF(dec *json.Decoder) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("unexpected data after top-level value: %w", err)
	}

	return fmt.Errorf("unexpected data after top-level value: %v", tok)
}
