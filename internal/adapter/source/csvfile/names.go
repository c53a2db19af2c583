// Package csvfile reads candidate names from a CSV column, repairing files
// that were saved without a header row.
package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const DefaultColumn = "Names"

var ErrMissingHeader = errors.New("missing header")

// Source loads names from one column of a CSV file.
type Source struct {
	Path   string
	Column string
}

func NewSource(path, column string) *Source {
	if column == "" {
		column = DefaultColumn
	}
	return &Source{Path: path, Column: column}
}

// LoadNames reads the configured column. A file without that header is
// copied to clean_<name> with the header prepended and read from there.
func (s *Source) LoadNames(ctx context.Context) ([]string, error) {
	names, err := ReadColumn(s.Path, s.Column)
	if err == nil || !errors.Is(err, ErrMissingHeader) {
		return names, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleanPath, err := AddHeader(s.Path, []string{s.Column})
	if err != nil {
		return nil, err
	}

	return ReadColumn(cleanPath, s.Column)
}

// ReadColumn returns every value of the column named header, in row order.
// Rows too short to hold the column yield an empty value.
func ReadColumn(path, header string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	fields, err := r.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	idx := -1
	for i, field := range fields {
		if i == 0 {
			field = strings.TrimPrefix(field, "\ufeff")
		}
		if field == header {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil, fmt.Errorf("%w: %s does not contain a header named %q (found headers: %q)", ErrMissingHeader, path, header, fields)
	}

	values := []string{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if idx < len(record) {
			values = append(values, record[idx])
		} else {
			values = append(values, "")
		}
	}

	return values, nil
}

// AddHeader writes clean_<name> next to path: the header line followed by
// the original content, minus any leading byte order mark. It returns the new
// file's path.
func AddHeader(path string, headers []string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	dst := filepath.Join(filepath.Dir(path), "clean_"+filepath.Base(path))

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(headers); err != nil {
		return "", err
	}
	w.Flush()
	b.Write(bytes.TrimPrefix(src, []byte("\ufeff")))

	if err := os.WriteFile(dst, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dst, err)
	}

	return dst, nil
}
