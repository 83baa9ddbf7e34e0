package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/khalid-nowaf/trie/pkg/config"
)

var ErrDuplicateHeader = errors.New("duplicate column")

// Table is the result of a command: named columns and string rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

type Writer interface {
	Write(out io.Writer, table *Table) error
}

// NewWriter returns the writer for one of the config formats.
func NewWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return TextWriter{}, nil
	case "json":
		return JsonWriter{}, nil
	case "csv":
		return CsvWriter{}, nil
	case "tsv":
		return CsvWriter{isTSV: true}, nil
	}
	return nil, fmt.Errorf("%w %q", config.ErrInvalidFormat, format)
}

// TextWriter writes each row as tab separated values, without headers.
type TextWriter struct{}

func (w TextWriter) Write(out io.Writer, table *Table) error {
	for _, row := range table.Rows {
		if _, err := fmt.Fprintln(out, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// JsonWriter writes a JSON array with one object per row, keys in column order.
// Column names must be unique.
type JsonWriter struct{}

func (w JsonWriter) Write(out io.Writer, table *Table) error {
	seen := make(map[string]bool, len(table.Headers))
	for _, header := range table.Headers {
		if seen[header] {
			return fmt.Errorf("%w %q", ErrDuplicateHeader, header)
		}
		seen[header] = true
	}

	encoder := json.NewEncoder(out)

	if _, err := out.Write([]byte("[")); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if i > 0 {
			if _, err := out.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err := encoder.Encode(record{headers: table.Headers, values: row}); err != nil {
			return err
		}
	}
	_, err := out.Write([]byte("]\n"))
	return err
}

// record is one row encoded as a JSON object. Columns missing from values are omitted.
type record struct {
	headers []string
	values  []string
}

func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for col, header := range r.headers {
		if col >= len(r.values) {
			break
		}
		if col > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(header)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[col])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type CsvWriter struct {
	isTSV bool
}

func (w CsvWriter) Write(out io.Writer, table *Table) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write(table.Headers); err != nil {
		return err
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return err
	}
	return writer.Error()
}
