// Package wordlist reads words from text, CSV/TSV and JSON sources.
package wordlist

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported word list format")
	ErrMissingColumn     = errors.New("word column not found")
)

// Inserter is anything words can be loaded into, e.g. a *trie.StringTrie.
type Inserter interface {
	Insert(word string) bool
}

// Options selects where the word lives in structured sources.
type Options struct {
	Column string // CSV header or JSON object field holding the word
}

// Stats counts what a load did.
type Stats struct {
	Read       int // words read from the source
	Added      int // words that were not already present
	Duplicates int
}

// LoadInto reads every word of the file at path into words.
func LoadInto(words Inserter, path string, opts Options) (*Stats, error) {
	stats := &Stats{}
	err := Load(path, opts, func(word string) error {
		stats.Read++
		if words.Insert(word) {
			stats.Added++
		} else {
			stats.Duplicates++
		}
		return nil
	})
	return stats, err
}

// Load calls onEachWord for each word of the file at path. The format is picked from the
// file extension: .txt (or none), .csv, .tsv and .json.
func Load(path string, opts Options, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".txt", ".lst":
		err = parseText(file, onEachWord)
	case ".csv":
		err = parseCsv(file, ',', opts.Column, onEachWord)
	case ".tsv":
		err = parseCsv(file, '\t', opts.Column, onEachWord)
	case ".json":
		err = parseJson(file, opts.Column, onEachWord)
	default:
		return fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// parseText reads one word per line. Blank lines and lines starting with # are skipped.
func parseText(r io.Reader, onEachWord func(word string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := onEachWord(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseCsv(r io.Reader, separator rune, column string, onEachWord func(word string) error) error {
	reader := csv.NewReader(r)
	reader.Comma = separator

	// the first line is the header
	headers, err := reader.Read()
	if err != nil {
		return err
	}
	index := -1
	for i, header := range headers {
		if strings.TrimSpace(header) == column {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: %q in header %v", ErrMissingColumn, column, headers)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if index >= len(record) {
			return fmt.Errorf("%w: %q in record %v", ErrMissingColumn, column, record)
		}
		if err := onEachWord(record[index]); err != nil {
			return err
		}
	}
}

// parseJson streams a JSON array whose elements are strings or objects holding the
// word under column.
func parseJson(r io.Reader, column string, onEachWord func(word string) error) error {
	decoder := json.NewDecoder(r)

	// Read opening bracket of the array
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("expected a JSON array, got %v", token)
	}

	for decoder.More() {
		var element json.RawMessage
		if err := decoder.Decode(&element); err != nil {
			return err
		}
		word, err := wordOf(element, column)
		if err != nil {
			return err
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

func wordOf(element json.RawMessage, column string) (string, error) {
	var word string
	if err := json.Unmarshal(element, &word); err == nil {
		return word, nil
	}

	record := map[string]any{}
	if err := json.Unmarshal(element, &record); err != nil {
		return "", err
	}
	value, found := record[column]
	if !found {
		return "", fmt.Errorf("%w: %q in record %s", ErrMissingColumn, column, element)
	}
	word, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string in record %s", column, element)
	}
	return word, nil
}
