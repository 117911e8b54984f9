package links

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the name of the custom links file.
const FileName = "LINKS.csv"

// Row is one line of the links file split into its fields: name, id, url.
// A Row carries no validity guarantees.
type Row []string

// Field returns the field at index i, or an empty string when the row is too short.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// String re-encodes the row as a single CSV line so it can be logged.
// A single-field row is returned as is, which keeps lines that could not be
// split readable in logs.
func (r Row) String() string {
	if len(r) == 1 {
		return r[0]
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(r); err != nil {
		return strings.Join(r, ",")
	}
	w.Flush()
	return strings.TrimRight(buf.String(), "\r\n")
}

// Path returns the location of the links file for a component installed in dir.
// The file lives two directory levels above the component, at the top of the install.
func Path(dir string) string {
	return filepath.Clean(filepath.Join(dir, "..", "..", FileName))
}

// Exists reports whether something exists at path. A path that cannot be
// resolved for any reason, missing or not, counts as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read loads the whole file at path and splits it into rows.
func Read(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read links file %s: %w", path, err)
	}

	return Parse(bytes.NewReader(data))
}

// Parse splits r into rows, one per line, with no limit on line length.
// Each line is decoded on its own with lenient CSV quoting, so quoted fields may
// hold commas but never span lines, and a stray quote inside a field is kept.
// A line that still cannot be decoded becomes a single-field row holding the
// raw text, which keeps one broken line from hiding the rest of the file.
// Empty lines become a row with one empty field.
func Parse(r io.Reader) ([]Row, error) {
	var rows []Row

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			rows = append(rows, parseLine(line))
		}

		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read links: %w", err)
		}
	}
}

func parseLine(line string) Row {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	fields, err := cr.Read()
	switch {
	case errors.Is(err, io.EOF):
		return Row{""}
	case err != nil:
		return Row{line}
	}

	return Row(fields)
}
