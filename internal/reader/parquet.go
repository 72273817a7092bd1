// Package reader loads Apache Parquet files into the in-memory table
// representation used by the rest of the tool.
//
// It uses the parquet-go library to decode files and returns rows as
// maps for flexible data access.
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/pqhead/internal/table"
)

// Reader reads a single parquet file.
//
// It maintains both an OS file handle and a parquet file handle to
// enable proper resource cleanup.
type Reader struct {
	path   string
	file   *os.File
	pqFile *parquet.File
}

// Open opens path and validates it as a parquet file.
//
// A missing file returns the wrapped os.Open error, so
// errors.Is(err, fs.ErrNotExist) holds. A file that exists but fails
// parquet validation returns a *FormatError.
//
// Example:
//
//	r, err := reader.Open("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, &FormatError{Path: path, Err: err}
	}

	return &Reader{
		path:   path,
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadAll materializes every row of the file into a Table.
//
// Rows appear in the same order as they are stored in the file. The
// whole file is loaded into memory, so this is not suitable for very
// large files. A row that fails to decode aborts the read and
// returns a *FormatError; no partial Table is produced.
func (r *Reader) ReadAll() (*table.Table, error) {
	rows := make([]table.Row, 0)

	pr := parquet.NewReader(r.pqFile)
	defer func() { _ = pr.Close() }()

	for {
		row := make(table.Row)
		err := pr.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &FormatError{Path: r.path, Err: fmt.Errorf("failed to read row: %w", err)}
		}
		rows = append(rows, row)
	}

	return &table.Table{
		Columns: r.Columns(),
		Rows:    rows,
	}, nil
}

// Columns returns the file's top-level schema fields in file order.
func (r *Reader) Columns() []table.Column {
	fields := r.pqFile.Schema().Fields()

	columns := make([]table.Column, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, table.Column{
			Name:     field.Name(),
			Type:     userFriendlyType(field),
			Optional: field.Optional(),
		})
	}
	return columns
}

// Schema returns the raw parquet schema of the file.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close releases the underlying file handle. It is safe to call
// Close multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		file := r.file
		r.file = nil
		return file.Close()
	}
	return nil
}

// Load is the one-shot convenience used by the CLI: open path, read
// all rows, close the file. The returned Table is the only resource
// that outlives the call.
func Load(path string) (*table.Table, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}
