package reader

import "fmt"

// FormatError reports a file that exists but is not a well-formed
// parquet file: bad magic bytes, a truncated or corrupted footer, or
// column data that fails to decode.
//
// Callers distinguish it from a missing file with errors.As; a
// missing file surfaces as the wrapped os.Open error instead, for
// which errors.Is(err, fs.ErrNotExist) holds.
type FormatError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: not a valid parquet file: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *FormatError) Unwrap() error {
	return e.Err
}
