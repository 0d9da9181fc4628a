package colscan

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the taxonomy a caller can match against with
// errors.Is. Loader and Scanner failures always wrap one of these.
var (
	// ErrNotFound is returned when a Loader's input path does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrIO is returned on an underlying read failure, including a
	// corrupt compressed stream.
	ErrIO = errors.New("io error")
	// ErrEmptyFile is returned when a CSV file has no header at all.
	ErrEmptyFile = errors.New("file is empty")
	// ErrMalformedRow is returned when a CSV row's width differs from the
	// header's width.
	ErrMalformedRow = errors.New("malformed row")
	// ErrMalformedJSON is returned when a JSON document is syntactically
	// invalid or has an unexpected top-level shape.
	ErrMalformedJSON = errors.New("malformed json")
	// ErrWorkerFault is returned when a worker panics while scanning a
	// file.
	ErrWorkerFault = errors.New("worker fault")
)

// rowError adds row-position context to ErrMalformedRow.
type rowError struct {
	path string
	row  int
	want int
	got  int
}

func (e *rowError) Error() string {
	return fmt.Sprintf("%s: row %d: expected %d fields, got %d", e.path, e.row, e.want, e.got)
}

func (e *rowError) Unwrap() error { return ErrMalformedRow }

func newMalformedRowError(path string, row, want, got int) error {
	return &rowError{path: path, row: row, want: want, got: got}
}

// pathError adds path context to the file-level sentinel errors.
type pathError struct {
	path string
	kind error
	err  error
}

func (e *pathError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.path, e.kind, e.err)
	}
	return fmt.Sprintf("%s: %s", e.path, e.kind)
}

func (e *pathError) Unwrap() error { return e.kind }

func newPathError(path string, kind, cause error) error {
	return &pathError{path: path, kind: kind, err: cause}
}
