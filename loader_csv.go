package colscan

import (
	"encoding/csv"
	"io"
)

// csvLoader opens a CSV file and yields one record per data row, pairing
// values positionally with the header read at open time. Whitespace is
// never trimmed. Row width is enforced by hand below so a mismatch
// surfaces as a malformed-row error rather than a raw parse failure.
type csvLoader struct {
	path   string
	closer func() error
}

func newCSVLoader(path string) *csvLoader {
	return &csvLoader{path: path}
}

func (l *csvLoader) open() (frame, error) {
	r, closer, err := openDecompressed(l.path)
	if err != nil {
		return nil, err
	}
	l.closer = closer

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // width is enforced by hand below, with MalformedRow semantics

	hdr, err := reader.Read()
	if err == io.EOF {
		// Totally empty file: header is the empty sequence, no rows.
		return &csvFrame{path: l.path, hdr: nil, reader: reader, done: true}, nil
	}
	if err != nil {
		closer()
		return nil, newPathError(l.path, ErrIO, err)
	}

	return &csvFrame{path: l.path, hdr: hdr, reader: reader}, nil
}

func (l *csvLoader) close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer()
	l.closer = nil
	return err
}

// csvFrame is the forward-only row stream produced by csvLoader.open.
type csvFrame struct {
	path   string
	hdr    []string
	reader *csv.Reader
	rowNum int
	done   bool
}

// header returns the CSV header read at open time, satisfying the
// scanner's headerFrame interface.
func (f *csvFrame) header() []string { return f.hdr }

func (f *csvFrame) next() (*record, bool, error) {
	if f.done {
		return nil, false, nil
	}

	row, err := f.reader.Read()
	if err == io.EOF {
		f.done = true
		return nil, false, nil
	}
	if err != nil {
		f.done = true
		return nil, false, newPathError(f.path, ErrIO, err)
	}
	f.rowNum++

	if len(row) != len(f.hdr) {
		f.done = true
		return nil, false, newMalformedRowError(f.path, f.rowNum, len(f.hdr), len(row))
	}

	values := make([]any, len(row))
	for i, v := range row {
		values[i] = v
	}
	return &record{columns: f.hdr, values: values}, true, nil
}
