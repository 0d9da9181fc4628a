package colscan

// record is one ordered (column, value) row from a Frame. columns is
// shared across records for CSV (the fixed header); for JSON it holds
// only the keys present in that particular record.
type record struct {
	columns []string
	values  []any
}

// frame is a restartable, forward-only sequence of records obtained from
// one file. A frame must be traversed at most once; next returns
// (nil, false, nil) once exhausted. Reopening the owning Loader produces
// an equivalent, independent frame.
type frame interface {
	// next returns the next record, or ok=false at end of stream. A
	// non-nil error aborts the scan for this file.
	next() (rec *record, ok bool, err error)
}

// loader opens a restartable stream of records from one file and
// guarantees release of the underlying file handle on every exit path.
type loader interface {
	// open returns a frame over the file's records.
	open() (frame, error)
	// close releases any resources held by the loader. It is idempotent
	// and never returns an error to the caller that doesn't already have
	// one.
	close() error
}

// withLoader opens l, runs fn with the resulting frame, and guarantees
// close is called on every exit path — including a panic, which is
// re-raised after the loader is released.
func withLoader(l loader, fn func(frame) error) error {
	f, err := l.open()
	if err != nil {
		return err
	}
	defer l.close()
	return fn(f)
}
