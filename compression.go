package colscan

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// compressionType identifies the byte-stream wrapper applied before a
// path's contents reach the CSV or JSON reader. Detection is extension
// based.
type compressionType int

const (
	compressionNone compressionType = iota
	compressionGZ
	compressionBZ2
	compressionXZ
	compressionZSTD
)

func detectCompression(path string) compressionType {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return compressionGZ
	case strings.HasSuffix(path, ".bz2"):
		return compressionBZ2
	case strings.HasSuffix(path, ".xz"):
		return compressionXZ
	case strings.HasSuffix(path, ".zst"):
		return compressionZSTD
	default:
		return compressionNone
	}
}

// openDecompressed opens path and, if its extension names a recognized
// compression codec, wraps the file in the matching decompressing reader.
// The Loader using the result never needs to know compression happened;
// it only sees io.Reader bytes in the plain format. The returned closer
// closes both the decompressor (where one exists) and the underlying
// file.
func openDecompressed(path string) (io.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, newPathError(path, ErrNotFound, nil)
		}
		return nil, nil, newPathError(path, ErrIO, err)
	}

	switch detectCompression(path) {
	case compressionGZ:
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, newPathError(path, ErrIO, err)
		}
		return gr, func() error {
			gr.Close()
			return f.Close()
		}, nil
	case compressionBZ2:
		return bzip2.NewReader(f), f.Close, nil
	case compressionXZ:
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, newPathError(path, ErrIO, err)
		}
		return xr, f.Close, nil
	case compressionZSTD:
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, newPathError(path, ErrIO, err)
		}
		return zr, func() error {
			zr.Close() // zstd.Decoder.Close returns no error
			return f.Close()
		}, nil
	default:
		return f, f.Close, nil
	}
}
