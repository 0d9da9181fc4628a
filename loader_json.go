package colscan

import (
	"bufio"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// maxFlattenDepth bounds the recursive nested-object flatten at 64 levels,
// past which a nested object is left unflattened and classified as JSON.
const maxFlattenDepth = 64

// kv is one ordered key/value pair decoded from a JSON object. Go's
// map[string]any loses insertion order, so jsonLoader walks the decoder's
// token stream by hand to preserve the source document's key order for
// flattening and first-seen column discovery.
type kv struct {
	key string
	val any
}

// orderedObject is a JSON object decoded with its key order preserved.
type orderedObject []kv

// jsonLoader opens a JSON file, detects whether its top-level shape is a
// list of objects or a single object, and streams records incrementally
// without materializing the whole document.
type jsonLoader struct {
	path   string
	closer func() error
}

func newJSONLoader(path string) *jsonLoader {
	return &jsonLoader{path: path}
}

// jsonShape byte values for the top-level document sniff.
const (
	shapeEmpty  byte = 0
	shapeList   byte = '['
	shapeObject byte = '{'
)

func (l *jsonLoader) open() (frame, error) {
	r, closer, err := openDecompressed(l.path)
	if err != nil {
		return nil, err
	}
	l.closer = closer

	br := bufio.NewReader(r)
	shape, err := peekShape(br)
	if err != nil {
		closer()
		return nil, newPathError(l.path, ErrIO, err)
	}
	if shape != shapeList && shape != shapeObject {
		closer()
		return nil, newPathError(l.path, ErrMalformedJSON, nil)
	}

	dec := json.NewDecoder(br)
	dec.UseNumber()

	if shape == shapeList {
		tok, err := dec.Token()
		if err != nil {
			closer()
			return nil, newPathError(l.path, ErrMalformedJSON, err)
		}
		if d, ok := tok.(json.Delim); !ok || d != '[' {
			closer()
			return nil, newPathError(l.path, ErrMalformedJSON, nil)
		}
		return &jsonFrame{path: l.path, dec: dec, isList: true}, nil
	}

	return &jsonFrame{path: l.path, dec: dec, isList: false}, nil
}

func (l *jsonLoader) close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer()
	l.closer = nil
	return err
}

// peekShape skips leading whitespace without consuming any other byte
// and reports which top-level shape follows: '[', '{', or shapeEmpty at
// end of stream. Because bufio.Reader.ReadByte/UnreadByte only ever
// touches the internal buffer, nothing observed here is lost to the
// decoder that streams from the same reader afterward.
func peekShape(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return shapeEmpty, nil
		}
		if err != nil {
			return shapeEmpty, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return shapeEmpty, err
		}
		return b, nil
	}
}

// jsonFrame is the forward-only record stream produced by jsonLoader.open.
type jsonFrame struct {
	path     string
	dec      *json.Decoder
	isList   bool
	done     bool
	objDrawn bool // single-object mode: whether the one record was already yielded
}

func (f *jsonFrame) next() (*record, bool, error) {
	if f.done {
		return nil, false, nil
	}

	if !f.isList {
		if f.objDrawn {
			f.done = true
			return nil, false, nil
		}
		f.objDrawn = true
		val, err := decodeValue(f.dec)
		if err != nil {
			f.done = true
			return nil, false, newPathError(f.path, ErrMalformedJSON, err)
		}
		obj, ok := val.(orderedObject)
		if !ok {
			f.done = true
			return nil, false, newPathError(f.path, ErrMalformedJSON, nil)
		}
		return toRecord(obj), true, nil
	}

	if !f.dec.More() {
		f.done = true
		// Consume the closing ']' so a malformed trailer still surfaces.
		if _, err := f.dec.Token(); err != nil && err != io.EOF {
			return nil, false, newPathError(f.path, ErrMalformedJSON, err)
		}
		return nil, false, nil
	}

	val, err := decodeValue(f.dec)
	if err != nil {
		f.done = true
		return nil, false, newPathError(f.path, ErrMalformedJSON, err)
	}
	obj, ok := val.(orderedObject)
	if !ok {
		f.done = true
		return nil, false, newPathError(f.path, ErrMalformedJSON, nil)
	}
	return toRecord(obj), true, nil
}

// toRecord flattens a decoded JSON object into the (columns, values) pair
// the Scanner consumes.
func toRecord(obj orderedObject) *record {
	flat := flattenObject(obj, "", 0)
	rec := &record{columns: make([]string, len(flat)), values: make([]any, len(flat))}
	for i, pair := range flat {
		rec.columns[i] = pair.key
		rec.values[i] = pair.val
	}
	return rec
}

// flattenObject concatenates nested object keys with "_" until a
// non-object value is reached or maxFlattenDepth is hit. Arrays are never
// flattened; they remain composite values classified as JSON.
func flattenObject(obj orderedObject, prefix string, depth int) []kv {
	var out []kv
	for _, pair := range obj {
		key := pair.key
		if prefix != "" {
			key = prefix + "_" + pair.key
		}
		if nested, ok := pair.val.(orderedObject); ok && depth < maxFlattenDepth {
			out = append(out, flattenObject(nested, key, depth+1)...)
			continue
		}
		out = append(out, kv{key: key, val: pair.val})
	}
	return out
}

// decodeValue reads one complete JSON value from dec, preserving object
// key order via orderedObject instead of collapsing into map[string]any.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (any, error) {
	delim, isDelim := tok.(json.Delim)
	if !isDelim {
		return tok, nil // string, json.Number, bool, or nil
	}

	switch delim {
	case '{':
		var obj orderedObject
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("colscan: non-string object key")
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, kv{key: key, val: val})
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}
		return obj, nil
	case '[':
		var arr []any
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // closing ']'
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("colscan: unexpected delimiter %q", delim)
	}
}
