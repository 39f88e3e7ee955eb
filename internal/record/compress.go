package record

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"
)

// Decompress is tolerant of both framings HWP producers use for a stream
// flagged compressed in FileHeader: standard zlib (two-byte header) and
// the raw DEFLATE bitstream HWP 5.0 itself emits (spec.md §3.5 - "some
// HWP versions omit the 2-byte zlib header").
func Decompress(data []byte) ([]byte, error) {
	if len(data) >= 2 && data[0] == 0x78 {
		if zr, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
			defer zr.Close()
			if out, err := io.ReadAll(zr); err == nil {
				return out, nil
			}
		}
	}
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return out, nil
}

// Compress produces a raw DEFLATE bitstream with no zlib wrapper, matching
// what HWP 5.0 itself writes. The writer never calls this: spec.md's
// Non-goals clear the compressed flag unconditionally on write, so this
// exists only so callers embedding this package for other purposes (or
// tests exercising the codec independently of the writer) have a symmetric
// encode path.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := fw.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	return buf.Bytes(), nil
}
