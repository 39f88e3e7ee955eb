// Package bytecursor provides a stateful little-endian reader/writer over a
// byte buffer, used throughout the cfb, record and hwp5 packages instead of
// repeating encoding/binary calls with hand-tracked offsets at every call
// site.
package bytecursor

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// Truncated is returned whenever a read would run past the end of the
// underlying buffer.
type Truncated struct {
	Needed int
	Have   int
}

func (e *Truncated) Error() string {
	return fmt.Sprintf("truncated read: needed %d bytes, have %d", e.Needed, e.Have)
}

// Reader is a read-only cursor over a byte slice it borrows but does not own.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader positioned at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current read offset.
func (r *Reader) Position() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Seek repositions the cursor to an absolute offset.
func (r *Reader) Seek(offset int) error {
	if offset < 0 || offset > len(r.data) {
		return &Truncated{Needed: offset, Have: len(r.data)}
	}
	r.pos = offset
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	return r.Seek(r.pos + n)
}

func (r *Reader) need(n int) error {
	if r.pos+n > len(r.data) {
		return &Truncated{Needed: n, Have: len(r.data) - r.pos}
	}
	return nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadI16 reads a little-endian int16.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadI32 reads a little-endian int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadI8 reads a signed byte.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// PeekU32 reads a little-endian uint32 without advancing the cursor.
func (r *Reader) PeekU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.data[r.pos:]), nil
}

// PeekU16 reads a little-endian uint16 without advancing the cursor.
func (r *Reader) PeekU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.data[r.pos:]), nil
}

// ReadBytes reads n raw bytes. The returned slice aliases the cursor's buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// ReadArray copies exactly len(dst) bytes into dst.
func (r *Reader) ReadArray(dst []byte) error {
	if err := r.need(len(dst)); err != nil {
		return err
	}
	copy(dst, r.data[r.pos:r.pos+len(dst)])
	r.pos += len(dst)
	return nil
}

// ReadLPString reads a u16 code-unit count followed by that many UTF-16LE
// code units, and decodes them to a string.
func (r *Reader) ReadLPString() (string, error) {
	count, err := r.ReadU16()
	if err != nil {
		return "", err
	}
	raw, err := r.ReadBytes(int(count) * 2)
	if err != nil {
		return "", err
	}
	return DecodeUTF16LE(raw), nil
}

// DecodeUTF16LE decodes a raw UTF-16LE byte slice to a Go string.
func DecodeUTF16LE(data []byte) string {
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return string(utf16.Decode(units))
}

// EncodeUTF16LE encodes a Go string to raw UTF-16LE bytes.
func EncodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[i*2:], u)
	}
	return out
}

// Writer is a growable little-endian byte buffer builder. Writes never fail.
type Writer struct {
	buf []byte
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) { w.buf = append(w.buf, v) }

// WriteU16 appends a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	w.buf = append(w.buf, byte(v), byte(v>>8))
}

// WriteU32 appends a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// WriteU64 appends a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

// WriteI16 appends a little-endian int16.
func (w *Writer) WriteI16(v int16) { w.WriteU16(uint16(v)) }

// WriteI32 appends a little-endian int32.
func (w *Writer) WriteI32(v int32) { w.WriteU32(uint32(v)) }

// WriteI8 appends a signed byte.
func (w *Writer) WriteI8(v int8) { w.WriteU8(uint8(v)) }

// WriteBytes appends raw bytes verbatim.
func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteArray appends a fixed-size array, zero-padding is the caller's
// responsibility (it simply appends exactly len(b) bytes).
func (w *Writer) WriteArray(b []byte) { w.WriteBytes(b) }

// WriteZeros appends n zero bytes.
func (w *Writer) WriteZeros(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// WriteLPString appends a u16 code-unit count followed by the UTF-16LE
// encoding of s.
func (w *Writer) WriteLPString(s string) {
	raw := EncodeUTF16LE(s)
	w.WriteU16(uint16(len(raw) / 2))
	w.WriteBytes(raw)
}
