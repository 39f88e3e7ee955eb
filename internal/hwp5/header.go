package hwp5

import (
	"bytes"
	"fmt"

	"github.com/hwp5go/hwp5/bytecursor"
)

// FileHeader is the fixed 256-byte leading stream (spec.md §4.4.1),
// always uncompressed. Grounded on the teacher's FileHeader/Version
// structs, extended with an Encode method (teacher only reads).
type FileHeader struct {
	Version  Version
	Flags    uint32
	Reserved [216]byte
}

// Version is a four-byte HWP version quad (MM.mm.bb.rr).
type Version struct {
	Major, Minor, Build, Revision uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// DefaultVersion is what the Writer stamps on every file it produces
// (spec.md §4.4.1 - "05 00 03 04").
var DefaultVersion = Version{Major: 5, Minor: 0, Build: 3, Revision: 4}

// ReservedByte3 is the fourth byte of FileHeader's reserved field. HWP's
// own writer sets it to 0x04 ("discovered empirically; required for
// target compatibility" per spec.md §4.4.1); spec.md §9 leaves it a
// tunable open question, so it's a package variable rather than a
// literal constant, overridable via internal/config.
var ReservedByte3 byte = 0x04

// DecodeFileHeader parses the FileHeader stream.
func DecodeFileHeader(data []byte) (*FileHeader, error) {
	if len(data) < FileHeaderSize {
		return nil, &CorruptRecord{Tag: 0, Detail: fmt.Sprintf("file header too small: %d bytes", len(data))}
	}
	sig := string(bytes.TrimRight(data[0:32], "\x00\x1a\x02"))
	if sig != Signature {
		return nil, &BadSignature{Found: sig}
	}
	h := &FileHeader{}
	h.Version.Major = data[32]
	h.Version.Minor = data[33]
	h.Version.Build = data[34]
	h.Version.Revision = data[35]
	if h.Version.Major != 5 {
		return nil, &UnsupportedVersion{Major: h.Version.Major, Minor: h.Version.Minor, Build: h.Version.Build, Revision: h.Version.Revision}
	}
	r := bytecursor.NewReader(data[36:40])
	flags, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	h.Flags = flags
	copy(h.Reserved[:], data[40:256])
	return h, nil
}

// Encode emits the fixed 256-byte FileHeader payload.
func (h *FileHeader) Encode() []byte {
	buf := make([]byte, FileHeaderSize)
	copy(buf[0:len(Signature)], []byte(Signature))
	buf[32] = h.Version.Major
	buf[33] = h.Version.Minor
	buf[34] = h.Version.Build
	buf[35] = h.Version.Revision
	w := bytecursor.NewWriter()
	w.WriteU32(h.Flags)
	copy(buf[36:40], w.Bytes())
	copy(buf[40:256], h.Reserved[:])
	return buf
}

// NewFileHeader builds a FileHeader per the Writer's fixed policy
// (spec.md §4.6 step 4): default version, uncompressed, reserved byte 3
// set per ReservedByte3.
func NewFileHeader() *FileHeader {
	h := &FileHeader{Version: DefaultVersion}
	h.Reserved[3] = ReservedByte3
	return h
}

func (h *FileHeader) IsCompressed() bool   { return h.Flags&FlagCompressed != 0 }
func (h *FileHeader) IsPassword() bool     { return h.Flags&FlagPassword != 0 }
func (h *FileHeader) IsDistribution() bool { return h.Flags&FlagDistribution != 0 }
func (h *FileHeader) HasScript() bool      { return h.Flags&FlagScript != 0 }
func (h *FileHeader) HasDRM() bool         { return h.Flags&FlagDRM != 0 }
func (h *FileHeader) HasXMLTemplate() bool { return h.Flags&FlagXMLTemplate != 0 }
func (h *FileHeader) HasHistory() bool     { return h.Flags&FlagHistory != 0 }
func (h *FileHeader) IsSigned() bool       { return h.Flags&FlagSigned != 0 }
