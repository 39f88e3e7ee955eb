package hwp5

import "fmt"

// UnsupportedVersion is returned when FileHeader's version quad has a
// major component other than 5.
type UnsupportedVersion struct {
	Major, Minor, Build, Revision uint8
}

func (e *UnsupportedVersion) Error() string {
	return fmt.Sprintf("hwp5: unsupported version %d.%d.%d.%d", e.Major, e.Minor, e.Build, e.Revision)
}

// BadSignature is returned when FileHeader's leading 17 bytes don't read
// "HWP Document File".
type BadSignature struct{ Found string }

func (e *BadSignature) Error() string { return "hwp5: bad signature: " + e.Found }

// CorruptRecord is returned when a record body is smaller than its
// schema demands, or an enum/bitfield value is out of range.
type CorruptRecord struct {
	Tag    uint16
	Detail string
}

func (e *CorruptRecord) Error() string {
	return fmt.Sprintf("hwp5: corrupt record 0x%03X: %s", e.Tag, e.Detail)
}

// MissingStream is returned when a required CFB entry is absent.
type MissingStream struct{ Path string }

func (e *MissingStream) Error() string { return "hwp5: missing stream: " + e.Path }

// InvariantViolation is returned by the Writer when a paragraph references
// a para-shape or char-shape ID that doesn't exist in the corresponding
// table.
type InvariantViolation struct{ Detail string }

func (e *InvariantViolation) Error() string { return "hwp5: invariant violation: " + e.Detail }
