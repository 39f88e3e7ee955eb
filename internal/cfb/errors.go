package cfb

import "fmt"

// BadSignature is returned when the leading 8-byte magic number doesn't
// match the CFB format.
type BadSignature struct{}

func (e *BadSignature) Error() string { return "cfb: bad signature" }

// UnsupportedVersion is returned for a header major version other than 3
// or 4 (HWP only ever produces version 3).
type UnsupportedVersion struct{ Found uint16 }

func (e *UnsupportedVersion) Error() string {
	return fmt.Sprintf("cfb: unsupported version %d", e.Found)
}

// CorruptCfb covers FAT/DIFAT/directory inconsistencies that aren't a
// simple truncation.
type CorruptCfb struct{ Detail string }

func (e *CorruptCfb) Error() string { return "cfb: corrupt container: " + e.Detail }

// CycleInChain is returned when following a FAT or miniFAT chain revisits
// a sector already seen in the same walk.
type CycleInChain struct{ Sector uint32 }

func (e *CycleInChain) Error() string {
	return fmt.Sprintf("cfb: cycle in sector chain at sector %d", e.Sector)
}

// MissingStream is returned by Stream when no directory entry matches the
// requested path.
type MissingStream struct{ Path string }

func (e *MissingStream) Error() string { return "cfb: missing stream: " + e.Path }
