// Package cfb implements the subset of the Microsoft Compound File Binary
// specification that HWP 5.0 uses to wrap its named streams: 512-byte
// sectors, FAT/DIFAT chains, a 64-byte-sector mini-stream for small
// streams, and a red-black directory tree. Structurally grounded on
// asalih-go-mscfb's Header/Sector/Directory/DirEntry decomposition, but
// read+write instead of read-only, and with the single CompoundFile type
// that repo accidentally duplicates between cfb.go and lib.go collapsed
// into one.
package cfb

const (
	HeaderLen       = 512
	DirEntryLen     = 128
	MaxDifatInHeader = 109

	SectorShiftV3 = 9 // 512-byte sectors
	MiniSectorShift = 6 // 64-byte mini sectors
	MiniSectorLen   = 1 << MiniSectorShift
	MiniStreamCutoff = 4096

	MaxNameLen = 31 // UTF-16 code units, not counting the NUL terminator
)

var MagicNumber = [8]byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}

const ByteOrderMark uint16 = 0xFFFE

// FAT/DIFAT sentinel sector values.
const (
	MaxRegularSector uint32 = 0xFFFFFFFA
	DifatSector      uint32 = 0xFFFFFFFC
	FatSector        uint32 = 0xFFFFFFFD
	EndOfChain       uint32 = 0xFFFFFFFE
	FreeSector       uint32 = 0xFFFFFFFF
)

// Directory entry sentinel stream IDs and object types.
const (
	NoStream uint32 = 0xFFFFFFFF

	ObjUnallocated uint8 = 0
	ObjStorage     uint8 = 1
	ObjStream      uint8 = 2
	ObjRoot        uint8 = 5

	ColorRed   uint8 = 0
	ColorBlack uint8 = 1
)

const RootEntryName = "Root Entry"
