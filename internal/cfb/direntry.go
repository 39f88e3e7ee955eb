package cfb

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/hwp5go/hwp5/bytecursor"
)

// dirEntry is one 128-byte CFB directory entry: a red-black-tree-keyed
// name, an object type, sibling/child pointers, a CLSID, and the
// stream's starting sector and size. Grounded on asalih-go-mscfb's
// DirEntry, extended with the uuid.UUID CLSID field and a symmetric
// encoder.
type dirEntry struct {
	Name           string
	ObjType        uint8
	Color          uint8
	Left           uint32
	Right          uint32
	Child          uint32
	CLSID          uuid.UUID
	StateBits      uint32
	CreationTime   uint64
	ModifiedTime   uint64
	StartSector    uint32
	StreamSize     uint64
}

func readDirEntry(data []byte) (*dirEntry, error) {
	if len(data) < DirEntryLen {
		return nil, &bytecursor.Truncated{Needed: DirEntryLen, Have: len(data)}
	}
	nameLen := binary.LittleEndian.Uint16(data[64:66])
	e := &dirEntry{}
	if nameLen >= 2 {
		raw := data[0 : nameLen-2] // strip trailing NUL code unit
		e.Name = bytecursor.DecodeUTF16LE(raw)
	}
	e.ObjType = data[66]
	e.Color = data[67]
	e.Left = binary.LittleEndian.Uint32(data[68:72])
	e.Right = binary.LittleEndian.Uint32(data[72:76])
	e.Child = binary.LittleEndian.Uint32(data[76:80])
	clsid, _ := uuid.FromBytes(reorderCLSID(data[80:96]))
	e.CLSID = clsid
	e.StateBits = binary.LittleEndian.Uint32(data[96:100])
	e.CreationTime = binary.LittleEndian.Uint64(data[100:108])
	e.ModifiedTime = binary.LittleEndian.Uint64(data[108:116])
	e.StartSector = binary.LittleEndian.Uint32(data[116:120])
	e.StreamSize = binary.LittleEndian.Uint64(data[120:128])
	return e, nil
}

func (e *dirEntry) bytes() []byte {
	buf := make([]byte, DirEntryLen)
	nameUnits := bytecursor.EncodeUTF16LE(e.Name)
	// Name field holds up to 31 UTF-16 code units plus a NUL terminator.
	n := len(nameUnits)
	if n > MaxNameLen*2 {
		n = MaxNameLen * 2
	}
	copy(buf[0:n], nameUnits[:n])
	binary.LittleEndian.PutUint16(buf[64:66], uint16(n+2))
	buf[66] = e.ObjType
	buf[67] = e.Color
	binary.LittleEndian.PutUint32(buf[68:72], e.Left)
	binary.LittleEndian.PutUint32(buf[72:76], e.Right)
	binary.LittleEndian.PutUint32(buf[76:80], e.Child)
	copy(buf[80:96], reorderCLSID(e.CLSID[:]))
	binary.LittleEndian.PutUint32(buf[96:100], e.StateBits)
	binary.LittleEndian.PutUint64(buf[100:108], e.CreationTime)
	binary.LittleEndian.PutUint64(buf[108:116], e.ModifiedTime)
	binary.LittleEndian.PutUint32(buf[116:120], e.StartSector)
	binary.LittleEndian.PutUint64(buf[120:128], e.StreamSize)
	return buf
}

// reorderCLSID converts between the CFB on-disk CLSID byte order (three
// little-endian fields followed by raw bytes) and the RFC 4122 order
// uuid.UUID expects; the transform is its own inverse.
func reorderCLSID(b []byte) []byte {
	if len(b) != 16 {
		return make([]byte, 16)
	}
	out := make([]byte, 16)
	out[0], out[1], out[2], out[3] = b[3], b[2], b[1], b[0]
	out[4], out[5] = b[5], b[4]
	out[6], out[7] = b[7], b[6]
	copy(out[8:], b[8:])
	return out
}
