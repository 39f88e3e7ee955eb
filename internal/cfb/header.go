package cfb

import (
	"encoding/binary"

	"github.com/hwp5go/hwp5/bytecursor"
)

// header is the 512-byte CFB header.
type header struct {
	MinorVersion       uint16
	MajorVersion       uint16
	NumFatSectors      uint32
	FirstDirSector     uint32
	NumDirSectors      uint32 // version 4 only; 0 for version 3
	FirstMinifatSector uint32
	NumMinifatSectors  uint32
	FirstDifatSector   uint32
	NumDifatSectors    uint32
	Difat              [MaxDifatInHeader]uint32
}

func readHeader(data []byte) (*header, error) {
	if len(data) < HeaderLen {
		return nil, &bytecursor.Truncated{Needed: HeaderLen, Have: len(data)}
	}
	if [8]byte(data[0:8]) != MagicNumber {
		return nil, &BadSignature{}
	}
	r := bytecursor.NewReader(data)
	if err := r.Skip(8 + 16); err != nil { // magic + CLSID
		return nil, err
	}
	h := &header{}
	var err error
	if h.MinorVersion, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if h.MajorVersion, err = r.ReadU16(); err != nil {
		return nil, err
	}
	bom, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	if bom != ByteOrderMark {
		return nil, &CorruptCfb{Detail: "bad byte order mark"}
	}
	if h.MajorVersion != 3 && h.MajorVersion != 4 {
		return nil, &UnsupportedVersion{Found: h.MajorVersion}
	}
	sectorShift, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	miniShift, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	if int(sectorShift) != SectorShiftV3 && h.MajorVersion == 3 {
		return nil, &CorruptCfb{Detail: "unexpected sector shift for v3"}
	}
	if int(miniShift) != MiniSectorShift {
		return nil, &CorruptCfb{Detail: "unexpected mini sector shift"}
	}
	if err := r.Skip(6); err != nil { // reserved
		return nil, err
	}
	if h.NumDirSectors, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.NumFatSectors, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.FirstDirSector, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if err := r.Skip(4); err != nil { // transaction signature
		return nil, err
	}
	cutoff, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if cutoff != MiniStreamCutoff {
		return nil, &CorruptCfb{Detail: "unexpected mini stream cutoff"}
	}
	if h.FirstMinifatSector, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.NumMinifatSectors, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.FirstDifatSector, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.NumDifatSectors, err = r.ReadU32(); err != nil {
		return nil, err
	}
	for i := range h.Difat {
		if h.Difat[i], err = r.ReadU32(); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *header) bytes() []byte {
	buf := make([]byte, HeaderLen)
	copy(buf[0:8], MagicNumber[:])
	// CLSID left zero; offset 24
	binary.LittleEndian.PutUint16(buf[24:], h.MinorVersion)
	binary.LittleEndian.PutUint16(buf[26:], h.MajorVersion)
	binary.LittleEndian.PutUint16(buf[28:], ByteOrderMark)
	binary.LittleEndian.PutUint16(buf[30:], SectorShiftV3)
	binary.LittleEndian.PutUint16(buf[32:], MiniSectorShift)
	binary.LittleEndian.PutUint32(buf[40:], h.NumDirSectors)
	binary.LittleEndian.PutUint32(buf[44:], h.NumFatSectors)
	binary.LittleEndian.PutUint32(buf[48:], h.FirstDirSector)
	binary.LittleEndian.PutUint32(buf[56:], MiniStreamCutoff)
	binary.LittleEndian.PutUint32(buf[60:], h.FirstMinifatSector)
	binary.LittleEndian.PutUint32(buf[64:], h.NumMinifatSectors)
	binary.LittleEndian.PutUint32(buf[68:], h.FirstDifatSector)
	binary.LittleEndian.PutUint32(buf[72:], h.NumDifatSectors)
	for i, v := range h.Difat {
		binary.LittleEndian.PutUint32(buf[76+i*4:], v)
	}
	// Fill the rest of the DIFAT-in-header region with FreeSector where unused.
	for i := range h.Difat {
		off := 76 + i*4
		if h.Difat[i] == 0 && i >= int(h.NumDifatSectors) {
			binary.LittleEndian.PutUint32(buf[off:], FreeSector)
		}
	}
	return buf
}
