package cfb

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// CompoundFile is a parsed CFB container: every stream reachable from the
// root, keyed by its "/"-delimited path.
type CompoundFile struct {
	streams map[string][]byte
	order   []string // directory order streams were discovered in, root-first
}

// Stream returns the payload of the named stream ("/"-delimited, e.g.
// "BodyText/Section0"). A leading slash is optional.
func (c *CompoundFile) Stream(path string) ([]byte, error) {
	key := strings.TrimPrefix(path, "/")
	data, ok := c.streams[key]
	if !ok {
		return nil, &MissingStream{Path: path}
	}
	return data, nil
}

// Streams lists every stream path in the container, directory order.
func (c *CompoundFile) Streams() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Read parses a complete CFB container held in memory.
func Read(data []byte) (*CompoundFile, error) {
	hdr, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	sectorLen := 1 << SectorShiftV3

	fat, err := readFAT(data, hdr, sectorLen)
	if err != nil {
		return nil, err
	}

	dirSectors, err := followChain(fat, hdr.FirstDirSector)
	if err != nil {
		return nil, err
	}
	entries, err := readDirectory(data, dirSectors, sectorLen)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &CorruptCfb{Detail: "empty directory"}
	}
	root := entries[0]
	if root.ObjType != ObjRoot {
		return nil, &CorruptCfb{Detail: "first directory entry is not root"}
	}

	miniFATSectors, err := followChain(fat, hdr.FirstMinifatSector)
	if err != nil {
		return nil, err
	}
	miniFATTable, err := readFATFromSectors(data, miniFATSectors, sectorLen)
	if err != nil {
		return nil, err
	}

	miniStream, err := readSectorChain(data, fat, root.StartSector, sectorLen, int64(root.StreamSize))
	if err != nil {
		return nil, err
	}

	cf := &CompoundFile{streams: map[string][]byte{}}
	var walkErr error
	walkDir(entries, 0, "", func(path string, e *dirEntry) {
		if walkErr != nil || e.ObjType != ObjStream {
			return
		}
		var payload []byte
		var err error
		if e.StreamSize < MiniStreamCutoff {
			payload, err = readMiniChain(miniStream, miniFATTable, e.StartSector, int64(e.StreamSize))
		} else {
			payload, err = readSectorChain(data, fat, e.StartSector, sectorLen, int64(e.StreamSize))
		}
		if err != nil {
			walkErr = err
			return
		}
		cf.streams[path] = payload
		cf.order = append(cf.order, path)
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return cf, nil
}

// readFAT assembles the full FAT sector->next-sector table by following
// DIFAT entries (header-resident first, then DIFAT sector chain).
func readFAT(data []byte, hdr *header, sectorLen int) (map[uint32]uint32, error) {
	if hdr == nil {
		return map[uint32]uint32{}, nil
	}
	var fatSectors []uint32
	for _, s := range hdr.Difat {
		if s == FreeSector {
			continue
		}
		fatSectors = append(fatSectors, s)
	}
	// Additional DIFAT sectors beyond the 109 resident in the header.
	next := hdr.FirstDifatSector
	seen := map[uint32]bool{}
	for next != EndOfChain && next != FreeSector {
		if seen[next] {
			return nil, &CycleInChain{Sector: next}
		}
		seen[next] = true
		sec, err := readSector(data, next, sectorLen)
		if err != nil {
			return nil, err
		}
		nEntries := sectorLen/4 - 1
		for i := 0; i < nEntries; i++ {
			v := binary.LittleEndian.Uint32(sec[i*4:])
			if v != FreeSector {
				fatSectors = append(fatSectors, v)
			}
		}
		next = binary.LittleEndian.Uint32(sec[nEntries*4:])
	}
	return readFATFromSectors(data, fatSectors, sectorLen)
}

func readFATFromSectors(data []byte, fatSectors []uint32, sectorLen int) (map[uint32]uint32, error) {
	table := map[uint32]uint32{}
	entriesPerSector := sectorLen / 4
	for i, secNum := range fatSectors {
		sec, err := readSector(data, secNum, sectorLen)
		if err != nil {
			return nil, err
		}
		base := uint32(i * entriesPerSector)
		for i := 0; i < entriesPerSector; i++ {
			table[base+uint32(i)] = binary.LittleEndian.Uint32(sec[i*4:])
		}
	}
	return table, nil
}

func readSector(data []byte, secNum uint32, sectorLen int) ([]byte, error) {
	off := HeaderLen + int(secNum)*sectorLen
	if off+sectorLen > len(data) {
		return nil, &CorruptCfb{Detail: fmt.Sprintf("sector %d out of range", secNum)}
	}
	return data[off : off+sectorLen], nil
}

func followChain(fat map[uint32]uint32, start uint32) ([]uint32, error) {
	var out []uint32
	seen := map[uint32]bool{}
	cur := start
	for cur != EndOfChain && cur != FreeSector {
		if seen[cur] {
			return nil, &CycleInChain{Sector: cur}
		}
		seen[cur] = true
		out = append(out, cur)
		next, ok := fat[cur]
		if !ok {
			return nil, &CorruptCfb{Detail: fmt.Sprintf("sector %d missing from FAT", cur)}
		}
		cur = next
	}
	return out, nil
}

func readSectorChain(data []byte, fat map[uint32]uint32, start uint32, sectorLen int, size int64) ([]byte, error) {
	sectors, err := followChain(fat, start)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(sectors)*sectorLen)
	for _, s := range sectors {
		sec, err := readSector(data, s, sectorLen)
		if err != nil {
			return nil, err
		}
		out = append(out, sec...)
	}
	if size >= 0 && int64(len(out)) > size {
		out = out[:size]
	}
	return out, nil
}

func readMiniChain(miniStream []byte, miniFAT map[uint32]uint32, start uint32, size int64) ([]byte, error) {
	var sectors []uint32
	seen := map[uint32]bool{}
	cur := start
	for cur != EndOfChain && cur != FreeSector {
		if seen[cur] {
			return nil, &CycleInChain{Sector: cur}
		}
		seen[cur] = true
		sectors = append(sectors, cur)
		next, ok := miniFAT[cur]
		if !ok {
			return nil, &CorruptCfb{Detail: "mini sector missing from miniFAT"}
		}
		cur = next
	}
	out := make([]byte, 0, len(sectors)*MiniSectorLen)
	for _, s := range sectors {
		off := int(s) * MiniSectorLen
		if off+MiniSectorLen > len(miniStream) {
			return nil, &CorruptCfb{Detail: "mini sector out of range"}
		}
		out = append(out, miniStream[off:off+MiniSectorLen]...)
	}
	if size >= 0 && int64(len(out)) > size {
		out = out[:size]
	}
	return out, nil
}

func readDirectory(data []byte, sectors []uint32, sectorLen int) ([]*dirEntry, error) {
	var entries []*dirEntry
	for _, secNum := range sectors {
		sec, err := readSector(data, secNum, sectorLen)
		if err != nil {
			return nil, err
		}
		for off := 0; off+DirEntryLen <= len(sec); off += DirEntryLen {
			e, err := readDirEntry(sec[off : off+DirEntryLen])
			if err != nil {
				return nil, err
			}
			if e.ObjType == ObjUnallocated {
				continue
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// walkDir recursively visits the directory red-black tree rooted at
// entries[idx]'s child, invoking fn for every stream it finds with its
// full "/"-delimited path. Storages recurse into their own Child pointer;
// siblings are reached via Left/Right.
func walkDir(entries []*dirEntry, idx uint32, prefix string, fn func(path string, e *dirEntry)) {
	if idx == NoStream || int(idx) >= len(entries) {
		return
	}
	e := entries[idx]
	walkDir(entries, e.Left, prefix, fn)

	path := e.Name
	if prefix != "" {
		path = prefix + "/" + e.Name
	}
	if e.ObjType == ObjRoot {
		path = prefix
	}
	switch e.ObjType {
	case ObjStream:
		fn(path, e)
	case ObjStorage, ObjRoot:
		childPrefix := path
		walkDir(entries, e.Child, childPrefix, fn)
	}
	walkDir(entries, e.Right, prefix, fn)
}
