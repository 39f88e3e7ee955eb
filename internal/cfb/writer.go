package cfb

import (
	"encoding/binary"
	"sort"

	"github.com/google/uuid"
)

// Writer accumulates path -> payload entries and lays them out into a
// valid CFB byte stream on Bytes(). It is not required to reproduce any
// reference file's sector layout (spec.md §4.2): it only has to parse
// losslessly and keep the directory in valid red-black order (spec.md
// §3.5, §8 S6).
type Writer struct {
	root *wNode
}

type wNode struct {
	name     string
	isStream bool
	data     []byte
	children map[string]*wNode
	clsid    uuid.UUID
}

// NewWriter creates an empty container builder.
func NewWriter() *Writer {
	return &Writer{root: &wNode{name: RootEntryName, children: map[string]*wNode{}}}
}

// Put registers a stream at a "/"-delimited path, creating intermediate
// storages as needed.
func (w *Writer) Put(path string, data []byte) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return
	}
	node := w.root
	for _, p := range parts[:len(parts)-1] {
		child, ok := node.children[p]
		if !ok {
			child = &wNode{name: p, children: map[string]*wNode{}}
			node.children[p] = child
		}
		node = child
	}
	leaf := parts[len(parts)-1]
	node.children[leaf] = &wNode{name: leaf, isStream: true, data: data}
}

// SetRootCLSID sets the CLSID stamped into the root directory entry.
// HWP writers normally leave it zero; this exists so round-tripping a
// file that did set one is possible (spec.md §3 DOMAIN STACK note on
// github.com/google/uuid wiring).
func (w *Writer) SetRootCLSID(id uuid.UUID) { w.root.clsid = id }

// sector allocator

type sectorAllocator struct {
	sectors [][]byte
	fat     map[uint32]uint32
}

func newAllocator() *sectorAllocator {
	return &sectorAllocator{fat: map[uint32]uint32{}}
}

// allocChain splits data into 512-byte sectors (last one zero-padded),
// appends them to the allocator, chains them in the FAT, and returns the
// starting sector number (or EndOfChain for empty data).
func (a *sectorAllocator) allocChain(data []byte) uint32 {
	if len(data) == 0 {
		return EndOfChain
	}
	const sectorLen = 1 << SectorShiftV3
	n := (len(data) + sectorLen - 1) / sectorLen
	start := uint32(len(a.sectors))
	for i := 0; i < n; i++ {
		sec := make([]byte, sectorLen)
		lo := i * sectorLen
		hi := lo + sectorLen
		if hi > len(data) {
			hi = len(data)
		}
		copy(sec, data[lo:hi])
		a.sectors = append(a.sectors, sec)
		secNum := start + uint32(i)
		if i == n-1 {
			a.fat[secNum] = EndOfChain
		} else {
			a.fat[secNum] = secNum + 1
		}
	}
	return start
}

// Bytes lays out the header, FAT, directory, mini-FAT, mini-stream and all
// stream data, and returns the complete CFB byte image.
func (w *Writer) Bytes() []byte {
	alloc := newAllocator()

	// 1. Split streams into "big" (regular sectors) and "small" (mini
	// stream pool) by spec.md's 4096-byte cutoff.
	var leaves []*wNode
	collectLeaves(w.root, &leaves)

	var miniPool []byte
	miniStarts := map[*wNode]uint32{}
	miniFAT := map[uint32]uint32{}
	for _, leaf := range leaves {
		if len(leaf.data) > 0 && len(leaf.data) < MiniStreamCutoff {
			start := uint32(len(miniPool) / MiniSectorLen)
			n := (len(leaf.data) + MiniSectorLen - 1) / MiniSectorLen
			padded := make([]byte, n*MiniSectorLen)
			copy(padded, leaf.data)
			miniPool = append(miniPool, padded...)
			for i := 0; i < n; i++ {
				s := start + uint32(i)
				if i == n-1 {
					miniFAT[s] = EndOfChain
				} else {
					miniFAT[s] = s + 1
				}
			}
			miniStarts[leaf] = start
		}
	}

	// 2. Allocate regular-sector chains for big streams.
	bigStarts := map[*wNode]uint32{}
	for _, leaf := range leaves {
		if len(leaf.data) >= MiniStreamCutoff {
			bigStarts[leaf] = alloc.allocChain(leaf.data)
		}
	}

	// 3. The mini-stream pool itself is an ordinary stream owned by root.
	rootStart := alloc.allocChain(miniPool)

	// 4. miniFAT table serialized into regular sectors.
	miniFATBytes := make([]byte, len(miniFAT)*4)
	for i := 0; i < len(miniFAT); i++ {
		binary.LittleEndian.PutUint32(miniFATBytes[i*4:], miniFAT[uint32(i)])
	}
	miniFATStart := alloc.allocChain(miniFATBytes)
	if len(miniFAT) == 0 {
		miniFATStart = EndOfChain
	}

	// 5. Directory entries, red-black ordered per storage.
	entries := buildDirectory(w.root, bigStarts, miniStarts, rootStart, uint64(len(miniPool)))

	dirBytes := make([]byte, len(entries)*DirEntryLen)
	for i, e := range entries {
		copy(dirBytes[i*DirEntryLen:], e.bytes())
	}
	dirStart := alloc.allocChain(dirBytes)

	// 6. FAT sectors. Grow the count until it can describe every sector
	// allocated so far plus itself.
	const entriesPerFatSector = (1 << SectorShiftV3) / 4
	numFat := 1
	for {
		total := len(alloc.sectors) + numFat
		if total <= numFat*entriesPerFatSector {
			break
		}
		numFat++
	}
	totalSectors := len(alloc.sectors) + numFat
	fatTable := make([]uint32, totalSectors)
	for s, next := range alloc.fat {
		fatTable[s] = next
	}
	fatStart := uint32(len(alloc.sectors))
	for i := 0; i < numFat; i++ {
		fatTable[int(fatStart)+i] = FatSector
	}
	fatBytes := make([]byte, len(fatTable)*4)
	for i, v := range fatTable {
		binary.LittleEndian.PutUint32(fatBytes[i*4:], v)
	}
	for i := 0; i < numFat; i++ {
		off := i * (1 << SectorShiftV3)
		end := off + (1 << SectorShiftV3)
		if end > len(fatBytes) {
			end = len(fatBytes)
		}
		sec := make([]byte, 1<<SectorShiftV3)
		copy(sec, fatBytes[off:end])
		alloc.sectors = append(alloc.sectors, sec)
	}

	// 7. Header. Small documents keep all FAT sector numbers header-resident.
	hdr := &header{
		MajorVersion:       3,
		NumFatSectors:      uint32(numFat),
		FirstDirSector:     dirStart,
		FirstMinifatSector: miniFATStart,
		NumMinifatSectors:  uint32((len(miniFAT)*4 + (1<<SectorShiftV3)-1) / (1 << SectorShiftV3)),
		FirstDifatSector:   EndOfChain,
	}
	for i := range hdr.Difat {
		hdr.Difat[i] = FreeSector
	}
	for i := 0; i < numFat && i < MaxDifatInHeader; i++ {
		hdr.Difat[i] = fatStart + uint32(i)
	}
	out := make([]byte, 0, HeaderLen+len(alloc.sectors)*(1<<SectorShiftV3))
	out = append(out, hdr.bytes()...)
	for _, s := range alloc.sectors {
		out = append(out, s...)
	}
	return out
}

func collectLeaves(n *wNode, out *[]*wNode) {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := n.children[name]
		if c.isStream {
			*out = append(*out, c)
		} else {
			collectLeaves(c, out)
		}
	}
}

// buildDirectory flattens the storage tree into the CFB directory array:
// index 0 is always root; every storage's children form their own
// red-black tree reachable through that storage's Child pointer.
func buildDirectory(root *wNode, bigStarts, miniStarts map[*wNode]uint32, rootStart uint32, rootSize uint64) []*dirEntry {
	var entries []*dirEntry
	entries = append(entries, &dirEntry{
		Name:        RootEntryName,
		ObjType:     ObjRoot,
		Color:       ColorBlack,
		Left:        NoStream,
		Right:       NoStream,
		Child:       NoStream,
		CLSID:       root.clsid,
		StartSector: rootStart,
		StreamSize:  rootSize,
	})
	now := fixedTimestamp
	entries[0].Child = addChildren(root, entries[0], &entries, bigStarts, miniStarts, now)
	return entries
}

// fixedTimestamp stamps every directory entry with the same CFB FILETIME
// value. HWP's own writer does not preserve meaningful per-entry
// timestamps either; a constant keeps Write deterministic, which matters
// for the round-trip property tests (spec.md §8).
const fixedTimestamp uint64 = 0

// addChildren builds the red-black tree for one storage's children and
// appends their entries (and recursively their own children) to *entries,
// returning the tree's root index (or NoStream if empty).
func addChildren(parent *wNode, parentEntry *dirEntry, entries *[]*dirEntry, bigStarts, miniStarts map[*wNode]uint32, now uint64) uint32 {
	names := make([]string, 0, len(parent.children))
	for name := range parent.children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return compareNames(names[i], names[j]) < 0 })

	indices := make([]uint32, len(names))
	for i, name := range names {
		child := parent.children[name]
		idx := uint32(len(*entries))
		e := &dirEntry{
			Name:         name,
			Left:         NoStream,
			Right:        NoStream,
			Child:        NoStream,
			CreationTime: now,
			ModifiedTime: now,
		}
		if child.isStream {
			e.ObjType = ObjStream
			e.StreamSize = uint64(len(child.data))
			if start, ok := miniStarts[child]; ok {
				e.StartSector = start
			} else if start, ok := bigStarts[child]; ok {
				e.StartSector = start
			} else {
				e.StartSector = EndOfChain
			}
		} else {
			e.ObjType = ObjStorage
		}
		*entries = append(*entries, e)
		indices[i] = idx
	}
	// Insert one at a time through a textbook CLRS red-black insertion so
	// the result satisfies both invariants spec.md §8 S6 checks ("no two
	// consecutive reds, equal black depth to every leaf") regardless of
	// how unbalanced the sibling set is, rather than a balanced-bisection
	// coloring that only happens to work for perfectly-sized subtrees.
	rb := newRBBuilder(*entries)
	var root uint32 = NoStream
	for _, idx := range indices {
		root = rb.insert(root, idx, func(a, b uint32) bool {
			return compareNames(rb.entries[a].Name, rb.entries[b].Name) < 0
		})
	}
	*entries = rb.entries

	for i, idx := range indices {
		name := names[i]
		child := parent.children[name]
		if !child.isStream {
			(*entries)[idx].Child = addChildren(child, (*entries)[idx], entries, bigStarts, miniStarts, now)
		}
	}
	return root
}
