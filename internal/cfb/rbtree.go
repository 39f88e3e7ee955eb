package cfb

// rbBuilder inserts directory entries into a red-black tree using the
// standard CLRS insertion + fixup algorithm, keyed by compareNames. This
// is what actually guarantees spec.md §3.5/§8 S6's invariants ("no two
// consecutive reds", "equal black depth to every leaf") for an arbitrary
// (unbalanced) set of sibling names, which a simple balanced-bisection
// coloring does not.
type rbBuilder struct {
	entries []*dirEntry
	parent  map[uint32]uint32
}

func newRBBuilder(entries []*dirEntry) *rbBuilder {
	return &rbBuilder{entries: entries, parent: map[uint32]uint32{}}
}

func (b *rbBuilder) insert(root, z uint32, less func(a, b uint32) bool) uint32 {
	var y uint32 = NoStream
	x := root
	for x != NoStream {
		y = x
		if less(z, x) {
			x = b.entries[x].Left
		} else {
			x = b.entries[x].Right
		}
	}
	b.parent[z] = y
	if y == NoStream {
		root = z
	} else if less(z, y) {
		b.entries[y].Left = z
	} else {
		b.entries[y].Right = z
	}
	b.entries[z].Left = NoStream
	b.entries[z].Right = NoStream
	b.entries[z].Color = ColorRed
	return b.fixup(root, z)
}

func (b *rbBuilder) rotateLeft(root, x uint32) uint32 {
	y := b.entries[x].Right
	b.entries[x].Right = b.entries[y].Left
	if b.entries[y].Left != NoStream {
		b.parent[b.entries[y].Left] = x
	}
	b.parent[y] = b.parent[x]
	px := b.parent[x]
	if px == NoStream {
		root = y
	} else if b.entries[px].Left == x {
		b.entries[px].Left = y
	} else {
		b.entries[px].Right = y
	}
	b.entries[y].Left = x
	b.parent[x] = y
	return root
}

func (b *rbBuilder) rotateRight(root, x uint32) uint32 {
	y := b.entries[x].Left
	b.entries[x].Left = b.entries[y].Right
	if b.entries[y].Right != NoStream {
		b.parent[b.entries[y].Right] = x
	}
	b.parent[y] = b.parent[x]
	px := b.parent[x]
	if px == NoStream {
		root = y
	} else if b.entries[px].Right == x {
		b.entries[px].Right = y
	} else {
		b.entries[px].Left = y
	}
	b.entries[y].Right = x
	b.parent[x] = y
	return root
}

func (b *rbBuilder) fixup(root, z uint32) uint32 {
	for {
		p, ok := b.parent[z]
		if !ok || p == NoStream || b.entries[p].Color != ColorRed {
			break
		}
		gp, ok := b.parent[p]
		if !ok || gp == NoStream {
			break
		}
		if b.entries[gp].Left == p {
			y := b.entries[gp].Right
			if y != NoStream && b.entries[y].Color == ColorRed {
				b.entries[p].Color = ColorBlack
				b.entries[y].Color = ColorBlack
				b.entries[gp].Color = ColorRed
				z = gp
				continue
			}
			if b.entries[p].Right == z {
				root = b.rotateLeft(root, p)
				z = p
				p = b.parent[z]
			}
			b.entries[p].Color = ColorBlack
			b.entries[gp].Color = ColorRed
			root = b.rotateRight(root, gp)
		} else {
			y := b.entries[gp].Left
			if y != NoStream && b.entries[y].Color == ColorRed {
				b.entries[p].Color = ColorBlack
				b.entries[y].Color = ColorBlack
				b.entries[gp].Color = ColorRed
				z = gp
				continue
			}
			if b.entries[p].Left == z {
				root = b.rotateRight(root, p)
				z = p
				p = b.parent[z]
			}
			b.entries[p].Color = ColorBlack
			b.entries[gp].Color = ColorRed
			root = b.rotateLeft(root, gp)
		}
	}
	b.entries[root].Color = ColorBlack
	return root
}
