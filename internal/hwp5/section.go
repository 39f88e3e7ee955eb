package hwp5

import (
	"github.com/hwp5go/hwp5/bytecursor"
	"github.com/hwp5go/hwp5/internal/record"
)

// lastInListBit is bit 15 of PARA_HEADER's control mask (spec.md §3.5).
const lastInListBit uint32 = 1 << 15

// Section is one BodyText/Section{i} stream's content (spec.md §3.3).
type Section struct {
	Paragraphs []*Paragraph
}

// ParaHeader is HWPTAG_PARA_HEADER (spec.md §4.4.3).
type ParaHeader struct {
	TextLen           uint32
	ControlMask       uint32
	ParaShapeID       uint16
	StyleID           uint8
	ColumnType        uint8
	CharShapeCount    uint16
	LineSegCount      uint16
	RangeTagCount     uint16
	MemoCount         uint16
	InstanceID        uint32
	HasChangeTracking bool
	ChangeTracking    uint16
}

func (h *ParaHeader) LastInList() bool    { return h.ControlMask&lastInListBit != 0 }
func (h *ParaHeader) SetLastInList(v bool) {
	if v {
		h.ControlMask |= lastInListBit
	} else {
		h.ControlMask &^= lastInListBit
	}
}

func decodeParaHeader(data []byte) (*ParaHeader, error) {
	r := bytecursor.NewReader(data)
	h := &ParaHeader{}
	var err error
	if h.TextLen, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.ControlMask, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.ParaShapeID, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if h.StyleID, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if h.ColumnType, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if h.CharShapeCount, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if h.LineSegCount, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if h.RangeTagCount, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if h.MemoCount, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if h.InstanceID, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if r.Remaining() >= 2 {
		h.HasChangeTracking = true
		if h.ChangeTracking, err = r.ReadU16(); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *ParaHeader) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU32(h.TextLen)
	w.WriteU32(h.ControlMask)
	w.WriteU16(h.ParaShapeID)
	w.WriteU8(h.StyleID)
	w.WriteU8(h.ColumnType)
	w.WriteU16(h.CharShapeCount)
	w.WriteU16(h.LineSegCount)
	w.WriteU16(h.RangeTagCount)
	w.WriteU16(h.MemoCount)
	w.WriteU32(h.InstanceID)
	if h.HasChangeTracking {
		w.WriteU16(h.ChangeTracking)
	}
	return w.Bytes()
}

// ParaCharShapeRun is one (position, char_shape_id) pair of
// HWPTAG_PARA_CHAR_SHAPE.
type ParaCharShapeRun struct {
	Position    uint32
	CharShapeID uint32
}

func decodeParaCharShapes(data []byte) ([]ParaCharShapeRun, error) {
	r := bytecursor.NewReader(data)
	var runs []ParaCharShapeRun
	for r.Remaining() >= 8 {
		pos, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		id, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		runs = append(runs, ParaCharShapeRun{Position: pos, CharShapeID: id})
	}
	return runs, nil
}

func encodeParaCharShapes(runs []ParaCharShapeRun) []byte {
	w := bytecursor.NewWriter()
	for _, r := range runs {
		w.WriteU32(r.Position)
		w.WriteU32(r.CharShapeID)
	}
	return w.Bytes()
}

// ParaLineSeg is one 36-byte HWPTAG_PARA_LINE_SEG entry (spec.md §4.4.3).
// Its field layout isn't enumerated by name; writers may emit a single
// minimal (zeroed) entry, so it's carried as a fixed-size opaque blob.
type ParaLineSeg struct{ Raw [36]byte }

func decodeParaLineSegs(data []byte) ([]ParaLineSeg, error) {
	var segs []ParaLineSeg
	for off := 0; off+36 <= len(data); off += 36 {
		var s ParaLineSeg
		copy(s.Raw[:], data[off:off+36])
		segs = append(segs, s)
	}
	return segs, nil
}

func encodeParaLineSegs(segs []ParaLineSeg) []byte {
	out := make([]byte, 0, len(segs)*36)
	for _, s := range segs {
		out = append(out, s.Raw[:]...)
	}
	return out
}

// MinimalLineSeg is the single zeroed entry a Writer may emit instead of
// computing real layout (spec.md §4.4.3).
func MinimalLineSeg() ParaLineSeg { return ParaLineSeg{} }

// ParaRangeTag is HWPTAG_PARA_RANGE_TAG: a tagged [start,end) text range,
// used by hyperlinks (spec.md §4.4.3, S4).
type ParaRangeTag struct {
	Start uint32
	End   uint32
	Tag   uint32
}

func decodeParaRangeTags(data []byte) ([]ParaRangeTag, error) {
	r := bytecursor.NewReader(data)
	var tags []ParaRangeTag
	for r.Remaining() >= 12 {
		var t ParaRangeTag
		var err error
		if t.Start, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if t.End, err = r.ReadU32(); err != nil {
			return nil, err
		}
		if t.Tag, err = r.ReadU32(); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func encodeParaRangeTags(tags []ParaRangeTag) []byte {
	w := bytecursor.NewWriter()
	for _, t := range tags {
		w.WriteU32(t.Start)
		w.WriteU32(t.End)
		w.WriteU32(t.Tag)
	}
	return w.Bytes()
}

// Paragraph is one folded PARA_HEADER + its children (spec.md §4.6 step 4).
type Paragraph struct {
	Header         *ParaHeader
	Text           string
	InlineControls []InlineControl
	CharShapes     []ParaCharShapeRun
	LineSegs       []ParaLineSeg
	RangeTags      []ParaRangeTag
	Controls       []*Control
}

// fourCC reads the first 4 bytes of a CTRL_HEADER body as an ASCII tag.
func fourCC(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	return string(data[0:4])
}

func buildParagraph(node *record.Node) (*Paragraph, error) {
	header, err := decodeParaHeader(node.Data)
	if err != nil {
		return nil, &CorruptRecord{Tag: node.Tag, Detail: err.Error()}
	}
	p := &Paragraph{Header: header}
	for _, child := range node.Children {
		switch child.Tag {
		case TagParaText:
			text, controls, err := DecodeParaText(child.Data)
			if err != nil {
				return nil, &CorruptRecord{Tag: child.Tag, Detail: err.Error()}
			}
			p.Text = text
			p.InlineControls = controls
		case TagParaCharShape:
			runs, err := decodeParaCharShapes(child.Data)
			if err != nil {
				return nil, &CorruptRecord{Tag: child.Tag, Detail: err.Error()}
			}
			p.CharShapes = runs
		case TagParaLineSeg:
			segs, err := decodeParaLineSegs(child.Data)
			if err != nil {
				return nil, &CorruptRecord{Tag: child.Tag, Detail: err.Error()}
			}
			p.LineSegs = segs
		case TagParaRangeTag:
			tags, err := decodeParaRangeTags(child.Data)
			if err != nil {
				return nil, &CorruptRecord{Tag: child.Tag, Detail: err.Error()}
			}
			p.RangeTags = tags
		case TagCtrlHeader:
			ctrl, err := buildControl(child)
			if err != nil {
				return nil, err
			}
			p.Controls = append(p.Controls, ctrl)
		}
	}
	return p, nil
}

func buildControl(node *record.Node) (*Control, error) {
	fc := fourCC(node.Data)
	props := node.Data
	if len(node.Data) > 4 {
		props = node.Data[4:]
	} else {
		props = nil
	}
	c := &Control{FourCC: fc, Props: props}
	switch fc {
	case CtrlSectionDef:
		sd := &SectionDef{Props: props}
		for _, child := range node.Children {
			switch child.Tag {
			case TagPageDef:
				pd, err := decodePageDef(child.Data)
				if err != nil {
					return nil, &CorruptRecord{Tag: child.Tag, Detail: err.Error()}
				}
				sd.PageDef = pd
			case TagFootnoteShape:
				sd.FootnoteShape = &FootnoteShape{Raw: append([]byte{}, child.Data...)}
			case TagPageBorderFill:
				sd.PageBorderFill = &PageBorderFill{Raw: append([]byte{}, child.Data...)}
			}
		}
		c.SectionDef = sd
	case CtrlColumnDef:
		c.ColumnDef = &ColumnDef{Props: props, Descendants: flattenDescendants(node)}
	case CtrlHeader, CtrlFooter:
		hf := &HeaderFooter{Props: props}
		for _, child := range node.Children {
			if child.Tag == TagListHeader {
				lh, err := decodeListHeader(child.Data)
				if err != nil {
					return nil, &CorruptRecord{Tag: child.Tag, Detail: err.Error()}
				}
				hf.ListHeader = lh
				for _, pchild := range child.Children {
					if pchild.Tag == TagParaHeader {
						para, err := buildParagraph(pchild)
						if err != nil {
							return nil, err
						}
						hf.Paragraphs = append(hf.Paragraphs, para)
					}
				}
			}
		}
		if fc == CtrlHeader {
			c.HeaderDef = hf
		} else {
			c.FooterDef = hf
		}
	case CtrlPicture:
		c.Picture = &Picture{Props: props, Descendants: flattenDescendants(node)}
	case CtrlHyperlink:
		c.Hyperlink = decodeHyperlinkProps(props)
	case CtrlTable:
		table, err := buildTable(node)
		if err != nil {
			return nil, err
		}
		c.Table = table
	default:
		c.Opaque = &OpaqueControl{Descendants: flattenDescendants(node)}
	}
	return c, nil
}

func buildTable(ctrlNode *record.Node) (*Table, error) {
	var table *Table
	var cells []*TableCell
	for _, child := range ctrlNode.Children {
		switch child.Tag {
		case TagTable:
			t, err := decodeTable(child.Data)
			if err != nil {
				return nil, &CorruptRecord{Tag: child.Tag, Detail: err.Error()}
			}
			table = t
		case TagListHeader:
			lh, err := decodeListHeader(child.Data)
			if err != nil {
				return nil, &CorruptRecord{Tag: child.Tag, Detail: err.Error()}
			}
			cell := &TableCell{ListHeader: lh, RowSpan: 1, ColSpan: 1}
			for _, pchild := range child.Children {
				if pchild.Tag == TagParaHeader {
					para, err := buildParagraph(pchild)
					if err != nil {
						return nil, err
					}
					cell.Paragraphs = append(cell.Paragraphs, para)
				}
			}
			cells = append(cells, cell)
		}
	}
	if table == nil {
		table = &Table{}
	}
	placeCells(table, cells)
	return table, nil
}

// placeCells lays cells into a row-major grid, grounded on the teacher's
// arrangeCellsInTable (internal/parser/hwp5/section.go).
func placeCells(table *Table, cells []*TableCell) {
	if table.Rows == 0 || table.Cols == 0 {
		table.Rows = uint16((len(cells) + 1) / maxInt(1, int(table.Cols)|1))
	}
	if table.Rows == 0 || table.Cols == 0 {
		return
	}
	table.Cells = make([][]*TableCell, table.Rows)
	for i := range table.Cells {
		table.Cells[i] = make([]*TableCell, table.Cols)
	}
	idx := 0
	for row := 0; row < int(table.Rows) && idx < len(cells); row++ {
		for col := 0; col < int(table.Cols) && idx < len(cells); col++ {
			if table.Cells[row][col] != nil {
				continue
			}
			cell := cells[idx]
			cell.Row, cell.Col = row, col
			table.Cells[row][col] = cell
			idx++
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// flattenDescendants walks a node's subtree in source order for opaque
// preservation (spec.md §9).
func flattenDescendants(node *record.Node) []record.Record {
	var out []record.Record
	var walk func(n *record.Node)
	walk = func(n *record.Node) {
		for _, c := range n.Children {
			out = append(out, c.Record)
			walk(c)
		}
	}
	walk(node)
	return out
}

// EncodeSection serializes a Section's paragraphs back into
// BodyText/Section record form, in the same order they were folded.
func EncodeSection(s *Section) []byte {
	var recs []record.Record
	for _, p := range s.Paragraphs {
		recs = append(recs, encodeParagraph(p, 0)...)
	}
	return record.Encode(recs)
}

func encodeParagraph(p *Paragraph, level uint16) []record.Record {
	recs := []record.Record{{Tag: TagParaHeader, Level: level, Data: p.Header.encode()}}
	recs = append(recs, record.Record{Tag: TagParaText, Level: level + 1, Data: EncodeParaText(p.Text, p.InlineControls)})
	if len(p.CharShapes) > 0 {
		recs = append(recs, record.Record{Tag: TagParaCharShape, Level: level + 1, Data: encodeParaCharShapes(p.CharShapes)})
	}
	if len(p.LineSegs) > 0 {
		recs = append(recs, record.Record{Tag: TagParaLineSeg, Level: level + 1, Data: encodeParaLineSegs(p.LineSegs)})
	}
	if len(p.RangeTags) > 0 {
		recs = append(recs, record.Record{Tag: TagParaRangeTag, Level: level + 1, Data: encodeParaRangeTags(p.RangeTags)})
	}
	for _, c := range p.Controls {
		recs = append(recs, encodeControl(c, level+1)...)
	}
	return recs
}

func encodeControl(c *Control, level uint16) []record.Record {
	props := c.Props
	if props == nil && c.Hyperlink != nil {
		props = c.Hyperlink.encode()
	}
	body := append([]byte(c.FourCC), props...)
	recs := []record.Record{{Tag: TagCtrlHeader, Level: level, Data: body}}
	switch {
	case c.SectionDef != nil:
		if c.SectionDef.PageDef != nil {
			recs = append(recs, record.Record{Tag: TagPageDef, Level: level + 1, Data: c.SectionDef.PageDef.encode()})
		}
		if c.SectionDef.FootnoteShape != nil {
			recs = append(recs, record.Record{Tag: TagFootnoteShape, Level: level + 1, Data: c.SectionDef.FootnoteShape.Raw})
		}
		if c.SectionDef.PageBorderFill != nil {
			recs = append(recs, record.Record{Tag: TagPageBorderFill, Level: level + 1, Data: c.SectionDef.PageBorderFill.Raw})
		}
	case c.HeaderDef != nil:
		recs = append(recs, encodeHeaderFooter(c.HeaderDef, level+1)...)
	case c.FooterDef != nil:
		recs = append(recs, encodeHeaderFooter(c.FooterDef, level+1)...)
	case c.Table != nil:
		recs = append(recs, encodeTable(c.Table, level+1)...)
	case c.Picture != nil:
		recs = append(recs, c.Picture.Descendants...)
	case c.ColumnDef != nil:
		recs = append(recs, c.ColumnDef.Descendants...)
	case c.Opaque != nil:
		recs = append(recs, c.Opaque.Descendants...)
	}
	return recs
}

func encodeHeaderFooter(hf *HeaderFooter, level uint16) []record.Record {
	lh := hf.ListHeader
	if lh == nil {
		lh = &ListHeader{ParaCount: uint16(len(hf.Paragraphs))}
	}
	recs := []record.Record{{Tag: TagListHeader, Level: level, Data: lh.encode()}}
	for _, p := range hf.Paragraphs {
		recs = append(recs, encodeParagraph(p, level+1)...)
	}
	return recs
}

func encodeTable(t *Table, level uint16) []record.Record {
	recs := []record.Record{{Tag: TagTable, Level: level, Data: t.encode()}}
	for _, row := range t.Cells {
		for _, cell := range row {
			if cell == nil {
				continue
			}
			lh := cell.ListHeader
			if lh == nil {
				lh = &ListHeader{ParaCount: uint16(len(cell.Paragraphs))}
			}
			recs = append(recs, record.Record{Tag: TagListHeader, Level: level, Data: lh.encode()})
			for _, p := range cell.Paragraphs {
				recs = append(recs, encodeParagraph(p, level+1)...)
			}
		}
	}
	return recs
}

// DecodeSection decodes a BodyText/Section stream's decompressed payload.
func DecodeSection(data []byte) (*Section, error) {
	recs, err := record.Decode(data)
	if err != nil {
		return nil, err
	}
	forest, err := record.AssembleTree(recs)
	if err != nil {
		return nil, err
	}
	s := &Section{}
	for _, node := range forest {
		if node.Tag != TagParaHeader {
			continue
		}
		p, err := buildParagraph(node)
		if err != nil {
			return nil, err
		}
		s.Paragraphs = append(s.Paragraphs, p)
	}
	return s, nil
}
