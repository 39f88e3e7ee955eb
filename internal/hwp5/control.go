package hwp5

import (
	"github.com/hwp5go/hwp5/bytecursor"
	"github.com/hwp5go/hwp5/internal/record"
)

// Control is one CTRL_HEADER-rooted record (spec.md §4.4.4): a 4-byte
// FOURCC dispatching to one of a closed set of bodies, modeled as a sum
// type keyed by FourCC rather than by inheritance (spec.md §9).
type Control struct {
	FourCC string
	Props  []byte // CTRL_HEADER body bytes after the FourCC, preserved verbatim

	SectionDef *SectionDef
	ColumnDef  *ColumnDef
	HeaderDef  *HeaderFooter
	FooterDef  *HeaderFooter
	Picture    *Picture
	Hyperlink  *Hyperlink
	Table      *Table

	// Opaque holds the control's CTRL_HEADER body plus every descendant
	// record verbatim, used whenever FourCC isn't one of the dispatched
	// kinds above (spec.md §9's open question on unknown control bodies).
	Opaque *OpaqueControl
}

// OpaqueControl round-trips a control this engine doesn't interpret.
type OpaqueControl struct {
	Descendants []record.Record // flattened in source order, re-nested by Level on encode
}

// SectionDef is the `secd` control: section geometry plus the page/
// footnote/border children spec.md §3.5 requires on the leading
// paragraph of every section.
type SectionDef struct {
	Props          []byte
	PageDef        *PageDef
	FootnoteShape  *FootnoteShape
	PageBorderFill *PageBorderFill
}

// ColumnDef is the `cold` control. Its body layout isn't enumerated by
// name in spec.md beyond "column define"; round-tripped opaquely, along
// with whatever child records it carries (spec.md §9).
type ColumnDef struct {
	Props       []byte
	Descendants []record.Record // flattened in source order, re-nested by Level on encode
}

// HeaderFooter backs `head`/`foot`: a LIST_HEADER-wrapped paragraph run.
type HeaderFooter struct {
	Props      []byte
	ListHeader *ListHeader
	Paragraphs []*Paragraph
}

// Picture is the `$pic` control. spec.md §4.4.4 defers its field layout
// to the HWP 5.0 spec outright; preserved opaquely, including its nested
// SHAPE_COMPONENT/TextArt child records (spec.md §9).
type Picture struct {
	Props       []byte
	Descendants []record.Record // flattened in source order, re-nested by Level on encode
}

// Hyperlink is the `gsh ` control: a range tag plus a destination URL
// (spec.md S4), the URL stored length-prefixed UTF-16LE like every other
// LPString field in this schema.
type Hyperlink struct {
	Props []byte
	URL   string
}

func decodeHyperlinkProps(props []byte) *Hyperlink {
	r := bytecursor.NewReader(props)
	url, err := r.ReadLPString()
	if err != nil {
		return &Hyperlink{Props: props}
	}
	return &Hyperlink{URL: url}
}

func (h *Hyperlink) encode() []byte {
	if h.Props != nil {
		return h.Props
	}
	w := bytecursor.NewWriter()
	w.WriteLPString(h.URL)
	return w.Bytes()
}

// PageDef is HWPTAG_PAGE_DEF: page size and margins, all HWPUnit.
type PageDef struct {
	Width, Height                                uint32
	Left, Right, Top, Bottom, Header, Footer, Gutter uint32
	Flags                                         uint32
}

func decodePageDef(data []byte) (*PageDef, error) {
	r := bytecursor.NewReader(data)
	p := &PageDef{}
	fields := []*uint32{&p.Width, &p.Height, &p.Left, &p.Right, &p.Top, &p.Bottom, &p.Header, &p.Footer, &p.Gutter}
	for _, f := range fields {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		*f = v
	}
	if r.Remaining() >= 4 {
		flags, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		p.Flags = flags
	}
	return p, nil
}

func (p *PageDef) encode() []byte {
	w := bytecursor.NewWriter()
	for _, v := range []uint32{p.Width, p.Height, p.Left, p.Right, p.Top, p.Bottom, p.Header, p.Footer, p.Gutter, p.Flags} {
		w.WriteU32(v)
	}
	return w.Bytes()
}

// FootnoteShape is HWPTAG_FOOTNOTE_SHAPE. spec.md §4.4.3 names the tag
// without enumerating fields; round-tripped opaquely.
type FootnoteShape struct{ Raw []byte }

// PageBorderFill is HWPTAG_PAGE_BORDER_FILL, likewise opaque.
type PageBorderFill struct{ Raw []byte }

// ListHeader is HWPTAG_LIST_HEADER: the paragraph-count/flags header that
// precedes the paragraphs of a table cell, header, or footer.
type ListHeader struct {
	ParaCount uint16
	Flags     uint32
	Extra     []byte // cell address/span/size fields when present (table cells)
}

func decodeListHeader(data []byte) (*ListHeader, error) {
	r := bytecursor.NewReader(data)
	lh := &ListHeader{}
	var err error
	if lh.ParaCount, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if r.Remaining() >= 4 {
		if lh.Flags, err = r.ReadU32(); err != nil {
			return nil, err
		}
	}
	lh.Extra, err = r.ReadBytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	lh.Extra = append([]byte{}, lh.Extra...)
	return lh, nil
}

func (lh *ListHeader) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU16(lh.ParaCount)
	w.WriteU32(lh.Flags)
	w.WriteBytes(lh.Extra)
	return w.Bytes()
}

// Table is HWPTAG_TABLE: grid dimensions and default cell geometry. Cells
// are carried on the owning Control, not here, since they're represented
// as LIST_HEADER children in the record tree rather than TABLE fields.
type Table struct {
	Rows, Cols                               uint16
	BorderFillID                             uint16
	CellSpacing                              int16
	LeftMargin, RightMargin, TopMargin, BottomMargin int16
	Cells                                    [][]*TableCell
}

// TableCell is one cell of a Table: its ListHeader plus its paragraphs.
type TableCell struct {
	Row, Col          int
	RowSpan, ColSpan  int
	ListHeader        *ListHeader
	Paragraphs        []*Paragraph
}

func decodeTable(data []byte) (*Table, error) {
	r := bytecursor.NewReader(data)
	t := &Table{}
	var err error
	if _, err = r.ReadU32(); err != nil { // properties, not modeled
		return nil, err
	}
	if t.Rows, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if t.Cols, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if t.CellSpacing, err = r.ReadI16(); err != nil {
		return nil, err
	}
	if t.LeftMargin, err = r.ReadI16(); err != nil {
		return nil, err
	}
	if t.RightMargin, err = r.ReadI16(); err != nil {
		return nil, err
	}
	if t.TopMargin, err = r.ReadI16(); err != nil {
		return nil, err
	}
	if t.BottomMargin, err = r.ReadI16(); err != nil {
		return nil, err
	}
	if r.Remaining() >= 2 {
		if t.BorderFillID, err = r.ReadU16(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU32(0)
	w.WriteU16(t.Rows)
	w.WriteU16(t.Cols)
	w.WriteI16(t.CellSpacing)
	w.WriteI16(t.LeftMargin)
	w.WriteI16(t.RightMargin)
	w.WriteI16(t.TopMargin)
	w.WriteI16(t.BottomMargin)
	w.WriteU16(t.BorderFillID)
	return w.Bytes()
}

// Text returns a cell's paragraphs joined by newlines, mirroring how the
// teacher's SectionParser exposed cell content.
func (c *TableCell) Text() string {
	var out string
	for i, p := range c.Paragraphs {
		if i > 0 {
			out += "\n"
		}
		out += p.Text
	}
	return out
}
