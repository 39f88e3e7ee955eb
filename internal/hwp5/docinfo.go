package hwp5

import (
	"github.com/hwp5go/hwp5/bytecursor"
	"github.com/hwp5go/hwp5/internal/record"
)

// DocInfo holds every shape/font/mapping table a paragraph's IDs can
// reference (spec.md §3.3). Grounded on the teacher's DocInfo/
// DocumentProperties/IDMappings/BinDataInfo/CharShape/ParaShape/Style
// structs (internal/parser/hwp5/docinfo.go), extended to bidirectional
// codecs and to the tags the teacher never implemented
// (BorderFill/TabDef/Numbering/Bullet).
type DocInfo struct {
	Properties *DocumentProperties
	IDMappings *IDMappings

	BinData     []*BinData
	Faces       [7][]*FaceName // indexed by language group, spec.md §4.4.2 order
	BorderFills []*BorderFill
	CharShapes  []*CharShape
	TabDefs     []*TabDef
	Numberings  []*Numbering
	Bullets     []*Bullet
	ParaShapes  []*ParaShape
	Styles      []*Style

	// Unknown records are preserved verbatim so Reader->Writer never
	// drops bytes it doesn't understand (spec.md §9 open question,
	// applied beyond just controls).
	Unknown []record.Record
}

// DocumentProperties is HWPTAG_DOCUMENT_PROPERTIES (spec.md §4.4.2).
type DocumentProperties struct {
	SectionCount  uint16
	PageStartNum  uint16
	FootnoteStart uint16
	EndnoteStart  uint16
	PictureStart  uint16
	TableStart    uint16
	EquationStart uint16
	CharCount     uint32
	WordCount     uint32
	PageCount     uint32
	CaretPosition uint32
}

func decodeDocumentProperties(data []byte) (*DocumentProperties, error) {
	r := bytecursor.NewReader(data)
	p := &DocumentProperties{}
	var err error
	if p.SectionCount, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if p.PageStartNum, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if p.FootnoteStart, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if p.EndnoteStart, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if p.PictureStart, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if p.TableStart, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if p.EquationStart, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if p.CharCount, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if p.WordCount, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if p.PageCount, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if p.CaretPosition, err = r.ReadU32(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *DocumentProperties) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU16(p.SectionCount)
	w.WriteU16(p.PageStartNum)
	w.WriteU16(p.FootnoteStart)
	w.WriteU16(p.EndnoteStart)
	w.WriteU16(p.PictureStart)
	w.WriteU16(p.TableStart)
	w.WriteU16(p.EquationStart)
	w.WriteU32(p.CharCount)
	w.WriteU32(p.WordCount)
	w.WriteU32(p.PageCount)
	w.WriteU32(p.CaretPosition)
	return w.Bytes()
}

// IDMappings is HWPTAG_ID_MAPPINGS: 16 u32 counts, one per indexed table
// (spec.md §4.4.2).
type IDMappings struct {
	Counts [numIDMappingSlots]uint32
}

func decodeIDMappings(data []byte) (*IDMappings, error) {
	r := bytecursor.NewReader(data)
	m := &IDMappings{}
	for i := range m.Counts {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		m.Counts[i] = v
	}
	return m, nil
}

func (m *IDMappings) encode() []byte {
	w := bytecursor.NewWriter()
	for _, c := range m.Counts {
		w.WriteU32(c)
	}
	return w.Bytes()
}

// BinData is HWPTAG_BIN_DATA, a reference to an embedded blob.
// spec.md §3.3: "bin-data references use 1-based IDs".
type BinData struct {
	Flags     uint16
	Type      uint8 // LINK(0) | EMBEDDING(1) | STORAGE(2)
	AbsPath   string
	RelPath   string
	BinDataID uint16
	Extension string

	// Blob is the /BinData/BIN%04X.ext stream payload this entry points
	// at, nil when the entry is a LINK or when the Reader found no
	// matching stream (spec.md §6.1, §8 property 1).
	Blob []byte
}

func decodeBinData(data []byte) (*BinData, error) {
	r := bytecursor.NewReader(data)
	b := &BinData{}
	flags, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	b.Flags = flags
	b.Type = uint8(flags & 0x0F)
	switch b.Type {
	case 0: // LINK
		if b.AbsPath, err = r.ReadLPString(); err != nil {
			return nil, err
		}
		if b.RelPath, err = r.ReadLPString(); err != nil {
			return nil, err
		}
	case 1: // EMBEDDING
		if b.BinDataID, err = r.ReadU16(); err != nil {
			return nil, err
		}
		if b.Extension, err = r.ReadLPString(); err != nil {
			return nil, err
		}
	case 2: // STORAGE
		if b.BinDataID, err = r.ReadU16(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *BinData) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU16(b.Flags)
	switch b.Type {
	case 0:
		w.WriteLPString(b.AbsPath)
		w.WriteLPString(b.RelPath)
	case 1:
		w.WriteU16(b.BinDataID)
		w.WriteLPString(b.Extension)
	case 2:
		w.WriteU16(b.BinDataID)
	}
	return w.Bytes()
}

// Path returns the BinData storage entry name this blob lives at.
func (b *BinData) Path() string {
	if b.BinDataID == 0 {
		return ""
	}
	ext := b.Extension
	if ext == "" {
		ext = "bin"
	}
	return sprintfBinPath(b.BinDataID, ext)
}

// FaceName is HWPTAG_FACE_NAME, one font face entry.
type FaceName struct {
	Flags             uint8
	Name              string
	SubstituteFace    string
	HasSubstitute     bool
	TypeInfo          []byte // 10-byte PANOSE-ish type info, present when flagged
	DefaultFace       string
	HasDefaultFace    bool
}

func decodeFaceName(data []byte) (*FaceName, error) {
	r := bytecursor.NewReader(data)
	f := &FaceName{}
	flags, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	f.Flags = flags
	if f.Name, err = r.ReadLPString(); err != nil {
		return nil, err
	}
	if flags&0x80 != 0 {
		f.HasSubstitute = true
		if f.SubstituteFace, err = r.ReadLPString(); err != nil {
			return nil, err
		}
	}
	if flags&0x01 != 0 {
		if f.TypeInfo, err = r.ReadBytes(10); err != nil {
			return nil, err
		}
	}
	if flags&0x02 != 0 {
		f.HasDefaultFace = true
		if f.DefaultFace, err = r.ReadLPString(); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *FaceName) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU8(f.Flags)
	w.WriteLPString(f.Name)
	if f.Flags&0x80 != 0 {
		w.WriteLPString(f.SubstituteFace)
	}
	if f.Flags&0x01 != 0 {
		w.WriteArray(f.TypeInfo)
	}
	if f.Flags&0x02 != 0 {
		w.WriteLPString(f.DefaultFace)
	}
	return w.Bytes()
}

// BorderFill is HWPTAG_BORDER_FILL: per-side border specs plus fill info.
type BorderFill struct {
	Flags      uint16
	Left       BorderSpec
	Right      BorderSpec
	Top        BorderSpec
	Bottom     BorderSpec
	Diagonal   BorderSpec
	FillType   uint32
	FillColor  uint32
	Extra      []byte // gradient/pattern payload, preserved opaque
}

// BorderSpec is one border side's type/width/color triple.
type BorderSpec struct {
	Type  uint8
	Width uint8
	Color uint32
}

func decodeBorderSpec(r *bytecursor.Reader) (BorderSpec, error) {
	var s BorderSpec
	var err error
	if s.Type, err = r.ReadU8(); err != nil {
		return s, err
	}
	if s.Width, err = r.ReadU8(); err != nil {
		return s, err
	}
	if s.Color, err = r.ReadU32(); err != nil {
		return s, err
	}
	return s, nil
}

func (s BorderSpec) encode(w *bytecursor.Writer) {
	w.WriteU8(s.Type)
	w.WriteU8(s.Width)
	w.WriteU32(s.Color)
}

func decodeBorderFill(data []byte) (*BorderFill, error) {
	r := bytecursor.NewReader(data)
	bf := &BorderFill{}
	var err error
	if bf.Flags, err = r.ReadU16(); err != nil {
		return nil, err
	}
	for _, side := range []*BorderSpec{&bf.Left, &bf.Right, &bf.Top, &bf.Bottom} {
		*side, err = decodeBorderSpec(r)
		if err != nil {
			return nil, err
		}
	}
	if bf.Diagonal, err = decodeBorderSpec(r); err != nil {
		return nil, err
	}
	if bf.FillType, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if bf.FillColor, err = r.ReadU32(); err != nil {
		return nil, err
	}
	bf.Extra, err = r.ReadBytes(r.Remaining())
	if err != nil {
		return nil, err
	}
	bf.Extra = append([]byte{}, bf.Extra...)
	return bf, nil
}

func (bf *BorderFill) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU16(bf.Flags)
	bf.Left.encode(w)
	bf.Right.encode(w)
	bf.Top.encode(w)
	bf.Bottom.encode(w)
	bf.Diagonal.encode(w)
	w.WriteU32(bf.FillType)
	w.WriteU32(bf.FillColor)
	w.WriteBytes(bf.Extra)
	return w.Bytes()
}

// CharShape is HWPTAG_CHAR_SHAPE: run-level character formatting.
type CharShape struct {
	FaceIDs      [7]uint16
	Ratios       [7]uint8
	CharSpaces   [7]int8
	RelSizes     [7]uint8
	CharOffsets  [7]int8
	BaseSize     uint32 // HWPUnit/100 -> points
	Attributes   uint32
	ShadowGap    [2]int8
	TextColor    uint32
	UnderColor   uint32
	ShadeColor   uint32
	ShadowColor  uint32
	BorderFillID uint16
	StrikeColor  uint32
}

func decodeCharShape(data []byte) (*CharShape, error) {
	r := bytecursor.NewReader(data)
	cs := &CharShape{}
	for i := range cs.FaceIDs {
		v, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		cs.FaceIDs[i] = v
	}
	for i := range cs.Ratios {
		v, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		cs.Ratios[i] = v
	}
	for i := range cs.CharSpaces {
		v, err := r.ReadI8()
		if err != nil {
			return nil, err
		}
		cs.CharSpaces[i] = v
	}
	for i := range cs.RelSizes {
		v, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		cs.RelSizes[i] = v
	}
	for i := range cs.CharOffsets {
		v, err := r.ReadI8()
		if err != nil {
			return nil, err
		}
		cs.CharOffsets[i] = v
	}
	var err error
	if cs.BaseSize, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if cs.Attributes, err = r.ReadU32(); err != nil {
		return nil, err
	}
	for i := range cs.ShadowGap {
		v, err := r.ReadI8()
		if err != nil {
			return nil, err
		}
		cs.ShadowGap[i] = v
	}
	if cs.TextColor, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if cs.UnderColor, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if cs.ShadeColor, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if cs.ShadowColor, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if r.Remaining() >= 2 {
		if cs.BorderFillID, err = r.ReadU16(); err != nil {
			return nil, err
		}
	}
	if r.Remaining() >= 4 {
		if cs.StrikeColor, err = r.ReadU32(); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

func (cs *CharShape) encode() []byte {
	w := bytecursor.NewWriter()
	for _, v := range cs.FaceIDs {
		w.WriteU16(v)
	}
	for _, v := range cs.Ratios {
		w.WriteU8(v)
	}
	for _, v := range cs.CharSpaces {
		w.WriteI8(v)
	}
	for _, v := range cs.RelSizes {
		w.WriteU8(v)
	}
	for _, v := range cs.CharOffsets {
		w.WriteI8(v)
	}
	w.WriteU32(cs.BaseSize)
	w.WriteU32(cs.Attributes)
	for _, v := range cs.ShadowGap {
		w.WriteI8(v)
	}
	w.WriteU32(cs.TextColor)
	w.WriteU32(cs.UnderColor)
	w.WriteU32(cs.ShadeColor)
	w.WriteU32(cs.ShadowColor)
	w.WriteU16(cs.BorderFillID)
	w.WriteU32(cs.StrikeColor)
	return w.Bytes()
}

func (cs *CharShape) IsBold() bool   { return cs.Attributes&0x01 != 0 }
func (cs *CharShape) IsItalic() bool { return cs.Attributes&0x02 != 0 }

// FontSizePoints returns CharShape.BaseSize converted from HWPUnit/100 to
// points (spec.md §6.3).
func (cs *CharShape) FontSizePoints() float64 { return float64(cs.BaseSize) / 100.0 }

// TabDef is HWPTAG_TAB_DEF.
type TabDef struct {
	Flags uint32
	Tabs  []TabEntry
}

// TabEntry is one tab stop.
type TabEntry struct {
	Position     int32
	Type         uint8
	FillType     uint8
	Reserved     uint16
}

func decodeTabDef(data []byte) (*TabDef, error) {
	r := bytecursor.NewReader(data)
	td := &TabDef{}
	var err error
	if td.Flags, err = r.ReadU32(); err != nil {
		return nil, err
	}
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < count; i++ {
		var t TabEntry
		if t.Position, err = r.ReadI32(); err != nil {
			return nil, err
		}
		if t.Type, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if t.FillType, err = r.ReadU8(); err != nil {
			return nil, err
		}
		if t.Reserved, err = r.ReadU16(); err != nil {
			return nil, err
		}
		td.Tabs = append(td.Tabs, t)
	}
	return td, nil
}

func (td *TabDef) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU32(td.Flags)
	w.WriteU32(uint32(len(td.Tabs)))
	for _, t := range td.Tabs {
		w.WriteI32(t.Position)
		w.WriteU8(t.Type)
		w.WriteU8(t.FillType)
		w.WriteU16(t.Reserved)
	}
	return w.Bytes()
}

// Numbering is HWPTAG_NUMBERING. The per-level marker layout is large and
// only partially documented by spec.md ("level specs for list markers");
// this engine round-trips it byte-for-byte rather than guess at fields
// none of the testable scenarios (spec.md §8 S1-S6) exercise, the same
// treatment as an unknown control body (spec.md §9).
type Numbering struct{ Raw []byte }

func decodeNumbering(data []byte) (*Numbering, error) { return &Numbering{Raw: append([]byte{}, data...)}, nil }
func (n *Numbering) encode() []byte                   { return n.Raw }

// Bullet is HWPTAG_BULLET, round-tripped opaquely for the same reason as
// Numbering.
type Bullet struct{ Raw []byte }

func decodeBullet(data []byte) (*Bullet, error) { return &Bullet{Raw: append([]byte{}, data...)}, nil }
func (b *Bullet) encode() []byte                { return b.Raw }

// ParaShape is HWPTAG_PARA_SHAPE: block-level paragraph formatting.
type ParaShape struct {
	Attr1           uint32
	LeftMargin      int32
	RightMargin     int32
	Indent          int32
	SpaceBefore     int32
	SpaceAfter      int32
	LineSpacing     int32
	TabDefID        uint16
	NumberingID     uint16
	BorderFillID    uint16
	BorderOffsets   [4]int16
	Attr2           uint32
	Attr3           uint32
	LineWrap        uint32
}

// Alignment extracts the alignment bits (2-4) of Attr1 that spec.md §4.4.2
// defines: left/right/center/justify/distribute.
func (ps *ParaShape) Alignment() uint32 { return (ps.Attr1 >> 2) & 0x7 }

func decodeParaShape(data []byte) (*ParaShape, error) {
	r := bytecursor.NewReader(data)
	ps := &ParaShape{}
	var err error
	if ps.Attr1, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if ps.LeftMargin, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if ps.RightMargin, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if ps.Indent, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if ps.SpaceBefore, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if ps.SpaceAfter, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if ps.LineSpacing, err = r.ReadI32(); err != nil {
		return nil, err
	}
	if ps.TabDefID, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if ps.NumberingID, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if ps.BorderFillID, err = r.ReadU16(); err != nil {
		return nil, err
	}
	for i := range ps.BorderOffsets {
		v, err := r.ReadI16()
		if err != nil {
			return nil, err
		}
		ps.BorderOffsets[i] = v
	}
	if ps.Attr2, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if ps.Attr3, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if r.Remaining() >= 4 {
		if ps.LineWrap, err = r.ReadU32(); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func (ps *ParaShape) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteU32(ps.Attr1)
	w.WriteI32(ps.LeftMargin)
	w.WriteI32(ps.RightMargin)
	w.WriteI32(ps.Indent)
	w.WriteI32(ps.SpaceBefore)
	w.WriteI32(ps.SpaceAfter)
	w.WriteI32(ps.LineSpacing)
	w.WriteU16(ps.TabDefID)
	w.WriteU16(ps.NumberingID)
	w.WriteU16(ps.BorderFillID)
	for _, v := range ps.BorderOffsets {
		w.WriteI16(v)
	}
	w.WriteU32(ps.Attr2)
	w.WriteU32(ps.Attr3)
	w.WriteU32(ps.LineWrap)
	return w.Bytes()
}

// Style is HWPTAG_STYLE.
type Style struct {
	Name        string
	EngName     string
	Type        uint8
	NextStyleID uint8
	LangID      int16
	ParaShapeID uint16
	CharShapeID uint16
}

func decodeStyle(data []byte) (*Style, error) {
	r := bytecursor.NewReader(data)
	s := &Style{}
	var err error
	if s.Name, err = r.ReadLPString(); err != nil {
		return nil, err
	}
	if s.EngName, err = r.ReadLPString(); err != nil {
		return nil, err
	}
	if s.Type, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if s.NextStyleID, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if s.LangID, err = r.ReadI16(); err != nil {
		return nil, err
	}
	if s.ParaShapeID, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if s.CharShapeID, err = r.ReadU16(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Style) encode() []byte {
	w := bytecursor.NewWriter()
	w.WriteLPString(s.Name)
	w.WriteLPString(s.EngName)
	w.WriteU8(s.Type)
	w.WriteU8(s.NextStyleID)
	w.WriteI16(s.LangID)
	w.WriteU16(s.ParaShapeID)
	w.WriteU16(s.CharShapeID)
	return w.Bytes()
}

// DecodeDocInfo decodes the DocInfo stream's already-decompressed
// payload into a DocInfo tree. FACE_NAME records are assigned to
// language groups using the counts ID_MAPPINGS declared, since nothing
// in the record stream itself tags a FACE_NAME with its language.
func DecodeDocInfo(data []byte) (*DocInfo, error) {
	recs, err := record.Decode(data)
	if err != nil {
		return nil, err
	}
	info := &DocInfo{}

	faceGroup := 0
	faceGroupRemaining := 0
	faceGroupStarted := false
	advanceFaceGroup := func() {
		for faceGroupRemaining == 0 && faceGroup < 7 && info.IDMappings != nil {
			if faceGroupStarted {
				faceGroup++
				if faceGroup >= 7 {
					return
				}
			}
			faceGroupStarted = true
			faceGroupRemaining = int(info.IDMappings.Counts[IdxFaceNameKorean+faceGroup])
		}
	}

	for _, rec := range recs {
		switch rec.Tag {
		case TagDocumentProperties:
			info.Properties, err = decodeDocumentProperties(rec.Data)
		case TagIDMappings:
			info.IDMappings, err = decodeIDMappings(rec.Data)
		case TagBinData:
			var b *BinData
			b, err = decodeBinData(rec.Data)
			if b != nil {
				info.BinData = append(info.BinData, b)
			}
		case TagFaceName:
			var f *FaceName
			f, err = decodeFaceName(rec.Data)
			if f != nil {
				advanceFaceGroup()
				if faceGroup < 7 {
					info.Faces[faceGroup] = append(info.Faces[faceGroup], f)
					faceGroupRemaining--
				}
			}
		case TagBorderFill:
			var b *BorderFill
			b, err = decodeBorderFill(rec.Data)
			if b != nil {
				info.BorderFills = append(info.BorderFills, b)
			}
		case TagCharShape:
			var c *CharShape
			c, err = decodeCharShape(rec.Data)
			if c != nil {
				info.CharShapes = append(info.CharShapes, c)
			}
		case TagTabDef:
			var t *TabDef
			t, err = decodeTabDef(rec.Data)
			if t != nil {
				info.TabDefs = append(info.TabDefs, t)
			}
		case TagNumbering:
			var n *Numbering
			n, err = decodeNumbering(rec.Data)
			if n != nil {
				info.Numberings = append(info.Numberings, n)
			}
		case TagBullet:
			var b *Bullet
			b, err = decodeBullet(rec.Data)
			if b != nil {
				info.Bullets = append(info.Bullets, b)
			}
		case TagParaShape:
			var p *ParaShape
			p, err = decodeParaShape(rec.Data)
			if p != nil {
				info.ParaShapes = append(info.ParaShapes, p)
			}
		case TagStyle:
			var s *Style
			s, err = decodeStyle(rec.Data)
			if s != nil {
				info.Styles = append(info.Styles, s)
			}
		default:
			info.Unknown = append(info.Unknown, rec)
		}
		if err != nil {
			return nil, &CorruptRecord{Tag: rec.Tag, Detail: err.Error()}
		}
	}
	return info, nil
}

// EncodeDocInfo serializes a DocInfo tree in the Writer's fixed record
// order (spec.md §4.6 step 1).
func EncodeDocInfo(info *DocInfo) []byte {
	var recs []record.Record
	add := func(tag uint16, body []byte) {
		recs = append(recs, record.Record{Tag: tag, Level: 0, Data: body})
	}
	if info.Properties != nil {
		add(TagDocumentProperties, info.Properties.encode())
	}
	if info.IDMappings != nil {
		add(TagIDMappings, info.IDMappings.encode())
	}
	for _, b := range info.BinData {
		add(TagBinData, b.encode())
	}
	for _, group := range info.Faces {
		for _, f := range group {
			add(TagFaceName, f.encode())
		}
	}
	for _, b := range info.BorderFills {
		add(TagBorderFill, b.encode())
	}
	for _, c := range info.CharShapes {
		add(TagCharShape, c.encode())
	}
	for _, t := range info.TabDefs {
		add(TagTabDef, t.encode())
	}
	for _, n := range info.Numberings {
		add(TagNumbering, n.encode())
	}
	for _, b := range info.Bullets {
		add(TagBullet, b.encode())
	}
	for _, p := range info.ParaShapes {
		add(TagParaShape, p.encode())
	}
	for _, s := range info.Styles {
		add(TagStyle, s.encode())
	}
	recs = append(recs, info.Unknown...)
	return record.Encode(recs)
}

func sprintfBinPath(id uint16, ext string) string {
	const hex = "0123456789ABCDEF"
	b := make([]byte, 4)
	v := id
	for i := 3; i >= 0; i-- {
		b[i] = hex[v&0xF]
		v >>= 4
	}
	return "BIN" + string(b) + "." + ext
}
