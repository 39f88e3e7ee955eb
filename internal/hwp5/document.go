package hwp5

import "fmt"

// Document is the root in-memory tree (spec.md §3.3), produced either by
// Reader.FromBytes or by a target collaborator's builder.
type Document struct {
	Header   *FileHeader
	Info     *DocInfo
	Sections []*Section

	// PreviewText holds /PrvText's decoded content (spec.md §6.1). The
	// Writer synthesizes one from section text when left empty.
	PreviewText string
	// PreviewImage holds /PrvImage's raw bytes, passed through verbatim
	// when present; nil omits the stream on write.
	PreviewImage []byte
	// SummaryInfoRaw holds /\x05HwpSummaryInformation's raw OLE property
	// set bytes, passed through verbatim (spec.md §6.1, §9). Decode on
	// demand with SummaryInformation.
	SummaryInfoRaw []byte
	// DocHistoryRaw holds /DocHistory's raw bytes, passed through
	// verbatim when present.
	DocHistoryRaw []byte
	// DocOptionsRaw holds /DocOptions/_LinkDoc's raw bytes. The Writer
	// substitutes the target application's fixed minimal payload when nil.
	DocOptionsRaw []byte
}

// SummaryInformation decodes SummaryInfoRaw, or returns (nil, nil) when
// the document carries no summary-information stream.
func (d *Document) SummaryInformation() (*SummaryInfo, error) {
	if len(d.SummaryInfoRaw) == 0 {
		return nil, nil
	}
	return DecodeSummaryInfo(d.SummaryInfoRaw)
}

// NewDocument returns an empty Document with a default FileHeader and an
// empty DocInfo, ready for a builder to populate.
func NewDocument() *Document {
	return &Document{
		Header: NewFileHeader(),
		Info:   &DocInfo{},
	}
}

// Section returns the i-th section, or nil if out of range.
func (d *Document) Section(i int) *Section {
	if i < 0 || i >= len(d.Sections) {
		return nil
	}
	return d.Sections[i]
}

// ParagraphsOf returns the paragraphs of the i-th section.
func (d *Document) ParagraphsOf(i int) []*Paragraph {
	s := d.Section(i)
	if s == nil {
		return nil
	}
	return s.Paragraphs
}

// CharShape returns the 0-based indexed char shape, or nil if out of range.
func (d *Document) CharShape(id int) *CharShape {
	if d.Info == nil || id < 0 || id >= len(d.Info.CharShapes) {
		return nil
	}
	return d.Info.CharShapes[id]
}

// ParaShape returns the 0-based indexed paragraph shape, or nil if out of range.
func (d *Document) ParaShape(id int) *ParaShape {
	if d.Info == nil || id < 0 || id >= len(d.Info.ParaShapes) {
		return nil
	}
	return d.Info.ParaShapes[id]
}

// Face returns the 0-based indexed face name within a language group
// (lang: 0=Korean .. 6=User, matching DocInfo.Faces' order).
func (d *Document) Face(lang, id int) *FaceName {
	if d.Info == nil || lang < 0 || lang >= len(d.Info.Faces) {
		return nil
	}
	group := d.Info.Faces[lang]
	if id < 0 || id >= len(group) {
		return nil
	}
	return group[id]
}

// BinData returns the bin-data entry with the given 1-based ID, or nil
// (spec.md §3.3: "bin-data references use 1-based IDs").
func (d *Document) BinData(oneBasedID int) *BinData {
	if d.Info == nil {
		return nil
	}
	for _, b := range d.Info.BinData {
		if int(b.BinDataID) == oneBasedID {
			return b
		}
	}
	return nil
}

// CheckInvariants validates each paragraph's para-shape ID and the
// char-shape IDs of its char-shape runs against DocInfo's tables (spec.md
// §3.5, §8 property 7). Bin-data and font IDs are not checked.
func (d *Document) CheckInvariants() error {
	if d.Info == nil {
		return &InvariantViolation{Detail: "document has no DocInfo"}
	}
	numCharShapes := len(d.Info.CharShapes)
	numParaShapes := len(d.Info.ParaShapes)
	for si, sec := range d.Sections {
		for pi, p := range sec.Paragraphs {
			if p.Header == nil {
				continue
			}
			if int(p.Header.ParaShapeID) >= numParaShapes {
				return &InvariantViolation{Detail: errParaRef("para_shape_id", si, pi, int(p.Header.ParaShapeID), numParaShapes)}
			}
			for _, run := range p.CharShapes {
				if int(run.CharShapeID) >= numCharShapes {
					return &InvariantViolation{Detail: errParaRef("char_shape_id", si, pi, int(run.CharShapeID), numCharShapes)}
				}
			}
		}
	}
	return nil
}

func errParaRef(field string, section, para, id, limit int) string {
	return fmt.Sprintf("%s %d out of range (have %d) at section %d paragraph %d", field, id, limit, section, para)
}
