package hwp5

import (
	"fmt"

	"github.com/hwp5go/hwp5/internal/cfb"
)

// ToBytes serializes a Document into a complete HWP 5.0 CFB file (spec.md
// §4.6 Writer). Output is always uncompressed (spec.md §9 "compression
// flag must be clear on write") and always passes the invariant check
// (spec.md §8 property 7) before any byte is produced.
func ToBytes(doc *Document) ([]byte, error) {
	if err := doc.CheckInvariants(); err != nil {
		return nil, err
	}

	fh := finalizeHeader(doc.Header)
	w := cfb.NewWriter()
	w.Put(StreamFileHeader, fh.Encode())
	w.Put(StreamDocInfo, EncodeDocInfo(doc.Info))

	for i, sec := range doc.Sections {
		paras := ensureSectionDefined(sec)
		normalizeParagraphs(paras)
		data := EncodeSection(&Section{Paragraphs: paras})
		w.Put(fmt.Sprintf("%s/Section%d", StreamBodyText, i), data)
	}

	for _, b := range doc.Info.BinData {
		if len(b.Blob) == 0 {
			continue
		}
		if path := b.Path(); path != "" {
			w.Put(StreamBinData+"/"+path, b.Blob)
		}
	}

	previewText := doc.PreviewText
	if previewText == "" {
		previewText = buildPreviewText(doc)
	}
	w.Put(StreamPrvText, EncodePreviewText(previewText))

	if doc.PreviewImage != nil {
		w.Put(StreamPrvImage, doc.PreviewImage)
	}
	if len(doc.SummaryInfoRaw) > 0 {
		w.Put(StreamSummaryInfo, doc.SummaryInfoRaw)
	}
	if len(doc.DocHistoryRaw) > 0 {
		w.Put(StreamDocHistory, doc.DocHistoryRaw)
	}
	docOptions := doc.DocOptionsRaw
	if docOptions == nil {
		docOptions = defaultDocOptions()
	}
	w.Put(StreamDocOptions+"/_LinkDoc", docOptions)

	// Minimal fixed Scripts payloads (spec.md §6.1).
	w.Put(StreamScripts+"/DefaultJScript", []byte{0x00, 0x00})
	w.Put(StreamScripts+"/JScriptVersion", []byte{0x00, 0x00})

	return w.Bytes(), nil
}

// finalizeHeader applies the Writer's fixed policy (spec.md §4.6 step 4)
// to whatever FileHeader a Document carries: clear the compressed bit,
// stamp the default version when absent, and set reserved byte 3.
func finalizeHeader(h *FileHeader) *FileHeader {
	if h == nil {
		return NewFileHeader()
	}
	out := &FileHeader{Version: h.Version, Flags: h.Flags &^ FlagCompressed, Reserved: h.Reserved}
	if out.Version == (Version{}) {
		out.Version = DefaultVersion
	}
	out.Reserved[3] = ReservedByte3
	return out
}

// ensureSectionDefined guarantees the leading paragraph spec.md §3.5
// requires (secd + cold controls, with PAGE_DEF/FOOTNOTE_SHAPE/
// PAGE_BORDER_FILL children) is present, synthesizing one when a
// builder-constructed Document omitted it (spec.md §4.6 step 2).
func ensureSectionDefined(sec *Section) []*Paragraph {
	if sec == nil {
		return []*Paragraph{newSectionDefParagraph()}
	}
	if len(sec.Paragraphs) > 0 && paragraphHasSectionDef(sec.Paragraphs[0]) {
		return sec.Paragraphs
	}
	return append([]*Paragraph{newSectionDefParagraph()}, sec.Paragraphs...)
}

func paragraphHasSectionDef(p *Paragraph) bool {
	hasSecd, hasCold := false, false
	for _, c := range p.Controls {
		switch c.FourCC {
		case CtrlSectionDef:
			hasSecd = true
		case CtrlColumnDef:
			hasCold = true
		}
	}
	return hasSecd && hasCold
}

// defaultPageGeometry is A4 portrait, in HWPUnit (1/7200 inch), matching
// what a fresh document from the target application defaults to.
const (
	defaultPageWidth  = 59528 // 210mm
	defaultPageHeight = 84188 // 297mm
	defaultMargin     = 850
)

func newSectionDefParagraph() *Paragraph {
	secd := &Control{
		FourCC: CtrlSectionDef,
		SectionDef: &SectionDef{
			PageDef: &PageDef{
				Width: defaultPageWidth, Height: defaultPageHeight,
				Left: defaultMargin, Right: defaultMargin, Top: defaultMargin, Bottom: defaultMargin,
			},
			FootnoteShape:  &FootnoteShape{},
			PageBorderFill: &PageBorderFill{},
		},
	}
	cold := &Control{FourCC: CtrlColumnDef}
	return &Paragraph{
		Header:   &ParaHeader{},
		Controls: []*Control{secd, cold},
	}
}

// normalizeParagraphs recomputes each paragraph's derived header fields
// (spec.md §8 property 6) and sets lastInList on the section's final
// paragraph (spec.md §3.5) before encoding.
func normalizeParagraphs(paras []*Paragraph) {
	for i, p := range paras {
		if p.Header == nil {
			p.Header = &ParaHeader{}
		}
		p.Header.TextLen = paragraphTextLen(p.Text)
		p.Header.CharShapeCount = uint16(len(p.CharShapes))
		p.Header.LineSegCount = uint16(len(p.LineSegs))
		p.Header.RangeTagCount = uint16(len(p.RangeTags))
		p.Header.SetLastInList(i == len(paras)-1)
	}
}

// paragraphTextLen counts UTF-16 code units with control-code expansion
// (spec.md §3.5, §8 property 6). A supplementary-plane rune counts as the
// 2 code units its surrogate pair occupies on the wire, not 1.
func paragraphTextLen(text string) uint32 {
	var units uint32
	for _, ru := range []rune(text) {
		if ru > 0xFFFF {
			units += 2
			continue
		}
		units += uint32(ControlCodeUnits(uint16(ru)))
	}
	return units
}
