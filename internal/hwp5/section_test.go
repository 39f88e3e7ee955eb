package hwp5

import (
	"testing"

	"github.com/hwp5go/hwp5/internal/record"
)

func minimalParagraph(text string) *Paragraph {
	return &Paragraph{
		Header: &ParaHeader{TextLen: paragraphTextLen(text)},
		Text:   text,
	}
}

func TestSectionRoundTrip_PlainParagraphs(t *testing.T) {
	sec := &Section{Paragraphs: []*Paragraph{
		minimalParagraph("Hello\r\n"),
		minimalParagraph("World\r\n"),
	}}

	data := EncodeSection(sec)
	got, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	if len(got.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(got.Paragraphs))
	}
	if got.Paragraphs[0].Text != "Hello\r\n" || got.Paragraphs[1].Text != "World\r\n" {
		t.Errorf("text round trip failed: %q / %q", got.Paragraphs[0].Text, got.Paragraphs[1].Text)
	}
}

// TestSectionRoundTrip_Hyperlink exercises S4: a range-tagged hyperlink
// control whose URL is recovered intact.
func TestSectionRoundTrip_Hyperlink(t *testing.T) {
	text := "Visit site"
	p := &Paragraph{
		Header:    &ParaHeader{TextLen: paragraphTextLen(text)},
		Text:      text,
		RangeTags: []ParaRangeTag{{Start: 0, End: uint32(len([]rune(text))), Tag: 1}},
		Controls:  []*Control{{FourCC: CtrlHyperlink, Hyperlink: &Hyperlink{URL: "https://example.com"}}},
	}
	sec := &Section{Paragraphs: []*Paragraph{p}}

	data := EncodeSection(sec)
	got, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	gotP := got.Paragraphs[0]
	if len(gotP.RangeTags) != 1 {
		t.Fatalf("expected 1 range tag, got %d", len(gotP.RangeTags))
	}
	if len(gotP.Controls) != 1 || gotP.Controls[0].FourCC != CtrlHyperlink {
		t.Fatalf("expected hyperlink control, got %+v", gotP.Controls)
	}
	if gotP.Controls[0].Hyperlink.URL != "https://example.com" {
		t.Errorf("URL = %q", gotP.Controls[0].Hyperlink.URL)
	}
}

// TestSectionRoundTrip_Table exercises S5: a 2x2 table whose four cells
// round trip in row-major order.
func TestSectionRoundTrip_Table(t *testing.T) {
	cellTexts := [][]string{{"A", "B"}, {"C", "D"}}
	table := &Table{Rows: 2, Cols: 2}
	var cells []*TableCell
	for _, row := range cellTexts {
		for _, text := range row {
			cells = append(cells, &TableCell{
				RowSpan: 1, ColSpan: 1,
				Paragraphs: []*Paragraph{minimalParagraph(text)},
			})
		}
	}
	placeCells(table, cells)

	p := &Paragraph{
		Header:   &ParaHeader{},
		Controls: []*Control{{FourCC: CtrlTable, Table: table}},
	}
	sec := &Section{Paragraphs: []*Paragraph{p}}

	data := EncodeSection(sec)
	got, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	gotTable := got.Paragraphs[0].Controls[0].Table
	if gotTable.Rows != 2 || gotTable.Cols != 2 {
		t.Fatalf("unexpected table dims: %dx%d", gotTable.Rows, gotTable.Cols)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			cell := gotTable.Cells[r][c]
			if cell == nil {
				t.Fatalf("missing cell at (%d,%d)", r, c)
			}
			if got := cell.Text(); got != cellTexts[r][c] {
				t.Errorf("cell(%d,%d).Text() = %q, want %q", r, c, got, cellTexts[r][c])
			}
		}
	}
}

func TestParaHeader_LastInList(t *testing.T) {
	h := &ParaHeader{}
	if h.LastInList() {
		t.Error("expected LastInList false by default")
	}
	h.SetLastInList(true)
	if !h.LastInList() {
		t.Error("expected LastInList true after SetLastInList(true)")
	}
	h.SetLastInList(false)
	if h.LastInList() {
		t.Error("expected LastInList false after SetLastInList(false)")
	}
}

func TestSectionDefControl_RoundTrip(t *testing.T) {
	p := newSectionDefParagraph()
	sec := &Section{Paragraphs: []*Paragraph{p}}

	data := EncodeSection(sec)
	got, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	if !paragraphHasSectionDef(got.Paragraphs[0]) {
		t.Error("expected decoded paragraph to carry secd+cold controls")
	}
	secd := got.Paragraphs[0].Controls[0]
	if secd.SectionDef.PageDef == nil || secd.SectionDef.PageDef.Width != defaultPageWidth {
		t.Errorf("page def round trip failed: %+v", secd.SectionDef.PageDef)
	}
}

// TestPictureControl_DescendantsRoundTrip exercises a `$pic` control
// carrying nested SHAPE_COMPONENT/TextArt child records (spec.md §9):
// they must survive a decode/encode/decode cycle untouched.
func TestPictureControl_DescendantsRoundTrip(t *testing.T) {
	const tagShapeComponent = 0x05B
	const tagShapeComponentTextArt = 0x074

	p := &Paragraph{
		Header: &ParaHeader{},
		Controls: []*Control{{
			FourCC: CtrlPicture,
			Picture: &Picture{
				Descendants: []record.Record{
					{Tag: tagShapeComponent, Level: 2, Data: []byte{0x01, 0x02, 0x03}},
					{Tag: tagShapeComponentTextArt, Level: 3, Data: []byte{0xAA, 0xBB}},
				},
			},
		}},
	}
	sec := &Section{Paragraphs: []*Paragraph{p}}

	data := EncodeSection(sec)
	got, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	pic := got.Paragraphs[0].Controls[0].Picture
	if pic == nil {
		t.Fatal("expected a decoded Picture control")
	}
	if len(pic.Descendants) != 2 {
		t.Fatalf("expected 2 descendant records, got %d", len(pic.Descendants))
	}
	if pic.Descendants[0].Tag != tagShapeComponent || string(pic.Descendants[0].Data) != "\x01\x02\x03" {
		t.Errorf("first descendant = %+v", pic.Descendants[0])
	}
	if pic.Descendants[1].Tag != tagShapeComponentTextArt || string(pic.Descendants[1].Data) != "\xAA\xBB" {
		t.Errorf("second descendant = %+v", pic.Descendants[1])
	}
}

// TestColumnDefControl_DescendantsRoundTrip exercises a `cold` control
// that carries child records, mirroring a multi-column layout.
func TestColumnDefControl_DescendantsRoundTrip(t *testing.T) {
	p := &Paragraph{
		Header: &ParaHeader{},
		Controls: []*Control{{
			FourCC: CtrlColumnDef,
			ColumnDef: &ColumnDef{
				Descendants: []record.Record{
					{Tag: 0x060, Level: 2, Data: []byte{0x10, 0x20}},
				},
			},
		}},
	}
	sec := &Section{Paragraphs: []*Paragraph{p}}

	data := EncodeSection(sec)
	got, err := DecodeSection(data)
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}
	cold := got.Paragraphs[0].Controls[0].ColumnDef
	if cold == nil {
		t.Fatal("expected a decoded ColumnDef control")
	}
	if len(cold.Descendants) != 1 || string(cold.Descendants[0].Data) != "\x10\x20" {
		t.Errorf("descendants = %+v", cold.Descendants)
	}
}
