package hwp5

import (
	"testing"

	"github.com/hwp5go/hwp5/internal/cfb"
)

func minimalDocument(text string) *Document {
	doc := NewDocument()
	doc.Info.ParaShapes = []*ParaShape{{}}
	doc.Info.CharShapes = []*CharShape{{}}
	doc.Sections = []*Section{{Paragraphs: []*Paragraph{
		{Header: &ParaHeader{}, Text: text},
	}}}
	return doc
}

// TestWriterReader_MinimalHello is S1.
func TestWriterReader_MinimalHello(t *testing.T) {
	doc := minimalDocument("Hello\r\n")

	data, err := ToBytes(doc)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}

	cf, err := cfb.Read(data)
	if err != nil {
		t.Fatalf("cfb.Read: %v", err)
	}
	fh, err := cf.Stream(StreamFileHeader)
	if err != nil {
		t.Fatalf("FileHeader stream: %v", err)
	}
	want := []byte{0x48, 0x57, 0x50, 0x20, 0x44, 0x6f, 0x63, 0x75}
	if len(fh) < 8 || string(fh[:8]) != string(want) {
		t.Fatalf("FileHeader bytes at offset 0 = % X, want % X", fh, want)
	}

	got, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if len(got.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got.Sections))
	}
	paras := got.Sections[0].Paragraphs
	if len(paras) != 2 {
		t.Fatalf("expected 2 paragraphs (section-define + hello), got %d", len(paras))
	}
	if !paragraphHasSectionDef(paras[0]) {
		t.Error("expected leading paragraph to carry the section-define controls")
	}
	if paras[1].Text != "Hello\r\n" {
		t.Errorf("Text = %q, want %q", paras[1].Text, "Hello\r\n")
	}
	if !paras[1].Header.LastInList() {
		t.Error("expected the final paragraph to have LastInList set")
	}
}

func TestWriterReader_CompressedRoundTrip(t *testing.T) {
	doc := minimalDocument("round trip\r\n")
	doc.Header.Flags = FlagCompressed

	data, err := ToBytes(doc)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}

	got, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got.Header.IsCompressed() {
		t.Error("writer must always clear the compressed flag (spec.md §9)")
	}
}

func TestWriter_RejectsInvariantViolation(t *testing.T) {
	doc := NewDocument()
	doc.Sections = []*Section{{Paragraphs: []*Paragraph{
		{Header: &ParaHeader{ParaShapeID: 9}},
	}}}

	if _, err := ToBytes(doc); err == nil {
		t.Error("expected an invariant violation error")
	}
}

// TestWriterReader_ManyFonts is a structural stand-in for S6: a document
// with 24 fonts in the first language group must be written and parse back
// with all 24 fonts in that group.
func TestWriterReader_ManyFonts(t *testing.T) {
	doc := minimalDocument("many fonts\r\n")
	for i := 0; i < 24; i++ {
		doc.Info.Faces[0] = append(doc.Info.Faces[0], &FaceName{Name: "Font"})
	}

	data, err := ToBytes(doc)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	got, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if len(got.Info.Faces[0]) != 24 {
		t.Errorf("expected 24 fonts, got %d", len(got.Info.Faces[0]))
	}
}

func TestWriterReader_BinDataBlobRoundTrip(t *testing.T) {
	doc := minimalDocument("has an image\r\n")
	doc.Info.BinData = []*BinData{{Flags: 1, Type: 1, BinDataID: 1, Extension: "png", Blob: []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0xaa}}}

	data, err := ToBytes(doc)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	got, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	b := got.BinData(1)
	if b == nil {
		t.Fatal("expected bin-data entry 1 to round-trip")
	}
	if string(b.Blob) != string(doc.Info.BinData[0].Blob) {
		t.Errorf("Blob = % X, want % X", b.Blob, doc.Info.BinData[0].Blob)
	}
}

func TestWriterReader_PreviewTextSynthesized(t *testing.T) {
	doc := minimalDocument("synthesize me\r\n")

	data, err := ToBytes(doc)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	got, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got.PreviewText == "" {
		t.Error("expected the writer to synthesize a non-empty /PrvText")
	}
}

func TestWriterReader_DocOptionsDefaulted(t *testing.T) {
	doc := minimalDocument("defaults\r\n")

	data, err := ToBytes(doc)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	got, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if string(got.DocOptionsRaw) != string(defaultDocOptions()) {
		t.Errorf("DocOptionsRaw = % X, want the default payload", got.DocOptionsRaw)
	}
}

func TestWriterReader_OptionalStreamsAbsentWhenUnset(t *testing.T) {
	doc := minimalDocument("no extras\r\n")

	data, err := ToBytes(doc)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	got, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got.PreviewImage != nil {
		t.Error("expected /PrvImage to stay absent when the Document never set one")
	}
	if got.SummaryInfoRaw != nil {
		t.Error("expected /\\x05HwpSummaryInformation to stay absent when the Document never set one")
	}
	if got.DocHistoryRaw != nil {
		t.Error("expected /DocHistory to stay absent when the Document never set one")
	}
}

func TestSectionStreamPaths(t *testing.T) {
	paths := []string{"DocInfo", "BodyText/Section10", "BodyText/Section2", "BodyText/Section1", "FileHeader"}
	got := sectionStreamPaths(paths)
	want := []string{"BodyText/Section1", "BodyText/Section2", "BodyText/Section10"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
