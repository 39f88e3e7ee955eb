package hwp5

import "testing"

func TestDecodeEncodePreviewText_RoundTrip(t *testing.T) {
	text := "Preview text with a newline\r\nsecond line"
	data := EncodePreviewText(text)

	got, err := DecodePreviewText(data)
	if err != nil {
		t.Fatalf("DecodePreviewText: %v", err)
	}
	if got != text {
		t.Errorf("got %q, want %q", got, text)
	}
}

func TestDecodePreviewText_TrimsTrailingNUL(t *testing.T) {
	data := EncodePreviewText("trimmed")
	data = append(data, 0x00, 0x00, 0x00, 0x00)

	got, err := DecodePreviewText(data)
	if err != nil {
		t.Fatalf("DecodePreviewText: %v", err)
	}
	if got != "trimmed" {
		t.Errorf("got %q, want %q", got, "trimmed")
	}
}

func TestDecodeEncodePreviewText_SupplementaryPlaneRune(t *testing.T) {
	text := string([]rune{'x', 0x1F600, 'y'})
	data := EncodePreviewText(text)

	got, err := DecodePreviewText(data)
	if err != nil {
		t.Fatalf("DecodePreviewText: %v", err)
	}
	if got != text {
		t.Errorf("got %q, want %q", got, text)
	}
}

func TestDecodePreviewText_Empty(t *testing.T) {
	got, err := DecodePreviewText(nil)
	if err != nil {
		t.Fatalf("DecodePreviewText: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestBuildPreviewText_ConcatenatesSectionsAndTruncates(t *testing.T) {
	doc := NewDocument()
	doc.Sections = []*Section{
		{Paragraphs: []*Paragraph{{Text: "first "}}},
		{Paragraphs: []*Paragraph{{Text: "second"}}},
	}
	if got := buildPreviewText(doc); got != "first second" {
		t.Errorf("got %q, want %q", got, "first second")
	}

	long := &Paragraph{}
	for i := 0; i < previewTextLimit+500; i++ {
		long.Text += "x"
	}
	doc.Sections = []*Section{{Paragraphs: []*Paragraph{long}}}
	got := buildPreviewText(doc)
	if len([]rune(got)) != previewTextLimit {
		t.Errorf("expected truncation at %d runes, got %d", previewTextLimit, len([]rune(got)))
	}
}

func TestDetectImageFormat(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"png", []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0xaa}, "png"},
		{"gif87", []byte("GIF87a\x00\x00"), "gif"},
		{"gif89", []byte("GIF89a\x00\x00"), "gif"},
		{"bmp", []byte{0x42, 0x4d, 0x00, 0x00}, "bmp"},
		{"unknown", []byte{0x00, 0x01, 0x02}, "bin"},
		{"empty", nil, "bin"},
	}
	for _, c := range cases {
		if got := DetectImageFormat(c.data); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDefaultDocOptions_FixedPayload(t *testing.T) {
	got := defaultDocOptions()
	if len(got) != 24 {
		t.Fatalf("expected a 24-byte payload, got %d bytes", len(got))
	}
	version := uint32(got[0]) | uint32(got[1])<<8 | uint32(got[2])<<16 | uint32(got[3])<<24
	if version != 1 {
		t.Errorf("expected version field 1, got %d", version)
	}
}
