package hwp5

import "github.com/hwp5go/hwp5/bytecursor"

// DecodePreviewText decodes /PrvText's UTF-16LE payload (spec.md §6.1),
// trimming the trailing NUL some producers pad it with. Surrogate pairs
// are recombined by bytecursor.DecodeUTF16LE (unicode/utf16.Decode), so a
// supplementary-plane character survives intact rather than splitting
// into two replacement characters. Grounded on original_source's
// preview/preview_text.rs PreviewText::from_bytes.
func DecodePreviewText(data []byte) (string, error) {
	text := bytecursor.DecodeUTF16LE(data[:len(data)-len(data)%2])
	runes := []rune(text)
	for len(runes) > 0 && runes[len(runes)-1] == 0 {
		runes = runes[:len(runes)-1]
	}
	return string(runes), nil
}

// EncodePreviewText is the inverse of DecodePreviewText: plain UTF-16LE,
// no length prefix, no NUL terminator.
func EncodePreviewText(text string) []byte {
	return bytecursor.EncodeUTF16LE(text)
}

// previewTextLimit matches original_source's create_preview_text: the
// first 1000 runes of body text, not bytes.
const previewTextLimit = 1000

// buildPreviewText concatenates every section's paragraph text up to
// previewTextLimit runes, grounded on original_source's
// writer/serializer.rs create_preview_text.
func buildPreviewText(doc *Document) string {
	var runes []rune
	for _, sec := range doc.Sections {
		for _, p := range sec.Paragraphs {
			runes = append(runes, []rune(p.Text)...)
			if len(runes) > previewTextLimit {
				return string(runes[:previewTextLimit])
			}
		}
	}
	return string(runes)
}

// DetectImageFormat sniffs /PrvImage's payload by magic bytes, grounded on
// original_source's preview/preview_image.rs PreviewImage::detect_format.
func DetectImageFormat(data []byte) string {
	switch {
	case len(data) >= 8 && string(data[:8]) == "\x89PNG\r\n\x1a\n":
		return "png"
	case len(data) >= 6 && (string(data[:6]) == "GIF87a" || string(data[:6]) == "GIF89a"):
		return "gif"
	case len(data) >= 2 && data[0] == 0x42 && data[1] == 0x4D:
		return "bmp"
	default:
		return "bin"
	}
}

// defaultDocOptions is the target application's fixed minimal
// /DocOptions/_LinkDoc payload (version 1, default view/edit flags),
// grounded on original_source's writer/serializer.rs create_doc_options.
func defaultDocOptions() []byte {
	w := bytecursor.NewWriter()
	w.WriteU32(1)   // version
	w.WriteU32(0)   // view mode
	w.WriteU32(100) // zoom level
	w.WriteU32(0)   // view flags
	w.WriteU32(1)   // edit mode
	w.WriteU32(0)   // edit flags
	return w.Bytes()
}
