package hwp5

import (
	"unicode/utf16"

	"github.com/hwp5go/hwp5/bytecursor"
)

// InlineControl is one control-code occurrence embedded in paragraph
// text (spec.md §3.4). Decode preserves its raw Extra bytes so Encode
// can reproduce the original paragraph bit-for-bit even for control
// codes this engine doesn't interpret.
type InlineControl struct {
	Code   uint16
	Extra  []byte // 14 raw bytes, nil for 1-unit codes
	Offset int    // rune index within the decoded text where Code sits
}

// DecodeParaText decodes a PARA_TEXT record body (spec.md §4.4.3) into
// its rune text plus the inline controls embedded in it. The control
// code itself is kept as a rune in the returned text (matching how HWP
// keeps it inline), so len([]rune(text)) tracks Offset correctly. A
// surrogate pair (spec.md §3.4's UTF-16LE code-unit model) is recombined
// into the single rune it encodes before being appended, so a
// supplementary-plane character occupies one Offset slot, not two.
func DecodeParaText(data []byte) (string, []InlineControl, error) {
	r := bytecursor.NewReader(data)
	var runes []rune
	var controls []InlineControl
	for r.Remaining() > 0 {
		code, err := r.ReadU16()
		if err != nil {
			return "", nil, err
		}
		if code >= 0xD800 && code <= 0xDBFF {
			if low, perr := r.PeekU16(); perr == nil && low >= 0xDC00 && low <= 0xDFFF {
				r.Skip(2)
				runes = append(runes, utf16.DecodeRune(rune(code), rune(low)))
				continue
			}
		}
		runes = append(runes, rune(code))
		units := ControlCodeUnits(code)
		if units > 1 {
			extra, err := r.ReadBytes((units - 1) * 2)
			if err != nil {
				return "", nil, err
			}
			controls = append(controls, InlineControl{
				Code:   code,
				Extra:  append([]byte{}, extra...),
				Offset: len(runes) - 1,
			})
		}
	}
	return string(runes), controls, nil
}

// EncodeParaText is the inverse of DecodeParaText. A supplementary-plane
// rune is split back into the surrogate pair it came from; control codes
// never fall in that range, so the split never interferes with Offset
// lookups.
func EncodeParaText(text string, controls []InlineControl) []byte {
	byOffset := make(map[int]InlineControl, len(controls))
	for _, c := range controls {
		byOffset[c.Offset] = c
	}
	w := bytecursor.NewWriter()
	for i, ru := range []rune(text) {
		if ru > 0xFFFF {
			high, low := utf16.EncodeRune(ru)
			w.WriteU16(uint16(high))
			w.WriteU16(uint16(low))
			continue
		}
		code := uint16(ru)
		w.WriteU16(code)
		units := ControlCodeUnits(code)
		if units > 1 {
			if c, ok := byOffset[i]; ok && len(c.Extra) == (units-1)*2 {
				w.WriteBytes(c.Extra)
			} else {
				w.WriteZeros((units - 1) * 2)
			}
		}
	}
	return w.Bytes()
}
