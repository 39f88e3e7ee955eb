package hwp5

import "encoding/binary"

// SummaryInfo is the decoded form of the /\x05HwpSummaryInformation OLE
// property set (spec.md §6.1, §9 "pass them through if present"). Fields
// are nil when the property set omits them. Grounded on
// original_source's preview/summary_info.rs SummaryInfo::from_bytes.
type SummaryInfo struct {
	Title          *string
	Subject        *string
	Author         *string
	Keywords       *string
	Comments       *string
	LastSavedBy    *string
	RevisionNumber *string
	CreationDate   *int64 // Windows FILETIME, 100ns ticks since 1601-01-01
	LastSavedDate  *int64
	PageCount      *int32
	WordCount      *int32
	CharCount      *int32
}

const (
	propertySetHeaderSize = 28

	propIDTitle          = 0x02
	propIDSubject        = 0x03
	propIDAuthor         = 0x04
	propIDKeywords       = 0x05
	propIDComments       = 0x06
	propIDLastSavedBy    = 0x08
	propIDRevisionNumber = 0x09
	propIDCreationDate   = 0x0C
	propIDLastSavedDate  = 0x0D
	propIDPageCount      = 0x0E
	propIDWordCount      = 0x0F
	propIDCharCount      = 0x10

	vtLPSTR    = 0x1E
	vtFILETIME = 0x40
	vtI4       = 0x03
)

// DecodeSummaryInfo parses an OLE property set's SummaryInformation
// section. A too-short buffer to even hold the property-set header is a
// CorruptRecord; a buffer too short to reach the first section (but long
// enough to pass the byte-order check) decodes to an empty SummaryInfo,
// matching the original parser's tolerance for a minimal/truncated set.
func DecodeSummaryInfo(data []byte) (*SummaryInfo, error) {
	if len(data) < propertySetHeaderSize {
		return nil, &CorruptRecord{Tag: 0, Detail: "summary info: property set header too short"}
	}
	byteOrder := binary.LittleEndian.Uint16(data[0:2])
	if byteOrder != 0xFFFE {
		return nil, &CorruptRecord{Tag: 0, Detail: "summary info: bad byte-order mark"}
	}

	info := &SummaryInfo{}
	if len(data) < 48 {
		return info, nil
	}
	sectionOffset := int(binary.LittleEndian.Uint32(data[44:48]))
	if len(data) < sectionOffset+8 {
		return info, nil
	}
	propertyCount := int(binary.LittleEndian.Uint32(data[sectionOffset+4 : sectionOffset+8]))
	propertiesStart := sectionOffset + 8

	for i := 0; i < propertyCount; i++ {
		propOffset := propertiesStart + i*8
		if len(data) < propOffset+8 {
			break
		}
		propID := binary.LittleEndian.Uint32(data[propOffset : propOffset+4])
		valueOffset := int(binary.LittleEndian.Uint32(data[propOffset+4 : propOffset+8]))

		abs := sectionOffset + valueOffset
		if len(data) < abs+8 {
			continue
		}
		propType := binary.LittleEndian.Uint32(data[abs : abs+4])

		switch propID {
		case propIDTitle:
			info.Title = readStringProperty(data, abs, propType)
		case propIDSubject:
			info.Subject = readStringProperty(data, abs, propType)
		case propIDAuthor:
			info.Author = readStringProperty(data, abs, propType)
		case propIDKeywords:
			info.Keywords = readStringProperty(data, abs, propType)
		case propIDComments:
			info.Comments = readStringProperty(data, abs, propType)
		case propIDLastSavedBy:
			info.LastSavedBy = readStringProperty(data, abs, propType)
		case propIDRevisionNumber:
			info.RevisionNumber = readStringProperty(data, abs, propType)
		case propIDCreationDate:
			info.CreationDate = readFiletimeProperty(data, abs, propType)
		case propIDLastSavedDate:
			info.LastSavedDate = readFiletimeProperty(data, abs, propType)
		case propIDPageCount:
			info.PageCount = readI32Property(data, abs, propType)
		case propIDWordCount:
			info.WordCount = readI32Property(data, abs, propType)
		case propIDCharCount:
			info.CharCount = readI32Property(data, abs, propType)
		}
	}

	return info, nil
}

func readStringProperty(data []byte, offset int, propType uint32) *string {
	if propType != vtLPSTR || len(data) < offset+8 {
		return nil
	}
	strLen := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
	if strLen == 0 || len(data) < offset+8+strLen {
		return nil
	}
	raw := data[offset+8 : offset+8+strLen]
	for i, b := range raw {
		if b == 0 {
			raw = raw[:i]
			break
		}
	}
	s := string(raw)
	return &s
}

func readFiletimeProperty(data []byte, offset int, propType uint32) *int64 {
	if propType != vtFILETIME || len(data) < offset+12 {
		return nil
	}
	low := int64(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
	high := int64(binary.LittleEndian.Uint32(data[offset+8 : offset+12]))
	v := (high << 32) | low
	return &v
}

func readI32Property(data []byte, offset int, propType uint32) *int32 {
	if propType != vtI4 || len(data) < offset+8 {
		return nil
	}
	v := int32(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
	return &v
}

// HasMetadata reports whether any of the commonly displayed fields are set.
func (s *SummaryInfo) HasMetadata() bool {
	return s.Title != nil || s.Author != nil || s.Subject != nil || s.Keywords != nil
}
