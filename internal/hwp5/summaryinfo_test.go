package hwp5

import (
	"encoding/binary"
	"testing"
)

func TestDecodeSummaryInfo_TooShort(t *testing.T) {
	_, err := DecodeSummaryInfo(make([]byte, 10))
	if err == nil {
		t.Fatal("expected an error for a buffer shorter than the property-set header")
	}
}

func TestDecodeSummaryInfo_BadByteOrder(t *testing.T) {
	data := make([]byte, propertySetHeaderSize)
	binary.LittleEndian.PutUint16(data[0:2], 0x1234)
	_, err := DecodeSummaryInfo(data)
	if err == nil {
		t.Fatal("expected an error for a bad byte-order mark")
	}
}

func TestDecodeSummaryInfo_MinimalHeaderOnly(t *testing.T) {
	data := make([]byte, propertySetHeaderSize)
	binary.LittleEndian.PutUint16(data[0:2], 0xFFFE)

	info, err := DecodeSummaryInfo(data)
	if err != nil {
		t.Fatalf("DecodeSummaryInfo: %v", err)
	}
	if info.HasMetadata() {
		t.Error("expected no metadata from a header-only buffer")
	}
}

// buildPropertySet assembles a minimal OLE property set with one section
// holding the given properties, each (id, type, raw value bytes).
func buildPropertySet(props []struct {
	id    uint32
	typ   uint32
	value []byte
}) []byte {
	const sectionOffset = 48

	valuesStart := sectionOffset + 8 + len(props)*8
	var values []byte
	offsets := make([]int, len(props))
	for i, p := range props {
		offsets[i] = valuesStart + len(values) - sectionOffset
		entry := make([]byte, 4)
		binary.LittleEndian.PutUint32(entry, p.typ)
		entry = append(entry, p.value...)
		values = append(values, entry...)
	}

	buf := make([]byte, valuesStart+len(values))
	binary.LittleEndian.PutUint16(buf[0:2], 0xFFFE)
	binary.LittleEndian.PutUint32(buf[44:48], sectionOffset)
	binary.LittleEndian.PutUint32(buf[sectionOffset:sectionOffset+4], 0) // format ID, unused by the decoder
	binary.LittleEndian.PutUint32(buf[sectionOffset+4:sectionOffset+8], uint32(len(props)))
	for i, p := range props {
		entryOffset := sectionOffset + 8 + i*8
		binary.LittleEndian.PutUint32(buf[entryOffset:entryOffset+4], p.id)
		binary.LittleEndian.PutUint32(buf[entryOffset+4:entryOffset+8], uint32(offsets[i]))
	}
	copy(buf[valuesStart:], values)
	return buf
}

func lpstrValue(s string) []byte {
	v := make([]byte, 4+len(s)+1)
	binary.LittleEndian.PutUint32(v[0:4], uint32(len(s)+1))
	copy(v[4:], s)
	return v
}

func filetimeValue(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:4], uint32(v))
	binary.LittleEndian.PutUint32(b[4:8], uint32(v>>32))
	return b
}

func i4Value(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func TestDecodeSummaryInfo_PopulatedProperties(t *testing.T) {
	data := buildPropertySet([]struct {
		id    uint32
		typ   uint32
		value []byte
	}{
		{propIDTitle, vtLPSTR, lpstrValue("Quarterly Report")},
		{propIDAuthor, vtLPSTR, lpstrValue("Jane Doe")},
		{propIDCreationDate, vtFILETIME, filetimeValue(132000000000000000)},
		{propIDPageCount, vtI4, i4Value(12)},
	})

	info, err := DecodeSummaryInfo(data)
	if err != nil {
		t.Fatalf("DecodeSummaryInfo: %v", err)
	}
	if !info.HasMetadata() {
		t.Fatal("expected HasMetadata to be true")
	}
	if info.Title == nil || *info.Title != "Quarterly Report" {
		t.Errorf("Title = %v, want %q", info.Title, "Quarterly Report")
	}
	if info.Author == nil || *info.Author != "Jane Doe" {
		t.Errorf("Author = %v, want %q", info.Author, "Jane Doe")
	}
	if info.CreationDate == nil || *info.CreationDate != 132000000000000000 {
		t.Errorf("CreationDate = %v, want %d", info.CreationDate, int64(132000000000000000))
	}
	if info.PageCount == nil || *info.PageCount != 12 {
		t.Errorf("PageCount = %v, want 12", info.PageCount)
	}
	if info.Subject != nil {
		t.Errorf("Subject = %v, want nil", info.Subject)
	}
}

func TestDocument_SummaryInformation_AbsentWhenUnset(t *testing.T) {
	doc := NewDocument()
	info, err := doc.SummaryInformation()
	if err != nil {
		t.Fatalf("SummaryInformation: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil SummaryInfo when SummaryInfoRaw is unset, got %+v", info)
	}
}
