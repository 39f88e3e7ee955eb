package cfb

import (
	"bytes"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Put("FileHeader", bytes.Repeat([]byte{0xAA}, 256))
	w.Put("DocInfo", []byte("doc-info-payload"))
	w.Put("BodyText/Section0", bytes.Repeat([]byte{0x01, 0x02}, 3000)) // forces regular sectors
	w.Put("BinData/BIN0001.png", []byte{0x89, 0x50, 0x4E, 0x47})

	data := w.Bytes()

	cf, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	for _, path := range []string{"FileHeader", "DocInfo", "BodyText/Section0", "BinData/BIN0001.png"} {
		if _, err := cf.Stream(path); err != nil {
			t.Errorf("missing stream %s: %v", path, err)
		}
	}

	got, err := cf.Stream("DocInfo")
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if string(got) != "doc-info-payload" {
		t.Errorf("DocInfo payload = %q", got)
	}

	big, err := cf.Stream("BodyText/Section0")
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if len(big) != 6000 {
		t.Errorf("BodyText/Section0 length = %d, want 6000", len(big))
	}
}

func TestReadBadSignature(t *testing.T) {
	_, err := Read(make([]byte, 512))
	if _, ok := err.(*BadSignature); !ok {
		t.Fatalf("expected BadSignature, got %v", err)
	}
}

func TestCompareNamesShorterFirst(t *testing.T) {
	if compareNames("AB", "ABC") >= 0 {
		t.Error("shorter name should sort first")
	}
	if compareNames("abc", "ABC") != 0 {
		t.Error("case-insensitive compare should treat abc == ABC")
	}
}
