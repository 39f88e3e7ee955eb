package hwp5

import (
	"reflect"
	"testing"
)

func sampleDocInfo() *DocInfo {
	info := &DocInfo{
		Properties: &DocumentProperties{SectionCount: 1, CharCount: 7, WordCount: 1, PageCount: 1},
		IDMappings: &IDMappings{},
	}
	info.IDMappings.Counts[IdxFaceNameKorean] = 1
	info.Faces[0] = []*FaceName{{Name: "함초롬바탕"}}
	info.CharShapes = []*CharShape{{BaseSize: 1000, Attributes: 0x01, TextColor: 0x000000}}
	info.ParaShapes = []*ParaShape{{Attr1: 0, LeftMargin: 0}}
	info.BorderFills = []*BorderFill{{Flags: 1, FillType: 1, FillColor: 0xFFFFFF}}
	info.TabDefs = []*TabDef{{Flags: 0, Tabs: []TabEntry{{Position: 1000, Type: 0}}}}
	info.Styles = []*Style{{Name: "기본", EngName: "Default", ParaShapeID: 0, CharShapeID: 0}}
	info.BinData = []*BinData{{Flags: 1, Type: 1, BinDataID: 1, Extension: "png"}}
	return info
}

func TestDocInfoRoundTrip(t *testing.T) {
	orig := sampleDocInfo()
	data := EncodeDocInfo(orig)

	got, err := DecodeDocInfo(data)
	if err != nil {
		t.Fatalf("DecodeDocInfo: %v", err)
	}

	if got.Properties.CharCount != 7 {
		t.Errorf("CharCount = %d, want 7", got.Properties.CharCount)
	}
	if len(got.Faces[0]) != 1 || got.Faces[0][0].Name != "함초롬바탕" {
		t.Errorf("face name round trip failed: %+v", got.Faces[0])
	}
	if len(got.CharShapes) != 1 || got.CharShapes[0].BaseSize != 1000 {
		t.Errorf("char shape round trip failed: %+v", got.CharShapes)
	}
	if !got.CharShapes[0].IsBold() {
		t.Error("expected bold char shape")
	}
	if len(got.TabDefs) != 1 || len(got.TabDefs[0].Tabs) != 1 || got.TabDefs[0].Tabs[0].Position != 1000 {
		t.Errorf("tab def round trip failed: %+v", got.TabDefs)
	}
	if len(got.Styles) != 1 || got.Styles[0].Name != "기본" {
		t.Errorf("style round trip failed: %+v", got.Styles)
	}
	if len(got.BinData) != 1 || got.BinData[0].Path() != "BIN0001.png" {
		t.Errorf("bin data round trip failed: path=%q", got.BinData[0].Path())
	}
}

func TestBinData_Path(t *testing.T) {
	b := &BinData{BinDataID: 0x10, Extension: "jpg"}
	if got := b.Path(); got != "BIN0010.jpg" {
		t.Errorf("Path() = %q", got)
	}
	if (&BinData{}).Path() != "" {
		t.Error("expected empty path for zero BinDataID")
	}
}

func TestFaceName_FlagsGateOptionalFields(t *testing.T) {
	f := &FaceName{Flags: 0x83, Name: "Arial", SubstituteFace: "Helvetica", TypeInfo: make([]byte, 10)}
	data := f.encode()

	got, err := decodeFaceName(data)
	if err != nil {
		t.Fatalf("decodeFaceName: %v", err)
	}
	if !reflect.DeepEqual(got.TypeInfo, f.TypeInfo) {
		t.Errorf("TypeInfo round trip failed")
	}
	if got.SubstituteFace != "Helvetica" {
		t.Errorf("SubstituteFace = %q", got.SubstituteFace)
	}
}

func TestNumbering_BulletOpaqueRoundTrip(t *testing.T) {
	raw := []byte{1, 2, 3, 4, 5}
	n, err := decodeNumbering(raw)
	if err != nil {
		t.Fatalf("decodeNumbering: %v", err)
	}
	if !reflect.DeepEqual(n.encode(), raw) {
		t.Error("Numbering did not round trip opaquely")
	}

	b, err := decodeBullet(raw)
	if err != nil {
		t.Fatalf("decodeBullet: %v", err)
	}
	if !reflect.DeepEqual(b.encode(), raw) {
		t.Error("Bullet did not round trip opaquely")
	}
}
