// Package hwp5 implements the HWP 5.0 binary document engine: FileHeader,
// DocInfo, and BodyText/Section record schemas, the in-memory Document
// tree they decode to, and the Reader/Writer facades that glue them to
// the cfb and record packages. Grounded on the teacher's
// internal/parser/hwp5 package (constants.go/docinfo.go/section.go/
// text.go), generalized from read-only to bidirectional and extended to
// the full tag set this engine's specification names.
package hwp5

// FileHeader 시그니처 ("HWP Document File" + NUL padding + 0x1A 0x02).
const Signature = "HWP Document File"

const FileHeaderSize = 256

// 스트림 이름 (spec.md §6.1)
const (
	StreamFileHeader  = "FileHeader"
	StreamDocInfo     = "DocInfo"
	StreamBodyText    = "BodyText"
	StreamViewText    = "ViewText"
	StreamScripts     = "Scripts"
	StreamBinData     = "BinData"
	StreamPrvText     = "PrvText"
	StreamPrvImage    = "PrvImage"
	StreamDocOptions  = "DocOptions"
	StreamDocHistory  = "DocHistory"
	StreamSummaryInfo = "\x05HwpSummaryInformation"
)

// FileHeader 속성 플래그 비트 (spec.md §4.4.1)
const (
	FlagCompressed    uint32 = 1 << 0
	FlagPassword      uint32 = 1 << 1
	FlagDistribution  uint32 = 1 << 2
	FlagScript        uint32 = 1 << 3
	FlagDRM           uint32 = 1 << 4
	FlagXMLTemplate   uint32 = 1 << 5
	FlagHistory       uint32 = 1 << 6
	FlagSigned        uint32 = 1 << 7
	FlagCertEncrypted uint32 = 1 << 8
	FlagCertDRM       uint32 = 1 << 10
	FlagCCL           uint32 = 1 << 11
)

// DocInfo 레코드 태그 (spec.md §4.4.2)
const (
	TagDocumentProperties uint16 = 0x010
	TagIDMappings         uint16 = 0x011
	TagBinData            uint16 = 0x012
	TagFaceName           uint16 = 0x013
	TagBorderFill         uint16 = 0x014
	TagCharShape          uint16 = 0x015
	TagTabDef             uint16 = 0x016
	TagNumbering          uint16 = 0x017
	TagBullet             uint16 = 0x018
	TagParaShape          uint16 = 0x019
	TagStyle              uint16 = 0x01A
)

// BodyText/Section 레코드 태그 (spec.md §4.4.3)
const (
	TagParaHeader     uint16 = 0x050
	TagParaText       uint16 = 0x051
	TagParaCharShape  uint16 = 0x052
	TagParaLineSeg    uint16 = 0x053
	TagParaRangeTag   uint16 = 0x054
	TagCtrlHeader     uint16 = 0x055
	TagListHeader     uint16 = 0x056
	TagPageDef        uint16 = 0x057
	TagFootnoteShape  uint16 = 0x058
	TagPageBorderFill uint16 = 0x059
	TagTable          uint16 = 0x05F
)

// ID_MAPPINGS table slots: 16 u32 counts, one per indexed table
// (spec.md §4.4.2).
const (
	IdxBinData = iota
	IdxFaceNameKorean
	IdxFaceNameEnglish
	IdxFaceNameHanja
	IdxFaceNameJapanese
	IdxFaceNameOther
	IdxFaceNameSymbol
	IdxFaceNameUser
	IdxBorderFill
	IdxCharShape
	IdxTabDef
	IdxNumbering
	IdxBullet
	IdxParaShape
	IdxStyle
	IdxMemoShape
	numIDMappingSlots
)

// 컨트롤 타입 FOURCC (spec.md §4.4.4/§6.2)
const (
	CtrlSectionDef = "secd"
	CtrlColumnDef  = "cold"
	CtrlHeader     = "head"
	CtrlFooter     = "foot"
	CtrlPicture    = "$pic"
	CtrlHyperlink  = "gsh "
	CtrlTable      = "tbl "
)

// 문단 텍스트에 삽입되는 특수 문자 코드 (spec.md §3.4)
const (
	CodeLineBreak      = 0x0000
	CodeFieldStart     = 0x0003
	CodeFieldEnd       = 0x0004
	CodeBookmark       = 0x0005
	CodeTitleMark      = 0x0006
	CodeTab            = 0x0009
	CodeLineBreak2     = 0x000A
	CodeDrawingOrTable = 0x000B
	CodeInline         = 0x000C
	CodeParaBreak      = 0x000D
	CodeExtendedChar   = 0x0014
	CodeFixedWidthNBSP = 0x0018
	CodeHyphen         = 0x001E
	CodeNBSP           = 0x001F
)

// ControlCodeUnits returns how many UTF-16 code units a control code
// occupies at the point it appears in paragraph text: 1 for codes without
// inline data, 8 for every other code below 32 (spec.md §3.4). The 1-unit
// set is grounded on the teacher's ExtractText/ExtractTextWithControls
// switch (internal/parser/hwp5/text.go): CharLine/CharPara/CharTab skip
// nothing, and CharFieldEnd carries no inline payload despite falling in
// the 8-unit "inline" numeric range the teacher's own default branch
// documents for codes 4-9.
func ControlCodeUnits(code uint16) int {
	switch code {
	case CodeLineBreak, CodeLineBreak2, CodeParaBreak, CodeFieldEnd, CodeTab, CodeHyphen, CodeNBSP, CodeFixedWidthNBSP:
		return 1
	default:
		if code < 32 {
			return 8
		}
		return 1
	}
}
