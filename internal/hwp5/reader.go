package hwp5

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hwp5go/hwp5/internal/cfb"
	"github.com/hwp5go/hwp5/internal/record"
)

// FromBytes parses a complete HWP 5.0 file held in memory into a Document
// (spec.md §4.6 Reader). No partial Document is ever returned: either a
// complete tree or an error (spec.md §7 propagation policy).
func FromBytes(data []byte) (*Document, error) {
	cf, err := cfb.Read(data)
	if err != nil {
		return nil, err
	}

	headerData, err := cf.Stream(StreamFileHeader)
	if err != nil {
		return nil, &MissingStream{Path: StreamFileHeader}
	}
	fh, err := DecodeFileHeader(headerData)
	if err != nil {
		return nil, err
	}

	decompress := func(data []byte) ([]byte, error) {
		if !fh.IsCompressed() {
			return data, nil
		}
		return record.Decompress(data)
	}

	docInfoRaw, err := cf.Stream(StreamDocInfo)
	if err != nil {
		return nil, &MissingStream{Path: StreamDocInfo}
	}
	docInfoData, err := decompress(docInfoRaw)
	if err != nil {
		return nil, err
	}
	info, err := DecodeDocInfo(docInfoData)
	if err != nil {
		return nil, err
	}

	sectionPaths := sectionStreamPaths(cf.Streams())
	sections := make([]*Section, len(sectionPaths))
	for i, path := range sectionPaths {
		raw, err := cf.Stream(path)
		if err != nil {
			return nil, &MissingStream{Path: path}
		}
		sectionData, err := decompress(raw)
		if err != nil {
			return nil, err
		}
		sec, err := DecodeSection(sectionData)
		if err != nil {
			return nil, err
		}
		sections[i] = sec
	}

	for _, b := range info.BinData {
		path := b.Path()
		if path == "" {
			continue
		}
		raw, err := cf.Stream(StreamBinData + "/" + path)
		if err != nil {
			continue
		}
		blob, err := decompress(raw)
		if err != nil {
			return nil, err
		}
		b.Blob = blob
	}

	doc := &Document{Header: fh, Info: info, Sections: sections}

	if raw, err := cf.Stream(StreamPrvText); err == nil {
		text, err := DecodePreviewText(raw)
		if err != nil {
			return nil, err
		}
		doc.PreviewText = text
	}
	if raw, err := cf.Stream(StreamPrvImage); err == nil {
		doc.PreviewImage = raw
	}
	if raw, err := cf.Stream(StreamSummaryInfo); err == nil {
		doc.SummaryInfoRaw = raw
	}
	if raw, err := cf.Stream(StreamDocHistory); err == nil {
		doc.DocHistoryRaw = raw
	}
	if raw, err := cf.Stream(StreamDocOptions + "/_LinkDoc"); err == nil {
		doc.DocOptionsRaw = raw
	}

	return doc, nil
}

// sectionStreamPaths finds every "BodyText/SectionN" stream and returns
// them ordered by N.
func sectionStreamPaths(paths []string) []string {
	type indexed struct {
		path string
		n    int
	}
	var found []indexed
	for _, p := range paths {
		if !strings.HasPrefix(p, StreamBodyText+"/Section") {
			continue
		}
		suffix := strings.TrimPrefix(p, StreamBodyText+"/Section")
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		found = append(found, indexed{path: p, n: n})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.path
	}
	return out
}
