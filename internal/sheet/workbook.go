// Package sheet decodes the JV-Data dictionary workbook into ordered rows of
// normalized cell text. The decoder resolves shared-string and inline-string
// cells, fills column gaps, and preserves sheet order, which the downstream
// parsers depend on.
package sheet

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/keibalab/jvspec/internal/normalize"
)

// Workbook holds the decoded sheets. Names keeps workbook order.
type Workbook struct {
	Names  []string
	Sheets map[string][][]string
}

// Sheet returns the rows of the named sheet, or nil when the workbook has
// no such sheet.
func (wb *Workbook) Sheet(name string) [][]string {
	return wb.Sheets[name]
}

// Load reads and decodes the workbook at path.
func Load(path string) (*Workbook, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load workbook: %w", err)
	}
	wb, err := Decode(content)
	if err != nil {
		return nil, fmt.Errorf("load workbook %s: %w", path, err)
	}
	return wb, nil
}

// Decode decodes a workbook from zip container bytes.
func Decode(content []byte) (*Workbook, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("decode workbook: open zip: %w", err)
	}

	shared, err := parseSharedStrings(zr)
	if err != nil {
		return nil, err
	}
	rels, err := parseRelationships(zr)
	if err != nil {
		return nil, err
	}

	data, err := readPart(zr, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	var book struct {
		Sheets struct {
			Sheet []struct {
				Name string `xml:"name,attr"`
				RID  string `xml:"id,attr"`
			} `xml:"sheet"`
		} `xml:"sheets"`
	}
	if err := xml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("decode workbook: parse xl/workbook.xml: %w", err)
	}

	wb := &Workbook{Sheets: make(map[string][][]string, len(book.Sheets.Sheet))}
	for _, s := range book.Sheets.Sheet {
		target, ok := rels[s.RID]
		if !ok {
			return nil, fmt.Errorf("decode workbook: sheet %q: relationship %s not found", s.Name, s.RID)
		}
		part, err := readPart(zr, "xl/"+target)
		if err != nil {
			return nil, fmt.Errorf("decode workbook: sheet %q: %w", s.Name, err)
		}
		rows, err := parseWorksheet(part, shared)
		if err != nil {
			return nil, fmt.Errorf("decode workbook: sheet %q: %w", s.Name, err)
		}
		wb.Names = append(wb.Names, s.Name)
		wb.Sheets[s.Name] = rows
	}
	return wb, nil
}

func readPart(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("part %s not found", name)
}

// parseSharedStrings concatenates every text run of each shared-string
// entry, phonetic runs included. Cells written with furigana annotations
// therefore decode with the reading appended, e.g. 日付ヒヅケ; parsers
// match against that decoded form.
func parseSharedStrings(zr *zip.Reader) ([]string, error) {
	data, err := readPart(zr, "xl/sharedStrings.xml")
	if err != nil {
		return nil, fmt.Errorf("decode workbook: %w", err)
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	var values []string
	var cur strings.Builder
	inEntry, inText := false, false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode workbook: parse shared strings: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "si":
				inEntry = true
				cur.Reset()
			case "t":
				inText = inEntry
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "si":
				values = append(values, normalize.Text(cur.String()))
				inEntry = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return values, nil
}

func parseRelationships(zr *zip.Reader) (map[string]string, error) {
	data, err := readPart(zr, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, fmt.Errorf("decode workbook: %w", err)
	}
	var rels struct {
		Relationship []struct {
			ID     string `xml:"Id,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("decode workbook: parse relationships: %w", err)
	}
	out := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		out[rel.ID] = rel.Target
	}
	return out, nil
}

func parseWorksheet(data []byte, shared []string) ([][]string, error) {
	var ws struct {
		SheetData struct {
			Rows []struct {
				Cells []struct {
					Ref     string   `xml:"r,attr"`
					Type    string   `xml:"t,attr"`
					Value   string   `xml:"v"`
					InlineT []string `xml:"is>t"`
				} `xml:"c"`
			} `xml:"row"`
		} `xml:"sheetData"`
	}
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse worksheet: %w", err)
	}

	var rows [][]string
	for _, row := range ws.SheetData.Rows {
		cells := make(map[int]string, len(row.Cells))
		maxIdx := 0
		for _, c := range row.Cells {
			idx := colIndex(columnLetters(c.Ref))
			var text string
			switch c.Type {
			case "s":
				if n, err := strconv.Atoi(strings.TrimSpace(c.Value)); err == nil && n >= 0 && n < len(shared) {
					text = shared[n]
				}
			case "inlineStr":
				if len(c.InlineT) > 0 {
					text = c.InlineT[0]
				}
			default:
				text = c.Value
			}
			cells[idx] = normalize.Text(text)
			if idx > maxIdx {
				maxIdx = idx
			}
		}
		if len(cells) == 0 {
			continue
		}
		decoded := make([]string, maxIdx)
		for i := 1; i <= maxIdx; i++ {
			decoded[i-1] = cells[i]
		}
		rows = append(rows, decoded)
	}
	return rows, nil
}

// columnLetters extracts the alphabetic part of a cell reference like "AB12".
func columnLetters(ref string) string {
	var b strings.Builder
	for _, ch := range ref {
		if (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') {
			b.WriteRune(ch)
		}
	}
	if b.Len() == 0 {
		return "A"
	}
	return b.String()
}

// colIndex converts column letters to a 1-based index (A=1, Z=26, AA=27).
func colIndex(letters string) int {
	idx := 0
	for _, ch := range strings.ToUpper(letters) {
		if ch >= 'A' && ch <= 'Z' {
			idx = idx*26 + int(ch-'A') + 1
		}
	}
	return idx
}
