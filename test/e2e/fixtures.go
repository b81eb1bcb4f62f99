package e2e

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReferenceHTML renders the corpus as the XHTML reference document in the
// published section order: cover line, property table, method list and
// details, return-code tables, event grids. Method detail headings are
// bold paragraphs; the second standalone occurrence of the first method
// name is where the detail section starts.
func ReferenceHTML(c *Corpus) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\" />\n")
	b.WriteString("<title>JV-Link インターフェイス仕様書</title>\n</head>\n<body>\n")
	b.WriteString("<h1>JV-Link インターフェイス仕様書</h1>\n<p>Ver.4.9.0.1</p>\n")

	b.WriteString("<h2>1.プロパティ</h2>\n<table>\n<tr><th>型</th><th>プロパティ名</th><th>内容</th></tr>\n")
	for _, p := range c.Properties {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n", p.Type, p.Name, p.Description)
	}
	b.WriteString("</table>\n")

	b.WriteString("<h2>2.メソッド</h2>\n<ul>\n")
	for _, m := range c.Methods {
		fmt.Fprintf(&b, "<li>%s</li>\n", m.Name)
	}
	b.WriteString("</ul>\n")
	for _, m := range c.Methods {
		fmt.Fprintf(&b, "<p><b>%s</b></p>\n", m.Name)
		if m.Summary != "" {
			fmt.Fprintf(&b, "<p>%s</p>\n", m.Summary)
		}
		for _, s := range m.Sections {
			fmt.Fprintf(&b, "<p>【%s】</p>\n", s.Label)
			for _, line := range s.Lines {
				fmt.Fprintf(&b, "<p>%s</p>\n", line)
			}
		}
	}

	b.WriteString("<h2>3.コード表</h2>\n")
	for _, tbl := range c.ErrorTables {
		fmt.Fprintf(&b, "<p>%s</p>\n<table>\n<tr><th>返値</th><th>意味</th><th>備考</th></tr>\n", tbl.Context)
		for _, row := range tbl.Rows {
			if row.Code == "" {
				fmt.Fprintf(&b, "<tr><td>%s</td></tr>\n", row.Meaning)
				continue
			}
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n", row.Code, row.Meaning, row.Notes)
		}
		b.WriteString("</table>\n")
	}

	b.WriteString("<h2>4.イベント</h2>\n<p>JVWatchEventで通知されるイベントの一覧を示す。</p>\n")
	writeEventGrid(&b, c.EventCallbacks)
	b.WriteString("<p>各イベントのパラメータは以下の通り。</p>\n")
	writeEventGrid(&b, c.EventParameters)

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

func writeEventGrid(b *strings.Builder, grid [][]string) {
	b.WriteString("<table>\n")
	for i, row := range grid {
		tag := "td"
		if i == 0 {
			tag = "th"
		}
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(b, "<%s>%s</%s>", tag, cell, tag)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}

// Workbook builds the data dictionary workbook with the seven published
// sheets. Cell grids are row-major starting at A1; nil cells stay empty.
func Workbook() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"フォーマット", formatRows()},
		{"コード表", codeTableRows()},
		{"データ種別一覧", dataTypeRows()},
		{"データ提供タイミング･提供単位", deliveryRows()},
		{"特記事項", notesRows()},
		{"変更履歴", historyRows()},
		{"表紙", coverRows()},
	}
	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeRows(f, s.name, s.rows); err != nil {
			return nil, fmt.Errorf("fill sheet %s: %w", s.name, err)
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatRows lays out three record formats. Column B holds the numbered
// title or the field number, レコード長 in column F marks a record header,
// and a row with neither number nor name continues the previous field's
// description.
func formatRows() [][]interface{} {
	return [][]interface{}{
		{nil, "1.レース詳細", nil, nil, nil, "レコード長", nil, 1272},
		{nil, "項番", nil, "キー", "項目名", "位置", "繰返", "バイト数", "合計", "初期値", "説明"},
		{nil, 1, nil, "RT", "レコード種別ID", 1, 1, 2, 2, "RA", "レコード種別を示すID"},
		{nil, 2, nil, nil, "データ区分", 3, 1, 1, 1, nil, "1:出走馬名表 2:出馬表 7:成績"},
		{nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, "0:該当レコード削除"},
		{nil, 3, nil, nil, "データ作成年月日", 4, 1, 8, 8, nil, "西暦4桁+月日各2桁(yyyymmdd形式)"},
		{},
		{nil, "2.馬毎レース情報", nil, nil, nil, "レコード長", nil, 555},
		{nil, "項番", nil, "キー", "項目名", "位置", "繰返", "バイト数", "合計", "初期値", "説明"},
		{nil, 1, nil, "SE", "レコード種別ID", 1, 1, 2, 2, "SE", "レコード種別を示すID"},
		{nil, 2, nil, nil, "馬番", 31, 1, 2, 2, nil, "出走馬の馬番号"},
		{},
		{nil, "4.競走馬マスタ", nil, nil, nil, "レコード長", nil, 1577},
		{nil, "項番", nil, "キー", "項目名", "位置", "繰返", "バイト数", "合計", "初期値", "説明"},
		{nil, 1, nil, "UM", "レコード種別ID", 1, 1, 2, 2, "UM", "レコード種別を示すID"},
		{nil, 2, nil, nil, "血統登録番号", 12, 1, 10, 10, nil, "生年4桁+品種1桁+数字5桁"},
	}
}

func codeTableRows() [][]interface{} {
	return [][]interface{}{
		{nil, "2001.競馬場コード"},
		{nil, "バイト数", 2},
		{nil, "コード", "名称"},
		{nil, "01", "札幌"},
		{nil, "02", "函館"},
		{nil, "03", "福島"},
		{nil, "05", "東京"},
		{},
		{nil, "2002.性別コード"},
		{nil, "バイト数", 1},
		{nil, "コード", "名称"},
		{nil, 1, "牡"},
		{nil, 2, "牝"},
		{nil, 3, "セン"},
		{},
		{nil, "2201.天候コード"},
		{nil, "バイト数", 1},
		{nil, "コード", "名称"},
		{nil, 1, "晴"},
		{nil, 2, "曇"},
		{nil, 3, "雨"},
	}
}

func dataTypeRows() [][]interface{} {
	return [][]interface{}{
		{"(1)蓄積系データ"},
		{nil, "データ種別"},
		{nil, "レース情報", "RACE", "2", "レース詳細", "RA", "出走馬名表から確定成績までのレース情報"},
		{nil, "蓄積情報", "DIFF", "3", "競走馬マスタ", "UM", "中央登録されている競走馬の情報"},
		{},
		{"(2)速報系データ"},
		{nil, "データ種別"},
		{nil, "速報成績", "0B12", "2", "レース詳細", "RA", "成績確定後のレース情報"},
	}
}

func deliveryRows() [][]interface{} {
	return [][]interface{}{
		{nil, "(1)蓄積系データ"},
		{nil, "レース情報", "RACE", "土日", "15:00頃", nil, "開催単位", "過去1年"},
		{nil, nil, nil, "祝日"},
		{},
		{nil, "(2)速報系データ"},
		{nil, "速報成績", "0B12", "毎日", "随時", nil, "レース単位", "当日"},
	}
}

func notesRows() [][]interface{} {
	return [][]interface{}{
		{"本仕様書に記載のデータは、特に断りのない限りShift-JISで提供される。"},
		{"時刻は全て日本標準時(JST)で表記する。"},
		{nil, "欠番となったレコード種別は将来の拡張のために予約される。"},
	}
}

func historyRows() [][]interface{} {
	return [][]interface{}{
		{nil, "日付ヒヅケ", "バージョン", "重要度", "項目", "ページ", "内容"},
		{nil, 45078, "Ver.4.9.0.1", "高", "コード表", "P.12", "天候コードの説明を修正"},
		{nil, nil, nil, "中", "フォーマット", "P.3", "レース詳細に項目追加"},
		{nil, 44805, "Ver.4.9.0", "高", "全般", "-", "初版発行"},
	}
}

func coverRows() [][]interface{} {
	return [][]interface{}{
		{},
		{},
		{nil, nil, "JV-Data仕様書"},
		{nil, nil, "Ver.4.9.0.1"},
		{},
		{nil, nil, "2023年6月1日 発行"},
	}
}

// WriteSources writes both source documents under dir and returns their
// paths.
func WriteSources(dir string, c *Corpus) (string, string, error) {
	docPath := filepath.Join(dir, "JV-Link4901.html")
	if err := os.WriteFile(docPath, ReferenceHTML(c), 0644); err != nil {
		return "", "", err
	}
	wb, err := Workbook()
	if err != nil {
		return "", "", err
	}
	workbookPath := filepath.Join(dir, "JV-Data4901.xlsx")
	if err := os.WriteFile(workbookPath, wb, 0644); err != nil {
		return "", "", err
	}
	return docPath, workbookPath, nil
}
