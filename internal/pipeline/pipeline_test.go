package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keibalab/jvspec/internal/config"
	"github.com/xuri/excelize/v2"
)

const fixtureDocument = `<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>JV-Link</title></head>
<body>
<h1>JV-Link インターフェース仕様書</h1>
<h2>1.プロパティ</h2>
<table>
<tr><th>型</th><th>プロパティ名</th><th>内容</th></tr>
<tr><td>Long</td><td>m_saveflag</td><td>保存フラグ</td></tr>
<tr><td>String</td><td>m_savepath</td><td>保存パス</td></tr>
</table>
<h2>2.メソッド</h2>
<p>JVInit</p>
<p>JVSetUIProperties</p>
<h3>メソッド詳細</h3>
<p>JVInit</p>
<p>JVLinkの初期化を行う。</p>
<p>【構文】</p>
<p>Long JVInit(String sid)</p>
<p>【解説】</p>
<p>最初に呼び出す。</p>
<p>JVSetUIProperties</p>
<p>設定画面を表示する。</p>
<p>【構文】</p>
<p>Long JVSetUIProperties()</p>
<p>JVSetServiceKey</p>
<p>利用キーを設定する。</p>
<h2>3.コード表</h2>
<p>JVInit</p>
<table>
<tr><th>返値</th><th>意味</th><th>備考</th></tr>
<tr><td>-301</td><td>認証エラー</td><td>利用キーが不正</td></tr>
<tr><td>0</td><td>正常</td><td></td></tr>
</table>
<p>JVOpen</p>
<table>
<tr><th>返値</th><th>意味</th><th>備考</th></tr>
<tr><td>-1</td><td>該当データ無し</td><td>次を読む</td></tr>
</table>
<h2>4.イベント</h2>
<table>
<tr><td>種類</td><td>イベントメソッド名</td><td>説明</td></tr>
<tr><td>データ関連</td><td>JVEvtPay</td><td>払戻確定</td></tr>
</table>
<table>
<tr><td>イベントメソッド名</td><td>パラメータ</td><td>説明</td></tr>
<tr><td>JVEvtPay(key)</td><td>key</td><td>開催キー</td></tr>
</table>
</body>
</html>
`

func writeFixtureDocument(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(fixtureDocument), 0644); err != nil {
		t.Fatalf("write document fixture: %v", err)
	}
}

func writeFixtureWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheets := []string{
		"フォーマット", "コード表", "データ種別一覧",
		"データ提供タイミング･提供単位", "特記事項", "変更履歴", "表紙",
	}
	for _, name := range sheets {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet %s: %v", name, err)
		}
	}

	f.SetCellValue("フォーマット", "B1", "1.レース詳細")
	f.SetCellValue("フォーマット", "F1", "レコード長")
	f.SetCellValue("フォーマット", "H1", 42)
	f.SetCellValue("フォーマット", "B2", "項番")
	f.SetCellValue("フォーマット", "B3", 1)
	f.SetCellValue("フォーマット", "D3", "RT")
	f.SetCellValue("フォーマット", "E3", "レコード種別")
	f.SetCellValue("フォーマット", "F3", 1)
	f.SetCellValue("フォーマット", "G3", 1)
	f.SetCellValue("フォーマット", "H3", 2)
	f.SetCellValue("フォーマット", "I3", 2)
	f.SetCellValue("フォーマット", "K3", "レコードの種別")

	f.SetCellValue("コード表", "B1", "2001.競馬場コード")
	f.SetCellValue("コード表", "B2", "バイト数")
	f.SetCellValue("コード表", "C2", 2)
	f.SetCellValue("コード表", "B3", "コード")
	f.SetCellValue("コード表", "C3", "名称")
	f.SetCellValue("コード表", "B4", "01")
	f.SetCellValue("コード表", "C4", "札幌")
	f.SetCellValue("コード表", "B5", "02")
	f.SetCellValue("コード表", "C5", "函館")

	f.SetCellValue("データ種別一覧", "A1", "(1)蓄積系データ")
	f.SetCellValue("データ種別一覧", "B2", "データ種別")
	f.SetCellValue("データ種別一覧", "B3", "レース情報")
	f.SetCellValue("データ種別一覧", "C3", "RACE")

	f.SetCellValue("データ提供タイミング･提供単位", "B1", "(1)蓄積系データ")
	f.SetCellValue("データ提供タイミング･提供単位", "B2", "レース情報")
	f.SetCellValue("データ提供タイミング･提供単位", "C2", "RACE")
	f.SetCellValue("データ提供タイミング･提供単位", "D2", "土日")
	f.SetCellValue("データ提供タイミング･提供単位", "E2", "15:00")

	f.SetCellValue("特記事項", "A1", "注意事項は以下の通り。")
	f.SetCellValue("特記事項", "B2", "詳細は別紙参照。")

	f.SetCellValue("変更履歴", "B1", "日付ヒヅケ")
	f.SetCellValue("変更履歴", "B2", 45000)
	f.SetCellValue("変更履歴", "C2", "Ver.4.9.0")
	f.SetCellValue("変更履歴", "D2", "高")
	f.SetCellValue("変更履歴", "E2", "レコード")
	f.SetCellValue("変更履歴", "F2", "P.3")
	f.SetCellValue("変更履歴", "G2", "初版発行")

	f.SetCellValue("表紙", "C3", "Ver.4.9.0.1")
	f.SetCellValue("表紙", "C5", "2023年6月1日")

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func fixtureConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "source-docs")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Sources.Document = filepath.Join(srcDir, "JV-Link4901.html")
	cfg.Sources.Workbook = filepath.Join(srcDir, "JV-Data4901.xlsx")
	cfg.Output.SpecsDir = filepath.Join(dir, "specs")
	cfg.Output.CatalogPath = filepath.Join(dir, "gen", "catalog_gen.go")
	writeFixtureDocument(t, cfg.Sources.Document)
	writeFixtureWorkbook(t, cfg.Sources.Workbook)
	return cfg
}

func TestExtract(t *testing.T) {
	cfg := fixtureConfig(t)
	ex, err := New(cfg).Extract()
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(ex.Methods) != 3 {
		t.Fatalf("methods: got %d groups: %+v", len(ex.Methods), ex.Methods)
	}
	if ex.Methods[0].Title != "JVInit" || ex.Methods[0].Methods[0].Summary != "JVLinkの初期化を行う。" {
		t.Errorf("first group = %+v", ex.Methods[0])
	}
	if body, ok := ex.Methods[0].Section("構文"); !ok || body != "Long JVInit(String sid)" {
		t.Errorf("JVInit 構文 = %q, %v", body, ok)
	}
	if body, ok := ex.Methods[1].Section("構文"); !ok || body != "Long JVSetUIProperties()" {
		t.Errorf("JVSetUIProperties 構文 = %q, %v", body, ok)
	}
	if ex.Methods[2].Title != "JVSetServiceKey" || len(ex.Methods[2].Sections) != 0 {
		t.Errorf("third group = %+v", ex.Methods[2])
	}

	if len(ex.Properties) != 2 || ex.Properties[0].Name != "m_saveflag" {
		t.Errorf("properties = %+v", ex.Properties)
	}
	if len(ex.ErrorCodes) != 3 {
		t.Fatalf("error codes: got %d: %+v", len(ex.ErrorCodes), ex.ErrorCodes)
	}
	if ex.ErrorCodes[2].Methods[0] != "JVOpen" || ex.ErrorCodes[2].Code != "-1" {
		t.Errorf("third error entry = %+v", ex.ErrorCodes[2])
	}
	if len(ex.Events.Callbacks) != 2 || len(ex.Events.Parameters) != 2 {
		t.Errorf("events = %+v", ex.Events)
	}

	if len(ex.Records) != 1 || ex.Records[0].Length != "42" {
		t.Fatalf("records = %+v", ex.Records)
	}
	if len(ex.Records[0].Fields) != 1 || ex.Records[0].Fields[0].Name != "レコード種別" {
		t.Errorf("fields = %+v", ex.Records[0].Fields)
	}
	if len(ex.CodeTables) != 1 || ex.CodeTables[0].Title != "2001.競馬場コード" || len(ex.CodeTables[0].Rows) != 2 {
		t.Errorf("code tables = %+v", ex.CodeTables)
	}
	if len(ex.DataTypes) != 1 || ex.DataTypes[0].Key != "蓄積系データ" {
		t.Errorf("data types = %+v", ex.DataTypes)
	}
	if len(ex.Delivery) != 1 || len(ex.Delivery[0].Rows) != 2 {
		t.Errorf("delivery = %+v", ex.Delivery)
	}
	if len(ex.Notes) != 2 || ex.Notes[0] != "注意事項は以下の通り。" {
		t.Errorf("notes = %+v", ex.Notes)
	}
	if len(ex.History) != 1 || ex.History[0].Date != "2023-03-15" || ex.History[0].Description != "初版発行" {
		t.Errorf("history = %+v", ex.History)
	}
	if ex.Version.Version != "Ver.4.9.0.1" || ex.Version.Updated != "2023-06-01" {
		t.Errorf("version = %+v", ex.Version)
	}
}

func TestExtract_missingDocument(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.Sources.Document = filepath.Join(t.TempDir(), "absent.html")
	if _, err := New(cfg).Extract(); err == nil {
		t.Fatal("expected error for missing document")
	}
}

func TestExtract_missingWorkbook(t *testing.T) {
	cfg := fixtureConfig(t)
	cfg.Sources.Workbook = filepath.Join(t.TempDir(), "absent.xlsx")
	if _, err := New(cfg).Extract(); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}

func TestRun(t *testing.T) {
	cfg := fixtureConfig(t)
	result, err := New(cfg).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.RunID == "" {
		t.Error("run id should be set")
	}

	want := Summary{
		Methods:                3,
		Properties:             2,
		ErrorCodes:             3,
		Records:                1,
		CodeTables:             1,
		DataTypeSections:       1,
		DeliverySections:       1,
		SpecialNotesParagraphs: 2,
		ChangeHistoryEntries:   1,
	}
	if result.Summary != want {
		t.Errorf("summary = %+v, want %+v", result.Summary, want)
	}

	names := []string{
		"methods.md", "properties.md", "error_codes.md", "events.md",
		"records.md", "code_tables.md", "data_types.md",
		"delivery_schedule.md", "special_notes.md", "change_history.md",
		"version.md",
	}
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(cfg.Output.SpecsDir, name)); err != nil {
			t.Errorf("missing document %s: %v", name, err)
		}
	}

	methodsDoc := readFile(t, filepath.Join(cfg.Output.SpecsDir, "methods.md"))
	for _, want := range []string{
		"# JV-Link Method Reference",
		"## JVInit",
		"- **JVInit** — JVLinkの初期化を行う。",
		"### Syntax",
		"```text\nLong JVInit(String sid)\n```",
		"### Explanation",
	} {
		if !strings.Contains(methodsDoc, want) {
			t.Errorf("methods.md missing %q", want)
		}
	}

	recordsDoc := readFile(t, filepath.Join(cfg.Output.SpecsDir, "records.md"))
	if !strings.Contains(recordsDoc, "## 1.レース詳細 (Record Length: 42 bytes)") {
		t.Errorf("records.md heading missing:\n%s", recordsDoc)
	}

	versionDoc := readFile(t, filepath.Join(cfg.Output.SpecsDir, "version.md"))
	if !strings.Contains(versionDoc, "- **Version:** Ver.4.9.0.1") || !strings.Contains(versionDoc, "- **Updated:** 2023-06-01") {
		t.Errorf("version.md = %s", versionDoc)
	}

	// Run rewrites the error table into its normalized form.
	errorDoc := readFile(t, filepath.Join(cfg.Output.SpecsDir, "error_codes.md"))
	wantRows := []string{
		"# JV-Link Error Codes",
		"| JVInit | -301 | 認証エラー | 利用キーが不正 |",
		"| JVInit | 0 | 正常 |  |",
		"| JVOpen | -1 | 該当データ無し | 次を読む |",
	}
	for _, row := range wantRows {
		if !strings.Contains(errorDoc, row) {
			t.Errorf("error_codes.md missing %q:\n%s", row, errorDoc)
		}
	}

	catalogSrc := readFile(t, cfg.Output.CatalogPath)
	for _, want := range []string{
		"// Code generated by jvspec catalog. DO NOT EDIT.",
		"package jvlink",
		`Code: -301, Category: CategoryAuthentication, Message: "Authentication failure (invalid or duplicated service key)."`,
		`Code: -1, Category: CategoryOther, Message: "No matching data exists for the current parameters."`,
		`"JVOPEN": {Message: "File boundary reached; continue reading."}`,
	} {
		if !strings.Contains(catalogSrc, want) {
			t.Errorf("catalog source missing %q:\n%s", want, catalogSrc)
		}
	}
	// Entries come out in ascending code order.
	if strings.Index(catalogSrc, "Code: -301") > strings.Index(catalogSrc, "Code: -1,") {
		t.Error("catalog entries not sorted by code")
	}
}

func TestRun_idempotent(t *testing.T) {
	cfg := fixtureConfig(t)
	p := New(cfg)
	if _, err := p.Run(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := map[string]string{}
	for _, name := range []string{"methods.md", "error_codes.md"} {
		first[name] = readFile(t, filepath.Join(cfg.Output.SpecsDir, name))
	}
	firstCatalog := readFile(t, cfg.Output.CatalogPath)

	if _, err := p.Run(); err != nil {
		t.Fatalf("second run: %v", err)
	}
	for name, before := range first {
		after := readFile(t, filepath.Join(cfg.Output.SpecsDir, name))
		if after != before {
			t.Errorf("%s changed between runs", name)
		}
	}
	if readFile(t, cfg.Output.CatalogPath) != firstCatalog {
		t.Error("catalog source changed between runs")
	}
}

func TestCatalog_missingTable(t *testing.T) {
	cfg := fixtureConfig(t)
	if err := New(cfg).Catalog(false); err == nil {
		t.Fatal("expected error when the error table has not been rendered")
	}
}

func TestCatalog_unknownCodeWritesNothing(t *testing.T) {
	cfg := fixtureConfig(t)
	if err := os.MkdirAll(cfg.Output.SpecsDir, 0755); err != nil {
		t.Fatal(err)
	}
	table := "| Method(s) | Code | Meaning | Notes |\n| --- | --- | --- | --- |\n| JVInit | -999 | 未知 |  |\n"
	if err := os.WriteFile(filepath.Join(cfg.Output.SpecsDir, ErrorTableName), []byte(table), 0644); err != nil {
		t.Fatal(err)
	}
	err := New(cfg).Catalog(true)
	if err == nil || !strings.Contains(err.Error(), "-999") {
		t.Fatalf("expected unknown-code error, got %v", err)
	}
	if _, statErr := os.Stat(cfg.Output.CatalogPath); !os.IsNotExist(statErr) {
		t.Error("catalog source must not be written when consolidation fails")
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
