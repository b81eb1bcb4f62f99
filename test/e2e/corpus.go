// Package e2e runs the pipeline end to end over a full reference corpus:
// every documented method, the error-code tables the catalog is generated
// from, the event grids, and the seven workbook sheets.
package e2e

// MethodSection is one bracket-labeled block of a method's detail text.
type MethodSection struct {
	Label string
	Lines []string
}

// MethodTopic is one documented method. A topic with an empty Summary
// contributes only its heading; the shared detail block then lives on the
// following topic, which is how the paired methods are published.
type MethodTopic struct {
	Name     string
	Summary  string
	Sections []MethodSection
}

// ErrorRow is one row of a return-code table. A row with an empty Code is
// a continuation: it renders as a single prose cell that folds into the
// previous row's notes.
type ErrorRow struct {
	Code    string
	Meaning string
	Notes   string
}

// ErrorTable is one return-code table with the method context line that
// precedes it in the document.
type ErrorTable struct {
	Context string
	Rows    []ErrorRow
}

// QueryTestCase defines a search query and the result names at least one
// of which must appear in the response.
type QueryTestCase struct {
	Query         string
	Kind          string
	ExpectedNames []string
	Description   string
}

// PropertyTopic is one row of the control property table.
type PropertyTopic struct {
	Type        string
	Name        string
	Description string
}

// Corpus describes the full reference document: methods in declared
// order, properties, error tables, the two event grids, and the query
// test cases run against the built index.
type Corpus struct {
	Methods         []MethodTopic
	Properties      []PropertyTopic
	ErrorTables     []ErrorTable
	EventCallbacks  [][]string
	EventParameters [][]string
	TestCases       []QueryTestCase
	TotalMethods    int
	TotalQueries    int
}

// BuildCorpus returns the complete corpus: all 26 documented methods with
// realistic Japanese detail text, five return-code tables, and query test
// cases covering every searchable record family.
func BuildCorpus() *Corpus {
	methods := buildMethodTopics()
	cases := buildQueryTestCases()
	return &Corpus{
		Methods:         methods,
		Properties:      buildPropertyTopics(),
		ErrorTables:     buildErrorTables(),
		EventCallbacks:  buildEventCallbacks(),
		EventParameters: buildEventParameters(),
		TestCases:       cases,
		TotalMethods:    len(methods),
		TotalQueries:    len(cases),
	}
}

func syntax(lines ...string) MethodSection {
	return MethodSection{Label: "構文", Lines: lines}
}

func params(lines ...string) MethodSection {
	return MethodSection{Label: "パラメータ", Lines: lines}
}

func returns(line string) MethodSection {
	return MethodSection{Label: "戻り値", Lines: []string{line}}
}

func usage(line string) MethodSection {
	return MethodSection{Label: "解説", Lines: []string{line}}
}

func buildMethodTopics() []MethodTopic {
	return []MethodTopic{
		{
			Name:    "JVInit",
			Summary: "JVLinkを初期化する。",
			Sections: []MethodSection{
				syntax("Long JVInit(String sid)"),
				params("sid: ソフトウエアID(64バイト以内)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVSetUIProperties",
			Summary: "JVLink設定画面を表示し、設定内容を保存する。",
			Sections: []MethodSection{
				syntax("Long JVSetUIProperties()"),
				returns("0:正常 -100:設定の保存に失敗"),
			},
		},
		{
			Name:    "JVSetServiceKey",
			Summary: "利用キーを設定する。",
			Sections: []MethodSection{
				syntax("Long JVSetServiceKey(String service_key)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVSetSaveFlag",
			Summary: "ダウンロードしたファイルの保存フラグを設定する。",
			Sections: []MethodSection{
				syntax("Long JVSetSaveFlag(Long saveflag)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVSetSavePath",
			Summary: "ダウンロードしたファイルの保存パスを設定する。",
			Sections: []MethodSection{
				syntax("Long JVSetSavePath(String savepath)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVOpen",
			Summary: "蓄積系データの読み込みを開始する。",
			Sections: []MethodSection{
				syntax("Long JVOpen(String dataspec, String fromtime, Long option, Long readcount, Long downloadcount, String lastfiletimestamp)"),
				params(
					"dataspec: 読み込むデータ種別を示す識別子",
					"fromtime: 読み込み開始日時(yyyymmddhhmmss形式)",
					"option: 取得方法(1:通常 2:今週 3:セットアップ 4:ダイアログ無しセットアップ)",
				),
				returns("0:正常 それ以外:エラーコード参照"),
				usage("読み込み対象ファイルを確定し、ダウンロードを開始する。進捗はJVStatusで取得できる。"),
			},
		},
		{
			Name:    "JVRTOpen",
			Summary: "速報系データの読み込みを開始する。",
			Sections: []MethodSection{
				syntax("Long JVRTOpen(String dataspec, String key)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVStatus",
			Summary: "ダウンロードの進捗を取得する。",
			Sections: []MethodSection{
				syntax("Long JVStatus()"),
				returns("ダウンロード済ファイル数 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVRead",
			Summary: "読み込み対象データを1行ずつ読み込む。",
			Sections: []MethodSection{
				syntax("Long JVRead(String buff, Long size, String filename)"),
				returns("読み込んだバイト数 0:全ファイル終了 -1:ファイルの切れ目"),
				usage("ファイルの切れ目では-1が返る。続けて次のファイルを読む場合はそのまま呼び出しを繰り返す。"),
			},
		},
		{
			Name:    "JVGets",
			Summary: "読み込み対象データを1行ずつ読み込む(バイト配列渡し)。",
			Sections: []MethodSection{
				syntax("Long JVGets(Byte buff, Long size, String filename)"),
				returns("読み込んだバイト数 0:全ファイル終了 -1:ファイルの切れ目"),
			},
		},
		{
			Name:    "JVSkip",
			Summary: "現在読み込み中のファイルをスキップする。",
			Sections: []MethodSection{
				syntax("Long JVSkip()"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVCancel",
			Summary: "ダウンロードを中止する。",
			Sections: []MethodSection{
				syntax("Long JVCancel()"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVClose",
			Summary: "読み込み処理を終了し、リソースを解放する。",
			Sections: []MethodSection{
				syntax("Long JVClose()"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVFiledelete",
			Summary: "保存された指定ファイルを削除する。",
			Sections: []MethodSection{
				syntax("Long JVFiledelete(String filename)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVFukuFile",
			Summary: "勝負服の模様番号から勝負服画像ファイルを作成する。",
			Sections: []MethodSection{
				syntax("Long JVFukuFile(String pattern, String filepath)"),
				returns("1:画像を作成 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVFuku",
			Summary: "勝負服の模様番号から勝負服画像データを取得する。",
			Sections: []MethodSection{
				syntax("Long JVFuku(String pattern, Byte buf)"),
				returns("1:画像を取得 それ以外:エラーコード参照"),
			},
		},
		{Name: "JVMVCheck"},
		{
			Name:    "JVMVCheckWithType",
			Summary: "レース映像が公開されているかを確認する。",
			Sections: []MethodSection{
				syntax(
					"Long JVMVCheck(String movieid)",
					"Long JVMVCheckWithType(Long movietype, String searchkey)",
				),
				returns("0:公開済 それ以外:エラーコード参照"),
			},
		},
		{Name: "JVMVPlay"},
		{
			Name:    "JVMVPlayWithType",
			Summary: "レース映像を再生する。",
			Sections: []MethodSection{
				syntax(
					"Long JVMVPlay(String movieid)",
					"Long JVMVPlayWithType(Long movietype, String searchkey)",
				),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVMVOpen",
			Summary: "映像一覧データの読み込みを開始する。",
			Sections: []MethodSection{
				syntax("Long JVMVOpen(String mvtype, String searchkey)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVMVRead",
			Summary: "映像一覧データを1行ずつ読み込む。",
			Sections: []MethodSection{
				syntax("Long JVMVRead(String buff, Long size, String filename)"),
				returns("読み込んだバイト数 0:全データ終了"),
			},
		},
		{
			Name:    "JVCourseFile",
			Summary: "コース図画像ファイルを作成する。",
			Sections: []MethodSection{
				syntax("Long JVCourseFile(String key, String filepath)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{
			Name:    "JVCourseFile2",
			Summary: "コース図画像ファイルと説明文を作成する。",
			Sections: []MethodSection{
				syntax("Long JVCourseFile2(String key, String filepath, String explanation)"),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
		{Name: "JVWatchEvent"},
		{
			Name:    "JVWatchEventClose",
			Summary: "イベント通知の受け取りを開始または終了する。",
			Sections: []MethodSection{
				syntax(
					"Long JVWatchEvent()",
					"Long JVWatchEventClose()",
				),
				returns("0:正常 それ以外:エラーコード参照"),
			},
		},
	}
}

func buildPropertyTopics() []PropertyTopic {
	return []PropertyTopic{
		{"Long", "m_saveflag", "データ保存フラグ。1:保存する 0:保存しない"},
		{"String", "m_savepath", "ダウンロードしたファイルの保存パス"},
		{"String", "m_servicekey", "利用キー。JVInit実行前に設定する"},
		{"Long", "ParentHWnd", "設定画面の親ウィンドウハンドル"},
	}
}

func buildErrorTables() []ErrorTable {
	return []ErrorTable{
		{
			Context: "JVInit",
			Rows: []ErrorRow{
				{"-301", "認証エラー。", "利用キーが不正、もしくは重複して利用されている。"},
				{"-211", "レジストリ内容が不正。", "レジストリの内容が不正もしくは存在しない。"},
				{"-102、-103", "ソフトウエアIDパラメータが不正。", "64バイトを超えるか、先頭が半角スペース。"},
				{"0", "正常。", ""},
			},
		},
		{
			Context: "JVOpen",
			Rows: []ErrorRow{
				{"-1", "該当データ無し。", ""},
				{"-111", "dataspecパラメータが不正。", ""},
				{"-112", "fromtimeパラメータが不正。", ""},
				{"-114", "keyパラメータが不正。", ""},
				{"-115", "optionパラメータが不正。", ""},
				{"-201", "JVInitが行なわれていない。", ""},
				{"-202", "前回のJVOpenに対してJVCloseが行なわれていない。", ""},
				{"-301", "認証エラー。", ""},
				{"-504", "サーバーメンテナンス中。", ""},
				{"", "メンテナンス終了後に再度実行してください。", ""},
				{"0", "正常。", "全ファイル処理済み。"},
			},
		},
		{
			Context: "JVRead／JVGets",
			Rows: []ErrorRow{
				{"-1", "ファイルの切れ目。", "次のファイルを読み込む。"},
				{"-3", "対象ファイルがダウンロード中。", ""},
				{"-203", "JVOpenが行なわれていない。", ""},
				{"-503", "対象ファイルが存在しない。", ""},
			},
		},
		{
			Context: "JVFukuFile／JVFuku",
			Rows: []ErrorRow{
				{"1", "勝負服画像の取得に成功した。", ""},
				{"-118", "filepathパラメータが不正。", ""},
				{"-411", "サーバーエラー。", "HTTPステータス404が返された。"},
			},
		},
		{
			Context: "JVClose",
			Rows: []ErrorRow{
				{"0", "正常。", ""},
				{"-201", "JVInitが行なわれていない。", ""},
				{"-503", "必要なファイルが削除されている。", "取得中に対象ファイルが削除された。"},
			},
		},
	}
}

func buildEventCallbacks() [][]string {
	return [][]string{
		{"種類", "イベントメソッド名", "説明"},
		{"払戻確定", "JVEvtPay", "払戻金の確定が発表された"},
		{"", "", "ことを通知する"},
		{"馬体重発表", "JVEvtWeight", "出走馬の馬体重が発表されたことを通知する"},
		{"騎手変更", "JVEvtJockeyChange", "騎手の変更が発表されたことを通知する"},
		{"天候馬場状態変更", "JVEvtWeather", "天候または馬場状態の変更を通知する"},
	}
}

func buildEventParameters() [][]string {
	return [][]string{
		{"イベントメソッド名", "パラメータ", "説明"},
		{"JVEvtPay(bstr)", "bstr", "対象レースを示すレースID"},
		{"", "", "書式はYYYYMMDDJJKKHHRR"},
		{"JVEvtWeight(bstr)", "bstr", "対象レースを示すレースID"},
		{"JVEvtWeather(bstr)", "bstr", "対象開催を示す開催ID"},
	}
}

func buildQueryTestCases() []QueryTestCase {
	return []QueryTestCase{
		{
			Query:         "JVOpen",
			ExpectedNames: []string{"JVOpen"},
			Description:   "exact method name",
		},
		{
			Query:         "jvrtopen",
			Kind:          "method",
			ExpectedNames: []string{"JVRTOpen"},
			Description:   "lowercase method name with kind filter",
		},
		{
			Query:         "JVMVCheckWithType",
			Kind:          "method",
			ExpectedNames: []string{"JVMVCheckWithType"},
			Description:   "paired method member",
		},
		{
			Query:         "JVOpne",
			ExpectedNames: []string{"JVOpen"},
			Description:   "typo within fuzzy range",
		},
		{
			Query:         "勝負服",
			ExpectedNames: []string{"JVFukuFile", "JVFuku"},
			Description:   "japanese summary term",
		},
		{
			Query:         "該当データ無し",
			Kind:          "error",
			ExpectedNames: []string{"-1"},
			Description:   "error meaning with kind filter",
		},
		{
			Query:         "認証",
			Kind:          "error",
			ExpectedNames: []string{"-301"},
			Description:   "authentication error meaning",
		},
		{
			Query:         "レース詳細",
			Kind:          "record",
			ExpectedNames: []string{"1.レース詳細"},
			Description:   "record title with kind filter",
		},
		{
			Query:         "保存",
			Kind:          "property",
			ExpectedNames: []string{"m_saveflag", "m_savepath"},
			Description:   "property description term",
		},
	}
}
