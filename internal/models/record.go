package models

// FieldEntry is one field row of a record format table.
type FieldEntry struct {
	No          string `json:"no"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Repeat      string `json:"repeat"`
	Bytes       string `json:"bytes"`
	Total       string `json:"total"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

// RecordFormat is one record layout from the フォーマット sheet. RawTitle
// keeps the sheet's own heading (number and name combined); Number and Title
// are its split parts when the heading follows the "N.name" convention.
type RecordFormat struct {
	Number   string       `json:"number"`
	Title    string       `json:"title"`
	RawTitle string       `json:"raw_title"`
	Length   string       `json:"length"`
	Fields   []FieldEntry `json:"fields"`
}

// GenericTable is one titled table from the コード表 sheet.
type GenericTable struct {
	Title  string     `json:"title"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// SheetSection groups rows under a dataset-kind heading (蓄積系データ,
// 速報系データ, or リアルタイム系データ). Row 0 is the section header.
type SheetSection struct {
	Key  string     `json:"key"`
	Rows [][]string `json:"rows"`
}

// ChangeHistoryEntry is one revision row from the 変更履歴 sheet.
type ChangeHistoryEntry struct {
	Date        string `json:"date"`
	Version     string `json:"version"`
	Importance  string `json:"importance"`
	Item        string `json:"item"`
	Page        string `json:"page"`
	Description string `json:"description"`
}

// VersionInfo is the specification version stamped on the 表紙 sheet.
type VersionInfo struct {
	Version string `json:"version"`
	Updated string `json:"updated"`
}
